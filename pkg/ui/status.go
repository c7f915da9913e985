package ui

// HeaderText wraps s in bold cyan, matching the teacher's
// Formatter.Header styling for the mode line.
func HeaderText(s string) string {
	c := NewPalette()
	return c.Bold + c.Cyan + s + c.Reset
}

// StatusText wraps s in bright yellow, matching the teacher's
// Formatter.Warning styling for transient status messages.
func StatusText(s string) string {
	c := NewPalette()
	return c.BrightYellow + s + c.Reset
}
