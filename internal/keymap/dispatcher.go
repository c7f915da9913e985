package keymap

import "github.com/sanohiro/ze/internal/input"

// Result is the outcome of feeding one Key to the dispatcher.
type Result struct {
	Command    Command
	Insert     rune
	InsertChar bool
	Awaiting   bool // a prefix key was seen; the dispatcher wants one more key
}

// Dispatcher resolves Key events against a Keymap, tracking in-flight
// multi-key prefixes as explicit state rather than recursion.
type Dispatcher struct {
	km       *Keymap
	awaiting map[input.Key]Command // non-nil while mid prefix sequence
}

// NewDispatcher returns a dispatcher over km.
func NewDispatcher(km *Keymap) *Dispatcher {
	return &Dispatcher{km: km}
}

// Handle resolves one key: a bound command, a sub-prefix wait, an
// unbound printable/codepoint key (inserted as-is), or nothing
// (unbound special keys, and any unbound key mid prefix, are ignored).
func (d *Dispatcher) Handle(k input.Key) Result {
	if d.awaiting != nil {
		table := d.awaiting
		d.awaiting = nil
		cmd, ok := table[k]
		if !ok {
			return Result{}
		}
		return d.resolve(cmd)
	}

	cmd, ok := d.km.primary[k]
	if !ok {
		return d.insertFallback(k)
	}
	return d.resolve(cmd)
}

// resolve either enters a sub-prefix table or returns the command itself.
func (d *Dispatcher) resolve(cmd Command) Result {
	if sub, isPrefix := d.km.prefixes[cmd]; isPrefix {
		d.awaiting = sub
		return Result{Awaiting: true}
	}
	return Result{Command: cmd}
}

func (d *Dispatcher) insertFallback(k input.Key) Result {
	switch k.Kind {
	case input.KindChar:
		return Result{Insert: rune(k.Byte), InsertChar: true}
	case input.KindCodepoint:
		return Result{Insert: k.Rune, InsertChar: true}
	default:
		return Result{}
	}
}

// Cancel drops any in-flight prefix sequence (invoked on C-g or input
// cancellation).
func (d *Dispatcher) Cancel() {
	d.awaiting = nil
}
