package view

// InsertAt inserts content at pos, moves the cursor past it, and marks the
// affected region dirty. Line count changes trigger a full redraw since
// every line below the edit shifts; otherwise only the edited line is
// marked dirty.
func (v *View) InsertAt(pos int, content []byte) error {
	lineBefore := v.Buf.LineCount()
	if err := v.Buf.Insert(pos, content); err != nil {
		return err
	}
	v.CursorPos = pos + len(content)
	if v.Buf.LineCount() != lineBefore {
		v.markFullRedraw()
	} else {
		line, _ := v.Buf.FindLineByByte(pos)
		v.markLineDirty(line)
	}
	v.syncGoalColumn()
	return nil
}

// Insert implements undo.Mutator by delegating to InsertAt.
func (v *View) Insert(pos int, content []byte) error { return v.InsertAt(pos, content) }

// Delete implements undo.Mutator by delegating to DeleteAt.
func (v *View) Delete(pos, length int) error { return v.DeleteAt(pos, length) }

// DeleteAt deletes length bytes at pos and marks the affected region dirty,
// with the same full-redraw-on-line-count-change rule as InsertAt.
func (v *View) DeleteAt(pos, length int) error {
	lineBefore := v.Buf.LineCount()
	if err := v.Buf.Delete(pos, length); err != nil {
		return err
	}
	v.CursorPos = pos
	if v.Buf.LineCount() != lineBefore {
		v.markFullRedraw()
	} else {
		line, _ := v.Buf.FindLineByByte(pos)
		v.markLineDirty(line)
	}
	v.syncGoalColumn()
	return nil
}
