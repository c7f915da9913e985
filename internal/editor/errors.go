package editor

import "errors"

// ErrReadOnly is returned by Insert and DeleteRange when the editor's
// document is marked read-only. App-level command handlers check
// Doc.ReadOnly up front so they can report it without round-tripping
// through an error, but Insert/DeleteRange enforce it themselves too,
// since they're the two primitives every mutation ultimately funnels
// through (KillRegion, KillLine, Yank, DeleteForward included).
var ErrReadOnly = errors.New("document is read-only")
