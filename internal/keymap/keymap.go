package keymap

import "github.com/sanohiro/ze/internal/input"

func ctrl(b byte) input.Key     { return input.Key{Kind: input.KindCtrl, Byte: b} }
func alt(b byte) input.Key      { return input.Key{Kind: input.KindAlt, Byte: b} }
func ctrlAlt(b byte) input.Key  { return input.Key{Kind: input.KindCtrlAlt, Byte: b} }
func ch(b byte) input.Key       { return input.Key{Kind: input.KindChar, Byte: b} }

// Keymap is a static set of lookup tables: the primary table plus one
// sub-table per multi-key prefix, keyed by the virtual prefix Command.
type Keymap struct {
	primary  map[input.Key]Command
	prefixes map[Command]map[input.Key]Command
}

// NewEmacsKeymap returns the default Emacs-style binding set from
// SPEC_FULL §4.K.
func NewEmacsKeymap() *Keymap {
	km := &Keymap{
		primary: map[input.Key]Command{
			ctrl('a'): CmdLineStart,
			ctrl('e'): CmdLineEnd,
			ctrl('f'): CmdForwardChar,
			ctrl('b'): CmdBackwardChar,
			ctrl('n'): CmdNextLine,
			ctrl('p'): CmdPrevLine,
			alt('f'):  CmdForwardWord,
			alt('b'):  CmdBackwardWord,
			alt('<'):  CmdBufferStart,
			alt('>'):  CmdBufferEnd,
			ctrl('v'): CmdPageDown,
			alt('v'):  CmdPageUp,
			ctrl('d'): CmdDeleteChar,
			alt('d'):  CmdDeleteWord,
			ctrl('k'): CmdKillLine,
			ctrl('@'): CmdSetMark, // C-Space and C-@ both decode to the NUL byte
			ctrl('w'): CmdKillRegion,
			alt('w'):  CmdCopyRegion,
			ctrl('y'): CmdYank,
			ctrl('u'): CmdUndo,
			ctrl('/'): CmdRedo,
			ctrl('g'): CmdCancel,
			ctrl('s'): CmdISearchFwd,
			ctrl('r'): CmdISearchBack,

			ctrlAlt('s'): CmdRegexISearchF,
			ctrlAlt('r'): CmdRegexISearchB,
			ctrlAlt('%'): CmdRegexReplace,

			alt('%'): CmdQueryReplace,
			alt('x'): CmdExecuteByName,
			alt('!'): CmdShellCommand,
			alt('|'): CmdRegionToShell,
			alt(';'): CmdCommentToggle,
			alt('^'): CmdJoinLine,

			ctrl('x'): cmdPrefixCX,
		},
		prefixes: map[Command]map[input.Key]Command{},
	}

	km.prefixes[cmdPrefixCX] = map[input.Key]Command{
		ctrl('s'): CmdSave,
		ctrl('c'): CmdQuit,
		ch('b'):   CmdSwitchBuffer,
		ch('2'):   CmdSplitHorz,
		ch('3'):   CmdSplitVert,
		ch('0'):   CmdCloseWindow,
		ch('1'):   CmdCloseOthers,
		ch('o'):   CmdOtherWindow,
		ctrl('f'): CmdOpenFile,
		ch('('):   CmdMacroStart,
		ch(')'):   CmdMacroStop,
		ch('e'):   CmdMacroPlay,
		ch('h'):   CmdMarkWholeBuf,
		ch('r'):   cmdPrefixCXR,
	}

	km.prefixes[cmdPrefixCXR] = map[input.Key]Command{
		ch('k'): CmdRectangleKill,
		ch('y'): CmdRectangleYank,
	}

	return km
}
