// Package keymap implements the keymap and dispatcher: static key
// tables mapped to named commands, with an explicit state machine for
// multi-key prefixes (C-x, C-x r) rather than dynamic dispatch.
package keymap

// Command names a bound action. Dispatch never branches on Command
// with a type switch; callers look the value up in their own
// map[Command]func() handler table.
type Command string

const (
	CmdLineStart     Command = "line-start"
	CmdLineEnd       Command = "line-end"
	CmdForwardChar   Command = "forward-char"
	CmdBackwardChar  Command = "backward-char"
	CmdNextLine      Command = "next-line"
	CmdPrevLine      Command = "prev-line"
	CmdForwardWord   Command = "forward-word"
	CmdBackwardWord  Command = "backward-word"
	CmdBufferStart   Command = "buffer-start"
	CmdBufferEnd     Command = "buffer-end"
	CmdPageDown      Command = "page-down"
	CmdPageUp        Command = "page-up"
	CmdDeleteChar    Command = "delete-char"
	CmdDeleteWord    Command = "delete-word"
	CmdKillLine      Command = "kill-line"
	CmdSetMark       Command = "set-mark"
	CmdKillRegion    Command = "kill-region"
	CmdCopyRegion    Command = "copy-region"
	CmdYank          Command = "yank"
	CmdUndo          Command = "undo"
	CmdRedo          Command = "redo"
	CmdCancel        Command = "cancel"
	CmdISearchFwd    Command = "isearch-forward"
	CmdISearchBack   Command = "isearch-backward"
	CmdRegexISearchF Command = "regex-isearch-forward"
	CmdRegexISearchB Command = "regex-isearch-backward"
	CmdRegexReplace  Command = "regex-query-replace"
	CmdQueryReplace  Command = "query-replace"
	CmdExecuteByName Command = "execute-command"
	CmdShellCommand  Command = "shell-command"
	CmdRegionToShell Command = "region-to-shell"
	CmdCommentToggle Command = "comment-toggle"
	CmdJoinLine      Command = "join-line"

	CmdSave           Command = "save"
	CmdQuit           Command = "quit"
	CmdSwitchBuffer   Command = "switch-buffer"
	CmdSplitHorz      Command = "split-window-below"
	CmdSplitVert      Command = "split-window-right"
	CmdCloseOthers    Command = "delete-other-windows"
	CmdCloseWindow    Command = "delete-window"
	CmdOtherWindow    Command = "other-window"
	CmdOpenFile       Command = "open-file"
	CmdMacroStart     Command = "macro-start"
	CmdMacroStop      Command = "macro-stop"
	CmdMacroPlay      Command = "macro-play"
	CmdRectangleKill  Command = "rectangle-kill"
	CmdRectangleYank  Command = "rectangle-yank"
	CmdMarkWholeBuf   Command = "mark-whole-buffer"

	// cmdPrefixCX and cmdPrefixCXR are virtual commands: resolving to
	// one of these means "enter this sub-table and wait for one more key".
	cmdPrefixCX  Command = "\x00prefix-c-x"
	cmdPrefixCXR Command = "\x00prefix-c-x-r"
)
