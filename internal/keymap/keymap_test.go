package keymap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanohiro/ze/internal/input"
)

func TestPrimaryBindings(t *testing.T) {
	km := NewEmacsKeymap()
	d := NewDispatcher(km)

	cases := []struct {
		k   input.Key
		cmd Command
	}{
		{ctrl('a'), CmdLineStart},
		{ctrl('e'), CmdLineEnd},
		{ctrl('f'), CmdForwardChar},
		{ctrl('b'), CmdBackwardChar},
		{ctrl('n'), CmdNextLine},
		{ctrl('p'), CmdPrevLine},
		{alt('f'), CmdForwardWord},
		{alt('b'), CmdBackwardWord},
		{alt('<'), CmdBufferStart},
		{alt('>'), CmdBufferEnd},
		{ctrl('v'), CmdPageDown},
		{alt('v'), CmdPageUp},
		{ctrl('d'), CmdDeleteChar},
		{alt('d'), CmdDeleteWord},
		{ctrl('k'), CmdKillLine},
		{ctrl('@'), CmdSetMark},
		{ctrl('w'), CmdKillRegion},
		{alt('w'), CmdCopyRegion},
		{ctrl('y'), CmdYank},
		{ctrl('u'), CmdUndo},
		{ctrl('/'), CmdRedo},
		{ctrl('g'), CmdCancel},
		{ctrl('s'), CmdISearchFwd},
		{ctrl('r'), CmdISearchBack},
		{ctrlAlt('s'), CmdRegexISearchF},
		{ctrlAlt('r'), CmdRegexISearchB},
		{ctrlAlt('%'), CmdRegexReplace},
		{alt('%'), CmdQueryReplace},
		{alt('x'), CmdExecuteByName},
		{alt('!'), CmdShellCommand},
		{alt('|'), CmdRegionToShell},
		{alt(';'), CmdCommentToggle},
		{alt('^'), CmdJoinLine},
	}

	for _, c := range cases {
		res := d.Handle(c.k)
		require.Equal(t, c.cmd, res.Command, "key %+v", c.k)
		require.False(t, res.Awaiting)
	}
}

func TestCxPrefixBindings(t *testing.T) {
	km := NewEmacsKeymap()
	cases := []struct {
		k   input.Key
		cmd Command
	}{
		{ctrl('s'), CmdSave},
		{ctrl('c'), CmdQuit},
		{ch('b'), CmdSwitchBuffer},
		{ch('2'), CmdSplitHorz},
		{ch('3'), CmdSplitVert},
		{ch('0'), CmdCloseWindow},
		{ch('1'), CmdCloseOthers},
		{ch('o'), CmdOtherWindow},
		{ctrl('f'), CmdOpenFile},
		{ch('('), CmdMacroStart},
		{ch(')'), CmdMacroStop},
		{ch('e'), CmdMacroPlay},
		{ch('h'), CmdMarkWholeBuf},
	}

	for _, c := range cases {
		d := NewDispatcher(km)
		prefix := d.Handle(ctrl('x'))
		require.True(t, prefix.Awaiting)

		res := d.Handle(c.k)
		require.Equal(t, c.cmd, res.Command, "C-x %+v", c.k)
	}
}

func TestCxRNestedPrefix(t *testing.T) {
	km := NewEmacsKeymap()

	d := NewDispatcher(km)
	first := d.Handle(ctrl('x'))
	require.True(t, first.Awaiting)
	second := d.Handle(ch('r'))
	require.True(t, second.Awaiting)
	third := d.Handle(ch('k'))
	require.Equal(t, CmdRectangleKill, third.Command)

	d2 := NewDispatcher(km)
	d2.Handle(ctrl('x'))
	d2.Handle(ch('r'))
	res := d2.Handle(ch('y'))
	require.Equal(t, CmdRectangleYank, res.Command)
}

func TestUnboundCharInsertsCodepoint(t *testing.T) {
	km := NewEmacsKeymap()
	d := NewDispatcher(km)

	res := d.Handle(ch('q'))
	require.Equal(t, Command(""), res.Command)
	require.True(t, res.InsertChar)
	require.Equal(t, 'q', res.Insert)

	res2 := d.Handle(input.Key{Kind: input.KindCodepoint, Rune: '日'})
	require.True(t, res2.InsertChar)
	require.Equal(t, '日', res2.Insert)
}

func TestUnboundSpecialKeyIgnored(t *testing.T) {
	km := NewEmacsKeymap()
	d := NewDispatcher(km)

	res := d.Handle(input.Key{Kind: input.KindF3})
	require.Equal(t, Result{}, res)
}

func TestUnboundKeyMidPrefixIsIgnoredNotInserted(t *testing.T) {
	km := NewEmacsKeymap()
	d := NewDispatcher(km)

	prefix := d.Handle(ctrl('x'))
	require.True(t, prefix.Awaiting)

	res := d.Handle(ch('q'))
	require.Equal(t, Result{}, res)
	require.False(t, res.InsertChar)
}

func TestCancelDropsInFlightPrefix(t *testing.T) {
	km := NewEmacsKeymap()
	d := NewDispatcher(km)

	d.Handle(ctrl('x'))
	d.Cancel()

	res := d.Handle(ch('b'))
	require.Equal(t, Command(""), res.Command)
	require.True(t, res.InsertChar)
	require.Equal(t, 'b', res.Insert)
}
