package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func feed(t *testing.T, s string) *RingBuffer {
	t.Helper()
	rb := NewRingBuffer()
	_, err := rb.Write([]byte(s))
	require.NoError(t, err)
	return rb
}

func TestPlainAsciiChar(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "a")
	k, ok := d.Decode(rb)
	require.True(t, ok)
	require.Equal(t, KindChar, k.Kind)
	require.Equal(t, byte('a'), k.Byte)
}

func TestControlCharMapping(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "\x01") // Ctrl-A
	k, ok := d.Decode(rb)
	require.True(t, ok)
	require.Equal(t, KindCtrl, k.Kind)
	require.Equal(t, byte('a'), k.Byte)
}

func TestSpecialBytes(t *testing.T) {
	d := NewDecoder()
	cases := []struct {
		in   byte
		kind Kind
	}{
		{0x09, KindTab},
		{0x0A, KindEnter},
		{0x0D, KindEnter},
		{0x7F, KindBackspace},
	}
	for _, c := range cases {
		rb := NewRingBuffer()
		_, _ = rb.Write([]byte{c.in})
		k, ok := d.Decode(rb)
		require.True(t, ok)
		require.Equal(t, c.kind, k.Kind)
	}
}

func TestUTF8Codepoint(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "日")
	k, ok := d.Decode(rb)
	require.True(t, ok)
	require.Equal(t, KindCodepoint, k.Kind)
	require.Equal(t, '日', k.Rune)
}

func TestCSIArrowKeys(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "\x1b[A\x1b[B\x1b[C\x1b[D")
	kinds := []Kind{}
	for i := 0; i < 4; i++ {
		k, ok := d.Decode(rb)
		require.True(t, ok)
		kinds = append(kinds, k.Kind)
	}
	require.Equal(t, []Kind{KindArrowUp, KindArrowDown, KindArrowRight, KindArrowLeft}, kinds)
}

func TestCSIModifiedArrowSetsShift(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "\x1b[1;2C")
	k, ok := d.Decode(rb)
	require.True(t, ok)
	require.Equal(t, KindArrowRight, k.Kind)
	require.True(t, k.Shift)
}

func TestCSITildeKeys(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "\x1b[5~\x1b[6~")
	k1, _ := d.Decode(rb)
	k2, _ := d.Decode(rb)
	require.Equal(t, KindPageUp, k1.Kind)
	require.Equal(t, KindPageDown, k2.Kind)
}

func TestSS3FunctionKeys(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "\x1bOP\x1bOQ")
	k1, _ := d.Decode(rb)
	k2, _ := d.Decode(rb)
	require.Equal(t, KindF1, k1.Kind)
	require.Equal(t, KindF2, k2.Kind)
}

func TestAltPrintable(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "\x1bf")
	k, ok := d.Decode(rb)
	require.True(t, ok)
	require.Equal(t, KindAlt, k.Kind)
	require.Equal(t, byte('f'), k.Byte)
}

func TestCtrlAltCombo(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "\x1b\x13") // ESC + Ctrl-S => C-M-s
	k, ok := d.Decode(rb)
	require.True(t, ok)
	require.Equal(t, KindCtrlAlt, k.Kind)
	require.Equal(t, byte('s'), k.Byte)
}

func TestLoneEscapeTimesOut(t *testing.T) {
	d := &Decoder{EscapeTimeout: 5 * time.Millisecond}
	rb := feed(t, "\x1b")
	start := time.Now()
	k, ok := d.Decode(rb)
	require.True(t, ok)
	require.Equal(t, KindEscape, k.Kind)
	require.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestBracketedPasteYieldsCodepointRun(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "\x1b[200~hi\x1b[201~")
	var keys []Key
	for {
		k, ok := d.Decode(rb)
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	require.Len(t, keys, 2)
	require.Equal(t, KindCodepoint, keys[0].Kind)
	require.True(t, keys[0].Paste)
	require.Equal(t, 'h', keys[0].Rune)
	require.Equal(t, 'i', keys[1].Rune)
}

func TestMalformedUTF8SkipsOneByte(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "\xff")
	_, _ = rb.Write([]byte("a"))
	k, ok := d.Decode(rb)
	require.True(t, ok)
	require.Equal(t, KindNone, k.Kind)
	k2, ok := d.Decode(rb)
	require.True(t, ok)
	require.Equal(t, KindChar, k2.Kind)
	require.Equal(t, byte('a'), k2.Byte)
}

func TestCancelDropsPending(t *testing.T) {
	d := NewDecoder()
	rb := feed(t, "\x1b[200~hi\x1b[201~")
	_, _ = d.Decode(rb) // consumes paste start, queues 'h','i'
	d.Cancel()
	_, ok := d.Decode(rb)
	require.False(t, ok)
}
