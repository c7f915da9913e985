package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAndBytes(t *testing.T) {
	b := New([]byte("hello"))
	require.Equal(t, 5, b.Len())
	require.Equal(t, []byte("hello"), b.Bytes())
}

func TestInsertAtEndCoalesces(t *testing.T) {
	b := New([]byte("ab"))
	require.NoError(t, b.Insert(2, []byte("c")))
	require.NoError(t, b.Insert(3, []byte("d")))
	require.Equal(t, []byte("abcd"), b.Bytes())
	require.Len(t, b.pieces, 2) // original "ab" + coalesced add "cd"
}

func TestInsertMiddleSplitsPiece(t *testing.T) {
	b := New([]byte("ac"))
	require.NoError(t, b.Insert(1, []byte("b")))
	require.Equal(t, []byte("abc"), b.Bytes())
}

func TestInsertOutOfBounds(t *testing.T) {
	b := New([]byte("ab"))
	err := b.Insert(5, []byte("x"))
	require.ErrorIs(t, err, ErrPositionOutOfBounds)
	require.Equal(t, []byte("ab"), b.Bytes())
}

func TestDeleteMiddle(t *testing.T) {
	b := New([]byte("hello world"))
	require.NoError(t, b.Delete(5, 6))
	require.Equal(t, []byte("hello"), b.Bytes())
}

func TestDeleteClampsPastEnd(t *testing.T) {
	b := New([]byte("hi"))
	require.NoError(t, b.Delete(1, 100))
	require.Equal(t, []byte("h"), b.Bytes())
}

func TestDeleteStartingPastEndIsNoop(t *testing.T) {
	b := New([]byte("hi"))
	require.NoError(t, b.Delete(10, 5))
	require.Equal(t, []byte("hi"), b.Bytes())
}

func TestByteAtAndRange(t *testing.T) {
	b := New([]byte("abcdef"))
	c, err := b.ByteAt(2)
	require.NoError(t, err)
	require.Equal(t, byte('c'), c)

	r, err := b.Range(2, 3)
	require.NoError(t, err)
	require.Equal(t, []byte("cde"), r)
}

func TestLineIndexAfterInsertAndDelete(t *testing.T) {
	b := New([]byte("aaa\nbbb\nccc"))
	require.Equal(t, 3, b.LineCount())

	start, end, err := b.LineRange(1)
	require.NoError(t, err)
	require.Equal(t, []byte("bbb"), b.mustRange(start, end-start))

	require.NoError(t, b.Insert(4, []byte("x\n")))
	require.Equal(t, 4, b.LineCount())

	line, err := b.FindLineByByte(0)
	require.NoError(t, err)
	require.Equal(t, 0, line)

	require.NoError(t, b.Delete(0, 4))
	require.Equal(t, 3, b.LineCount())
}

func (b *Buffer) mustRange(pos, length int) []byte {
	r, err := b.Range(pos, length)
	if err != nil {
		panic(err)
	}
	return r
}

func TestInsertAtDecreasingOffsets(t *testing.T) {
	b := New([]byte("abc\ndef\nghi"))
	require.NoError(t, b.Insert(8, []byte(">")))
	require.NoError(t, b.Insert(4, []byte(">")))
	require.NoError(t, b.Insert(0, []byte(">")))
	require.Equal(t, []byte(">abc\n>def\n>ghi"), b.Bytes())
	require.Equal(t, 14, b.Len())
}

func TestIteratorSeek(t *testing.T) {
	b := New([]byte("abcdef"))
	it := b.IteratorSeek(3)
	c, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, byte('d'), c)
}
