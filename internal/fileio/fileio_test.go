package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPlainUTF8NoBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0644))

	content, meta, err := Load(OSFileOps{}, path)
	require.NoError(t, err)
	require.Equal(t, "hello\nworld\n", string(content))
	require.Equal(t, EncodingUTF8, meta.Encoding)
	require.False(t, meta.HadBOM)
	require.Equal(t, LF, meta.LineEnding)
}

func TestLoadDetectsUTF8BOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "b.txt")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi\n")...)
	require.NoError(t, os.WriteFile(path, data, 0644))

	content, meta, err := Load(OSFileOps{}, path)
	require.NoError(t, err)
	require.Equal(t, "hi\n", string(content))
	require.True(t, meta.HadBOM)
	require.Equal(t, EncodingUTF8, meta.Encoding)
}

func TestLoadDetectsCRLFMajority(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\nb\r\nc\r\n"), 0644))

	content, meta, err := Load(OSFileOps{}, path)
	require.NoError(t, err)
	require.Equal(t, CRLF, meta.LineEnding)
	require.Equal(t, "a\nb\nc\n", string(content))
}

func TestLoadRejectsBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bin.dat")
	require.NoError(t, os.WriteFile(path, []byte("abc\x00def"), 0644))

	_, _, err := Load(OSFileOps{}, path)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBinaryFile)
}

func TestLoadUTF16LEWithBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "u16.txt")
	// BOM FF FE then "hi\n" as UTF-16LE code units.
	data := []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0}
	require.NoError(t, os.WriteFile(path, data, 0644))

	content, meta, err := Load(OSFileOps{}, path)
	require.NoError(t, err)
	require.Equal(t, "hi\n", string(content))
	require.Equal(t, EncodingUTF16LE, meta.Encoding)
	require.True(t, meta.HadBOM)
}

func TestSaveRoundTripsCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	meta := Metadata{Encoding: EncodingUTF8, LineEnding: CRLF, HadBOM: true}

	require.NoError(t, Save(OSFileOps{}, path, []byte("a\nb\n"), meta))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...), raw)
}

func TestSaveThenLoadIsIdentity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rt.txt")
	meta := Metadata{Encoding: EncodingUTF16LE, LineEnding: LF, HadBOM: true}

	require.NoError(t, Save(OSFileOps{}, path, []byte("x\ny\n"), meta))

	content, gotMeta, err := Load(OSFileOps{}, path)
	require.NoError(t, err)
	require.Equal(t, "x\ny\n", string(content))
	require.Equal(t, EncodingUTF16LE, gotMeta.Encoding)
	require.True(t, gotMeta.HadBOM)
}

func TestHistoryLoadMissingFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	entries, err := LoadHistory(OSFileOps{}, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestHistorySaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")
	entries := []string{"foo bar", "baz"}

	require.NoError(t, SaveHistory(OSFileOps{}, path, entries))
	got, err := LoadHistory(OSFileOps{}, path)
	require.NoError(t, err)
	require.Equal(t, entries, got)
}

func TestHistorySaveTruncatesToMax(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")
	entries := make([]string, MaxHistoryLines+10)
	for i := range entries {
		entries[i] = string(rune('a' + i%26))
	}

	require.NoError(t, SaveHistory(OSFileOps{}, path, entries))
	got, err := LoadHistory(OSFileOps{}, path)
	require.NoError(t, err)
	require.Len(t, got, MaxHistoryLines)
	require.Equal(t, entries[10:], got)
}
