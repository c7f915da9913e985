package fileio

import (
	"bytes"
	"os"
	"strings"
)

// MaxHistoryLines caps how many lines the history file holds; Save
// keeps only the most recent MaxHistoryLines entries.
const MaxHistoryLines = 500

// LoadHistory reads a line-oriented UTF-8 history file, one entry per
// line. A missing file is not an error: it yields an empty history.
func LoadHistory(ops FileOps, path string) ([]string, error) {
	raw, err := ops.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, NewError("read", path, err)
	}
	text := strings.TrimRight(string(raw), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// SaveHistory writes entries to path, one per line, truncated to the
// most recent MaxHistoryLines, via the same atomic write path Save uses.
func SaveHistory(ops FileOps, path string, entries []string) error {
	if len(entries) > MaxHistoryLines {
		entries = entries[len(entries)-MaxHistoryLines:]
	}
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(e)
		buf.WriteByte('\n')
	}
	return Save(ops, path, buf.Bytes(), Metadata{Encoding: EncodingUTF8, LineEnding: LF})
}
