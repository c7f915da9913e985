package fileio

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// BinarySniffWindow is how many leading bytes are checked for a NUL
// byte when deciding whether a file is binary.
const BinarySniffWindow = 8 * 1024

// LineEndingSampleLines caps how many lines are inspected to decide
// the dominant line ending.
const LineEndingSampleLines = 100

// ErrBinaryFile is returned when the first BinarySniffWindow bytes
// contain a NUL byte.
var ErrBinaryFile = errors.New("file appears to be binary")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Load reads path, detects its BOM/encoding and line ending, and
// returns UTF-8+LF normalized content plus the metadata needed to
// round-trip the same representation on Save.
func Load(ops FileOps, path string) ([]byte, Metadata, error) {
	info, err := ops.Stat(path)
	if err != nil {
		return nil, Metadata{}, NewError("stat", path, err)
	}
	raw, err := ops.ReadFile(path)
	if err != nil {
		return nil, Metadata{}, NewError("read", path, err)
	}

	sniff := raw
	if len(sniff) > BinarySniffWindow {
		sniff = sniff[:BinarySniffWindow]
	}
	if bytes.IndexByte(sniff, 0) >= 0 {
		return nil, Metadata{}, NewError("read", path, ErrBinaryFile)
	}

	enc, hadBOM, body := detectBOM(raw)
	decoded, err := decodeToUTF8(enc, body)
	if err != nil {
		return nil, Metadata{}, NewError("decode", path, err)
	}

	ending := detectLineEnding(decoded)
	normalized := normalizeLineEndings(decoded)

	meta := Metadata{
		Encoding:   enc,
		LineEnding: ending,
		HadBOM:     hadBOM,
		ModTime:    info.ModTime(),
		Size:       info.Size(),
	}
	return normalized, meta, nil
}

func detectBOM(raw []byte) (enc Encoding, hadBOM bool, body []byte) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return EncodingUTF8, true, raw[len(bomUTF8):]
	case bytes.HasPrefix(raw, bomUTF16LE):
		return EncodingUTF16LE, true, raw[len(bomUTF16LE):]
	case bytes.HasPrefix(raw, bomUTF16BE):
		return EncodingUTF16BE, true, raw[len(bomUTF16BE):]
	default:
		return EncodingUTF8, false, raw
	}
}

func decodeToUTF8(enc Encoding, body []byte) ([]byte, error) {
	switch enc {
	case EncodingUTF16LE:
		return transform.Bytes(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(), body)
	case EncodingUTF16BE:
		return transform.Bytes(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), body)
	default:
		if !utf8.Valid(body) {
			return nil, errors.New("content is not valid UTF-8")
		}
		return body, nil
	}
}

// detectLineEnding samples the first LineEndingSampleLines lines and
// returns CRLF when CRLF-terminated lines outnumber bare-LF ones, LF
// otherwise (ties included). CR is returned only when the content has
// no LF at all but contains a CR.
func detectLineEnding(b []byte) LineEnding {
	var crlf, lf int
	lines := 0
	for i := 0; i < len(b) && lines < LineEndingSampleLines; i++ {
		if b[i] != '\n' {
			continue
		}
		lines++
		if i > 0 && b[i-1] == '\r' {
			crlf++
		} else {
			lf++
		}
	}
	if lines == 0 {
		// no LF found at all: a lone-CR file (classic Mac) or single line.
		if bytes.ContainsRune(b, '\r') {
			return CR
		}
		return LF
	}
	if crlf > lf {
		return CRLF
	}
	return LF
}

func normalizeLineEndings(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	b = bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
	return b
}
