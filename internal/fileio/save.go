package fileio

import (
	"bytes"
	"path/filepath"
	"runtime"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Save re-applies meta's line endings and BOM to content, then writes
// the result to path via a temp file in the same directory, fsync,
// then rename, mirroring the config manager's atomic write path.
func Save(ops FileOps, path string, content []byte, meta Metadata) error {
	denormalized := applyLineEndings(content, meta.LineEnding)
	encoded, err := encodeFromUTF8(meta.Encoding, denormalized)
	if err != nil {
		return NewError("encode", path, err)
	}
	if meta.HadBOM {
		encoded = append(bomFor(meta.Encoding), encoded...)
	}

	dir := filepath.Dir(path)
	if err := ops.MkdirAll(dir, 0700); err != nil {
		return NewError("mkdir", path, err)
	}

	tmp, err := ops.CreateTemp(dir, ".ze-*.tmp")
	if err != nil {
		return NewError("create-temp", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		_ = ops.Remove(tmpName)
		return NewError("write", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = ops.Remove(tmpName)
		return NewError("fsync", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = ops.Remove(tmpName)
		return NewError("close", path, err)
	}

	if runtime.GOOS == "windows" {
		_ = ops.Remove(path)
	}
	if err := ops.Rename(tmpName, path); err != nil {
		_ = ops.Remove(tmpName)
		return NewError("rename", path, err)
	}
	return nil
}

func applyLineEndings(content []byte, ending LineEnding) []byte {
	switch ending {
	case CRLF:
		return bytes.ReplaceAll(content, []byte("\n"), []byte("\r\n"))
	case CR:
		return bytes.ReplaceAll(content, []byte("\n"), []byte("\r"))
	default:
		return content
	}
}

func encodeFromUTF8(enc Encoding, content []byte) ([]byte, error) {
	switch enc {
	case EncodingUTF16LE:
		return transform.Bytes(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder(), content)
	case EncodingUTF16BE:
		return transform.Bytes(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder(), content)
	default:
		return content, nil
	}
}

func bomFor(enc Encoding) []byte {
	switch enc {
	case EncodingUTF16LE:
		return append([]byte(nil), bomUTF16LE...)
	case EncodingUTF16BE:
		return append([]byte(nil), bomUTF16BE...)
	default:
		return append([]byte(nil), bomUTF8...)
	}
}
