package hdrscan

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// decodeHeaderBytes turns raw header bytes into a UTF-8 string, best
// effort. Windows SDK headers are usually plain ASCII, but the corpus
// does carry the occasional UTF-16 BOM and legacy Windows-1252 byte
// soup (smart quotes in a comment, an author's name in a copyright
// banner), so this mirrors the same "detect BOM, else assume a legacy
// single-byte encoding if it isn't valid UTF-8" policy the teacher's
// hive-value reader uses for registry blobs.
func decodeHeaderBytes(raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), raw)
	case bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), raw)
	case bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}):
		return string(raw[3:]), nil
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	return decodeWith(charmap.Windows1252, raw)
}

func decodeWith(enc encoding.Encoding, raw []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
