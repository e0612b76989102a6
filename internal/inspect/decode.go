package inspect

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownEncoding reports an unrecognized encoding name.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Decode reads all of r, converting from the named encoding to a Go
// string. Recognized names are "utf8", "utf16be" and "utf16le"; the
// empty name means utf8. A byte order mark overrides the declared byte
// order and is stripped. With nfc set, the result is normalized to NFC.
func Decode(r io.Reader, name string, nfc bool) (string, error) {
	var t transform.Transformer
	switch name {
	case "", "utf8":
		t = unicode.UTF8BOM.NewDecoder()
	case "utf16be":
		t = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case "utf16le":
		t = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	if nfc {
		t = transform.Chain(t, norm.NFC)
	}

	data, err := io.ReadAll(transform.NewReader(r, t))
	if err != nil {
		return "", fmt.Errorf("decoding input: %w", err)
	}
	return string(data), nil
}
