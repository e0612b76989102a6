package inspect

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		encoding string
		nfc      bool
		want     string
	}{
		{
			name:     "utf8 plain",
			input:    []byte("hi"),
			encoding: "utf8",
			want:     "hi",
		},
		{
			name:  "empty name means utf8",
			input: []byte("hi"),
			want:  "hi",
		},
		{
			name:     "utf8 bom stripped",
			input:    []byte{0xef, 0xbb, 0xbf, 'h', 'i'},
			encoding: "utf8",
			want:     "hi",
		},
		{
			name:     "utf16be with bom",
			input:    []byte{0xfe, 0xff, 0x00, 'h', 0x00, 'i'},
			encoding: "utf16be",
			want:     "hi",
		},
		{
			name:     "utf16le without bom",
			input:    []byte{'h', 0x00, 'i', 0x00},
			encoding: "utf16le",
			want:     "hi",
		},
		{
			name:     "bom overrides declared order",
			input:    []byte{0xff, 0xfe, 'h', 0x00},
			encoding: "utf16be",
			want:     "h",
		},
		{
			name:     "utf16be surrogate pair",
			input:    []byte{0xd8, 0x3d, 0xde, 0x00},
			encoding: "utf16be",
			want:     "\U0001F600",
		},
		{
			name:     "unpaired surrogate replaced",
			input:    []byte{0xd8, 0x00, 0x00, 'a'},
			encoding: "utf16be",
			want:     "�a",
		},
		{
			name:     "nfc combines",
			input:    []byte("é"),
			encoding: "utf8",
			nfc:      true,
			want:     "é",
		},
		{
			name:     "nfc off keeps decomposed",
			input:    []byte("é"),
			encoding: "utf8",
			want:     "é",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(bytes.NewReader(tt.input), tt.encoding, tt.nfc)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeUnknownEncoding(t *testing.T) {
	_, err := Decode(strings.NewReader("hi"), "latin1", false)
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("error = %v, want ErrUnknownEncoding", err)
	}
}
