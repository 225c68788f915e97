package csvparser

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names accepted by the import.csv_encoding setting.
const (
	EncodingLatin1 = "latin1"
	EncodingUTF8   = "utf-8"
	EncodingAuto   = "auto"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseEncoding validates an encoding name, accepting a few common spellings.
func ParseEncoding(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	case "auto":
		return EncodingAuto, nil
	}
	return "", fmt.Errorf("unsupported CSV encoding %q", name)
}

// decode turns the uploaded bytes into text. Brazilian bank exports are usually Latin-1;
// reading them as UTF-8 would mangle every accented character.
func decode(content []byte, encoding string) (string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	switch encoding {
	case EncodingUTF8:
		return string(content), nil
	case EncodingAuto:
		if utf8.Valid(content) {
			return string(content), nil
		}
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("failed to decode Latin-1 content: %w", err)
	}
	return string(decoded), nil
}
