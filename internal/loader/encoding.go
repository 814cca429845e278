package loader

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/wagiedev/munival-go/internal/errors"
)

// Encoding names a supported source text encoding.
type Encoding string

const (
	// EncodingLatin1 is ISO-8859-1, the encoding of the published tables.
	EncodingLatin1 Encoding = "latin1"
	// EncodingUTF8 reads the source as-is.
	EncodingUTF8 Encoding = "utf-8"
)

// ParseEncoding resolves the common spellings of the supported encodings.
// An empty name selects EncodingLatin1.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	default:
		return "", fmt.Errorf("%w: %s", errors.ErrUnknownEncoding, name)
	}
}

// NewReader wraps r so that it yields UTF-8 text.
func NewReader(r io.Reader, enc Encoding) (io.Reader, error) {
	switch enc {
	case EncodingLatin1, "":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	case EncodingUTF8:
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownEncoding, enc)
	}
}
