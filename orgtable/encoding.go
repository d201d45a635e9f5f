package orgtable

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// checkEncoding fails when text holds characters the named encoding cannot represent.
// ascii is handled here since the WHATWG index aliases it to windows-1252.
func checkEncoding(name, text string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascii", "us-ascii", "646":
		for i, r := range text {
			if r > unicode.MaxASCII {
				return fmt.Errorf("%w: 'ascii' cannot encode %q at byte %d", ErrEncoding, r, i)
			}
		}
		return nil
	case "utf-8", "utf8":
		if !utf8.ValidString(text) {
			return fmt.Errorf("%w: invalid utf-8 in table", ErrEncoding)
		}
		return nil
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return err
	}
	if _, err := enc.NewEncoder().String(text); err != nil {
		return fmt.Errorf("%w: %s cannot encode table: %w", ErrEncoding, name, err)
	}
	return nil
}

// lookupEncoding resolves IANA names first so latin1 stays ISO-8859-1.
// WHATWG maps it to windows-1252, so htmlindex only serves labels IANA lacks.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrEncoding, name)
	}
	return enc, nil
}

// ValidEncoding reports whether name is an encoding ToOrg understands
func ValidEncoding(name string) bool {
	return checkEncoding(name, "") == nil
}
