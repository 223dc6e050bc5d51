package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DefaultCharset names the codepage used for character columns.
const DefaultCharset = "windows-1252"

var charsets = map[string]*charmap.Charmap{
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"koi8-r":       charmap.KOI8R,
}

// Charset looks up a single-byte codepage by name (case-insensitive).
func Charset(name string) (*charmap.Charmap, error) {
	cm, ok := charsets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown charset %q (supported: %s)", name, strings.Join(CharsetNames(), ", "))
	}
	return cm, nil
}

// CharsetNames lists the supported codepage names in sorted order.
func CharsetNames() []string {
	names := make([]string, 0, len(charsets))
	for name := range charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// glyph decodes b through cm, substituting '.' for anything not printable.
func glyph(cm *charmap.Charmap, b byte) rune {
	r := cm.DecodeByte(b)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return '.'
	}
	return r
}
