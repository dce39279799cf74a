// seehuhn.de/go/macroman - convert Unicode text to MacRoman
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

//go:build ignore
// +build ignore

// This program regenerates the file "entries.go".  The single-code-point
// facts come from the Macintosh table in golang.org/x/text/encoding/charmap,
// the decomposed spellings are derived via Unicode normalisation, and the
// dual mappings are pinned in the extras table below.

package main

import (
	"fmt"
	"log"
	"os"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

func main() {
	err := run("entries.go")
	if err != nil {
		log.Fatal(err)
	}
}

// extras lists the sequences which cannot be derived from the charmap
// table.  The charmap data contains one spelling for each of the
// dual-mapped codes; whichever spelling it lacks is supplied here.
var extras = map[string]byte{
	"¤": 0xDB, // currency sign (fonts before Mac OS 8.5)
	"€": 0xDB, // euro sign
	"Ω": 0xBD, // Greek capital omega
	"Ω": 0xBD, // ohm sign
	"": 0xF0, // Apple logo
}

// canonical pins the decode direction for 0xDB, which changed meaning in
// Mac OS 8.5; Apple's current table has the euro sign.
var canonical = map[byte]rune{
	0xDB: '€',
}

func run(fname string) error {
	var runes [256]rune
	seqs := make(map[string]byte)
	for c := 0; c < 256; c++ {
		r := charmap.Macintosh.DecodeByte(byte(c))
		if q, ok := canonical[byte(c)]; ok {
			r = q
		}
		runes[c] = r
		seqs[string(r)] = byte(c)
	}
	for c := 0; c < 256; c++ {
		s := string(runes[c])
		d := norm.NFD.String(s)
		if d == s {
			continue
		}
		if prev, ok := seqs[d]; ok && prev != byte(c) {
			return fmt.Errorf("conflicting data for %q: 0x%02X vs 0x%02X",
				d, prev, c)
		}
		seqs[d] = byte(c)
	}
	for s, c := range extras {
		if prev, ok := seqs[s]; ok {
			if prev != c {
				return fmt.Errorf("conflicting data for %q: 0x%02X vs 0x%02X",
					s, prev, c)
			}
			continue
		}
		seqs[s] = c
	}

	w, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer w.Close()

	_, err = w.WriteString(header)
	if err != nil {
		return err
	}

	keys := maps.Keys(seqs)
	slices.Sort(keys)
	for _, s := range keys {
		lit := fmt.Sprintf("{%s, 0x%02X},", quote(s), seqs[s])
		if r := []rune(s)[0]; unicode.IsGraphic(r) && !unicode.IsSpace(r) && !unicode.Is(unicode.Co, r) {
			fmt.Fprintf(w, "\t%-28s// %s\n", lit, s)
		} else {
			fmt.Fprintf(w, "\t%s\n", lit)
		}
	}
	fmt.Fprintln(w, "}")

	_, err = w.WriteString(decodeComment)
	if err != nil {
		return err
	}
	for c := 0; c < 256; c++ {
		lit := fmt.Sprintf("0x%04X,", runes[c])
		if r := runes[c]; unicode.IsGraphic(r) && !unicode.IsSpace(r) && !unicode.Is(unicode.Co, r) {
			fmt.Fprintf(w, "\t%-12s// 0x%02X %s\n", lit, c, string(r))
		} else {
			fmt.Fprintf(w, "\t%-12s// 0x%02X\n", lit, c)
		}
	}
	fmt.Fprintln(w, "}")

	return nil
}

// quote writes a string literal with one \uXXXX escape per code point.
func quote(s string) string {
	out := `"`
	for _, r := range s {
		out += fmt.Sprintf(`\u%04X`, r)
	}
	return out + `"`
}

var header = `// seehuhn.de/go/macroman - convert Unicode text to MacRoman
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Code generated by generate.go - DO NOT EDIT.

package macroman

// macRomanEntries lists the complete MacRoman character set, one entry per
// encodable Unicode code point sequence.  Accented characters appear twice,
// once in composed and once in decomposed form; 0xDB and 0xBD each have two
// single-code-point spellings.  The entries are sorted by Text.
var macRomanEntries = []Entry{
`

var decodeComment = `
// macRomanRunes gives the canonical Unicode code point for each MacRoman
// code, following Apple's current mapping.
var macRomanRunes = [256]rune{
`
