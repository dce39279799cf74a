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

package macroman

import (
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// TestCharmap cross-checks the table data against the independent
// Macintosh table in golang.org/x/text.  For the dual-mapped codes either
// spelling round-trips, so the test does not depend on which variant the
// charmap data uses.
func TestCharmap(t *testing.T) {
	for c := 0; c < 256; c++ {
		r := charmap.Macintosh.DecodeByte(byte(c))
		e := Builtin().NewEncoder([]rune{r})
		unit, ok := e.Next()
		if !ok || !unit.Ok || unit.Code != byte(c) {
			t.Errorf("code %#x: charmap gives U+%04X, which encodes as %+v",
				c, r, unit)
		}
	}
}

func TestEntriesSorted(t *testing.T) {
	sorted := slices.IsSortedFunc(macRomanEntries, func(a, b Entry) int {
		return strings.Compare(a.Text, b.Text)
	})
	if !sorted {
		t.Error("entries are not sorted by Text")
	}
}

func TestEntriesComplete(t *testing.T) {
	covered := make(map[byte][]string)
	for _, e := range macRomanEntries {
		if utf8.RuneCountInString(e.Text) == 1 {
			covered[e.Code] = append(covered[e.Code], e.Text)
		}
	}
	for c := 0; c < 256; c++ {
		if len(covered[byte(c)]) == 0 {
			t.Errorf("no single-code-point spelling for code %#x", c)
		}
	}

	// only 0xDB and 0xBD have two single-code-point spellings
	dual := make(map[byte]bool)
	for _, c := range maps.Keys(covered) {
		if len(covered[c]) > 1 {
			dual[c] = true
		}
	}
	if len(dual) != 2 || !dual[0xDB] || !dual[0xBD] {
		t.Errorf("unexpected dual-mapped codes: %v", maps.Keys(dual))
	}
}

// TestDecomposedForms verifies that every multi-code-point entry is the
// canonical decomposition of a composed entry with the same code.
func TestDecomposedForms(t *testing.T) {
	codes := make(map[string]byte)
	for _, e := range macRomanEntries {
		codes[e.Text] = e.Code
	}
	for _, e := range macRomanEntries {
		if utf8.RuneCountInString(e.Text) < 2 {
			continue
		}
		composed := norm.NFC.String(e.Text)
		if utf8.RuneCountInString(composed) != 1 {
			t.Errorf("%q does not compose to a single code point", e.Text)
			continue
		}
		code, ok := codes[composed]
		if !ok {
			t.Errorf("composed form of %q missing from the table", e.Text)
		} else if code != e.Code {
			t.Errorf("%q has code %#x, but %q has code %#x",
				e.Text, e.Code, composed, code)
		}
	}
}
