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

import "testing"

func TestDecode(t *testing.T) {
	cases := []struct {
		code byte
		r    rune
	}{
		{0x41, 'A'},
		{0x8D, 'ç'},
		{0x8E, 'é'},
		{0xA5, '•'},
		{0xBD, 'Ω'}, // Greek capital omega since Mac OS 8.5
		{0xDB, '€'}, // euro sign since Mac OS 8.5
		{0xF0, ''}, // Apple logo
		{0xFF, 'ˇ'},
	}
	for _, c := range cases {
		if got := Decode(c.code); got != c.r {
			t.Errorf("Decode(%#x) = U+%04X, want U+%04X", c.code, got, c.r)
		}
	}
}

// TestDecodeRoundTrip verifies that the canonical code point of every
// MacRoman code encodes back to the same code.
func TestDecodeRoundTrip(t *testing.T) {
	for c := 0; c < 256; c++ {
		r := Decode(byte(c))
		e := Builtin().NewEncoder([]rune{r})
		unit, ok := e.Next()
		if !ok || !unit.Ok || unit.Code != byte(c) {
			t.Errorf("code %#x: decode gives U+%04X, which encodes as %+v",
				c, r, unit)
		}
	}
}

func TestDecodeString(t *testing.T) {
	src := []byte("J'peux manger d'la vitre, \x8Da m'fa pas mal.")
	want := "J'peux manger d'la vitre, ça m'fa pas mal."
	if got := DecodeString(src); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
