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

func TestDuplicateEntry(t *testing.T) {
	entries := []Entry{
		{"a", 0x01},
		{"b", 0x02},
		{"a", 0x03},
	}
	_, err := NewTable(entries)
	if err == nil {
		t.Error("duplicate sequence not detected")
	}
}

func TestEmptyEntry(t *testing.T) {
	_, err := NewTable([]Entry{{"", 0x01}})
	if err == nil {
		t.Error("empty sequence not detected")
	}
}

// TestSharedCode verifies that two different sequences can map to the same
// code.  The built-in table relies on this for the composed and decomposed
// forms of accented characters.
func TestSharedCode(t *testing.T) {
	table, err := NewTable([]Entry{
		{"é", 0x8E},
		{"é", 0x8E},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, in := range []string{"é", "é"} {
		code, _, ok := table.Lookup([]rune(in))
		if !ok || code != 0x8E {
			t.Errorf("Lookup(%q) = %#x, %t, want 0x8e, true", in, code, ok)
		}
	}
}

func TestLookup(t *testing.T) {
	table, err := NewTable([]Entry{
		{"x", 0x01},
		{"xy", 0x02},
		{"abc", 0x03},
	})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		in      string
		code    byte
		matched int
		ok      bool
	}{
		{"x", 0x01, 1, true},
		{"xz", 0x01, 1, true},
		{"xy", 0x02, 2, true},    // maximal munch: prefer "xy" over "x"
		{"xyz", 0x02, 2, true},
		{"abc", 0x03, 3, true},
		{"ab", 0, 0, false},      // prefix of an entry, but not an entry
		{"q", 0, 0, false},
		{"qx", 0, 0, false},      // matches must start at the beginning
	}
	for _, c := range cases {
		code, matched, ok := table.Lookup([]rune(c.in))
		if code != c.code || matched != c.matched || ok != c.ok {
			t.Errorf("Lookup(%q) = %#x, %d, %t, want %#x, %d, %t",
				c.in, code, matched, ok, c.code, c.matched, c.ok)
		}
	}
}

func TestBuiltinShared(t *testing.T) {
	if Builtin() != Builtin() {
		t.Error("Builtin() is not a single shared table")
	}
}
