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

//go:generate go run ./generate.go

import "fmt"

// An Entry assigns a MacRoman code to a sequence of Unicode code points.
// Text holds the UTF-8 encoding of the sequence.
type Entry struct {
	Text string
	Code byte
}

// A Table maps sequences of Unicode code points to MacRoman codes.
//
// Tables are immutable once constructed and can be shared between
// goroutines without synchronisation.
type Table struct {
	root   *node
	maxLen int
}

// The lookup structure is a tree keyed by code point.  Walking the tree
// along the input and remembering the last entry seen gives the longest
// matching prefix in a single pass.
type node struct {
	children map[rune]*node
	code     byte
	isEntry  bool
}

// NewTable builds a lookup table from the given entries.
//
// Different sequences may share one code (for example the composed and the
// decomposed form of an accented character), but each sequence can only
// appear once: a duplicate sequence would make longest-prefix matching
// ambiguous, so NewTable returns an error in this case.  Entries with an
// empty Text field are also rejected.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{root: &node{}}
	for _, e := range entries {
		cur := t.root
		numRunes := 0
		for _, r := range e.Text {
			next := cur.children[r]
			if next == nil {
				if cur.children == nil {
					cur.children = make(map[rune]*node)
				}
				next = &node{}
				cur.children[r] = next
			}
			cur = next
			numRunes++
		}
		if numRunes == 0 {
			return nil, fmt.Errorf("macroman: empty code point sequence for code 0x%02X", e.Code)
		}
		if cur.isEntry {
			return nil, fmt.Errorf("macroman: duplicate entry for %q", e.Text)
		}
		cur.code = e.Code
		cur.isEntry = true
		if numRunes > t.maxLen {
			t.maxLen = numRunes
		}
	}
	return t, nil
}

// Lookup finds the longest entry which is a prefix of rr.  It returns the
// MacRoman code of that entry and the number of code points matched.  If no
// entry is a prefix of rr, ok is false.
//
// Only the first few code points of rr are inspected, independent of the
// length of rr.
func (t *Table) Lookup(rr []rune) (code byte, matched int, ok bool) {
	cur := t.root
	for i, r := range rr {
		cur = cur.children[r]
		if cur == nil {
			break
		}
		if cur.isEntry {
			code = cur.code
			matched = i + 1
			ok = true
		}
	}
	return code, matched, ok
}

var builtin *Table

func init() {
	t, err := NewTable(macRomanEntries)
	if err != nil {
		panic(err)
	}
	builtin = t
}

// Builtin returns the table for the complete MacRoman character set.
func Builtin() *Table {
	return builtin
}
