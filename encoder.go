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

import "iter"

// A Unit is the result of one encoding step.
//
// If Ok is true, the step matched a table entry: Code holds the MacRoman
// code and Len the number of input code points consumed by the match.  If
// Ok is false, no entry matched at the current position: Rune holds the
// code point which could not be encoded, and Len is 1.
//
// Pos is the code point offset of the first consumed code point, so that
// callers can relate each Unit back to the input.
type Unit struct {
	Pos  int
	Len  int
	Code byte
	Rune rune
	Ok   bool
}

// An Encoder converts one sequence of Unicode code points to MacRoman,
// one Unit at a time.
//
// Each Encoder walks its input exactly once and cannot be rewound; to
// encode the same input again, create a new Encoder.  Encoders must not be
// shared between goroutines, but any number of Encoders can use the same
// Table concurrently.
type Encoder struct {
	table *Table
	rem   []rune
	pos   int
}

// NewEncoder returns an Encoder which converts rr using the table t.
// The Encoder reads from rr but does not modify it.
func (t *Table) NewEncoder(rr []rune) *Encoder {
	return &Encoder{table: t, rem: rr}
}

// Next performs one encoding step.  Once the input is exhausted,
// Next returns ok == false.
//
// Every step consumes at least one code point, so the input is exhausted
// after at most len(rr) calls.
func (e *Encoder) Next() (unit Unit, ok bool) {
	if len(e.rem) == 0 {
		return Unit{}, false
	}
	unit.Pos = e.pos
	if code, n, found := e.table.Lookup(e.rem); found {
		unit.Len = n
		unit.Code = code
		unit.Ok = true
	} else {
		unit.Len = 1
		unit.Rune = e.rem[0]
	}
	e.rem = e.rem[unit.Len:]
	e.pos += unit.Len
	return unit, true
}

// Encode returns an iterator over the Units of the MacRoman encoding
// of rr.  The Units are computed lazily, one per encoding step.
func (t *Table) Encode(rr []rune) iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		e := t.NewEncoder(rr)
		for {
			unit, ok := e.Next()
			if !ok {
				return
			}
			if !yield(unit) {
				return
			}
		}
	}
}

// Encode returns an iterator over the Units of the MacRoman encoding
// of rr, using the built-in table.
func Encode(rr []rune) iter.Seq[Unit] {
	return builtin.Encode(rr)
}

// AppendEncode appends the MacRoman encoding of rr to dst, using the
// built-in table.  Code points which cannot be encoded are represented by
// the given replacement code.
func AppendEncode(dst []byte, rr []rune, replacement byte) []byte {
	for unit := range builtin.Encode(rr) {
		if unit.Ok {
			dst = append(dst, unit.Code)
		} else {
			dst = append(dst, replacement)
		}
	}
	return dst
}
