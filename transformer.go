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
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer returns a [transform.Transformer] which converts UTF-8 text
// to MacRoman.  Code points which cannot be encoded, as well as invalid
// UTF-8 bytes, are represented by the given replacement code in the
// output.
//
// The transformer can be composed with the other functions of the
// golang.org/x/text/transform package, for example with
// [transform.String] or [transform.NewWriter].
func (t *Table) Transformer(replacement byte) transform.Transformer {
	return &transformer{table: t, repl: replacement}
}

type transformer struct {
	transform.NopResetter
	table *Table
	repl  byte
}

// Transform implements the [transform.Transformer] interface.
func (t *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	// A table with no entries has maxLen == 0, but each step still
	// consumes at least one code point.
	maxLen := max(t.table.maxLen, 1)

	rr := make([]rune, 0, maxLen)
	sizes := make([]int, 0, maxLen)

	for nSrc < len(src) {
		// Assemble the lookahead window at the current position.
		rr = rr[:0]
		sizes = sizes[:0]
		pos := nSrc
		incomplete := false
		for len(rr) < maxLen && pos < len(src) {
			r, size := utf8.DecodeRune(src[pos:])
			if r == utf8.RuneError && size == 1 &&
				!atEOF && !utf8.FullRune(src[pos:]) {
				incomplete = true
				break
			}
			rr = append(rr, r)
			sizes = append(sizes, size)
			pos += size
		}

		if len(rr) < maxLen && (incomplete || !atEOF) {
			// More input could complete a code point or extend a match.
			return nDst, nSrc, transform.ErrShortSrc
		}

		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if code, matched, ok := t.table.Lookup(rr); ok {
			dst[nDst] = code
			for _, s := range sizes[:matched] {
				nSrc += s
			}
		} else {
			dst[nDst] = t.repl
			nSrc += sizes[0]
		}
		nDst++
	}
	return nDst, nSrc, nil
}
