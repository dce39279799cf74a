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

import "unicode/utf8"

// Decode returns the Unicode code point for the MacRoman code c.
//
// All 256 codes are defined.  Decode follows Apple's current mapping:
// 0xDB decodes as U+20AC (euro sign, currency sign before Mac OS 8.5) and
// 0xBD decodes as U+03A9 (Greek capital omega, U+2126 ohm sign before
// Mac OS 8.5).
func Decode(c byte) rune {
	return macRomanRunes[c]
}

// AppendDecode appends the UTF-8 encoding of the MacRoman string src
// to dst and returns the extended buffer.
func AppendDecode(dst, src []byte) []byte {
	for _, c := range src {
		dst = utf8.AppendRune(dst, macRomanRunes[c])
	}
	return dst
}

// DecodeString converts the MacRoman string src to Unicode.
func DecodeString(src []byte) string {
	return string(AppendDecode(make([]byte, 0, len(src)), src))
}
