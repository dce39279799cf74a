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

// Package macroman converts Unicode text to the MacRoman character set.
//
// MacRoman is the single-byte encoding used by the classic Macintosh
// operating system.  Old Macintosh bitmap fonts index their glyphs by
// MacRoman code, so Unicode text must be converted to MacRoman before such
// a font can be used for display.  The conversion is performed by a
// [Table], which maps sequences of one or more Unicode code points to
// single MacRoman codes using greedy longest-prefix matching.  A built-in
// table covering the complete MacRoman character set is available via
// [Builtin] and the package-level functions.
//
// Some details of the built-in table:
//   - Both the composed and the decomposed Unicode forms of accented
//     characters are supported.  For example, "é" encodes as 0x8E whether
//     it is written as U+00E9 or as U+0065 followed by U+0301.
//   - U+00A4 (currency sign) and U+20AC (euro sign) both encode as 0xDB.
//     Which of the two a font displays depends on whether the font
//     predates Mac OS 8.5.
//   - U+03A9 (Greek capital omega) and U+2126 (ohm sign) both encode as
//     0xBD.  The question of which is correct only arises when converting
//     to Unicode; [Decode] follows Apple's current mapping and returns
//     U+03A9.
//   - Apple uses U+F8FF, a code point in the corporate private use area,
//     to represent the Apple logo in text.  The table maps it to 0xF0.
//
// Code points for which no MacRoman-encodable prefix exists are reported
// per-unit as unmapped; the encoder then skips one code point and
// continues.  Inability to encode a character is an expected outcome, not
// an error.
package macroman
