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
	"fmt"

	"golang.org/x/text/transform"
)

func ExampleEncode() {
	for unit := range Encode([]rune("café")) {
		if unit.Ok {
			fmt.Printf("0x%02X\n", unit.Code)
		}
	}
	// Output:
	// 0x63
	// 0x61
	// 0x66
	// 0x8E
}

func ExampleTable_Transformer() {
	s, _, err := transform.String(Builtin().Transformer('?'), "Ω ≈ 3.14")
	if err != nil {
		panic(err)
	}
	fmt.Printf("% X\n", s)
	// Output:
	// BD 20 C5 20 33 2E 31 34
}
