// seehuhn.de/go/minipdf - a minimal PDF document generator
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

package minipdf

import (
	"golang.org/x/text/encoding/unicode"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// TextString creates a String object using the "text string" encoding.
// Printable ASCII text, together with tabs and line breaks, is stored
// unchanged.  All other text is stored as UTF-16BE with a byte order mark.
func TextString(s string) String {
	if isPlainText(s) {
		return String(s)
	}
	enc, err := utf16BE.NewEncoder().String(s)
	if err != nil {
		// The encoder replaces invalid UTF-8 by U+FFFD and does not fail.
		panic(err)
	}
	return String(enc)
}

func isPlainText(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c < 0x7f || c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		return false
	}
	return true
}

// AsTextString interprets x as a PDF "text string" and returns the
// corresponding UTF-8 encoded string.
func (x String) AsTextString() string {
	if len(x) >= 2 && x[0] == 0xFE && x[1] == 0xFF {
		dec, err := utf16BE.NewDecoder().String(string(x))
		if err == nil {
			return dec
		}
	}
	return string(x)
}
