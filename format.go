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
	"math"
	"strconv"
	"strings"
)

// maxFractionDigits is the number of digits after the decimal point used
// when formatting real numbers.
const maxFractionDigits = 10

// formatNumber converts x to PDF syntax.  Exponent notation is not allowed
// in PDF files, so the number is always written in plain decimal notation.
func formatNumber(x float64) (string, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", &EncodingError{Value: x}
	}

	s := strconv.FormatFloat(x, 'f', maxFractionDigits, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s, nil
}

// Canonical normalises the white space of a text fragment: leading and
// trailing white space is removed from the text and from every line, and
// lines are joined using single newline characters.
func Canonical(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// ByteLength returns the length of s in bytes, when s is encoded as UTF-8.
// Offsets and stream lengths in PDF files are measured in bytes, so this
// differs from the number of characters whenever s contains non-ASCII text.
func ByteLength(s string) int {
	return len(s)
}

// Format returns the PDF representation of obj.
func Format(obj Object) (string, error) {
	buf := &strings.Builder{}
	var err error
	if obj == nil {
		_, err = buf.WriteString("null")
	} else {
		err = obj.PDF(buf)
	}
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
