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
	"fmt"
	"io"
)

// binaryMarker is the comment following the header line.  Its bytes are
// above 127, which tells transfer programs to treat the file as binary.
const binaryMarker = "%μμμμ\n"

// posWriter keeps track of the number of bytes written so far.  While a
// document is written, doc is set and references are checked against the
// document.
type posWriter struct {
	w   io.Writer
	pos int64
	doc *Document
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

func (w *posWriter) writeHeader(ver Version) error {
	versionString, err := ver.ToString()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%%PDF-%s\n%s", versionString, binaryMarker)
	return err
}

// writeXRefTable writes the cross-reference table for the objects
// 0, 1, ..., size-1, followed by the trailer.  Objects without an entry in
// pos are marked as free.
//
// Free entries all use the fixed form "0000000000 65535 f", rather than
// being chained into a linked list.
func (w *posWriter) writeXRefTable(pos map[int]int64, size int, trailer *Dict) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", size)
	if err != nil {
		return err
	}
	for i := 0; i < size; i++ {
		if p, ok := pos[i]; ok {
			_, err = fmt.Fprintf(w, "%010d 00000 n\r\n", p)
		} else {
			// free object
			_, err = w.Write([]byte("0000000000 65535 f\r\n"))
		}
		if err != nil {
			return err
		}
	}

	_, err = w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(w)
}
