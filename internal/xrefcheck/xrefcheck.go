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

// Package xrefcheck reads the cross-reference table and the trailer of a PDF
// file, and checks that every in-use entry points at the start of the
// corresponding object.
//
// Only the subset of PDF syntax written by minipdf is supported: a single
// classical cross-reference section, no object streams, no encryption and
// no filters.  This is enough to inspect generated files independently of
// the code which wrote them.
package xrefcheck

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Name represents a PDF name, with #XX escapes decoded.
type Name string

// String represents a PDF string, with escape sequences decoded.
type String []byte

// Ref is a reference to an indirect object.
type Ref struct {
	Number     int
	Generation int
}

// Dict represents a PDF dictionary.
type Dict map[Name]any

// Array represents a PDF array.
type Array []any

// Stream represents a PDF stream.
type Stream struct {
	Dict Dict
	Data []byte
}

// Objects are represented as follows: nil for null, bool, int64, float64,
// Name, String, Ref, Array, Dict, and *Stream.

// MalformedFileError indicates that the PDF file could not be parsed.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid PDF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// File is a parsed PDF file.
type File struct {
	// Version is the version string from the file header, e.g. "2.0".
	Version string

	// StartXRef is the byte offset of the cross-reference table.
	StartXRef int64

	// Offsets maps the numbers of in-use objects to their byte offsets.
	Offsets map[int]int64

	// Entries is the number of entries in the cross-reference table,
	// including free entries.
	Entries int

	// Trailer is the trailer dictionary.
	Trailer Dict

	data []byte
}

// Read parses the header, the cross-reference table and the trailer of a
// PDF file.
func Read(data []byte) (*File, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, &MalformedFileError{Err: errors.New("missing header")}
	}
	eol := bytes.IndexAny(data, "\r\n")
	if eol < 0 {
		return nil, &MalformedFileError{Err: errors.New("missing header")}
	}
	f := &File{
		Version: string(data[5:eol]),
		Offsets: make(map[int]int64),
		data:    data,
	}

	idx := bytes.LastIndex(data, []byte("startxref"))
	if idx < 0 {
		return nil, &MalformedFileError{Err: errors.New("startxref not found")}
	}
	s := &scanner{data: data, pos: idx + len("startxref")}
	s.skipWhiteSpace()
	xRefPos, err := s.readInteger()
	if err != nil {
		return nil, err
	}
	if xRefPos <= 0 || xRefPos >= int64(len(data)) {
		return nil, &MalformedFileError{
			Pos: int64(s.pos),
			Err: errors.New("invalid xref position"),
		}
	}
	f.StartXRef = xRefPos

	s = &scanner{data: data, pos: int(xRefPos)}
	err = s.skipString("xref")
	if err != nil {
		return nil, err
	}
	for {
		s.skipWhiteSpace()
		if s.hasPrefix("trailer") {
			break
		}
		start, err := s.readInteger()
		if err != nil {
			return nil, err
		}
		s.skipWhiteSpace()
		count, err := s.readInteger()
		if err != nil {
			return nil, err
		}
		s.skipEOL()
		for i := 0; i < int(count); i++ {
			err = f.readEntry(s, int(start)+i)
			if err != nil {
				return nil, err
			}
		}
		f.Entries += int(count)
	}
	err = s.skipString("trailer")
	if err != nil {
		return nil, err
	}
	obj, err := s.readObject()
	if err != nil {
		return nil, err
	}
	trailer, ok := obj.(Dict)
	if !ok {
		return nil, s.error(fmt.Errorf("trailer is %T, not a dictionary", obj))
	}
	f.Trailer = trailer

	return f, nil
}

// readEntry reads one 20-byte entry of the cross-reference table.
func (f *File) readEntry(s *scanner, num int) error {
	if s.pos+20 > len(s.data) {
		return s.error(errors.New("truncated xref table"))
	}
	entry := s.data[s.pos : s.pos+20]
	eol := string(entry[18:])
	if eol != " \n" && eol != " \r" && eol != "\r\n" {
		return s.error(fmt.Errorf("xref entry %d has wrong length", num))
	}
	offset, err := strconv.ParseInt(string(entry[0:10]), 10, 64)
	if err != nil || entry[10] != ' ' || entry[16] != ' ' {
		return s.error(fmt.Errorf("malformed xref entry %d", num))
	}
	gen, err := strconv.Atoi(string(entry[11:16]))
	if err != nil {
		return s.error(fmt.Errorf("malformed xref entry %d", num))
	}
	switch entry[17] {
	case 'n':
		if gen != 0 {
			return s.error(fmt.Errorf("unexpected generation %d for object %d", gen, num))
		}
		f.Offsets[num] = offset
	case 'f':
		// free entry
	default:
		return s.error(fmt.Errorf("malformed xref entry %d", num))
	}
	s.pos += 20
	return nil
}

// Check verifies that every in-use entry of the cross-reference table
// points to the first byte of the corresponding "n 0 obj" line, that the
// /Size entry of the trailer matches the table, and that /Root refers to an
// in-use object.
func (f *File) Check() error {
	for _, num := range f.Numbers() {
		pos := f.Offsets[num]
		want := strconv.Itoa(num) + " 0 obj"
		if pos < 0 || pos >= int64(len(f.data)) ||
			!bytes.HasPrefix(f.data[pos:], []byte(want)) {
			return &MalformedFileError{
				Pos: pos,
				Err: fmt.Errorf("xref entry for object %d does not point to %q", num, want),
			}
		}
		if pos > 0 && !isSpace(f.data[pos-1]) {
			return &MalformedFileError{
				Pos: pos,
				Err: fmt.Errorf("object %d does not start a line", num),
			}
		}
	}

	size, ok := f.Trailer["Size"].(int64)
	if !ok {
		return &MalformedFileError{Err: errors.New("missing /Size in trailer")}
	}
	if int(size) != f.Entries {
		return &MalformedFileError{
			Err: fmt.Errorf("trailer /Size is %d, but xref table has %d entries", size, f.Entries),
		}
	}
	for num := range f.Offsets {
		if num >= int(size) {
			return &MalformedFileError{
				Err: fmt.Errorf("object %d exceeds /Size %d", num, size),
			}
		}
	}

	root, ok := f.Trailer["Root"].(Ref)
	if !ok {
		return &MalformedFileError{Err: errors.New("missing /Root in trailer")}
	}
	if _, ok := f.Offsets[root.Number]; !ok {
		return &MalformedFileError{
			Err: fmt.Errorf("/Root refers to missing object %d", root.Number),
		}
	}
	return nil
}

// Numbers returns the numbers of all in-use objects, in increasing order.
func (f *File) Numbers() []int {
	res := make([]int, 0, len(f.Offsets))
	for num := range f.Offsets {
		res = append(res, num)
	}
	sort.Ints(res)
	return res
}

// Get reads the indirect object with the given number.
func (f *File) Get(num int) (any, error) {
	pos, ok := f.Offsets[num]
	if !ok {
		return nil, fmt.Errorf("object %d not in xref table", num)
	}
	s := &scanner{data: f.data, pos: int(pos)}

	n, err := s.readInteger()
	if err != nil {
		return nil, err
	}
	s.skipWhiteSpace()
	gen, err := s.readInteger()
	if err != nil {
		return nil, err
	}
	if int(n) != num || gen != 0 {
		return nil, s.error(fmt.Errorf("found object %d %d instead of %d 0", n, gen, num))
	}
	s.skipWhiteSpace()
	err = s.skipString("obj")
	if err != nil {
		return nil, err
	}

	obj, err := s.readObject()
	if err != nil {
		return nil, err
	}

	s.skipWhiteSpace()
	err = s.skipString("endobj")
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Resolve follows references until a direct object is found.
func (f *File) Resolve(obj any) (any, error) {
	seen := make(map[int]bool)
	for {
		ref, ok := obj.(Ref)
		if !ok {
			return obj, nil
		}
		if seen[ref.Number] {
			return nil, fmt.Errorf("reference loop at object %d", ref.Number)
		}
		seen[ref.Number] = true

		var err error
		obj, err = f.Get(ref.Number)
		if err != nil {
			return nil, err
		}
	}
}

// GetDict resolves obj and checks that the result is a dictionary.
func (f *File) GetDict(obj any) (Dict, error) {
	obj, err := f.Resolve(obj)
	if err != nil {
		return nil, err
	}
	switch x := obj.(type) {
	case Dict:
		return x, nil
	case *Stream:
		return x.Dict, nil
	default:
		return nil, fmt.Errorf("expected Dict but got %T", obj)
	}
}
