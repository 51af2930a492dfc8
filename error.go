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
	"errors"
	"strconv"
)

var (
	// ErrDoubleWrap indicates an attempt to register an object which
	// already is an indirect object.
	ErrDoubleWrap = errors.New("object already registered as an indirect object")

	// ErrDangling indicates a reference to an object which does not belong
	// to the document being written.
	ErrDangling = errors.New("dangling reference")

	// ErrNotIndirect indicates that a reference was requested for an object
	// which has not been registered with a document.
	ErrNotIndirect = errors.New("not an indirect object")

	// ErrNilObject indicates an attempt to register a nil dictionary, array
	// or stream as an indirect object.
	ErrNilObject = errors.New("nil object")

	// ErrMissingRoot indicates that the document catalog has not been set.
	ErrMissingRoot = errors.New("missing /Catalog")

	errVersion = errors.New("unsupported PDF version")
)

// StructuralError indicates that the object graph of a document is
// inconsistent.  Such errors are programming errors in the code which built
// the document.
type StructuralError struct {
	// Obj is the number of the object involved, or 0 if not known.
	Obj int

	Err error
}

func (err *StructuralError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Obj > 0 {
		tail = " (object " + strconv.Itoa(err.Obj) + ")"
	}
	return "invalid PDF object graph" + middle + tail
}

func (err *StructuralError) Unwrap() error {
	return err.Err
}

// EncodingError indicates that a value cannot be represented in PDF syntax.
type EncodingError struct {
	Value float64
}

func (err *EncodingError) Error() string {
	return "cannot represent " + strconv.FormatFloat(err.Value, 'g', -1, 64) +
		" as a PDF number"
}
