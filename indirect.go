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
	"reflect"
	"strings"
)

// cell is an entry in the object arena of a document.
type cell struct {
	num int
	obj Object
}

// IndirectObject is a handle to an object which has been registered with a
// document.  The object number is assigned when the object is registered
// and never changes.  The payload can be modified, or replaced using
// [IndirectObject.Set], until the document is written.
type IndirectObject[T Object] struct {
	doc *Document
	num int
}

// AddObject registers obj as an indirect object in doc and allocates the next
// object number for it.
//
// Dictionaries, arrays and streams can be registered at most once; a
// second attempt fails with an error wrapping [ErrDoubleWrap].  Other object
// types are plain values, and every call creates a new indirect object.
// Registering a nil *Dict, *Array or *Stream fails with an error wrapping
// [ErrNilObject].
func AddObject[T Object](doc *Document, obj T) (*IndirectObject[T], error) {
	ref := Reference{num: doc.counter.Peek(), doc: doc.id}
	err := bindObject(obj, ref)
	if err != nil {
		return nil, err
	}

	num := doc.counter.Next()
	doc.cells = append(doc.cells, &cell{num: num, obj: obj})

	return &IndirectObject[T]{doc: doc, num: num}, nil
}

// bindObject records ref in obj, if obj is a dictionary, array or stream.
// Nil containers are rejected.
func bindObject(obj Object, ref Reference) error {
	b, ok := obj.(binder)
	if !ok {
		return nil
	}
	if v := reflect.ValueOf(b); v.Kind() == reflect.Pointer && v.IsNil() {
		return &StructuralError{Err: ErrNilObject}
	}
	return b.bind(ref)
}

// Number returns the object number.
func (x *IndirectObject[T]) Number() int {
	return x.num
}

// Reference returns a reference to the object, for use in other objects.
func (x *IndirectObject[T]) Reference() Reference {
	return Reference{num: x.num, doc: x.doc.id}
}

// Object returns the payload of the indirect object.
func (x *IndirectObject[T]) Object() T {
	obj, _ := x.doc.cells[x.num-1].obj.(T)
	return obj
}

// Set replaces the payload of the indirect object.
func (x *IndirectObject[T]) Set(obj T) error {
	err := bindObject(obj, x.Reference())
	if err != nil {
		return err
	}
	x.doc.cells[x.num-1].obj = obj
	return nil
}

// Format returns the PDF representation of the indirect object, including
// the "obj" and "endobj" keywords.
func (x *IndirectObject[T]) Format() (string, error) {
	buf := &strings.Builder{}
	err := x.doc.cells[x.num-1].writeTo(&posWriter{w: buf, doc: x.doc})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (c *cell) writeTo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d 0 obj\n", c.num)
	if err != nil {
		return err
	}
	if c.obj == nil {
		_, err = w.Write([]byte("null"))
	} else {
		err = c.obj.PDF(w)
	}
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nendobj"))
	return err
}
