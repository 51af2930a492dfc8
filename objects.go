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
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Object represents an object in a PDF file.  The following types implement
// this interface: *Array, Bool, *Dict, Integer, Name, Number, Raw, Reference,
// *Stream, and String.  A nil Object is written as "null".
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the Object interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := w.Write([]byte(s))
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the Object interface.
func (x Integer) PDF(w io.Writer) error {
	s := strconv.FormatInt(int64(x), 10)
	_, err := w.Write([]byte(s))
	return err
}

// Number represents a real number in a PDF file.
//
// Numbers are written in plain decimal notation with at most ten digits
// after the decimal point.  NaN and infinite values cannot be represented
// and cause an *EncodingError.
type Number float64

// PDF implements the Object interface.
func (x Number) PDF(w io.Writer) error {
	s, err := formatNumber(float64(x))
	if err != nil {
		return err
	}
	_, err = w.Write([]byte(s))
	return err
}

// String represents a literal string in a PDF file.  The character set
// encoding, if any, is determined by the context.
type String string

// PDF implements the Object interface.
func (x String) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.Grow(len(x) + 2)
	buf.WriteByte('(')
	for i := 0; i < len(x); i++ {
		c := x[i]
		switch c {
		case '\\', '(', ')':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte(')')
	_, err := w.Write(buf.Bytes())
	return err
}

// Name represents a name in a PDF file.
type Name string

// PDF implements the Object interface.
func (x Name) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for i := 0; i < len(x); i++ {
		c := x[i]
		if isRegular(c) {
			buf.WriteByte(c)
		} else {
			fmt.Fprintf(buf, "#%02X", c)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// isRegular reports whether c can appear unescaped inside a name.
func isRegular(c byte) bool {
	if c < 0x21 || c > 0x7e {
		return false
	}
	switch c {
	case '#', '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return false
	}
	return true
}

// Raw is pre-formatted PDF text which is copied to the output verbatim,
// apart from the canonicalisation described at [Canonical].
type Raw string

// PDF implements the Object interface.
func (x Raw) PDF(w io.Writer) error {
	_, err := io.WriteString(w, Canonical(string(x)))
	return err
}

// Entry is a key/value pair, used to construct dictionaries.
type Entry struct {
	Key   Name
	Value Object
}

// Dict represents a dictionary object in a PDF file.
//
// Entries are kept in insertion order and are written in this order.
// A Dict can be registered as an indirect object at most once.
type Dict struct {
	keys []Name
	vals map[Name]Object

	slot
}

// NewDict allocates a new dictionary containing the given entries.
func NewDict(entries ...Entry) *Dict {
	d := &Dict{
		vals: make(map[Name]Object, len(entries)),
	}
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

// Set sets the value for the given key.  If the key is already present,
// the entry keeps its position.  Setting a nil value removes the entry,
// since a null value is equivalent to an absent entry in PDF.
func (d *Dict) Set(key Name, val Object) {
	if val == nil {
		d.Delete(key)
		return
	}
	if d.vals == nil {
		d.vals = make(map[Name]Object)
	}
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = val
}

// Get returns the value stored for key, or nil if the key is not present.
func (d *Dict) Get(key Name) Object {
	if d == nil {
		return nil
	}
	return d.vals[key]
}

// Has reports whether the dictionary contains an entry for key.
func (d *Dict) Has(key Name) bool {
	if d == nil {
		return false
	}
	_, ok := d.vals[key]
	return ok
}

// Delete removes the entry for key, if present.
func (d *Dict) Delete(key Name) {
	if d == nil {
		return
	}
	if _, ok := d.vals[key]; !ok {
		return
	}
	delete(d.vals, key)
	if i := slices.Index(d.keys, key); i >= 0 {
		d.keys = slices.Delete(d.keys, i, i+1)
	}
}

// Keys returns the keys of the dictionary, in insertion order.
func (d *Dict) Keys() []Name {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// Len returns the number of entries in the dictionary.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

func (d *Dict) String() string {
	res := []string{}
	tp, ok := d.vals["Type"].(Name)
	if ok {
		res = append(res, string(tp)+" Dict")
	} else {
		res = append(res, "Dict")
	}
	res = append(res, strconv.Itoa(d.Len())+" entries")
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the Object interface.
func (d *Dict) PDF(w io.Writer) error {
	if d == nil {
		_, err := w.Write([]byte("null"))
		return err
	}
	return d.writeEntries(w)
}

// writeEntries writes the dictionary.  Entries in extra are appended after
// the stored entries and take precedence over stored entries with the same
// key.  The dictionary itself is not modified.
func (d *Dict) writeEntries(w io.Writer, extra ...Entry) error {
	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}

	writeEntry := func(key Name, val Object) error {
		_, err := w.Write([]byte("\n"))
		if err != nil {
			return err
		}
		err = key.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		return val.PDF(w)
	}

outer:
	for _, key := range d.keys {
		for _, e := range extra {
			if e.Key == key {
				continue outer
			}
		}
		err = writeEntry(key, d.vals[key])
		if err != nil {
			return err
		}
	}
	for _, e := range extra {
		if e.Value == nil {
			continue
		}
		err = writeEntry(e.Key, e.Value)
		if err != nil {
			return err
		}
	}

	_, err = w.Write([]byte("\n>>"))
	return err
}

// Array represents an array of objects in a PDF file.
type Array struct {
	elems []Object

	slot
}

// NewArray allocates a new array containing the given elements.
func NewArray(elems ...Object) *Array {
	return &Array{elems: slices.Clone(elems)}
}

// Append adds elements at the end of the array.
func (a *Array) Append(elems ...Object) {
	a.elems = append(a.elems, elems...)
}

// Len returns the number of elements in the array.
func (a *Array) Len() int {
	return len(a.elems)
}

// At returns the i-th element of the array.
func (a *Array) At(i int) Object {
	return a.elems[i]
}

// Elements returns a copy of the array elements.
func (a *Array) Elements() []Object {
	return slices.Clone(a.elems)
}

func (a *Array) String() string {
	return "<Array, " + strconv.Itoa(len(a.elems)) + " elements>"
}

// PDF implements the Object interface.
func (a *Array) PDF(w io.Writer) error {
	if a == nil {
		_, err := w.Write([]byte("null"))
		return err
	}

	_, err := w.Write([]byte("["))
	if err != nil {
		return err
	}
	for i, val := range a.elems {
		if i > 0 {
			_, err := w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		if val == nil {
			_, err = w.Write([]byte("null"))
		} else {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("]"))
	return err
}

// Stream represents a stream object in a PDF file.
//
// The /Length entry is computed from the payload when the stream is
// written; a /Length entry stored in Dict is ignored.
type Stream struct {
	Dict *Dict
	Data []byte

	slot
}

// NewStream allocates a new stream.  If dict is nil, an empty dictionary is
// used.
func NewStream(dict *Dict, data []byte) *Stream {
	if dict == nil {
		dict = NewDict()
	}
	return &Stream{
		Dict: dict,
		Data: data,
	}
}

// ContentStream allocates a stream holding the given text.  The text is
// canonicalised first, so that indentation of multi-line string literals in
// Go source code does not end up in the PDF file.
func ContentStream(text string) *Stream {
	return NewStream(nil, []byte(Canonical(text)))
}

// Len returns the length of the stream payload in bytes.
func (x *Stream) Len() int {
	return len(x.Data)
}

func (x *Stream) String() string {
	res := []string{}
	tp, ok := x.Dict.Get("Type").(Name)
	if ok {
		res = append(res, string(tp)+" Stream")
	} else {
		res = append(res, "Stream")
	}
	res = append(res, strconv.Itoa(x.Len())+" bytes")
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the Object interface.
func (x *Stream) PDF(w io.Writer) error {
	dict := x.Dict
	if dict == nil {
		dict = NewDict()
	}
	err := dict.writeEntries(w, Entry{"Length", Integer(x.Len())})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nstream\n"))
	if err != nil {
		return err
	}
	_, err = w.Write(x.Data)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nendstream"))
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
//
// References are obtained from [IndirectObject.Reference].  They are plain
// values which record the object number and the document the object
// belongs to.  The zero Reference does not refer to any object.
type Reference struct {
	num int
	doc uint64
}

// Number returns the object number of the referenced object.
func (x Reference) Number() int {
	return x.num
}

// IsZero reports whether x is the zero Reference.
func (x Reference) IsZero() bool {
	return x.num == 0
}

func (x Reference) String() string {
	return "obj_" + strconv.Itoa(x.num)
}

// PDF implements the Object interface.
//
// When the reference is written as part of a document, it is checked to
// belong to this document.  Outside of a document, the zero Reference is
// written as "null".
func (x Reference) PDF(w io.Writer) error {
	if pw, ok := w.(*posWriter); ok && pw.doc != nil {
		err := pw.doc.check(x)
		if err != nil {
			return err
		}
	} else if x.IsZero() {
		_, err := w.Write([]byte("null"))
		return err
	}
	_, err := fmt.Fprintf(w, "%d 0 R", x.num)
	return err
}

// slot records the indirect object a container object has been registered
// as.  It is embedded in *Dict, *Array and *Stream.
type slot struct {
	ref   Reference
	bound bool
}

// Reference returns a reference to the indirect object which holds this
// object.  If the object has not been registered with a document, an error
// wrapping [ErrNotIndirect] is returned.
func (s *slot) Reference() (Reference, error) {
	if !s.bound {
		return Reference{}, &StructuralError{Err: ErrNotIndirect}
	}
	return s.ref, nil
}

func (s *slot) bind(ref Reference) error {
	if s.bound {
		return &StructuralError{Obj: s.ref.num, Err: ErrDoubleWrap}
	}
	s.ref = ref
	s.bound = true
	return nil
}

// binder is implemented by objects which have an identity and thus can be
// registered as an indirect object at most once.
type binder interface {
	bind(ref Reference) error
}
