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
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"
)

// Options control the construction of a new document.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Version is the PDF version written in the file header.
	// The default is PDF 2.0.
	Version Version

	// MediaBox is the page size inherited by all pages.
	// The default is US Letter.
	MediaBox rect.Rect

	// Lang, if set, gives the natural language of the document.
	Lang language.Tag

	// Info, if set, is written as the document information dictionary.
	Info *Info
}

// Document is a PDF document under construction.
//
// Objects are added using [AddObject].  Every object is numbered when it is
// added, and objects are written in the order in which they were added.
// A Document must not be used concurrently.
type Document struct {
	id      uint64
	ver     Version
	cells   []*cell
	counter *Counter

	root  Reference
	pages *IndirectObject[*Pages]
	info  Reference
}

var documentID atomic.Uint64

var errNoPageTree = errors.New("document has no page tree")

// NewEmpty creates a document which does not contain any objects.
// The document catalog must be set using [Document.SetRoot] before the
// document can be written.
func NewEmpty(opt *Options) *Document {
	if opt == nil {
		opt = &Options{}
	}
	ver := opt.Version
	if ver == 0 {
		ver = V2_0
	}
	return &Document{
		id:      documentID.Add(1),
		ver:     ver,
		counter: NewCounter(1),
	}
}

// New creates a document with an empty page tree.
//
// The new document contains five objects: two standard fonts (Arial and
// Helvetica), the resource dictionary which makes these fonts available as
// /F2 and /F1, the page tree root, and the document catalog.  If opt.Info is
// set, the information dictionary is added as a sixth object.
func New(opt *Options) (*Document, error) {
	if opt == nil {
		opt = &Options{}
	}
	d := NewEmpty(opt)

	arial, err := AddObject(d, StandardFont("Arial"))
	if err != nil {
		return nil, err
	}
	helvetica, err := AddObject(d, StandardFont("Helvetica"))
	if err != nil {
		return nil, err
	}
	res := NewResources()
	res.AddFont("F1", helvetica.Reference())
	res.AddFont("F2", arial.Reference())
	resObj, err := AddObject(d, res)
	if err != nil {
		return nil, err
	}

	mediaBox := opt.MediaBox
	if mediaBox == (rect.Rect{}) {
		mediaBox = Letter
	}
	pages, err := AddObject(d, NewPages(mediaBox, resObj.Reference()))
	if err != nil {
		return nil, err
	}
	d.pages = pages

	catalog := NewCatalog(pages.Reference())
	SetLang(catalog, opt.Lang)
	catalogObj, err := AddObject(d, catalog)
	if err != nil {
		return nil, err
	}
	err = d.SetRoot(catalogObj.Reference())
	if err != nil {
		return nil, err
	}

	if opt.Info != nil {
		_, err = d.SetInfo(opt.Info)
		if err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Version returns the PDF version of the document.
func (d *Document) Version() Version {
	return d.ver
}

// Len returns the number of objects in the document.
func (d *Document) Len() int {
	return len(d.cells)
}

// SetRoot sets the document catalog.
func (d *Document) SetRoot(ref Reference) error {
	err := d.check(ref)
	if err != nil {
		return err
	}
	d.root = ref
	return nil
}

// Root returns the document catalog.  The result is nil if no catalog has
// been set, or if the catalog is not stored as a *Dict.
func (d *Document) Root() *Dict {
	if d.root.IsZero() {
		return nil
	}
	catalog, _ := d.cells[d.root.num-1].obj.(*Dict)
	return catalog
}

// Pages returns the root of the page tree, or nil for documents created by
// [NewEmpty].
func (d *Document) Pages() *Pages {
	if d.pages == nil {
		return nil
	}
	return d.pages.Object()
}

// AddPage adds a new page to the page tree.  If contents is not nil, it is
// registered as an indirect object and used as the content stream of the
// page.
func (d *Document) AddPage(contents *Stream) (*IndirectObject[*Page], error) {
	if d.pages == nil {
		return nil, &StructuralError{Err: errNoPageTree}
	}

	page := NewPage()
	if contents != nil {
		contentsObj, err := AddObject(d, contents)
		if err != nil {
			return nil, err
		}
		page.SetContents(contentsObj.Reference())
	}
	pageObj, err := AddObject(d, page)
	if err != nil {
		return nil, err
	}

	err = d.pages.Object().AddPage(pageObj)
	if err != nil {
		return nil, err
	}
	return pageObj, nil
}

// SetInfo adds a document information dictionary to the document.
// The dictionary is referenced from the trailer.
func (d *Document) SetInfo(info *Info) (Reference, error) {
	obj, err := AddObject(d, info.AsDict())
	if err != nil {
		return Reference{}, err
	}
	d.info = obj.Reference()
	return d.info, nil
}

// check verifies that ref refers to an object of this document.
func (d *Document) check(ref Reference) error {
	if ref.doc != d.id || ref.num < 1 || ref.num > len(d.cells) {
		return &StructuralError{Obj: ref.num, Err: ErrDangling}
	}
	return nil
}

// Generate returns the PDF file representation of the document.
//
// The document is not modified, and calling Generate repeatedly gives the
// same result.  If the object graph is inconsistent, an error is returned
// and no output is produced.
func (d *Document) Generate() ([]byte, error) {
	if d.root.IsZero() {
		return nil, &StructuralError{Err: ErrMissingRoot}
	}
	err := d.check(d.root)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := &posWriter{w: buf, doc: d}

	err = w.writeHeader(d.ver)
	if err != nil {
		return nil, err
	}

	xref := make(map[int]int64, len(d.cells))
	maxIndex := 0
	for _, c := range d.cells {
		xref[c.num] = w.pos
		err = c.writeTo(w)
		if err != nil {
			return nil, err
		}
		_, err = w.Write([]byte("\n"))
		if err != nil {
			return nil, err
		}
		maxIndex = max(maxIndex, c.num)
	}

	trailer := NewDict(
		Entry{"Size", Integer(maxIndex + 1)},
		Entry{"Root", d.root},
	)
	if !d.info.IsZero() {
		trailer.Set("Info", d.info)
	}

	xRefPos := w.pos
	err = w.writeXRefTable(xref, maxIndex+1, trailer)
	if err != nil {
		return nil, err
	}

	_, err = fmt.Fprintf(w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteTo writes the PDF file representation of the document to w.
// This implements the [io.WriterTo] interface.  Nothing is written if the
// object graph is inconsistent.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	body, err := d.Generate()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(body)
	return int64(n), err
}
