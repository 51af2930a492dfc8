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
	"io"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"
)

// Pages is the root node of a page tree.
//
// The /Kids and /Count entries are generated from the pages added
// using [Pages.AddPage].  All pages are direct children of the root node.
type Pages struct {
	*Dict

	kids []Reference
}

// NewPages allocates a new page tree root.  If mediaBox is the zero
// rectangle, no /MediaBox entry is written.  If resources is the zero
// Reference, no /Resources entry is written.
func NewPages(mediaBox rect.Rect, resources Reference) *Pages {
	dict := NewDict(Entry{"Type", Name("Pages")})
	if mediaBox != (rect.Rect{}) {
		dict.Set("MediaBox", RectArray(mediaBox))
	}
	if !resources.IsZero() {
		dict.Set("Resources", resources)
	}
	return &Pages{Dict: dict}
}

// AddPage appends a page to the page tree and sets the /Parent entry of the
// page.  The page tree root must already be registered as an indirect
// object.
func (p *Pages) AddPage(page *IndirectObject[*Page]) error {
	parent, err := p.Reference()
	if err != nil {
		return err
	}
	page.Object().SetParent(parent)
	p.kids = append(p.kids, page.Reference())
	return nil
}

// Kids returns references to the pages in the tree.
func (p *Pages) Kids() []Reference {
	return slices.Clone(p.kids)
}

// Count returns the number of pages in the tree.
func (p *Pages) Count() int {
	return len(p.kids)
}

// PDF implements the Object interface.
func (p *Pages) PDF(w io.Writer) error {
	kids := NewArray()
	for _, kid := range p.kids {
		kids.Append(kid)
	}
	return p.Dict.writeEntries(w,
		Entry{"Kids", kids},
		Entry{"Count", Integer(len(p.kids))},
	)
}

// Page is a leaf of the page tree.
type Page struct {
	*Dict
}

// NewPage allocates a new, empty page.  Entries which are not set on the
// page, like /MediaBox and /Resources, are inherited from the page tree.
func NewPage() *Page {
	return &Page{Dict: NewDict(Entry{"Type", Name("Page")})}
}

// SetParent sets the /Parent entry of the page.
func (p *Page) SetParent(parent Reference) {
	p.Set("Parent", parent)
}

// SetContents sets the content stream of the page.
func (p *Page) SetContents(contents Reference) {
	p.Set("Contents", contents)
}

// SetMediaBox overrides the media box inherited from the page tree.
func (p *Page) SetMediaBox(box rect.Rect) {
	p.Set("MediaBox", RectArray(box))
}
