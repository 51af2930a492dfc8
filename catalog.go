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

import "golang.org/x/text/language"

// NewCatalog returns a document catalog which points to the given page
// tree root.
func NewCatalog(pages Reference) *Dict {
	return NewDict(
		Entry{"Type", Name("Catalog")},
		Entry{"Pages", pages},
	)
}

// SetLang sets the natural language of the document in the catalog.
// Setting [language.Und] removes the entry.
func SetLang(catalog *Dict, tag language.Tag) {
	if tag == language.Und {
		catalog.Delete("Lang")
		return
	}
	catalog.Set("Lang", TextString(tag.String()))
}
