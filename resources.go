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

// Resources is a resource dictionary, containing the procedure sets and
// the fonts used by the pages.
type Resources struct {
	*Dict

	fonts *Dict
}

// NewResources allocates a resource dictionary with the /PDF and /Text
// procedure sets and an empty font dictionary.
func NewResources() *Resources {
	fonts := NewDict()
	dict := NewDict(
		Entry{"ProcSet", NewArray(Name("PDF"), Name("Text"))},
		Entry{"Font", fonts},
	)
	return &Resources{Dict: dict, fonts: fonts}
}

// AddFont makes a font available under the given resource name.
func (r *Resources) AddFont(name Name, font Reference) {
	r.fonts.Set(name, font)
}

// Font returns the font registered under the given resource name.
func (r *Resources) Font(name Name) (Reference, bool) {
	ref, ok := r.fonts.Get(name).(Reference)
	return ref, ok
}

// StandardFont returns a font dictionary for one of the fonts every PDF
// viewer provides, for example Helvetica.  No font data is embedded.
func StandardFont(baseFont Name) *Dict {
	return NewDict(
		Entry{"Type", Name("Font")},
		Entry{"Subtype", Name("Type1")},
		Entry{"BaseFont", baseFont},
	)
}
