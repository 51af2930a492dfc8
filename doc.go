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

// Package minipdf writes simple PDF files.
//
// A [Document] holds a list of indirect objects.  Objects are registered
// using [AddObject], which assigns the next free object number and returns
// a handle.  The handle gives access to the object, and to a [Reference]
// which can be stored in other objects:
//
//	doc, err := minipdf.New(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	contents := minipdf.ContentStream(`
//	    BT
//	    /F1 24 Tf
//	    72 720 Td
//	    (Hello World) Tj
//	    ET`)
//	_, err = doc.AddPage(contents)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	body, err := doc.Generate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The following types implement the native PDF object types.
// All of these implement the [Object] interface:
//
//	*Array
//	Bool
//	*Dict
//	Integer
//	Name
//	Number
//	Raw
//	Reference
//	*Stream
//	String
//
// When the document is written, objects appear in the order in which they
// were registered, followed by the cross-reference table and the trailer.
// The byte offsets stored in the cross-reference table are exact, also for
// files containing non-ASCII text.
package minipdf
