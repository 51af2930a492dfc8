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

package metadata

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/internal/xrefcheck"
	"seehuhn.de/go/xmp"
)

func TestRoundTrip(t *testing.T) {
	packet := xmp.NewPacket()
	dc := &xmp.DublinCore{}
	dc.Title.Set(language.Und, "Test Document")
	dc.Creator.Append(xmp.NewProperName("Test Author"))
	err := packet.Set(dc)
	if err != nil {
		t.Fatalf("failed to set properties: %v", err)
	}
	original := &Stream{Data: packet}

	doc, err := minipdf.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	ref, err := Attach(doc, original, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		t.Fatalf("failed to attach metadata: %v", err)
	}
	if ref.Number() != 6 {
		t.Errorf("metadata stream is object %d, want 6", ref.Number())
	}

	body, err := doc.Generate()
	if err != nil {
		t.Fatal(err)
	}
	f, err := xrefcheck.Read(body)
	if err != nil {
		t.Fatal(err)
	}
	err = f.Check()
	if err != nil {
		t.Fatal(err)
	}

	catalog, err := f.GetDict(f.Trailer["Root"])
	if err != nil {
		t.Fatal(err)
	}
	obj, err := f.Resolve(catalog["Metadata"])
	if err != nil {
		t.Fatal(err)
	}
	stm, ok := obj.(*xrefcheck.Stream)
	if !ok {
		t.Fatalf("metadata is %T, not a stream", obj)
	}
	if stm.Dict["Type"] != xrefcheck.Name("Metadata") || stm.Dict["Subtype"] != xrefcheck.Name("XML") {
		t.Errorf("wrong stream dictionary: %v", stm.Dict)
	}

	extracted, err := Decode(stm.Data)
	if err != nil {
		t.Fatalf("failed to decode metadata: %v", err)
	}

	var originalDC, extractedDC xmp.DublinCore
	original.Data.Get(&originalDC)
	extracted.Data.Get(&extractedDC)
	if diff := cmp.Diff(extractedDC, originalDC); diff != "" {
		t.Errorf("round trip failed (-got +want):\n%s", diff)
	}
}

func TestFromInfo(t *testing.T) {
	info := &minipdf.Info{
		Title:        "Annual Report",
		Author:       "Jane Smith",
		Subject:      "figures for the year",
		Keywords:     "report, finance",
		Producer:     "mkpdf",
		CreationDate: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	s, err := FromInfo(info, minipdf.V1_7, language.English)
	if err != nil {
		t.Fatal(err)
	}

	want := &xmp.DublinCore{}
	want.Title.Set(language.English, "Annual Report")
	want.Description.Set(language.English, "figures for the year")
	want.Creator.Append(xmp.NewProperName("Jane Smith"))

	got := &xmp.DublinCore{}
	s.Data.Get(got)
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Dublin Core mismatch (-got +want):\n%s", diff)
	}

	pdfInfo := &PDF{}
	s.Data.Get(pdfInfo)
	if diff := cmp.Diff(pdfInfo.Keywords, xmp.NewText("report, finance")); diff != "" {
		t.Errorf("keywords mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(pdfInfo.PDFVersion, xmp.NewText("1.7")); diff != "" {
		t.Errorf("PDF version mismatch (-got +want):\n%s", diff)
	}
}

func TestOldVersion(t *testing.T) {
	doc, err := minipdf.New(&minipdf.Options{Version: minipdf.V1_3})
	if err != nil {
		t.Fatal(err)
	}
	s := &Stream{Data: xmp.NewPacket()}
	_, err = Attach(doc, s, nil)
	if err == nil {
		t.Fatal("XMP metadata accepted for PDF 1.3")
	}
	if doc.Len() != 5 {
		t.Errorf("document has %d objects, want 5", doc.Len())
	}
	if doc.Root().Has("Metadata") {
		t.Error("catalog refers to metadata after failed Attach")
	}
}

func TestNoCatalog(t *testing.T) {
	doc := minipdf.NewEmpty(nil)
	s := &Stream{Data: xmp.NewPacket()}
	_, err := Attach(doc, s, nil)
	if err == nil {
		t.Fatal("metadata attached to document without catalog")
	}
	if doc.Len() != 0 {
		t.Errorf("document has %d objects, want 0", doc.Len())
	}
}
