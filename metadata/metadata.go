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

// Package metadata implements XMP metadata streams.
//
// A metadata stream stores document metadata as an XML packet.  When
// attached to the document catalog, the metadata describes the document as
// a whole.  XMP metadata requires PDF 1.4 or newer.
package metadata

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/xmp"
)

// Stream represents an XMP metadata stream.
type Stream struct {
	Data *xmp.Packet
}

// PDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type PDF struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Keywords   xmp.Text
	PDFVersion xmp.Text
	Producer   xmp.AgentName
}

var errNoCatalog = errors.New("document has no catalog")

// FromInfo creates an XMP packet which holds the same information as the
// given document information dictionary.  Title and description are
// recorded for the language lang, or as the default language if lang is
// [language.Und].
func FromInfo(info *minipdf.Info, ver minipdf.Version, lang language.Tag) (*Stream, error) {
	if lang == language.Und {
		lang = language.MustParse("x-default")
	}

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(lang, info.Title)
	}
	if info.Subject != "" {
		dc.Description.Set(lang, info.Subject)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}

	basic := &xmp.Basic{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		basic.ModifyDate = xmp.NewDate(info.ModDate)
	}

	pdfInfo := &PDF{}
	if info.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}
	if verString, err := ver.ToString(); err == nil {
		pdfInfo.PDFVersion = xmp.NewText(verString)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}

// Decode reads an XMP metadata stream from the stream payload data.
func Decode(data []byte) (*Stream, error) {
	packet, err := xmp.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}

// Embed adds the XMP metadata stream to the document, as an indirect object.
// The stream is not linked from anywhere; use [Attach] to describe the
// document as a whole.
func (s *Stream) Embed(doc *minipdf.Document, opt *xmp.PacketOptions) (minipdf.Reference, error) {
	if ver := doc.Version(); ver < minipdf.V1_4 {
		return minipdf.Reference{},
			fmt.Errorf("XMP metadata stream requires PDF 1.4 or newer, have %s", ver)
	}

	buf := &bytes.Buffer{}
	err := s.Data.Write(buf, opt)
	if err != nil {
		return minipdf.Reference{}, err
	}

	dict := minipdf.NewDict(
		minipdf.Entry{Key: "Type", Value: minipdf.Name("Metadata")},
		minipdf.Entry{Key: "Subtype", Value: minipdf.Name("XML")},
	)
	obj, err := minipdf.AddObject(doc, minipdf.NewStream(dict, buf.Bytes()))
	if err != nil {
		return minipdf.Reference{}, err
	}
	return obj.Reference(), nil
}

// Attach embeds s and sets it as the metadata of the document, using the
// /Metadata entry of the document catalog.
func Attach(doc *minipdf.Document, s *Stream, opt *xmp.PacketOptions) (minipdf.Reference, error) {
	catalog := doc.Root()
	if catalog == nil {
		return minipdf.Reference{}, errNoCatalog
	}
	ref, err := s.Embed(doc, opt)
	if err != nil {
		return minipdf.Reference{}, err
	}
	catalog.Set("Metadata", ref)
	return ref, nil
}

// Equal reports whether s and other represent the same XMP metadata.
func (s *Stream) Equal(other *Stream) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Data.Equal(other.Data)
}
