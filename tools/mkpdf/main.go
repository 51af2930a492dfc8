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

// Mkpdf writes a simple PDF document with one line of text on every page.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/metadata"
	"seehuhn.de/go/minipdf/tools/internal/buildinfo"
)

var papers = map[string]rect.Rect{
	"letter": minipdf.Letter,
	"a4":     minipdf.A4,
	"a5":     minipdf.A5,
}

func main() {
	out := flag.String("o", "out.pdf", "output file name, or \"-\" for stdout")
	force := flag.Bool("f", false, "overwrite output file if it exists")
	numPages := flag.Int("n", 1, "number of pages")
	title := flag.String("title", "", "document title")
	lang := flag.String("lang", "", "document language, e.g. \"en-GB\"")
	paper := flag.String("paper", "letter", "paper size (letter, a4 or a5)")
	version := flag.String("version", "2.0", "PDF version")
	withXMP := flag.Bool("xmp", false, "include an XMP metadata stream")
	text := flag.String("text", "Hello, World!", "text to show on every page")
	flag.Parse()

	if *out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) && !*force {
			log.Fatal("refusing to write binary PDF data to a terminal (use -f to override)")
		}
	} else if !*force {
		if _, err := os.Stat(*out); !os.IsNotExist(err) {
			log.Fatalf("output file %q already exists", *out)
		}
	}

	opt := &minipdf.Options{}
	var err error
	opt.Version, err = minipdf.ParseVersion(*version)
	if err != nil {
		log.Fatalf("invalid PDF version %q", *version)
	}
	var ok bool
	opt.MediaBox, ok = papers[*paper]
	if !ok {
		log.Fatalf("unknown paper size %q", *paper)
	}
	if *lang != "" {
		opt.Lang, err = language.Parse(*lang)
		if err != nil {
			log.Fatal(err)
		}
	}
	opt.Info = &minipdf.Info{
		Title:        *title,
		Producer:     buildinfo.Producer("mkpdf"),
		CreationDate: time.Now(),
	}

	body, err := makeDocument(opt, *numPages, *text, *withXMP)
	if err != nil {
		log.Fatal(err)
	}

	if *out == "-" {
		_, err = os.Stdout.Write(body)
	} else {
		err = os.WriteFile(*out, body, 0o644)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func makeDocument(opt *minipdf.Options, numPages int, text string, withXMP bool) ([]byte, error) {
	if numPages < 0 {
		return nil, errors.New("negative number of pages")
	}

	doc, err := minipdf.New(opt)
	if err != nil {
		return nil, err
	}

	if withXMP {
		stm, err := metadata.FromInfo(opt.Info, opt.Version, opt.Lang)
		if err != nil {
			return nil, err
		}
		_, err = metadata.Attach(doc, stm, &xmp.PacketOptions{Pretty: true})
		if err != nil {
			return nil, err
		}
	}

	y, err := minipdf.Format(minipdf.Number(opt.MediaBox.URy - 72))
	if err != nil {
		return nil, err
	}
	for i := 1; i <= numPages; i++ {
		line, err := minipdf.Format(minipdf.String(fmt.Sprintf("%s (page %d)", text, i)))
		if err != nil {
			return nil, err
		}
		contents := minipdf.ContentStream(fmt.Sprintf(`
			BT
			  /F1 24 Tf
			  72 %s Td
			  %s Tj
			ET`, y, line))
		_, err = doc.AddPage(contents)
		if err != nil {
			return nil, err
		}
	}

	return doc.Generate()
}
