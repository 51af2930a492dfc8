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

package main

import (
	"testing"

	"seehuhn.de/go/minipdf"
	"seehuhn.de/go/minipdf/internal/xrefcheck"
)

func TestMakeDocument(t *testing.T) {
	opt := &minipdf.Options{
		Version:  minipdf.V1_7,
		MediaBox: minipdf.A4,
		Info:     &minipdf.Info{Title: "test"},
	}
	body, err := makeDocument(opt, 3, "Hello", true)
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
	if f.Version != "1.7" {
		t.Errorf("version %q, want 1.7", f.Version)
	}

	catalog, err := f.GetDict(f.Trailer["Root"])
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := catalog["Metadata"].(xrefcheck.Ref); !ok {
		t.Error("catalog has no metadata reference")
	}
	pages, err := f.GetDict(catalog["Pages"])
	if err != nil {
		t.Fatal(err)
	}
	if pages["Count"] != int64(3) {
		t.Errorf("page count %v, want 3", pages["Count"])
	}
}

func TestNegativePages(t *testing.T) {
	_, err := makeDocument(&minipdf.Options{Info: &minipdf.Info{}}, -1, "", false)
	if err == nil {
		t.Error("negative page count accepted")
	}
}
