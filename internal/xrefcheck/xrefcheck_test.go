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

package xrefcheck

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildFile assembles a small PDF file with a correct xref table.
func buildFile(objects ...string) []byte {
	buf := &strings.Builder{}
	buf.WriteString("%PDF-1.7\n%\x80\x80\x80\x80\n")
	var offsets []int
	for i, obj := range objects {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n0000000000 65535 f\r\n", len(objects)+1)
	for _, pos := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n\r\n", pos)
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xref)
	return []byte(buf.String())
}

func TestReadAndCheck(t *testing.T) {
	data := buildFile(
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /Contents 4 0 R >>",
		"<< /Length 5 >>\nstream\nhello\nendstream",
	)
	f, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	err = f.Check()
	if err != nil {
		t.Fatal(err)
	}
	if f.Version != "1.7" {
		t.Errorf("wrong version %q", f.Version)
	}
	if f.Entries != 5 {
		t.Errorf("wrong number of entries: %d", f.Entries)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, f.Numbers()); diff != "" {
		t.Errorf("wrong object numbers (-want +got):\n%s", diff)
	}

	page, err := f.GetDict(Ref{Number: 3})
	if err != nil {
		t.Fatal(err)
	}
	want := Dict{
		"Type":     Name("Page"),
		"Parent":   Ref{Number: 2},
		"Contents": Ref{Number: 4},
	}
	if diff := cmp.Diff(want, page); diff != "" {
		t.Errorf("wrong page dict (-want +got):\n%s", diff)
	}

	obj, err := f.Resolve(Ref{Number: 4})
	if err != nil {
		t.Fatal(err)
	}
	stm, ok := obj.(*Stream)
	if !ok {
		t.Fatalf("expected stream, got %T", obj)
	}
	if string(stm.Data) != "hello" {
		t.Errorf("wrong stream data %q", stm.Data)
	}
}

func TestCheckBadOffset(t *testing.T) {
	data := buildFile("<< /Type /Catalog >>", "42")
	f, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	f.Offsets[2]++

	err = f.Check()
	var malformed *MalformedFileError
	if !errors.As(err, &malformed) {
		t.Errorf("expected MalformedFileError, got %v", err)
	}
}

func TestReadBadEntry(t *testing.T) {
	data := buildFile("<< /Type /Catalog >>")
	// entries with a one-byte line ending are 19 bytes long
	s := strings.ReplaceAll(string(data), " n\r\n", " n\n")
	_, err := Read([]byte(s))
	if err == nil {
		t.Error("short xref entry not detected")
	}
}

func TestCheckSize(t *testing.T) {
	data := buildFile("<< /Type /Catalog >>")
	s := strings.Replace(string(data), "/Size 2", "/Size 7", 1)
	f, err := Read([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	if f.Check() == nil {
		t.Error("wrong /Size not detected")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in  string
		out any
	}{
		{"null", nil},
		{"true", true},
		{"12", int64(12)},
		{"-3", int64(-3)},
		{"0.5", 0.5},
		{"/A#20B#28C", Name("A B(C")},
		{`(a\(b\)\n)`, String("a(b)\n")},
		{`(a(b)c)`, String("a(b)c")},
		{`(\101\\)`, String("A\\")},
		{"<48 65 6c6c 6f>", String("Hello")},
		{"[1 2 3]", Array{int64(1), int64(2), int64(3)}},
		{"[1 2 R 3]", Array{Ref{Number: 1, Generation: 2}, int64(3)}},
		{"[1 0 R 3]", Array{Ref{Number: 1}, int64(3)}},
		{"<< /A 1 /B [/X] /C null >>", Dict{"A": int64(1), "B": Array{Name("X")}}},
	}
	for _, test := range cases {
		out, err := Parse([]byte(test.in))
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if diff := cmp.Diff(test.out, out); diff != "" {
			t.Errorf("%q: wrong result (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"(unterminated",
		"<< /A 1",
		"[1 2",
		"<< 1 2 >>",
		"/A#2",
		"1 2",
	}
	for _, test := range cases {
		_, err := Parse([]byte(test))
		if err == nil {
			t.Errorf("%q: missing error", test)
		}
	}
}
