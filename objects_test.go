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
	"math"
	"testing"

	"seehuhn.de/go/minipdf/internal/xrefcheck"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(-7), "-7"},
		{Number(1000000.125), "1000000.125"},
		{Number(0.1), "0.1"},
		{Number(1.0 / 3), "0.3333333333"},
		{Number(2.0 / 3), "0.6666666667"},
		{Number(1e21), "1000000000000000000000"},
		{Number(1e-11), "0"},
		{Number(math.Copysign(0, -1)), "0"},
		{Number(-2.5), "-2.5"},
		{Number(612), "612"},
		{Name("Type"), "/Type"},
		{Name("A B(C"), "/A#20B#28C"},
		{Name("a#b"), "/a#23b"},
		{Name("x)"), "/x#29"},
		{Name("μ"), "/#CE#BC"},
		{String("a(b)\n"), `(a\(b\)\n)`},
		{String(`back\slash`), `(back\\slash)`},
		{String("a\rb"), `(a\rb)`},
		{String(""), "()"},
		{Raw("  [ /PDF /Text ]  \n   x  "), "[ /PDF /Text ]\nx"},
		{NewArray(), "[]"},
		{NewArray(Integer(1), nil, Name("X")), "[1 null /X]"},
		{NewDict(), "<<\n>>"},
		{(*Dict)(nil), "null"},
		{
			NewDict(Entry{"Type", Name("Catalog")}, Entry{"Pages", Integer(3)}),
			"<<\n/Type /Catalog\n/Pages 3\n>>",
		},
		{Reference{}, "null"},
		{NewStream(nil, []byte("μ")), "<<\n/Length 2\n>>\nstream\nμ\nendstream"},
		{
			NewStream(NewDict(Entry{"Length", Integer(99)}, Entry{"Type", Name("XObject")}), []byte("abc")),
			"<<\n/Type /XObject\n/Length 3\n>>\nstream\nabc\nendstream",
		},
	}
	for _, test := range cases {
		out, err := Format(test.in)
		if err != nil {
			t.Errorf("%v: %v", test.in, err)
			continue
		}
		if out != test.out {
			t.Errorf("wrongly formatted, expected %q but got %q", test.out, out)
		}
	}
}

func TestNumberErrors(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Format(Number(x))
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Errorf("%g: expected EncodingError, got %v", x, err)
		}
	}
}

func TestDict(t *testing.T) {
	d := NewDict(Entry{"A", Integer(1)}, Entry{"B", Integer(2)}, Entry{"C", Integer(3)})

	d.Set("A", Integer(4))
	d.Delete("B")
	d.Set("D", Integer(5))
	d.Set("C", nil)

	if d.Has("B") || d.Has("C") {
		t.Error("deleted entry still present")
	}
	if !d.Has("A") || d.Get("A") != Integer(4) {
		t.Error("wrong value for /A")
	}
	keys := d.Keys()
	if len(keys) != 2 || keys[0] != "A" || keys[1] != "D" {
		t.Errorf("wrong keys %v", keys)
	}
	out, err := Format(d)
	if err != nil {
		t.Fatal(err)
	}
	if out != "<<\n/A 4\n/D 5\n>>" {
		t.Errorf("wrong output %q", out)
	}
}

func TestNilDict(t *testing.T) {
	var d *Dict
	d.Delete("X")
	if d.Has("X") || d.Get("X") != nil {
		t.Error("nil dictionary has entries")
	}
	if d.Len() != 0 || d.Keys() != nil {
		t.Error("nil dictionary is not empty")
	}
	out, err := Format(d)
	if err != nil {
		t.Fatal(err)
	}
	if out != "null" {
		t.Errorf("wrong output %q", out)
	}
}

func TestArray(t *testing.T) {
	elems := []Object{Integer(1), Integer(2)}
	a := NewArray(elems...)
	elems[0] = Integer(7)
	a.Append(Name("X"))

	if a.Len() != 3 || a.At(0) != Integer(1) || a.At(2) != Name("X") {
		t.Errorf("wrong array contents %v", a.Elements())
	}
}

func TestStreamLength(t *testing.T) {
	stm := ContentStream(`
		BT
		(μ) Tj
		ET`)
	if stm.Len() != ByteLength("BT\n(μ) Tj\nET") {
		t.Errorf("wrong length %d", stm.Len())
	}
	if stm.Len() != 13 {
		t.Errorf("wrong length %d, expected 13", stm.Len())
	}
}

func FuzzString(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("ABC"))
	f.Add([]byte("a(b)\n"))
	f.Add([]byte{0, 1, 2, '\\', '\r'})
	f.Add([]byte{0xFF, 0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		s1 := String(data)
		enc, err := Format(s1)
		if err != nil {
			t.Fatal(err)
		}
		s2, err := xrefcheck.Parse([]byte(enc))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal([]byte(s1), s2.(xrefcheck.String)) {
			t.Errorf("wrong string: %q != %q", s1, s2)
		}
	})
}

func FuzzName(f *testing.F) {
	f.Add("")
	f.Add("Type")
	f.Add("A B(C")
	f.Add("#23#")
	f.Add("μ/%")
	f.Fuzz(func(t *testing.T, name string) {
		enc, err := Format(Name(name))
		if err != nil {
			t.Fatal(err)
		}
		n2, err := xrefcheck.Parse([]byte(enc))
		if err != nil {
			t.Fatal(err)
		}
		if string(n2.(xrefcheck.Name)) != name {
			t.Errorf("wrong name: %q != %q", name, n2)
		}
	})
}
