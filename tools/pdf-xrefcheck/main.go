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

// Pdf-xrefcheck verifies the cross-reference table of PDF files written by
// minipdf.  For every file, the tool checks that all xref entries point at
// the start of the corresponding object, and that the trailer is
// consistent with the table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"seehuhn.de/go/minipdf/internal/xrefcheck"
)

func main() {
	verbose := flag.Bool("v", false, "print the object table")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "error: no input files given")
		flag.Usage()
		os.Exit(1)
	}

	failed := false
	for _, fname := range flag.Args() {
		err := checkFile(fname, *verbose)
		if err != nil {
			log.Printf("%s: %v", fname, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func checkFile(fname string, verbose bool) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	f, err := xrefcheck.Read(data)
	if err != nil {
		return err
	}
	err = f.Check()
	if err != nil {
		return err
	}

	fmt.Printf("%s: PDF-%s, %d objects, xref at byte %d\n",
		fname, f.Version, len(f.Offsets), f.StartXRef)
	if !verbose {
		return nil
	}
	for _, num := range f.Numbers() {
		desc := ""
		if dict, err := f.GetDict(xrefcheck.Ref{Number: num}); err == nil {
			if tp, ok := dict["Type"].(xrefcheck.Name); ok {
				desc = "/" + string(tp)
			}
		}
		fmt.Printf("  %5d  %10d  %s\n", num, f.Offsets[num], desc)
	}
	return nil
}
