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

import "strconv"

// Version identifies the version of the PDF format used for a file.
// The zero value is not a valid version; [Document] replaces it by [V2_0].
type Version int

// PDF versions which can be written.
const (
	_ Version = iota
	V1_0
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
)

// versionNames lists the header strings, indexed by Version.
var versionNames = [...]string{
	V1_0: "1.0",
	V1_1: "1.1",
	V1_2: "1.2",
	V1_3: "1.3",
	V1_4: "1.4",
	V1_5: "1.5",
	V1_6: "1.6",
	V1_7: "1.7",
	V2_0: "2.0",
}

// ParseVersion converts a version string like "1.7", as found in the file
// header, to a Version.
func ParseVersion(verString string) (Version, error) {
	for ver, name := range versionNames {
		if name != "" && name == verString {
			return Version(ver), nil
		}
	}
	return 0, errVersion
}

// ToString returns the string used for ver in the file header.
func (ver Version) ToString() (string, error) {
	if ver < V1_0 || int(ver) >= len(versionNames) {
		return "", errVersion
	}
	return versionNames[ver], nil
}

func (ver Version) String() string {
	name, err := ver.ToString()
	if err != nil {
		return "minipdf.Version(" + strconv.Itoa(int(ver)) + ")"
	}
	return name
}
