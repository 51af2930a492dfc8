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
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

type scanner struct {
	data []byte
	pos  int
}

// Parse reads a single direct object from data.
func Parse(data []byte) (any, error) {
	s := &scanner{data: data}
	obj, err := s.readObject()
	if err != nil {
		return nil, err
	}
	s.skipWhiteSpace()
	if s.pos < len(s.data) {
		return nil, s.error(errors.New("unexpected data after object"))
	}
	return obj, nil
}

func (s *scanner) error(err error) error {
	return &MalformedFileError{Pos: int64(s.pos), Err: err}
}

func (s *scanner) hasPrefix(pat string) bool {
	return bytes.HasPrefix(s.data[s.pos:], []byte(pat))
}

func (s *scanner) skipString(pat string) error {
	if !s.hasPrefix(pat) {
		return s.error(fmt.Errorf("expected %q", pat))
	}
	s.pos += len(pat)
	return nil
}

// skipWhiteSpace skips white space and comments.
func (s *scanner) skipWhiteSpace() {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		switch {
		case isSpace(c):
			s.pos++
		case c == '%':
			for s.pos < len(s.data) && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
				s.pos++
			}
		default:
			return
		}
	}
}

// skipEOL skips a single end-of-line marker.
func (s *scanner) skipEOL() {
	switch {
	case s.hasPrefix("\r\n"):
		s.pos += 2
	case s.hasPrefix("\n"), s.hasPrefix("\r"):
		s.pos++
	}
}

func (s *scanner) readInteger() (int64, error) {
	start := s.pos
	if s.pos < len(s.data) && (s.data[s.pos] == '+' || s.data[s.pos] == '-') {
		s.pos++
	}
	for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
		s.pos++
	}
	x, err := strconv.ParseInt(string(s.data[start:s.pos]), 10, 64)
	if err != nil {
		s.pos = start
		return 0, s.error(errors.New("expected integer"))
	}
	return x, nil
}

func (s *scanner) readObject() (any, error) {
	s.skipWhiteSpace()
	if s.pos >= len(s.data) {
		return nil, s.error(io.ErrUnexpectedEOF)
	}

	switch c := s.data[s.pos]; {
	case s.hasPrefix("<<"):
		return s.readDictOrStream()
	case c == '<':
		return s.readHexString()
	case c == '[':
		return s.readArray()
	case c == '(':
		return s.readLiteralString()
	case c == '/':
		return s.readName()
	case s.hasKeyword("null"):
		s.pos += 4
		return nil, nil
	case s.hasKeyword("true"):
		s.pos += 4
		return true, nil
	case s.hasKeyword("false"):
		s.pos += 5
		return false, nil
	case isDigit(c) || c == '+' || c == '-' || c == '.':
		return s.readNumberOrReference()
	default:
		return nil, s.error(fmt.Errorf("unexpected character %q", c))
	}
}

// hasKeyword checks for a keyword which is followed by a delimiter, white
// space, or the end of the data.
func (s *scanner) hasKeyword(kw string) bool {
	if !s.hasPrefix(kw) {
		return false
	}
	end := s.pos + len(kw)
	return end == len(s.data) || isSpace(s.data[end]) || isDelimiter(s.data[end])
}

func (s *scanner) readNumberOrReference() (any, error) {
	start := s.pos
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if !isDigit(c) && c != '+' && c != '-' && c != '.' {
			break
		}
		s.pos++
	}
	token := string(s.data[start:s.pos])

	if bytes.ContainsRune([]byte(token), '.') {
		x, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, s.error(fmt.Errorf("malformed number %q", token))
		}
		return x, nil
	}
	x, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, s.error(fmt.Errorf("malformed number %q", token))
	}

	// Check whether this is the start of a reference "n g R".
	if x > 0 && token[0] != '+' && token[0] != '-' {
		afterNumber := s.pos
		s.skipWhiteSpace()
		gStart := s.pos
		for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
			s.pos++
		}
		if s.pos > gStart {
			gen, err := strconv.Atoi(string(s.data[gStart:s.pos]))
			s.skipWhiteSpace()
			if err == nil && s.hasKeyword("R") {
				s.pos++
				return Ref{Number: int(x), Generation: gen}, nil
			}
		}
		s.pos = afterNumber
	}
	return x, nil
}

func (s *scanner) readName() (any, error) {
	s.pos++ // skip '/'
	var name []byte
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if isSpace(c) || isDelimiter(c) {
			break
		}
		if c == '#' {
			if s.pos+3 > len(s.data) {
				return nil, s.error(errors.New("truncated #XX escape in name"))
			}
			x, err := strconv.ParseUint(string(s.data[s.pos+1:s.pos+3]), 16, 8)
			if err != nil {
				return nil, s.error(errors.New("malformed #XX escape in name"))
			}
			name = append(name, byte(x))
			s.pos += 3
			continue
		}
		name = append(name, c)
		s.pos++
	}
	return Name(name), nil
}

func (s *scanner) readLiteralString() (any, error) {
	s.pos++ // skip '('
	res := String{}
	level := 0
	for {
		if s.pos >= len(s.data) {
			return nil, s.error(errors.New("unterminated string"))
		}
		c := s.data[s.pos]
		s.pos++
		switch c {
		case '(':
			level++
			res = append(res, c)
		case ')':
			if level == 0 {
				return res, nil
			}
			level--
			res = append(res, c)
		case '\r':
			// an unescaped end-of-line marker is read as a single newline
			if s.pos < len(s.data) && s.data[s.pos] == '\n' {
				s.pos++
			}
			res = append(res, '\n')
		case '\\':
			if s.pos >= len(s.data) {
				return nil, s.error(errors.New("unterminated string"))
			}
			c = s.data[s.pos]
			s.pos++
			switch c {
			case 'n':
				res = append(res, '\n')
			case 'r':
				res = append(res, '\r')
			case 't':
				res = append(res, '\t')
			case 'b':
				res = append(res, '\b')
			case 'f':
				res = append(res, '\f')
			case '\r':
				if s.pos < len(s.data) && s.data[s.pos] == '\n' {
					s.pos++
				}
			case '\n':
				// line continuation
			default:
				if c >= '0' && c <= '7' {
					val := int(c - '0')
					for k := 0; k < 2 && s.pos < len(s.data); k++ {
						d := s.data[s.pos]
						if d < '0' || d > '7' {
							break
						}
						val = 8*val + int(d-'0')
						s.pos++
					}
					res = append(res, byte(val))
				} else {
					res = append(res, c)
				}
			}
		default:
			res = append(res, c)
		}
	}
}

func (s *scanner) readHexString() (any, error) {
	s.pos++ // skip '<'
	var digits []byte
	for {
		if s.pos >= len(s.data) {
			return nil, s.error(errors.New("unterminated hex string"))
		}
		c := s.data[s.pos]
		s.pos++
		if c == '>' {
			break
		}
		if isSpace(c) {
			continue
		}
		digits = append(digits, c)
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	res := make(String, len(digits)/2)
	for i := range res {
		x, err := strconv.ParseUint(string(digits[2*i:2*i+2]), 16, 8)
		if err != nil {
			return nil, s.error(errors.New("malformed hex string"))
		}
		res[i] = byte(x)
	}
	return res, nil
}

func (s *scanner) readArray() (any, error) {
	s.pos++ // skip '['
	res := Array{}
	for {
		s.skipWhiteSpace()
		if s.pos >= len(s.data) {
			return nil, s.error(errors.New("unterminated array"))
		}
		if s.data[s.pos] == ']' {
			s.pos++
			return res, nil
		}
		obj, err := s.readObject()
		if err != nil {
			return nil, err
		}
		res = append(res, obj)
	}
}

func (s *scanner) readDictOrStream() (any, error) {
	s.pos += 2 // skip "<<"
	dict := Dict{}
	for {
		s.skipWhiteSpace()
		if s.hasPrefix(">>") {
			s.pos += 2
			break
		}
		if s.pos >= len(s.data) || s.data[s.pos] != '/' {
			return nil, s.error(errors.New("expected name as dictionary key"))
		}
		key, err := s.readName()
		if err != nil {
			return nil, err
		}
		val, err := s.readObject()
		if err != nil {
			return nil, err
		}
		if val != nil {
			dict[key.(Name)] = val
		}
	}

	afterDict := s.pos
	s.skipWhiteSpace()
	if !s.hasKeyword("stream") {
		s.pos = afterDict
		return dict, nil
	}
	s.pos += len("stream")
	s.skipEOL()

	length, ok := dict["Length"].(int64)
	if !ok || length < 0 || s.pos+int(length) > len(s.data) {
		return nil, s.error(errors.New("invalid stream /Length"))
	}
	data := s.data[s.pos : s.pos+int(length)]
	s.pos += int(length)
	s.skipWhiteSpace()
	err := s.skipString("endstream")
	if err != nil {
		return nil, err
	}
	return &Stream{Dict: dict, Data: data}, nil
}

func isSpace(c byte) bool {
	switch c {
	case 0, 9, 10, 12, 13, 32:
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
