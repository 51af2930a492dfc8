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

// Counter allocates object numbers.  Numbers are handed out in increasing
// order and are never reused.
type Counter struct {
	next int
}

// NewCounter returns a counter which starts at the given value.
// Object numbers start at 1, since object 0 is the head of the free list.
func NewCounter(start int) *Counter {
	return &Counter{next: start}
}

// Next returns the current value of the counter and increments it.
func (c *Counter) Next() int {
	res := c.next
	c.next++
	return res
}

// Peek returns the value the next call to Next will return.
func (c *Counter) Peek() int {
	return c.next
}
