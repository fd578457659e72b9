// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package collection captures the shared surface of this module's three
// interval collections (layer.Layer, sncl.SNCL, dit.Tree) as a small
// capability tower, and implements the handful of operations that are
// derivable from that surface once, rather than once per concrete type.
package collection

import (
	"github.com/kortschak/ivl/interval"
	"github.com/kortschak/ivl/sweep"
)

// Operation is applied to a stored interval during enumeration or
// overlap reporting. If it returns true the traversal stops early.
type Operation func(*interval.Interval) (done bool)

// Collection is the minimal capability every interval collection in
// this module provides: its size, its span, membership mutation, and
// overlap reporting. Overlapping with a query equal to the collection's
// own span reports every stored interval, which is how the free
// functions below derive whole-collection operations without a
// separate full-enumeration method.
type Collection interface {
	Len() int
	// Span returns the smallest interval enclosing every stored
	// interval, and false if the collection is empty.
	Span() (interval.Interval, bool)
	Add(iv *interval.Interval) bool
	Remove(iv *interval.Interval) bool
	Clear()
	Overlapping(q *interval.Interval, fn Operation) (stopped bool)
}

// Sorted is a Collection that can additionally enumerate its members in
// canonical order, forwards or backwards.
type Sorted interface {
	Collection
	Sorted(fn Operation) (stopped bool)
	SortedBackwards(fn Operation) (stopped bool)
}

// Indexed is a Sorted collection whose members can also be read by
// canonical rank.
type Indexed interface {
	Sorted
	At(i int) *interval.Interval
}

// allOf collects every member of c by querying with c's own span.
func allOf(c Collection) []*interval.Interval {
	span, ok := c.Span()
	if !ok {
		return nil
	}
	var items []*interval.Interval
	c.Overlapping(&span, func(iv *interval.Interval) bool {
		items = append(items, iv)
		return false
	})
	return items
}

// Gaps returns the pairwise-disjoint, maximal sub-intervals of c's span
// not covered by any member of c, in canonical order.
func Gaps(c Collection) []*interval.Interval {
	span, ok := c.Span()
	if !ok {
		return nil
	}
	return sweep.Gaps(span, allOf(c))
}

// MaximumDepth returns the largest number of pairwise-overlapping
// members of c at any point, or 0 if c is empty.
func MaximumDepth(c Collection) int {
	return sweep.MaximumDepth(allOf(c))
}

// FindOverlap reports whether any member of c overlaps q.
func FindOverlap(c Collection, q *interval.Interval) bool {
	found := false
	c.Overlapping(q, func(*interval.Interval) bool {
		found = true
		return true
	})
	return found
}

// Lowest returns the canonically smallest stored interval, and false if
// c is empty.
func Lowest(c Collection) (*interval.Interval, bool) {
	items := allOf(c)
	if len(items) == 0 {
		return nil, false
	}
	best := items[0]
	for _, iv := range items[1:] {
		if iv.Compare(*best) < 0 {
			best = iv
		}
	}
	return best, true
}

// Highest returns the canonically greatest stored interval, and false
// if c is empty. It is the dual of Lowest.
func Highest(c Collection) (*interval.Interval, bool) {
	items := allOf(c)
	if len(items) == 0 {
		return nil, false
	}
	best := items[0]
	for _, iv := range items[1:] {
		if iv.Compare(*best) > 0 {
			best = iv
		}
	}
	return best, true
}

// CountOverlaps reports how many members of c overlap q.
func CountOverlaps(c Collection, q *interval.Interval) int {
	n := 0
	c.Overlapping(q, func(*interval.Interval) bool {
		n++
		return false
	})
	return n
}
