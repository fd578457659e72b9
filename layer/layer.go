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

// Package layer implements the endpoint-sorted Layer: a sorted,
// conflict-free sequence of intervals used as a building block by every
// higher-level collection in this module.
package layer

import (
	"sort"

	"github.com/kortschak/ivl/interval"
)

// A Conflict reports whether two canonically adjacent intervals may not
// both be stored in the same Layer. Callers supply "overlaps" or
// "contains"; the predicate is applied symmetrically by the Layer.
type Conflict func(a, b *interval.Interval) bool

// NoOverlap rejects adjacent intervals that overlap.
func NoOverlap(a, b *interval.Interval) bool { return a.Overlaps(*b) }

// NoContainment rejects adjacent intervals where either contains the
// other.
func NoContainment(a, b *interval.Interval) bool {
	return a.Contains(*b) || b.Contains(*a)
}

// Operation is applied to stored intervals during enumeration. If it
// returns true the enumeration stops early.
type Operation func(*interval.Interval) (done bool)

// A Layer owns an ordered, conflict-free sequence of interval
// references. See package doc and spec §4.2 for the full contract.
type Layer struct {
	items     []*interval.Interval
	conflicts Conflict
}

// New returns an empty Layer that rejects adjacent pairs for which
// conflicts reports true. A nil conflicts accepts everything.
func New(conflicts Conflict) *Layer {
	return &Layer{conflicts: conflicts}
}

// Len returns the number of intervals stored in the Layer.
func (l *Layer) Len() int { return len(l.items) }

// At returns the interval at index i. It panics if i is outside
// [0, Len()), per the OutOfRange error policy.
func (l *Layer) At(i int) *interval.Interval {
	if i < 0 || i >= len(l.items) {
		panic("layer: index out of range")
	}
	return l.items[i]
}

// Find returns the lowest index of an interval canonically equal to q, or
// the bitwise complement of q's insertion point if no stored interval is
// canonically equal to q.
func (l *Layer) Find(q *interval.Interval) int {
	n := len(l.items)
	i := sort.Search(n, func(i int) bool { return l.items[i].Compare(*q) >= 0 })
	if i < n && l.items[i].Compare(*q) == 0 {
		return i
	}
	return ^i
}

// FindFirstOverlap returns the smallest index i such that items[i]
// overlaps q, or Len() if no stored interval overlaps q.
//
// The search relies on items[i].High() being non-decreasing in i, which
// holds for any Layer maintained under NoOverlap or NoContainment: either
// predicate forbids one canonically-later neighbour from ending before an
// earlier one without containing it. A Layer built with a weaker or nil
// Conflict does not carry that guarantee and should be scanned instead.
func (l *Layer) FindFirstOverlap(q *interval.Interval) int {
	n := len(l.items)
	i := sort.Search(n, func(i int) bool { return interval.CompareLowHigh(*q, *l.items[i]) <= 0 })
	if i < n && l.items[i].Overlaps(*q) {
		return i
	}
	return n
}

// FindLastOverlap returns the smallest index i such that no interval at
// i, i+1, ... overlaps q. See FindFirstOverlap for the ordering
// assumption this relies on.
func (l *Layer) FindLastOverlap(q *interval.Interval) int {
	n := len(l.items)
	return sort.Search(n, func(i int) bool { return interval.CompareLowHigh(*l.items[i], *q) > 0 })
}

// Add inserts iv at its canonical position. If either resulting
// neighbour conflicts with iv, the Layer is left unchanged and Add
// returns false.
func (l *Layer) Add(iv *interval.Interval) bool {
	pos := l.Find(iv)
	if pos < 0 {
		pos = ^pos
	}
	if l.conflicts != nil {
		if pos > 0 && l.conflicts(l.items[pos-1], iv) {
			return false
		}
		if pos < len(l.items) && l.conflicts(iv, l.items[pos]) {
			return false
		}
	}
	l.items = append(l.items, nil)
	copy(l.items[pos+1:], l.items[pos:])
	l.items[pos] = iv
	return true
}

// Remove deletes the first interval in canonical-equality range whose
// identity matches iv. Two value-equal but distinct interval objects are
// not interchangeable: Remove will not delete a different object that
// merely compares equal. It returns false if no matching identity is
// found.
func (l *Layer) Remove(iv *interval.Interval) bool {
	pos := l.Find(iv)
	if pos < 0 {
		return false
	}
	for i := pos; i < len(l.items) && l.items[i].Compare(*iv) == 0; i++ {
		if l.items[i] == iv {
			copy(l.items[i:], l.items[i+1:])
			l.items[len(l.items)-1] = nil
			l.items = l.items[:len(l.items)-1]
			return true
		}
	}
	return false
}

// Clear empties the Layer.
func (l *Layer) Clear() { l.items = nil }

// EnumerateFromIndex applies fn to items[i:], in order, stopping early
// if fn returns true.
func (l *Layer) EnumerateFromIndex(i int, fn Operation) (done bool) {
	for ; i < len(l.items); i++ {
		if fn(l.items[i]) {
			return true
		}
	}
	return false
}

// EnumerateBackwardsFromIndex applies fn to items[i], items[i-1], ...,
// items[0], stopping early if fn returns true.
func (l *Layer) EnumerateBackwardsFromIndex(i int, fn Operation) (done bool) {
	for ; i >= 0; i-- {
		if fn(l.items[i]) {
			return true
		}
	}
	return false
}

// EnumerateRange applies fn to items[from:to], in order, stopping early
// if fn returns true.
func (l *Layer) EnumerateRange(from, to int, fn Operation) (done bool) {
	for i := from; i < to; i++ {
		if fn(l.items[i]) {
			return true
		}
	}
	return false
}
