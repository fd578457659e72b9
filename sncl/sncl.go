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

// Package sncl implements a static nested containment list: an
// immutable, batch-built index that groups intervals by containment so a
// stabbing query only ever has to look at candidates whose enclosing
// interval already matched.
package sncl

import (
	"github.com/kortschak/ivl/interval"
	"github.com/kortschak/ivl/sortutil"
)

// Operation is applied to matched intervals during a stabbing query. If
// it returns true the search stops early.
type Operation func(*interval.Interval) (done bool)

type node struct {
	iv       *interval.Interval
	span     interval.Interval // hull of iv and every descendant, for pruning
	children []*node
}

// SNCL is a static nested containment list built once, by Build, from a
// batch of intervals. It never mutates after construction.
type SNCL struct {
	sorted []*interval.Interval // full backing array, canonical order
	roots  []*node
}

// Build indexes items, which need not be pre-sorted or containment-free.
// The returned SNCL does not alias items; Build copies the slice before
// sorting it.
func Build(items []*interval.Interval) *SNCL {
	sorted := append([]*interval.Interval(nil), items...)
	sortutil.TimSort(sorted, interval.CanonicalComparer())

	var stack []*node
	var roots []*node
	attach := func(n *node) {
		if len(stack) > 0 {
			p := stack[len(stack)-1]
			p.children = append(p.children, n)
			p.span = interval.Hull(p.span, n.span)
		} else {
			roots = append(roots, n)
		}
	}
	for _, iv := range sorted {
		for len(stack) > 0 && !stack[len(stack)-1].iv.Contains(*iv) {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			attach(n)
		}
		n := &node{iv: iv, span: *iv}
		stack = append(stack, n)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		attach(n)
	}

	return &SNCL{sorted: sorted, roots: roots}
}

// Len returns the number of intervals indexed.
func (s *SNCL) Len() int { return len(s.sorted) }

// At returns the i'th interval in canonical order. It panics if i is
// outside [0, Len()).
func (s *SNCL) At(i int) *interval.Interval {
	if i < 0 || i >= len(s.sorted) {
		panic("sncl: index out of range")
	}
	return s.sorted[i]
}

// Do applies fn to every indexed interval in canonical order, stopping
// early if fn returns true.
func (s *SNCL) Do(fn Operation) (done bool) {
	for _, iv := range s.sorted {
		if fn(iv) {
			return true
		}
	}
	return false
}

// StabPoint applies fn, in canonical order, to every indexed interval
// that contains p.
func (s *SNCL) StabPoint(p interval.Endpoint, fn Operation) (done bool) {
	return s.StabRange(interval.NewPoint(p), fn)
}

// StabRange applies fn, in canonical order, to every indexed interval
// that overlaps q.
func (s *SNCL) StabRange(q *interval.Interval, fn Operation) (done bool) {
	matches := s.collect(q)
	sortutil.StableSort(matches, interval.CanonicalComparer())
	for _, iv := range matches {
		if fn(iv) {
			return true
		}
	}
	return false
}

func (s *SNCL) collect(q *interval.Interval) []*interval.Interval {
	var out []*interval.Interval
	var walk func(n *node)
	walk = func(n *node) {
		if !n.span.Overlaps(*q) {
			return
		}
		if n.iv.Overlaps(*q) {
			out = append(out, n.iv)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	for _, r := range s.roots {
		walk(r)
	}
	return out
}

// MaximumDepth returns the greatest number of mutually nested intervals
// in the index, i.e. the height of the containment forest plus one. It
// returns 0 for an empty SNCL.
func (s *SNCL) MaximumDepth() int {
	var depth func(n *node) int
	depth = func(n *node) int {
		best := 0
		for _, c := range n.children {
			if d := depth(c); d > best {
				best = d
			}
		}
		return best + 1
	}
	best := 0
	for _, r := range s.roots {
		if d := depth(r); d > best {
			best = d
		}
	}
	return best
}
