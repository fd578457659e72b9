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

// Package merge implements a fixed-capacity k-way merge over disjoint
// sections of a single backing array of intervals, the primitive DIT
// enumeration and stabbing queries use to emit results in canonical order
// without copying the sections.
package merge

import (
	"container/heap"
	"errors"

	"github.com/kortschak/ivl/interval"
)

// ErrCapacityExceeded is returned by Insert when the Queue already holds
// as many sections as it was built to hold.
var ErrCapacityExceeded = errors.New("merge: capacity exceeded")

// ErrEmptyQueue is returned by Pop when no section holds any item.
var ErrEmptyQueue = errors.New("merge: empty queue")

type section struct {
	items []*interval.Interval
	seq   int
}

// sectionHeap implements container/heap.Interface over a set of sections,
// ordering by each section's head item under cmp and breaking ties by
// insertion order so the merge is stable.
type sectionHeap struct {
	sections []*section
	cmp      interval.Comparer
}

func (h *sectionHeap) Len() int { return len(h.sections) }

func (h *sectionHeap) Less(i, j int) bool {
	a, b := h.sections[i], h.sections[j]
	if c := h.cmp(*a.items[0], *b.items[0]); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

func (h *sectionHeap) Swap(i, j int) { h.sections[i], h.sections[j] = h.sections[j], h.sections[i] }

func (h *sectionHeap) Push(x any) { h.sections = append(h.sections, x.(*section)) }

func (h *sectionHeap) Pop() any {
	old := h.sections
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	h.sections = old[:n-1]
	return s
}

// A Queue merges a bounded number of already-sorted sections of a shared
// backing slice into a single canonically ordered stream. Sections are
// never copied: Insert records a subslice view, and Pop advances it in
// place.
type Queue struct {
	h    sectionHeap
	cap  int
	next int
}

// New returns an empty Queue able to hold up to capacity disjoint
// sections at once, ordered by cmp. A nil cmp uses canonical order.
func New(capacity int, cmp interval.Comparer) *Queue {
	if cmp == nil {
		cmp = interval.CanonicalComparer()
	}
	return &Queue{h: sectionHeap{cmp: cmp}, cap: capacity}
}

// Insert adds backing[first:last] as a new section. Sections must already
// be sorted by the Queue's Comparer. An empty range is a no-op. Insert
// fails with ErrCapacityExceeded if the Queue is already holding as many
// sections as its capacity allows.
func (q *Queue) Insert(backing []*interval.Interval, first, last int) error {
	if last <= first {
		return nil
	}
	if len(q.h.sections) >= q.cap {
		return ErrCapacityExceeded
	}
	heap.Push(&q.h, &section{items: backing[first:last:last], seq: q.next})
	q.next++
	return nil
}

// Pop removes and returns the least item, by the Queue's Comparer, across
// every inserted section. Ties between sections are broken by insertion
// order, so Pop is stable. It fails with ErrEmptyQueue once every section
// has been drained.
func (q *Queue) Pop() (*interval.Interval, error) {
	if len(q.h.sections) == 0 {
		return nil, ErrEmptyQueue
	}
	top := q.h.sections[0]
	item := top.items[0]
	top.items = top.items[1:]
	if len(top.items) == 0 {
		heap.Pop(&q.h)
	} else {
		heap.Fix(&q.h, 0)
	}
	return item, nil
}

// IsEmpty reports whether every inserted section has been fully drained.
func (q *Queue) IsEmpty() bool { return len(q.h.sections) == 0 }
