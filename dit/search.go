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

package dit

import (
	"github.com/kortschak/ivl/interval"
	"github.com/kortschak/ivl/merge"
)

type bound struct{ first, last int }

// Do applies fn to every stored interval, in canonical order, stopping
// early if fn returns true. Each interval is attached to exactly one
// node's Low layer by its low bound, so a single pass over every node's
// Low layer already visits every interval exactly once; the per-node
// runs are merged back into canonical order.
func (t *Tree) Do(fn Operation) bool {
	var backing []*interval.Interval
	var bounds []bound
	collectLow(t.root, &backing, &bounds)
	return drain(backing, bounds, interval.CanonicalComparer(), fn)
}

func collectLow(n *node, backing *[]*interval.Interval, bounds *[]bound) {
	if n == nil {
		return
	}
	collectLow(n.left, backing, bounds)
	start := len(*backing)
	n.low.EnumerateFromIndex(0, func(iv *interval.Interval) bool {
		*backing = append(*backing, iv)
		return false
	})
	if len(*backing) > start {
		*bounds = append(*bounds, bound{start, len(*backing)})
	}
	collectLow(n.right, backing, bounds)
}

// DoReverse applies fn to every stored interval in reverse canonical
// order, stopping early if fn returns true.
func (t *Tree) DoReverse(fn Operation) bool {
	var backing []*interval.Interval
	var bounds []bound
	collectLowReverse(t.root, &backing, &bounds)
	reverse := func(a, b interval.Interval) int { return -interval.CanonicalComparer()(a, b) }
	return drain(backing, bounds, reverse, fn)
}

func collectLowReverse(n *node, backing *[]*interval.Interval, bounds *[]bound) {
	if n == nil {
		return
	}
	collectLowReverse(n.right, backing, bounds)
	start := len(*backing)
	n.low.EnumerateBackwardsFromIndex(n.low.Len()-1, func(iv *interval.Interval) bool {
		*backing = append(*backing, iv)
		return false
	})
	if len(*backing) > start {
		*bounds = append(*bounds, bound{start, len(*backing)})
	}
	collectLowReverse(n.left, backing, bounds)
}

// StabPoint applies fn, in canonical order, to every stored interval
// that contains p, stopping early if fn returns true.
func (t *Tree) StabPoint(p interval.Endpoint, fn Operation) bool {
	return t.Stab(interval.NewPoint(p), fn)
}

// Stab applies fn, in canonical order, to every stored interval that
// overlaps q, stopping early if fn returns true. The tree is descended
// once; subtrees whose span cannot overlap q are pruned without being
// visited.
func (t *Tree) Stab(q *interval.Interval, fn Operation) bool {
	var backing []*interval.Interval
	var bounds []bound
	collectOverlapping(t.root, q, &backing, &bounds)
	return drain(backing, bounds, interval.CanonicalComparer(), fn)
}

func collectOverlapping(n *node, q *interval.Interval, backing *[]*interval.Interval, bounds *[]bound) {
	if n == nil || !n.span.Overlaps(*q) {
		return
	}
	collectOverlapping(n.left, q, backing, bounds)

	// Every stored interval is attached to exactly one node's Low layer,
	// by its low bound, and that node's span always contains the
	// interval itself. So an interval overlapping q is always reachable
	// here through n.low for some visited n; scanning n.high as well
	// would emit it a second time.
	start := len(*backing)
	n.low.EnumerateFromIndex(0, func(iv *interval.Interval) bool {
		if iv.Overlaps(*q) {
			*backing = append(*backing, iv)
		}
		return false
	})
	if len(*backing) > start {
		*bounds = append(*bounds, bound{start, len(*backing)})
	}

	collectOverlapping(n.right, q, backing, bounds)
}

func drain(backing []*interval.Interval, bounds []bound, cmp interval.Comparer, fn Operation) bool {
	if len(bounds) == 0 {
		return false
	}
	q := merge.New(len(bounds), cmp)
	for _, b := range bounds {
		q.Insert(backing, b.first, b.last)
	}
	for !q.IsEmpty() {
		iv, err := q.Pop()
		if err != nil {
			return false
		}
		if fn(iv) {
			return true
		}
	}
	return false
}
