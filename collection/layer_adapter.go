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

package collection

import (
	"github.com/kortschak/ivl/interval"
	"github.com/kortschak/ivl/layer"
)

// Layer adapts a *layer.Layer to Indexed. Overlapping relies on the
// monotonic-high invariant FindFirstOverlap/FindLastOverlap document,
// so it is only sound for a Layer maintained under layer.NoOverlap or
// layer.NoContainment.
type Layer struct{ *layer.Layer }

var (
	_ Indexed = Layer{}
)

func (l Layer) Span() (interval.Interval, bool) {
	if l.Len() == 0 {
		return interval.Interval{}, false
	}
	span := *l.At(0)
	for i := 1; i < l.Len(); i++ {
		span = interval.Hull(span, *l.At(i))
	}
	return span, true
}

func (l Layer) Overlapping(q *interval.Interval, fn Operation) bool {
	first := l.FindFirstOverlap(q)
	last := l.FindLastOverlap(q)
	return l.EnumerateRange(first, last, layer.Operation(fn))
}

func (l Layer) Sorted(fn Operation) bool {
	return l.EnumerateFromIndex(0, layer.Operation(fn))
}

func (l Layer) SortedBackwards(fn Operation) bool {
	return l.EnumerateBackwardsFromIndex(l.Len()-1, layer.Operation(fn))
}
