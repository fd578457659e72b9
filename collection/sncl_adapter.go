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
	"github.com/kortschak/ivl/sncl"
)

// SNCL adapts a *sncl.SNCL to Indexed. An SNCL is immutable once built,
// per spec §4.4, so Add and Remove always report failure and Clear is a
// no-op; rebuild with sncl.Build to change membership.
type SNCL struct{ *sncl.SNCL }

var _ Indexed = SNCL{}

func (s SNCL) Span() (interval.Interval, bool) {
	if s.Len() == 0 {
		return interval.Interval{}, false
	}
	span := *s.At(0)
	for i := 1; i < s.Len(); i++ {
		span = interval.Hull(span, *s.At(i))
	}
	return span, true
}

func (s SNCL) Add(*interval.Interval) bool { return false }
func (s SNCL) Remove(*interval.Interval) bool { return false }
func (s SNCL) Clear() {}

func (s SNCL) Overlapping(q *interval.Interval, fn Operation) bool {
	return s.StabRange(q, sncl.Operation(fn))
}

func (s SNCL) Sorted(fn Operation) bool {
	return s.Do(sncl.Operation(fn))
}

func (s SNCL) SortedBackwards(fn Operation) bool {
	n := s.Len()
	for i := n - 1; i >= 0; i-- {
		if fn(s.At(i)) {
			return true
		}
	}
	return false
}
