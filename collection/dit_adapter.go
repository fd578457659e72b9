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
	"github.com/kortschak/ivl/dit"
	"github.com/kortschak/ivl/interval"
)

// DIT adapts a *dit.Tree to Sorted. A dynamic interval tree has no
// stable rank-to-interval mapping across mutations, so it satisfies
// Sorted but not Indexed.
type DIT struct{ *dit.Tree }

var _ Sorted = DIT{}

// Add always succeeds: a Tree has no rejection predicate at the
// collection level.
func (d DIT) Add(iv *interval.Interval) bool {
	d.Insert(iv)
	return true
}

func (d DIT) Remove(iv *interval.Interval) bool { return d.Delete(iv) }

func (d DIT) Overlapping(q *interval.Interval, fn Operation) bool {
	return d.Stab(q, dit.Operation(fn))
}

func (d DIT) Sorted(fn Operation) bool { return d.Do(dit.Operation(fn)) }

func (d DIT) SortedBackwards(fn Operation) bool { return d.DoReverse(dit.Operation(fn)) }
