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

package sortutil_test

import (
	"math/rand"
	"strconv"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/kortschak/ivl/interval"
	"github.com/kortschak/ivl/sortutil"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

type Int int

func (i Int) Compare(other interval.Endpoint) int { return int(i) - int(other.(Int)) }
func (i Int) String() string                      { return strconv.Itoa(int(i)) }

func pt(n int) *interval.Interval { return interval.NewPoint(Int(n)) }

func isSortedByLow(items []*interval.Interval) bool {
	for i := 1; i < len(items); i++ {
		if items[i-1].Low().Compare(items[i].Low()) > 0 {
			return false
		}
	}
	return true
}

// TestStableSortStability is testable property 10: equal-keyed elements
// keep their relative order.
func (s *S) TestStableSortStability(c *check.C) {
	items := make([]*interval.Interval, 0, 40)
	tags := make(map[*interval.Interval]int)
	for i := 0; i < 40; i++ {
		iv := pt(i % 5)
		items = append(items, iv)
		tags[iv] = i
	}
	sortutil.StableSort(items, interval.CanonicalComparer())
	c.Check(isSortedByLow(items), check.Equals, true)

	var lastKey, lastTag = -1, -1
	for _, iv := range items {
		key := int(iv.Low().(Int))
		tag := tags[iv]
		if key == lastKey {
			c.Check(tag > lastTag, check.Equals, true, check.Commentf("stable sort reordered equal-keyed elements"))
		}
		lastKey, lastTag = key, tag
	}
}

func (s *S) TestStableSortRandom(c *check.C) {
	r := rand.New(rand.NewSource(1))
	items := make([]*interval.Interval, 200)
	for i := range items {
		items[i] = pt(r.Intn(50))
	}
	sortutil.StableSort(items, interval.CanonicalComparer())
	c.Check(isSortedByLow(items), check.Equals, true)
}

func (s *S) TestTimSortMatchesStableSort(c *check.C) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 20; trial++ {
		n := r.Intn(300)
		items := make([]*interval.Interval, n)
		for i := range items {
			items[i] = pt(r.Intn(80))
		}
		want := append([]*interval.Interval(nil), items...)
		sortutil.StableSort(want, interval.CanonicalComparer())

		got := append([]*interval.Interval(nil), items...)
		sortutil.TimSort(got, interval.CanonicalComparer())

		for i := range want {
			c.Check(want[i].IntervalEquals(*got[i]), check.Equals, true, check.Commentf("mismatch at %d on trial %d", i, trial))
		}
	}
}

// TestTimSortAcrossRunBoundary regresses a once-broken right-run length
// calculation in the bottom-up merge: a batch just over one minRun block
// forces a merge whose right run is shorter than the left.
func (s *S) TestTimSortAcrossRunBoundary(c *check.C) {
	items := make([]*interval.Interval, 40)
	for i := range items {
		items[i] = pt(39 - i)
	}
	sortutil.TimSort(items, interval.CanonicalComparer())
	c.Check(isSortedByLow(items), check.Equals, true)
	c.Check(int(items[0].Low().(Int)), check.Equals, 0)
	c.Check(int(items[len(items)-1].Low().(Int)), check.Equals, 39)
}
