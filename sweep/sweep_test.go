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

package sweep_test

import (
	"math/rand"
	"strconv"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/kortschak/ivl/interval"
	"github.com/kortschak/ivl/sweep"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

type Int int

func (i Int) Compare(other interval.Endpoint) int { return int(i) - int(other.(Int)) }
func (i Int) String() string                      { return strconv.Itoa(int(i)) }

func mustNew(c *check.C, lo, hi int, loIncl, hiIncl bool) *interval.Interval {
	iv, err := interval.New(Int(lo), Int(hi), loIncl, hiIncl)
	c.Assert(err, check.IsNil)
	return iv
}

// TestMaximumDepthScenarioS1 is scenario S1's maximumDepth assertion.
func (s *S) TestMaximumDepthScenarioS1(c *check.C) {
	items := []*interval.Interval{
		mustNew(c, 1, 5, true, false),
		mustNew(c, 2, 3, true, true),
		mustNew(c, 4, 7, true, false),
		mustNew(c, 10, 12, true, true),
	}
	c.Check(sweep.MaximumDepth(items), check.Equals, 2)
}

func (s *S) TestMaximumDepthEmpty(c *check.C) {
	c.Check(sweep.MaximumDepth(nil), check.Equals, 0)
}

func (s *S) TestMaximumDepthStackedPoints(c *check.C) {
	items := []*interval.Interval{
		interval.NewPoint(Int(5)),
		interval.NewPoint(Int(5)),
		interval.NewPoint(Int(5)),
	}
	c.Check(sweep.MaximumDepth(items), check.Equals, 3)
}

// TestGapsLawBruteForce is testable property 9: gaps(C) is a sequence of
// pairwise-disjoint maximal intervals covering span \ union(C), checked
// here by brute-force point sampling over an integer domain.
func (s *S) TestGapsLawBruteForce(c *check.C) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		n := 1 + r.Intn(8)
		items := make([]*interval.Interval, 0, n)
		lowest, highest := 1000, -1000
		for i := 0; i < n; i++ {
			lo := r.Intn(50)
			hi := lo + 1 + r.Intn(10)
			items = append(items, mustNew(c, lo, hi, true, false))
			if lo < lowest {
				lowest = lo
			}
			if hi > highest {
				highest = hi
			}
		}
		span := mustNew(c, lowest, highest, true, true)
		gaps := sweep.Gaps(*span, items)

		for i := 1; i < len(gaps); i++ {
			c.Check(gaps[i-1].Overlaps(*gaps[i]), check.Equals, false, check.Commentf("gaps must be pairwise disjoint"))
		}

		for p := lowest; p <= highest; p++ {
			covered := false
			for _, iv := range items {
				if iv.OverlapsPoint(Int(p)) {
					covered = true
					break
				}
			}
			inGap := false
			for _, g := range gaps {
				if g.OverlapsPoint(Int(p)) {
					inGap = true
					break
				}
			}
			c.Check(covered != inGap, check.Equals, true, check.Commentf("point %d: covered=%v inGap=%v", p, covered, inGap))
		}
	}
}

func (s *S) TestGapsNoCoverage(c *check.C) {
	span := mustNew(c, 1, 10, true, true)
	gaps := sweep.Gaps(*span, nil)
	c.Assert(gaps, check.HasLen, 1)
	c.Check(gaps[0].IntervalEquals(*span), check.Equals, true)
}

func (s *S) TestGapsFullyCovered(c *check.C) {
	span := mustNew(c, 1, 10, true, false)
	items := []*interval.Interval{mustNew(c, 1, 10, true, false)}
	gaps := sweep.Gaps(*span, items)
	c.Check(gaps, check.HasLen, 0)
}

func (s *S) TestGapsAdjacentClosedIntervalsLeaveNoPointGap(c *check.C) {
	span := mustNew(c, 1, 10, true, true)
	items := []*interval.Interval{
		mustNew(c, 1, 5, true, true),
		mustNew(c, 5, 10, true, true),
	}
	gaps := sweep.Gaps(*span, items)
	c.Check(gaps, check.HasLen, 0)
}

func (s *S) TestGapsSingleExcludedPoint(c *check.C) {
	span := mustNew(c, 1, 10, true, true)
	items := []*interval.Interval{
		mustNew(c, 1, 5, true, false),
		mustNew(c, 5, 10, false, true),
	}
	gaps := sweep.Gaps(*span, items)
	c.Assert(gaps, check.HasLen, 1)
	c.Check(gaps[0].IntervalEquals(*mustNew(c, 5, 5, true, true)), check.Equals, true)
}
