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

// Package sweep answers depth and coverage questions over a set of
// intervals by run-length encoding the +1/-1 events at their bounds,
// the way step.go run-length encodes high-volume positional data, but
// as a one-shot batch pass rather than a mutable backing tree: callers
// get a depth profile keyed by endpoint, not an updatable vector.
package sweep

import (
	"sort"

	"github.com/kortschak/ivl/interval"
)

type breakpoint struct {
	pos                           interval.Endpoint
	lowInclStarts, lowExclStarts  int
	highInclEnds, highExclEnds    int
}

// profile builds the sorted, deduplicated list of endpoint positions
// touched by items, together with the depth at each position and the
// depth of the open segment immediately following it (segDepth[i] is
// undefined for the final breakpoint, since there is no segment past
// it).
func profile(items []*interval.Interval) (bps []breakpoint, pointDepth, segDepth []int) {
	type raw struct {
		pos  interval.Endpoint
		kind int
	}
	const (
		lowIncl = iota
		lowExcl
		highIncl
		highExcl
	)
	events := make([]raw, 0, 2*len(items))
	for _, iv := range items {
		if iv.LowIncluded() {
			events = append(events, raw{iv.Low(), lowIncl})
		} else {
			events = append(events, raw{iv.Low(), lowExcl})
		}
		if iv.HighIncluded() {
			events = append(events, raw{iv.High(), highIncl})
		} else {
			events = append(events, raw{iv.High(), highExcl})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].pos.Compare(events[j].pos) < 0
	})

	for _, ev := range events {
		if len(bps) == 0 || bps[len(bps)-1].pos.Compare(ev.pos) != 0 {
			bps = append(bps, breakpoint{pos: ev.pos})
		}
		b := &bps[len(bps)-1]
		switch ev.kind {
		case lowIncl:
			b.lowInclStarts++
		case lowExcl:
			b.lowExclStarts++
		case highIncl:
			b.highInclEnds++
		case highExcl:
			b.highExclEnds++
		}
	}

	pointDepth = make([]int, len(bps))
	segDepth = make([]int, len(bps))
	running := 0
	for i, b := range bps {
		pointDepth[i] = running + b.lowInclStarts - b.highExclEnds
		running = pointDepth[i] + b.lowExclStarts - b.highInclEnds
		segDepth[i] = running
	}
	return bps, pointDepth, segDepth
}

// MaximumDepth returns the largest number of pairwise-overlapping
// intervals found at any point covered by items. It returns 0 for an
// empty set.
func MaximumDepth(items []*interval.Interval) int {
	bps, pointDepth, segDepth := profile(items)
	max := 0
	for i := range bps {
		if pointDepth[i] > max {
			max = pointDepth[i]
		}
		if i < len(bps)-1 && segDepth[i] > max {
			max = segDepth[i]
		}
	}
	return max
}

// Gaps returns the pairwise-disjoint, maximal sub-intervals of span not
// covered by any member of items, in canonical order. items need not be
// sorted and may extend outside span; points outside span never appear
// in the result.
func Gaps(span interval.Interval, items []*interval.Interval) []*interval.Interval {
	bps, pointDepth, segDepth := profile(items)
	if len(bps) == 0 {
		return []*interval.Interval{&span}
	}

	type elem struct {
		depth int
		span  interval.Interval
	}
	var elems []elem
	if lead, err := interval.New(span.Low(), bps[0].pos, span.LowIncluded(), false); err == nil {
		elems = append(elems, elem{depth: 0, span: *lead})
	}
	for i, b := range bps {
		includePoint := true
		if i == 0 && !span.LowIncluded() && b.pos.Compare(span.Low()) == 0 {
			includePoint = false
		}
		if i == len(bps)-1 && !span.HighIncluded() && b.pos.Compare(span.High()) == 0 {
			includePoint = false
		}
		if includePoint {
			elems = append(elems, elem{depth: pointDepth[i], span: *interval.NewPoint(b.pos)})
		}
		if i < len(bps)-1 {
			seg, err := interval.New(b.pos, bps[i+1].pos, false, false)
			if err == nil {
				elems = append(elems, elem{depth: segDepth[i], span: *seg})
			}
		}
	}
	if trail, err := interval.New(bps[len(bps)-1].pos, span.High(), false, span.HighIncluded()); err == nil {
		elems = append(elems, elem{depth: 0, span: *trail})
	}

	var gaps []*interval.Interval
	var run *interval.Interval
	flush := func() {
		if run == nil {
			return
		}
		if clipped, ok := run.IntersectionWith(span); ok {
			gaps = append(gaps, &clipped)
		}
		run = nil
	}
	for _, e := range elems {
		if e.depth != 0 {
			flush()
			continue
		}
		if run == nil {
			s := e.span
			run = &s
			continue
		}
		h := interval.Hull(*run, e.span)
		run = &h
	}
	flush()
	return gaps
}
