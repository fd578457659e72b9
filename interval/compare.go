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

package interval

// A Comparer orders two Intervals. Comparer(a, b) < 0 if a sorts before
// b, 0 if they are canonically equal, > 0 otherwise.
type Comparer func(a, b Interval) int

// CanonicalComparer returns the canonical ordering defined by
// Interval.Compare, usable anywhere a Comparer is required.
func CanonicalComparer() Comparer {
	return func(a, b Interval) int { return a.Compare(b) }
}

// CompareLowHigh compares x's low bound to y's high bound, the primitive
// the overlap relation and the output-sensitive Layer searches are built
// from. It treats x.low as strictly greater than y.high when the points
// coincide and either bound excludes it.
func CompareLowHigh(x, y Interval) int { return compareLowHigh(x, y) }

// Hull returns the smallest Interval whose point set contains every
// point in both a and b, regardless of whether a and b themselves
// overlap. It is the bounding operation span tracking is built on.
func Hull(a, b Interval) Interval {
	result := a
	if c := b.low.Compare(a.low); c < 0 || (c == 0 && b.lowIncl && !a.lowIncl) {
		result.low, result.lowIncl = b.low, b.lowIncl
	}
	if c := b.high.Compare(a.high); c > 0 || (c == 0 && b.highIncl && !a.highIncl) {
		result.high, result.highIncl = b.high, b.highIncl
	}
	return result
}
