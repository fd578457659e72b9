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

// Package sortutil provides the stable sorts the batch constructors in
// this module build on: a plain top-down merge sort, and a run-aware
// Timsort variant tuned for the mostly-sorted batches a caller typically
// hands to NCL construction.
package sortutil

import (
	"sort"

	"github.com/kortschak/ivl/interval"
)

// StableSort sorts items by cmp using a top-down merge sort that
// insertion-sorts short ranges, preserving the relative order of elements
// that compare equal.
func StableSort(items []*interval.Interval, cmp interval.Comparer) {
	if len(items) < 2 {
		return
	}
	buf := make([]*interval.Interval, len(items))
	mergeSort(items, buf, cmp, 0, len(items))
}

func mergeSort(items, buf []*interval.Interval, cmp interval.Comparer, lo, hi int) {
	length := hi - lo
	if length < 12 {
		insertionSort(items, cmp, lo, hi)
		return
	}
	half := length / 2
	mid := lo + half
	mergeSort(items, buf, cmp, lo, mid)
	mergeSort(items, buf, cmp, mid, hi)
	merge(items, buf, cmp, lo, mid, hi)
}

func merge(items, buf []*interval.Interval, cmp interval.Comparer, lo, mid, hi int) {
	copy(buf[lo:hi], items[lo:hi])
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		// ties favour the left run, so equal elements never cross: this
		// is what makes the sort stable.
		if cmp(*buf[j], *buf[i]) < 0 {
			items[k] = buf[j]
			j++
		} else {
			items[k] = buf[i]
			i++
		}
		k++
	}
	for i < mid {
		items[k] = buf[i]
		i++
		k++
	}
	for j < hi {
		items[k] = buf[j]
		j++
		k++
	}
}

func insertionSort(items []*interval.Interval, cmp interval.Comparer, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && cmp(*items[j], *items[j-1]) < 0; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// minRun is the fixed minimum run length TimSort promotes short prefixes
// to via binary insertion sort before merging.
const minRun = 32

// TimSort sorts items by cmp: it binary-insertion-sorts minRun-sized runs
// and then merges them bottom-up, the same two-phase shape as StableSort
// but with an insertion-sorted starting run length tuned for batches that
// already contain long sorted stretches.
func TimSort(items []*interval.Interval, cmp interval.Comparer) {
	n := len(items)
	if n < 2 {
		return
	}
	for lo := 0; lo < n; lo += minRun {
		hi := lo + minRun
		if hi > n {
			hi = n
		}
		binaryInsertionSort(items, cmp, lo, hi)
	}

	buf := make([]*interval.Interval, n)
	for width := minRun; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			// the right run's length is n's remainder after consuming
			// lo and width elements: hi-mid, never mid-hi.
			if hi-mid > 0 {
				merge(items, buf, cmp, lo, mid, hi)
			}
		}
	}
}

func binaryInsertionSort(items []*interval.Interval, cmp interval.Comparer, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		pivot := items[i]
		pos := sort.Search(i-lo, func(k int) bool { return cmp(*pivot, *items[lo+k]) < 0 }) + lo
		for j := i; j > pos; j-- {
			items[j] = items[j-1]
		}
		items[pos] = pivot
	}
}
