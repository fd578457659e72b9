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

// Package dit implements a dynamic interval tree: an AVL tree keyed on
// the endpoint universe, where every stored interval is attached to the
// node keyed at its low bound and the node keyed at its high bound. Each
// node carries two Layers, Low and High, holding the intervals attached
// to it from each side. Point and range stabbing descend the tree once,
// pruned by a per-node span, and merge the per-node candidate runs back
// into canonical order through a merge.Queue.
package dit

import (
	"github.com/kortschak/ivl/interval"
	"github.com/kortschak/ivl/layer"
)

// Operation is applied to stored intervals during enumeration or
// stabbing. If it returns true the traversal stops early.
type Operation func(*interval.Interval) (done bool)

type node struct {
	key         interval.Endpoint
	low, high   *layer.Layer
	left, right *node
	height      int
	span        interval.Interval
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (n *node) localSpan() interval.Interval {
	var span *interval.Interval
	extend := func(iv *interval.Interval) {
		if span == nil {
			s := *iv
			span = &s
			return
		}
		h := interval.Hull(*span, *iv)
		span = &h
	}
	n.low.EnumerateFromIndex(0, func(iv *interval.Interval) bool { extend(iv); return false })
	n.high.EnumerateFromIndex(0, func(iv *interval.Interval) bool { extend(iv); return false })
	return *span
}

func (n *node) recompute() {
	n.height = 1 + maxInt(height(n.left), height(n.right))
	span := n.localSpan()
	if n.left != nil {
		span = interval.Hull(span, n.left.span)
	}
	if n.right != nil {
		span = interval.Hull(span, n.right.span)
	}
	n.span = span
}

// (a,c)b -rotL-> ((a,)b,)c
func (n *node) rotateLeft() *node {
	r := n.right
	n.right = r.left
	r.left = n
	n.recompute()
	r.recompute()
	return r
}

// (a,c)b -rotR-> (,(,c)b)a
func (n *node) rotateRight() *node {
	l := n.left
	n.left = l.right
	l.right = n
	n.recompute()
	l.recompute()
	return l
}

// fixUp restores the AVL balance-factor invariant at n after an insert or
// delete below it, and must be called on the way back up the recursion.
func (n *node) fixUp() *node {
	n.recompute()
	switch bf := height(n.left) - height(n.right); {
	case bf > 1:
		if height(n.left.left) < height(n.left.right) {
			n.left = n.left.rotateLeft()
		}
		n = n.rotateRight()
	case bf < -1:
		if height(n.right.right) < height(n.right.left) {
			n.right = n.right.rotateRight()
		}
		n = n.rotateLeft()
	}
	return n
}

func (n *node) min() *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// A Tree is a dynamic interval tree. The zero value is an empty Tree
// ready to use.
type Tree struct {
	root  *node
	count int
}

// Len returns the number of intervals stored in the Tree.
func (t *Tree) Len() int { return t.count }

// Clear empties the Tree.
func (t *Tree) Clear() { t.root, t.count = nil, 0 }

// Span returns the smallest interval enclosing every interval stored in
// the Tree, and false if the Tree is empty. It is the root node's cached
// span, maintained incrementally by every mutation.
func (t *Tree) Span() (interval.Interval, bool) {
	if t.root == nil {
		return interval.Interval{}, false
	}
	return t.root.span, true
}

// Insert attaches iv to the tree, creating the node for its low bound
// and the node for its high bound if they do not already exist. If low
// equals high, both attachments land on the same node.
func (t *Tree) Insert(iv *interval.Interval) {
	t.root = insertAt(t.root, iv.Low(), iv, true)
	t.root = insertAt(t.root, iv.High(), iv, false)
	t.count++
}

func insertAt(n *node, key interval.Endpoint, iv *interval.Interval, atLow bool) *node {
	if n == nil {
		nn := &node{key: key, low: layer.New(nil), high: layer.New(nil)}
		if atLow {
			nn.low.Add(iv)
		} else {
			nn.high.Add(iv)
		}
		nn.recompute()
		return nn
	}
	switch c := key.Compare(n.key); {
	case c == 0:
		if atLow {
			n.low.Add(iv)
		} else {
			n.high.Add(iv)
		}
		n.recompute()
		return n
	case c < 0:
		n.left = insertAt(n.left, key, iv, atLow)
	default:
		n.right = insertAt(n.right, key, iv, atLow)
	}
	return n.fixUp()
}

// Delete removes iv, identified by pointer identity, from the tree. It
// reports whether iv was found. A distinct but value-equal interval is
// left untouched.
func (t *Tree) Delete(iv *interval.Interval) bool {
	var okLow, okHigh bool
	t.root, okLow = removeAt(t.root, iv.Low(), iv, true)
	t.root, okHigh = removeAt(t.root, iv.High(), iv, false)
	found := okLow || okHigh
	if found {
		t.count--
	}
	return found
}

func removeAt(n *node, key interval.Endpoint, iv *interval.Interval, atLow bool) (*node, bool) {
	if n == nil {
		return nil, false
	}
	switch c := key.Compare(n.key); {
	case c < 0:
		var ok bool
		n.left, ok = removeAt(n.left, key, iv, atLow)
		if !ok {
			return n, false
		}
		return n.fixUp(), true
	case c > 0:
		var ok bool
		n.right, ok = removeAt(n.right, key, iv, atLow)
		if !ok {
			return n, false
		}
		return n.fixUp(), true
	default:
		var removed bool
		if atLow {
			removed = n.low.Remove(iv)
		} else {
			removed = n.high.Remove(iv)
		}
		if !removed {
			return n, false
		}
		if n.low.Len() == 0 && n.high.Len() == 0 {
			return deleteNode(n), true
		}
		n.recompute()
		return n, true
	}
}

func deleteNode(n *node) *node {
	switch {
	case n.left == nil && n.right == nil:
		return nil
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	default:
		succ := n.right.min()
		n.key, n.low, n.high = succ.key, succ.low, succ.high
		n.right, _ = removeNode(n.right, succ.key)
		return n.fixUp()
	}
}

// removeNode deletes the whole node keyed at key, used only to excise a
// successor already copied into its replacement.
func removeNode(n *node, key interval.Endpoint) (*node, bool) {
	if n == nil {
		return nil, false
	}
	switch c := key.Compare(n.key); {
	case c < 0:
		var ok bool
		n.left, ok = removeNode(n.left, key)
		return n.fixUp(), ok
	case c > 0:
		var ok bool
		n.right, ok = removeNode(n.right, key)
		return n.fixUp(), ok
	default:
		return deleteNode(n), true
	}
}

