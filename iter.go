// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

import "iter"

// Descendants returns a range iterator over e and every edit below it, in tree
// (pre-order) order. Each level's children are snapshotted when the walk
// reaches it, so the tree may be mutated while iterating; the iterator sees the
// state at entry of each level.
func Descendants(e Edit) iter.Seq[Edit] {
	return func(yield func(Edit) bool) {
		walkEdits(e, yield)
	}
}

// Leaves returns a range iterator over the childless edits of the tree rooted
// at e, in tree order. Snapshot semantics match [Descendants].
func Leaves(e Edit) iter.Seq[Edit] {
	return func(yield func(Edit) bool) {
		for edit := range Descendants(e) {
			if !edit.HasChildren() {
				if !yield(edit) {
					return
				}
			}
		}
	}
}

func walkEdits(e Edit, yield func(Edit) bool) bool {
	if !yield(e) {
		return false
	}
	for _, child := range e.Children() {
		if !walkEdits(child, yield) {
			return false
		}
	}
	return true
}
