// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

// RangeMarker records a region of interest without changing the document. After
// an apply with [UpdateRegions], its region describes where the tracked content
// ended up, or the deleted sentinel if an enclosing change removed it.
type RangeMarker struct {
	editNode
}

// NewRangeMarker returns a marker tracking the length characters starting at
// offset. It panics if offset or length is negative.
func NewRangeMarker(offset, length int) *RangeMarker {
	e := &RangeMarker{}
	e.init(e, offset, length)
	return e
}

func (e *RangeMarker) cloneEdit() Edit {
	c := &RangeMarker{}
	c.initClone(c, &e.editNode)
	return c
}

func (e *RangeMarker) accept0(v Visitor) bool { return v.VisitRangeMarker(e) }

func (e *RangeMarker) updateDocument(*Processor) (int, error) {
	e.delta = 0
	return 0, nil
}
