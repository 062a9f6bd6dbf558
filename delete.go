// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

// DeleteEdit removes a range of text. Applying it marks every child as deleted;
// the delete itself survives with a zero-length region at its final position.
type DeleteEdit struct {
	editNode
}

// NewDeleteEdit returns an edit removing the length characters starting at
// offset. It panics if offset or length is negative.
func NewDeleteEdit(offset, length int) *DeleteEdit {
	e := &DeleteEdit{}
	e.init(e, offset, length)
	return e
}

func (e *DeleteEdit) cloneEdit() Edit {
	c := &DeleteEdit{}
	c.initClone(c, &e.editNode)
	return c
}

func (e *DeleteEdit) accept0(v Visitor) bool { return v.VisitDelete(e) }

func (e *DeleteEdit) deletesChildren() bool { return true }

func (e *DeleteEdit) updateDocument(p *Processor) (int, error) {
	if err := p.replace(e.offset, e.length, ""); err != nil {
		return 0, err
	}
	e.delta = -e.length
	return e.delta, nil
}
