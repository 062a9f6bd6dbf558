// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

// MultiEdit groups other edits without changing the document itself. A new
// group reports the empty region at offset zero; adding a child to a childless
// group takes over the child's region, and later children grow it as needed.
// The region never shrinks: removing children leaves it unchanged, and growth
// through nested groups can leave it wider than the strict minimum covering
// its children. It is the usual root of an edit tree.
type MultiEdit struct {
	editNode
}

// NewMultiEdit returns an empty group edit.
func NewMultiEdit() *MultiEdit {
	e := &MultiEdit{}
	e.init(e, 0, 0)
	return e
}

func (e *MultiEdit) aboutToAdopt(child Edit) {
	if len(e.children) == 0 {
		e.offset = child.Offset()
		e.length = child.Length()
		return
	}
	end := max(e.End(), child.End())
	e.offset = min(e.offset, child.Offset())
	e.length = end - e.offset
}

func (e *MultiEdit) cloneEdit() Edit {
	c := &MultiEdit{}
	c.initClone(c, &e.editNode)
	return c
}

func (e *MultiEdit) accept0(v Visitor) bool { return v.VisitMulti(e) }

func (e *MultiEdit) canZeroLengthCover() bool { return true }

func (e *MultiEdit) updateDocument(*Processor) (int, error) {
	e.delta = 0
	return 0, nil
}
