// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

import "slices"

// UndoEdit reverses a previous apply. It is produced by [Processor.Apply] when
// the [CreateUndo] style is set and holds one inverse replace per atomic
// document change, ordered so that applying them first to last restores the
// prior document state. Applying an UndoEdit with [CreateUndo] yields the
// matching redo edit.
//
// An UndoEdit is executed through the same Apply entry points as any other
// edit, but it bypasses the integrity and source-computation passes: its
// children are valid only against the exact document state the original apply
// produced.
type UndoEdit struct {
	editNode
}

func newUndoEdit() *UndoEdit {
	e := &UndoEdit{}
	e.init(e, 0, 0)
	return e
}

// add records the inverse of an atomic document change. Inverses arrive in
// chronological order and are prepended, so that executing the children first
// to last undoes the most recent change first, each one restoring the
// coordinate frame the next was recorded in.
func (e *UndoEdit) add(child *ReplaceEdit) {
	e.children = slices.Insert(e.children, 0, Edit(child))
	child.parent = e
}

func (e *UndoEdit) cloneEdit() Edit {
	c := &UndoEdit{}
	c.initClone(c, &e.editNode)
	return c
}

func (e *UndoEdit) accept0(v Visitor) bool { return v.VisitUndo(e) }

func (e *UndoEdit) canZeroLengthCover() bool { return true }

func (e *UndoEdit) updateDocument(*Processor) (int, error) {
	e.delta = 0
	return 0, nil
}
