// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

// Visitor walks an edit tree through [Edit.Accept]. For each edit the walk
// calls PreVisit, then the type-specific Visit method, then, if that method
// returned true, the children in child order, and finally PostVisit. Children
// are snapshotted before they are walked, so a visitor may mutate the tree it
// is visiting.
//
// Embed [BaseVisitor] to implement only the methods of interest.
type Visitor interface {
	// PreVisit runs before the type-specific visit of every edit.
	PreVisit(e Edit)
	// PostVisit runs after an edit and its children were visited.
	PostVisit(e Edit)

	VisitInsert(e *InsertEdit) bool
	VisitDelete(e *DeleteEdit) bool
	VisitReplace(e *ReplaceEdit) bool
	VisitMulti(e *MultiEdit) bool
	VisitRangeMarker(e *RangeMarker) bool
	VisitMoveSource(e *MoveSourceEdit) bool
	VisitMoveTarget(e *MoveTargetEdit) bool
	VisitCopySource(e *CopySourceEdit) bool
	VisitCopyTarget(e *CopyTargetEdit) bool
	VisitUndo(e *UndoEdit) bool
}

// BaseVisitor is a [Visitor] that does nothing and descends everywhere.
type BaseVisitor struct{}

func (BaseVisitor) PreVisit(Edit) {}

func (BaseVisitor) PostVisit(Edit) {}

func (BaseVisitor) VisitInsert(*InsertEdit) bool { return true }

func (BaseVisitor) VisitDelete(*DeleteEdit) bool { return true }

func (BaseVisitor) VisitReplace(*ReplaceEdit) bool { return true }

func (BaseVisitor) VisitMulti(*MultiEdit) bool { return true }

func (BaseVisitor) VisitRangeMarker(*RangeMarker) bool { return true }

func (BaseVisitor) VisitMoveSource(*MoveSourceEdit) bool { return true }

func (BaseVisitor) VisitMoveTarget(*MoveTargetEdit) bool { return true }

func (BaseVisitor) VisitCopySource(*CopySourceEdit) bool { return true }

func (BaseVisitor) VisitCopyTarget(*CopyTargetEdit) bool { return true }

func (BaseVisitor) VisitUndo(*UndoEdit) bool { return true }
