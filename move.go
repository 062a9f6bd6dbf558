// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

// SourceModifier transforms the text captured by a move or copy source before
// the paired target inserts it. Implementations must be stateless: the same
// modifier instance is shared with copies made by [Copier].
type SourceModifier interface {
	Modify(content string) string
}

// MoveSourceEdit designates a region whose content is relocated to the position
// of a paired [MoveTargetEdit]. The content is read before any document change,
// optionally run through a [SourceModifier], and the region is removed on
// apply. A source must be paired with exactly one target before the tree is
// applied; an unpaired or mispaired source fails the integrity pass.
type MoveSourceEdit struct {
	editNode
	target   *MoveTargetEdit
	modifier SourceModifier
	content  string
}

// NewMoveSourceEdit returns a move source over the length characters starting
// at offset. It panics if offset or length is negative.
func NewMoveSourceEdit(offset, length int) *MoveSourceEdit {
	e := &MoveSourceEdit{}
	e.init(e, offset, length)
	return e
}

// TargetEdit returns the paired target, or nil if the source is unpaired.
func (e *MoveSourceEdit) TargetEdit() *MoveTargetEdit { return e.target }

// SetTargetEdit pairs the source with target, updating the target's back
// reference as well.
func (e *MoveSourceEdit) SetTargetEdit(target *MoveTargetEdit) {
	e.target = target
	if target != nil && target.source != e {
		target.source = e
	}
}

// SourceModifier returns the modifier applied to the captured content, or nil.
func (e *MoveSourceEdit) SourceModifier() SourceModifier { return e.modifier }

// SetSourceModifier sets the modifier applied to the captured content.
func (e *MoveSourceEdit) SetSourceModifier(modifier SourceModifier) { e.modifier = modifier }

func (e *MoveSourceEdit) cloneEdit() Edit {
	c := &MoveSourceEdit{modifier: e.modifier}
	c.initClone(c, &e.editNode)
	return c
}

// postProcessCopy rewires the copied pair through the copier map. A partner
// outside the copied subtree leaves the copy unpaired; applying such a copy
// fails its integrity pass.
func (e *MoveSourceEdit) postProcessCopy(c *Copier) {
	if e.target == nil {
		return
	}
	source, ok := c.CopyOf(e).(*MoveSourceEdit)
	if !ok {
		return
	}
	if target, ok := c.CopyOf(e.target).(*MoveTargetEdit); ok {
		source.SetTargetEdit(target)
	}
}

func (e *MoveSourceEdit) accept0(v Visitor) bool { return v.VisitMoveSource(e) }

func (e *MoveSourceEdit) deletesChildren() bool { return true }

func (e *MoveSourceEdit) checkIntegrity() error {
	if e.target == nil {
		return &MalformedTreeError{Parent: e.parent, Child: e, Reason: "move source without target"}
	}
	if e.target.source != e {
		return &MalformedTreeError{Parent: e.parent, Child: e, Reason: "move source and target are not paired"}
	}
	return nil
}

func (e *MoveSourceEdit) computeSource(p *Processor) error {
	content, err := p.doc.Get(e.offset, e.length)
	if err != nil {
		return err
	}
	if e.modifier != nil {
		content = e.modifier.Modify(content)
	}
	e.content = content
	return nil
}

func (e *MoveSourceEdit) updateDocument(p *Processor) (int, error) {
	if err := p.replace(e.offset, e.length, ""); err != nil {
		return 0, err
	}
	e.delta = -e.length
	return e.delta, nil
}

func (e *MoveSourceEdit) clearContent() { e.content = "" }

// MoveTargetEdit designates the insertion point receiving the content of a
// paired [MoveSourceEdit].
type MoveTargetEdit struct {
	editNode
	source *MoveSourceEdit
}

// NewMoveTargetEdit returns a move target inserting at offset. Pair it with its
// source via [MoveTargetEdit.SetSourceEdit] or [MoveSourceEdit.SetTargetEdit].
// It panics if offset is negative.
func NewMoveTargetEdit(offset int) *MoveTargetEdit {
	e := &MoveTargetEdit{}
	e.init(e, offset, 0)
	return e
}

// SourceEdit returns the paired source, or nil if the target is unpaired.
func (e *MoveTargetEdit) SourceEdit() *MoveSourceEdit { return e.source }

// SetSourceEdit pairs the target with source, updating the source's forward
// reference as well.
func (e *MoveTargetEdit) SetSourceEdit(source *MoveSourceEdit) {
	e.source = source
	if source != nil && source.target != e {
		source.target = e
	}
}

func (e *MoveTargetEdit) cloneEdit() Edit {
	c := &MoveTargetEdit{}
	c.initClone(c, &e.editNode)
	return c
}

func (e *MoveTargetEdit) postProcessCopy(c *Copier) {
	if e.source == nil {
		return
	}
	target, ok := c.CopyOf(e).(*MoveTargetEdit)
	if !ok {
		return
	}
	if source, ok := c.CopyOf(e.source).(*MoveSourceEdit); ok {
		target.SetSourceEdit(source)
	}
}

func (e *MoveTargetEdit) accept0(v Visitor) bool { return v.VisitMoveTarget(e) }

func (e *MoveTargetEdit) checkIntegrity() error {
	if e.source == nil {
		return &MalformedTreeError{Parent: e.parent, Child: e, Reason: "move target without source"}
	}
	if e.source.target != e {
		return &MalformedTreeError{Parent: e.parent, Child: e, Reason: "move source and target are not paired"}
	}
	return nil
}

func (e *MoveTargetEdit) updateDocument(p *Processor) (int, error) {
	content := e.source.content
	if err := p.replace(e.offset, e.length, content); err != nil {
		return 0, err
	}
	e.delta = len(content) - e.length
	e.source.clearContent()
	return e.delta, nil
}
