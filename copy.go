// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

// CopySourceEdit designates a region whose content is duplicated at the
// position of a paired [CopyTargetEdit]. Unlike [MoveSourceEdit], the source
// region is left in place. The content is read before any document change and
// may be transformed by a [SourceModifier].
type CopySourceEdit struct {
	editNode
	target   *CopyTargetEdit
	modifier SourceModifier
	content  string
}

// NewCopySourceEdit returns a copy source over the length characters starting
// at offset. It panics if offset or length is negative.
func NewCopySourceEdit(offset, length int) *CopySourceEdit {
	e := &CopySourceEdit{}
	e.init(e, offset, length)
	return e
}

// TargetEdit returns the paired target, or nil if the source is unpaired.
func (e *CopySourceEdit) TargetEdit() *CopyTargetEdit { return e.target }

// SetTargetEdit pairs the source with target, updating the target's back
// reference as well.
func (e *CopySourceEdit) SetTargetEdit(target *CopyTargetEdit) {
	e.target = target
	if target != nil && target.source != e {
		target.source = e
	}
}

// SourceModifier returns the modifier applied to the captured content, or nil.
func (e *CopySourceEdit) SourceModifier() SourceModifier { return e.modifier }

// SetSourceModifier sets the modifier applied to the captured content.
func (e *CopySourceEdit) SetSourceModifier(modifier SourceModifier) { e.modifier = modifier }

func (e *CopySourceEdit) cloneEdit() Edit {
	c := &CopySourceEdit{modifier: e.modifier}
	c.initClone(c, &e.editNode)
	return c
}

func (e *CopySourceEdit) postProcessCopy(c *Copier) {
	if e.target == nil {
		return
	}
	source, ok := c.CopyOf(e).(*CopySourceEdit)
	if !ok {
		return
	}
	if target, ok := c.CopyOf(e.target).(*CopyTargetEdit); ok {
		source.SetTargetEdit(target)
	}
}

func (e *CopySourceEdit) accept0(v Visitor) bool { return v.VisitCopySource(e) }

func (e *CopySourceEdit) checkIntegrity() error {
	if e.target == nil {
		return &MalformedTreeError{Parent: e.parent, Child: e, Reason: "copy source without target"}
	}
	if e.target.source != e {
		return &MalformedTreeError{Parent: e.parent, Child: e, Reason: "copy source and target are not paired"}
	}
	return nil
}

func (e *CopySourceEdit) computeSource(p *Processor) error {
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

func (e *CopySourceEdit) updateDocument(*Processor) (int, error) {
	e.delta = 0
	return 0, nil
}

func (e *CopySourceEdit) clearContent() { e.content = "" }

// CopyTargetEdit designates the insertion point receiving a duplicate of the
// content of a paired [CopySourceEdit].
type CopyTargetEdit struct {
	editNode
	source *CopySourceEdit
}

// NewCopyTargetEdit returns a copy target inserting at offset. Pair it with its
// source via [CopyTargetEdit.SetSourceEdit] or [CopySourceEdit.SetTargetEdit].
// It panics if offset is negative.
func NewCopyTargetEdit(offset int) *CopyTargetEdit {
	e := &CopyTargetEdit{}
	e.init(e, offset, 0)
	return e
}

// SourceEdit returns the paired source, or nil if the target is unpaired.
func (e *CopyTargetEdit) SourceEdit() *CopySourceEdit { return e.source }

// SetSourceEdit pairs the target with source, updating the source's forward
// reference as well.
func (e *CopyTargetEdit) SetSourceEdit(source *CopySourceEdit) {
	e.source = source
	if source != nil && source.target != e {
		source.target = e
	}
}

func (e *CopyTargetEdit) cloneEdit() Edit {
	c := &CopyTargetEdit{}
	c.initClone(c, &e.editNode)
	return c
}

func (e *CopyTargetEdit) postProcessCopy(c *Copier) {
	if e.source == nil {
		return
	}
	target, ok := c.CopyOf(e).(*CopyTargetEdit)
	if !ok {
		return
	}
	if source, ok := c.CopyOf(e.source).(*CopySourceEdit); ok {
		target.SetSourceEdit(source)
	}
}

func (e *CopyTargetEdit) accept0(v Visitor) bool { return v.VisitCopyTarget(e) }

func (e *CopyTargetEdit) checkIntegrity() error {
	if e.source == nil {
		return &MalformedTreeError{Parent: e.parent, Child: e, Reason: "copy target without source"}
	}
	if e.source.target != e {
		return &MalformedTreeError{Parent: e.parent, Child: e, Reason: "copy source and target are not paired"}
	}
	return nil
}

func (e *CopyTargetEdit) updateDocument(p *Processor) (int, error) {
	content := e.source.content
	if err := p.replace(e.offset, e.length, content); err != nil {
		return 0, err
	}
	e.delta = len(content) - e.length
	e.source.clearContent()
	return e.delta, nil
}
