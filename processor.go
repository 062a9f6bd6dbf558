// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

// Style controls what an apply produces besides the document mutation.
type Style uint8

const (
	// None applies the tree without producing an undo edit or updating regions.
	None Style = 0
	// CreateUndo makes the apply return an [UndoEdit] reversing it.
	CreateUndo Style = 1 << 0
	// UpdateRegions makes the apply shift every edit's region to its post-apply
	// position, marking edits whose region was removed as deleted.
	UpdateRegions Style = 1 << 1
)

// ProcessorOption configures a [Processor].
type ProcessorOption interface {
	apply(*Processor)
}

type processorOptionFunc func(*Processor)

func (o processorOptionFunc) apply(p *Processor) {
	o(p)
}

// WithConsider sets the inclusion predicate deciding which edits the processor
// executes. Edits for which consider returns false are traversed but act as
// pure structural grouping: their integrity hooks, source computation and
// document change are skipped. When unset, every edit is considered.
func WithConsider(consider func(Edit) bool) ProcessorOption {
	return processorOptionFunc(func(p *Processor) {
		p.consider = consider
	})
}

// Processor executes edit trees against a document. A processor is not safe for
// concurrent use, and a tree must not be handed to two processors at once. The
// same processor may apply several trees in sequence.
//
// Apply runs four passes: an integrity check re-verifying the tree invariants
// (the document is untouched if it fails), source computation for move and copy
// sources against the original document state, the document updates in
// descending position order, and, with [UpdateRegions], the region updates in
// tree order. An error from the document during the update pass leaves the
// document in an undefined intermediate state; callers needing atomicity must
// snapshot externally.
type Processor struct {
	doc      Document
	consider func(Edit) bool
	undo     *UndoEdit
	style    Style
}

// NewProcessor returns a processor executing against doc with the given style.
// It panics if doc is nil.
func NewProcessor(doc Document, style Style, opts ...ProcessorOption) *Processor {
	if doc == nil {
		panic("tedit: nil document")
	}
	p := &Processor{doc: doc, style: style}
	for _, opt := range opts {
		opt.apply(p)
	}
	return p
}

// Document returns the document the processor executes against.
func (p *Processor) Document() Document { return p.doc }

// Style returns the processor's style.
func (p *Processor) Style() Style { return p.style }

// Apply executes the tree rooted at root. It returns the undo edit when the
// style contains [CreateUndo] and nil otherwise. It panics if root is nil or
// has a parent.
func (p *Processor) Apply(root Edit) (*UndoEdit, error) {
	if root == nil {
		panic("tedit: nil root edit")
	}
	if root.Parent() != nil {
		panic("tedit: edit is not a root")
	}
	if p.style&CreateUndo != 0 {
		p.undo = newUndoEdit()
	} else {
		p.undo = nil
	}

	if undo, ok := root.(*UndoEdit); ok {
		return p.executeUndo(undo)
	}

	if err := p.checkIntegrity(root); err != nil {
		p.undo = nil
		return nil, err
	}
	if err := p.traverseSourceComputation(root); err != nil {
		p.undo = nil
		return nil, err
	}
	if _, err := p.traverseDocumentUpdating(root); err != nil {
		p.undo = nil
		return nil, err
	}
	if p.style&UpdateRegions != 0 {
		p.traverseRegionUpdating(root, 0, false)
	}
	root.node().parent = nil

	undo := p.undo
	p.undo = nil
	return undo, nil
}

// executeUndo applies an undo tree. The children were recorded against
// intermediate document states, so the regular passes do not apply: they are
// executed first to last exactly as stored.
func (p *Processor) executeUndo(undo *UndoEdit) (*UndoEdit, error) {
	for _, child := range undo.node().children {
		inverse := child.(*ReplaceEdit)
		if err := p.replace(inverse.offset, inverse.length, inverse.text); err != nil {
			p.undo = nil
			return nil, err
		}
	}
	redo := p.undo
	p.undo = nil
	return redo, nil
}

func (p *Processor) considers(e Edit) bool {
	return p.consider == nil || p.consider(e)
}

// checkIntegrity re-verifies the tree invariants and the document bounds before
// any mutation, and resets the transient deltas of a previous apply.
func (p *Processor) checkIntegrity(root Edit) error {
	if root.IsDeleted() {
		return &MalformedTreeError{Child: root, Reason: "deleted edit cannot be applied"}
	}
	if root.End() > p.doc.Length() {
		return &MalformedTreeError{Child: root, Reason: "edit range outside document"}
	}
	return p.traverseIntegrity(root)
}

func (p *Processor) traverseIntegrity(e Edit) error {
	n := e.node()
	n.delta = 0
	if p.considers(e) {
		if err := e.checkIntegrity(); err != nil {
			return err
		}
	}
	if len(n.children) == 0 {
		return nil
	}
	if n.length == 0 && !e.canZeroLengthCover() {
		return &MalformedTreeError{Parent: e, Reason: "zero-length edit cannot have children"}
	}
	var prev Edit
	for _, child := range n.children {
		if !e.Covers(child) {
			return &MalformedTreeError{Parent: e, Child: child, Reason: "range of child not covered by parent"}
		}
		if prev != nil && (prev.End() > child.Offset() || boundaryConflict(prev, child)) {
			return &MalformedTreeError{Parent: e, Child: child, Reason: "overlapping edits"}
		}
		if err := p.traverseIntegrity(child); err != nil {
			return err
		}
		prev = child
	}
	return nil
}

// traverseSourceComputation lets move and copy sources capture their text from
// the original document state, in tree order.
func (p *Processor) traverseSourceComputation(e Edit) error {
	if p.considers(e) {
		if err := e.computeSource(p); err != nil {
			return err
		}
	}
	for _, child := range e.node().children {
		if err := p.traverseSourceComputation(child); err != nil {
			return err
		}
	}
	return nil
}

// traverseDocumentUpdating performs the document changes, deepest and rightmost
// first, so edits earlier in the document keep valid offsets while later ones
// complete. It returns the length delta of the whole subtree.
func (p *Processor) traverseDocumentUpdating(e Edit) (int, error) {
	delta := 0
	n := e.node()
	for i := len(n.children) - 1; i >= 0; i-- {
		d, err := p.traverseDocumentUpdating(n.children[i])
		if err != nil {
			return 0, err
		}
		delta += d
	}
	if p.considers(e) {
		// Children shifted this edit's content; keep the region covering them
		// before performing our own change.
		length := n.length
		if delta != 0 {
			n.adjustLength(delta)
		}
		own, err := e.updateDocument(p)
		if err != nil {
			return 0, err
		}
		if p.style&UpdateRegions == 0 {
			// Without region updates the edit keeps its pre-apply region.
			n.length = length
		} else if own != 0 {
			n.adjustLength(own)
		}
		delta += own
	}
	return delta, nil
}

// traverseRegionUpdating shifts every edit's region to its post-apply position,
// in tree order, carrying the accumulated delta of the edits applied before it.
// Descendants of an edit whose execution removed its content are marked
// deleted.
func (p *Processor) traverseRegionUpdating(e Edit, accumulated int, deleted bool) int {
	n := e.node()
	if deleted {
		n.markDeleted()
	} else {
		n.adjustOffset(accumulated)
	}
	childDeleted := deleted || e.deletesChildren()
	for _, child := range n.children {
		accumulated = p.traverseRegionUpdating(child, accumulated, childDeleted)
	}
	return accumulated + n.delta
}

// replace performs one atomic document change, recording its inverse when undo
// collection is on.
func (p *Processor) replace(offset, length int, text string) error {
	var removed string
	if p.undo != nil {
		var err error
		removed, err = p.doc.Get(offset, length)
		if err != nil {
			return err
		}
	}
	if err := p.doc.Replace(offset, length, text); err != nil {
		return err
	}
	if p.undo != nil {
		p.undo.add(NewReplaceEdit(offset, len(text), removed))
	}
	return nil
}
