// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

import (
	"slices"
)

// Edit describes a single text manipulation, atomic or composite. Edits form trees:
// a parent edit covers the region of every child, siblings never overlap, and
// children are kept sorted by ascending offset. Mutating a tree in a way that
// would break these invariants fails with an error wrapping [ErrMalformedTree].
//
// Edits compare by identity. Two distinct edits with the same offset and length
// are different edits; this is observable through [Copier], which keys its
// source-to-copy map by identity.
//
// The interface is closed: only the concrete types of this package implement it.
type Edit interface {
	// Offset returns the starting character offset of the edit's region in the
	// target document. A deleted edit reports -1.
	Offset() int

	// Length returns the length of the edit's region. A length of zero denotes a
	// pure insertion point. A deleted edit reports -1.
	Length() int

	// Region returns the edit's region as a single value.
	Region() Region

	// End returns the first offset after the edit's region (offset + length).
	End() int

	// InclusiveEnd returns the last offset inside the edit's region
	// (offset + length - 1).
	InclusiveEnd() int

	// IsDeleted reports whether the edit's region was removed by an enclosing
	// change during a previous apply.
	IsDeleted() bool

	// Parent returns the enclosing edit, or nil for a root.
	Parent() Edit

	// Root returns the topmost edit of the tree this edit belongs to.
	Root() Edit

	// Covers reports whether this edit's region fully contains the region of
	// other. A zero-length edit covers nothing unless its type permits it
	// (group and undo edits do; inserts and move/copy targets do not).
	Covers(other Edit) bool

	// HasChildren reports whether the edit has at least one child.
	HasChildren() bool

	// ChildCount returns the number of children.
	ChildCount() int

	// ChildAt returns the child at position i. It panics if i is out of range.
	ChildAt(i int) Edit

	// Children returns a snapshot of the edit's children in child order. The
	// returned slice is owned by the caller; mutating it does not affect the tree.
	Children() []Edit

	// AddChild links child under this edit. It returns an error wrapping
	// [ErrMalformedTree] if child is deleted, already has a parent, is not
	// covered by this edit, overlaps an existing sibling, or if this edit is a
	// zero-length edit which cannot have children. On error neither tree is
	// mutated. It panics if child is nil.
	AddChild(child Edit) error

	// AddChildren links every edit of children in order, stopping at the first
	// failure. Children linked before the failure remain linked; the caller is
	// responsible for cleaning up.
	AddChildren(children []Edit) error

	// RemoveChildAt unlinks and returns the child at position i. It panics if i
	// is out of range.
	RemoveChildAt(i int) Edit

	// RemoveChild unlinks child and reports whether it was a child of this edit.
	RemoveChild(child Edit) bool

	// RemoveChildren unlinks and returns all children in child order.
	RemoveChildren() []Edit

	// Apply executes the edit tree rooted at this edit against doc with the
	// default style [CreateUndo] | [UpdateRegions]. See [Processor.Apply].
	Apply(doc Document) (*UndoEdit, error)

	// ApplyWithStyle executes the edit tree rooted at this edit against doc with
	// the given style. See [Processor.Apply].
	ApplyWithStyle(doc Document, style Style) (*UndoEdit, error)

	// Copy returns a deep copy of the tree rooted at this edit. See [Copier].
	Copy() Edit

	// Accept walks the tree rooted at this edit with v. See [Visitor].
	Accept(v Visitor)

	// String returns a short debug description of the edit.
	String() string

	// node gives shared access to the embedded tree state and closes the
	// interface against foreign implementations.
	node() *editNode

	// cloneEdit returns a fresh, unparented, childless edit of the same concrete
	// type carrying the same region and variant data, with its transient state
	// reset. Cross-edit references (move/copy partners) are not carried over;
	// they are rewired by postProcessCopy.
	cloneEdit() Edit

	// postProcessCopy runs on the original edit after a structural copy so
	// variants can rewire cross-edit references on their copies.
	postProcessCopy(c *Copier)

	// accept0 dispatches to the type-specific visit method and reports whether
	// the walk descends into children.
	accept0(v Visitor) bool

	// checkIntegrity validates variant-specific state before an apply, e.g. that
	// a move source is paired with its target.
	checkIntegrity() error

	// computeSource runs during the source-computation pass, before any document
	// mutation, so sources read from the original document state.
	computeSource(p *Processor) error

	// updateDocument performs the edit's atomic document change and returns the
	// length delta it caused.
	updateDocument(p *Processor) (int, error)

	// deletesChildren reports whether executing the edit logically removes the
	// content of its own region, marking descendants as deleted during the
	// region-update pass.
	deletesChildren() bool

	// canZeroLengthCover reports whether the edit may cover another edit even
	// when its own length is zero.
	canZeroLengthCover() bool

	// aboutToAdopt runs before the coverage check of AddChild so group edits can
	// grow their region over the incoming child.
	aboutToAdopt(child Edit)
}

// editNode carries the state shared by all edit variants: the region, the
// parent link, the ordered children and the transient length delta used by the
// region-update pass.
type editNode struct {
	self     Edit
	parent   Edit
	children []Edit
	offset   int
	length   int
	delta    int
}

// init wires the back reference from the shared node to the concrete edit and
// validates the region. Called by every constructor.
func (e *editNode) init(self Edit, offset, length int) {
	if offset < 0 || length < 0 {
		panic("tedit: negative offset or length")
	}
	e.self = self
	e.offset = offset
	e.length = length
}

func (e *editNode) Offset() int { return e.offset }

func (e *editNode) Length() int { return e.length }

func (e *editNode) Region() Region { return Region{Offset: e.offset, Length: e.length} }

func (e *editNode) End() int { return e.offset + e.length }

func (e *editNode) InclusiveEnd() int { return e.offset + e.length - 1 }

func (e *editNode) IsDeleted() bool { return e.offset == -1 && e.length == -1 }

func (e *editNode) Parent() Edit { return e.parent }

func (e *editNode) Root() Edit {
	root := e.self
	for root.Parent() != nil {
		root = root.Parent()
	}
	return root
}

func (e *editNode) Covers(other Edit) bool {
	if e.length == 0 && !e.self.canZeroLengthCover() {
		return false
	}
	return e.offset <= other.Offset() && other.End() <= e.End()
}

func (e *editNode) HasChildren() bool { return len(e.children) > 0 }

func (e *editNode) ChildCount() int { return len(e.children) }

func (e *editNode) ChildAt(i int) Edit { return e.children[i] }

func (e *editNode) Children() []Edit { return slices.Clone(e.children) }

func (e *editNode) AddChild(child Edit) error {
	if child == nil {
		panic("tedit: nil child")
	}
	if child.IsDeleted() {
		return &MalformedTreeError{Parent: e.self, Child: child, Reason: "deleted edit cannot be added"}
	}
	if child.Parent() != nil {
		return &MalformedTreeError{Parent: e.self, Child: child, Reason: "edit already has a parent"}
	}
	if e.length == 0 && !e.self.canZeroLengthCover() {
		return &MalformedTreeError{Parent: e.self, Child: child, Reason: "zero-length edit cannot have children"}
	}
	// Group edits grow over the incoming child; restore their region if the
	// add fails so a rejected child leaves the tree in its pre-attempt state.
	prevOffset, prevLength := e.offset, e.length
	e.self.aboutToAdopt(child)
	if !e.self.Covers(child) {
		e.offset, e.length = prevOffset, prevLength
		return &MalformedTreeError{Parent: e.self, Child: child, Reason: "range of child not covered by parent"}
	}
	idx, err := e.insertionIndex(child)
	if err != nil {
		e.offset, e.length = prevOffset, prevLength
		return err
	}
	e.children = slices.Insert(e.children, idx, child)
	child.node().parent = e.self

	// A nested group growing over the child must stay covered by its own
	// ancestors: enclosing groups grow along, anything else rejects the add.
	if err := e.propagateExpansion(); err != nil {
		e.RemoveChildAt(idx)
		e.offset, e.length = prevOffset, prevLength
		return err
	}
	return nil
}

type savedRegion struct {
	node   *editNode
	offset int
	length int
}

func (e *editNode) propagateExpansion() error {
	var saved []savedRegion
	node := e.self
	for {
		parent := node.node().parent
		if parent == nil || parent.Covers(node) {
			return nil
		}
		multi, ok := parent.(*MultiEdit)
		if !ok {
			for _, s := range saved {
				s.node.offset, s.node.length = s.offset, s.length
			}
			return &MalformedTreeError{Parent: parent, Child: node, Reason: "range of child not covered by parent"}
		}
		pn := multi.node()
		saved = append(saved, savedRegion{node: pn, offset: pn.offset, length: pn.length})
		end := max(pn.End(), node.End())
		pn.offset = min(pn.offset, node.Offset())
		pn.length = end - pn.offset
		node = parent
	}
}

func (e *editNode) AddChildren(children []Edit) error {
	for _, child := range children {
		if err := e.self.AddChild(child); err != nil {
			return err
		}
	}
	return nil
}

func (e *editNode) RemoveChildAt(i int) Edit {
	child := e.children[i]
	e.children = slices.Delete(e.children, i, i+1)
	child.node().parent = nil
	return child
}

func (e *editNode) RemoveChild(child Edit) bool {
	if child == nil {
		panic("tedit: nil child")
	}
	for i, c := range e.children {
		if c == child {
			e.RemoveChildAt(i)
			return true
		}
	}
	return false
}

func (e *editNode) RemoveChildren() []Edit {
	removed := e.children
	e.children = nil
	for _, child := range removed {
		child.node().parent = nil
	}
	return removed
}

func (e *editNode) Apply(doc Document) (*UndoEdit, error) {
	return NewProcessor(doc, CreateUndo|UpdateRegions).Apply(e.self)
}

func (e *editNode) ApplyWithStyle(doc Document, style Style) (*UndoEdit, error) {
	return NewProcessor(doc, style).Apply(e.self)
}

func (e *editNode) Copy() Edit {
	return NewCopier(e.self).Perform()
}

func (e *editNode) Accept(v Visitor) {
	if v == nil {
		panic("tedit: nil visitor")
	}
	// Snapshot so a visitor may mutate the tree while walking it.
	children := slices.Clone(e.children)
	v.PreVisit(e.self)
	if e.self.accept0(v) {
		for _, child := range children {
			child.Accept(v)
		}
	}
	v.PostVisit(e.self)
}

func (e *editNode) node() *editNode { return e }

// markDeleted records that the edit's region was removed by an enclosing change.
func (e *editNode) markDeleted() {
	e.offset = -1
	e.length = -1
}

// adjustOffset shifts the edit's region by delta during the region-update pass.
func (e *editNode) adjustOffset(delta int) {
	e.offset += delta
}

// adjustLength grows or shrinks the edit's region, keeping it covering its
// shifted children during the document-update pass.
func (e *editNode) adjustLength(delta int) {
	e.length += delta
}

// insertionIndex computes the position at which child keeps the children sorted
// by ascending offset. Two zero-length edits at the same offset are ordered by
// arrival, earlier first; this ordering determines apply order.
func (e *editNode) insertionIndex(child Edit) (int, error) {
	size := len(e.children)
	if size == 0 {
		return 0, nil
	}
	if last := e.children[size-1]; last.End() <= child.Offset() && !boundaryConflict(last, child) {
		return size, nil
	}
	lo, hi := 0, size-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		cmp, err := compareSiblings(e.self, e.children[mid], child)
		if err != nil {
			return 0, err
		}
		switch {
		case cmp < 0:
			lo = mid + 1
		case cmp > 0:
			hi = mid - 1
		default:
			// Equal insertion points: skip past every edit already at this
			// offset so the latest arrival sorts last.
			idx := mid + 1
			for idx < size && isZeroAt(e.children[idx], child.Offset()) {
				idx++
			}
			return idx, nil
		}
	}
	return lo, nil
}

// compareSiblings orders existing against incoming, returning a negative value
// if existing lies entirely before incoming, a positive value if it lies
// entirely after, and zero for two insertion points at the same offset. Any
// other configuration overlaps.
func compareSiblings(parent, existing, incoming Edit) (int, error) {
	if isZeroAt(existing, incoming.Offset()) && incoming.Length() == 0 {
		return 0, nil
	}
	if boundaryConflict(existing, incoming) || boundaryConflict(incoming, existing) {
		return 0, &MalformedTreeError{Parent: parent, Child: incoming, Reason: "overlapping edits"}
	}
	if existing.End() <= incoming.Offset() {
		return -1, nil
	}
	if incoming.End() <= existing.Offset() {
		return 1, nil
	}
	return 0, &MalformedTreeError{Parent: parent, Child: incoming, Reason: "overlapping edits"}
}

// boundaryConflict reports whether a is an insertion point sitting at the exact
// start of the non-empty sibling b. Such a pair is treated as overlapping: the
// insertion would be swallowed were b's region removed.
func boundaryConflict(a, b Edit) bool {
	return a.Length() == 0 && b.Length() > 0 && a.Offset() == b.Offset()
}

func isZeroAt(e Edit, offset int) bool {
	return e.Length() == 0 && e.Offset() == offset
}

// initClone copies the region of src into a fresh clone, transient state reset.
func (e *editNode) initClone(self Edit, src *editNode) {
	e.self = self
	e.offset = src.offset
	e.length = src.length
}

// Variant defaults. Concrete edits override where their semantics differ.

// aboutToAdopt gives group edits a chance to grow their region before the
// coverage check of AddChild runs.
func (e *editNode) aboutToAdopt(Edit) {}

func (e *editNode) postProcessCopy(*Copier) {}

func (e *editNode) checkIntegrity() error { return nil }

func (e *editNode) computeSource(*Processor) error { return nil }

func (e *editNode) deletesChildren() bool { return false }

func (e *editNode) canZeroLengthCover() bool { return false }

// Coverage returns the smallest region spanning the regions of every non-deleted
// edit in edits, and false if all of them are deleted. It panics if edits is
// empty.
func Coverage(edits []Edit) (Region, bool) {
	if len(edits) == 0 {
		panic("tedit: empty edit slice")
	}
	offset, end := -1, -1
	for _, e := range edits {
		if e.IsDeleted() {
			continue
		}
		if offset == -1 || e.Offset() < offset {
			offset = e.Offset()
		}
		if e.End() > end {
			end = e.End()
		}
	}
	if offset == -1 {
		return Region{}, false
	}
	return Region{Offset: offset, Length: end - offset}, true
}
