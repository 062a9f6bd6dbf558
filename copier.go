// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

// Copier produces a deep copy of an edit tree. The copy shares no edit with the
// original: regions, children and move/copy pairings are duplicated, keyed by
// edit identity; only source modifiers are shared by reference. A move or copy edit whose partner lies outside the copied
// subtree is left unpaired in the copy; applying such a copy fails its
// integrity pass. Usually [Edit.Copy] is all that is needed; use a Copier
// directly to look up individual copies afterwards.
type Copier struct {
	source Edit
	copies map[Edit]Edit
}

// NewCopier returns a copier for the tree rooted at source. It panics if source
// is nil.
func NewCopier(source Edit) *Copier {
	if source == nil {
		panic("tedit: nil source edit")
	}
	return &Copier{source: source, copies: make(map[Edit]Edit)}
}

// Perform copies the tree and returns the copy's root. It runs a structural
// clone pass recording every source-to-copy pairing, then a post-processing
// pass rewiring cross-edit references through the recorded map.
func (c *Copier) Perform() Edit {
	root := c.doCopy(c.source)
	c.postProcess(c.source)
	return root
}

// CopyOf returns the copy made for original, or nil if original was not part of
// the copied tree. Valid once Perform ran.
func (c *Copier) CopyOf(original Edit) Edit {
	return c.copies[original]
}

func (c *Copier) doCopy(original Edit) Edit {
	clone := original.cloneEdit()
	c.copies[original] = clone
	cn := clone.node()
	for _, child := range original.node().children {
		childClone := c.doCopy(child)
		childClone.node().parent = clone
		cn.children = append(cn.children, childClone)
	}
	return clone
}

func (c *Copier) postProcess(original Edit) {
	original.postProcessCopy(c)
	for _, child := range original.node().children {
		c.postProcess(child)
	}
}
