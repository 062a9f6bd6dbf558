// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

// ReplaceEdit substitutes a range of text with new text. Applying it marks
// every child as deleted.
type ReplaceEdit struct {
	editNode
	text string
}

// NewReplaceEdit returns an edit replacing the length characters starting at
// offset with text. It panics if offset or length is negative.
func NewReplaceEdit(offset, length int, text string) *ReplaceEdit {
	e := &ReplaceEdit{text: text}
	e.init(e, offset, length)
	return e
}

// Text returns the replacement text.
func (e *ReplaceEdit) Text() string { return e.text }

func (e *ReplaceEdit) cloneEdit() Edit {
	c := &ReplaceEdit{text: e.text}
	c.initClone(c, &e.editNode)
	return c
}

func (e *ReplaceEdit) accept0(v Visitor) bool { return v.VisitReplace(e) }

func (e *ReplaceEdit) deletesChildren() bool { return true }

func (e *ReplaceEdit) updateDocument(p *Processor) (int, error) {
	if err := p.replace(e.offset, e.length, e.text); err != nil {
		return 0, err
	}
	e.delta = len(e.text) - e.length
	return e.delta, nil
}
