// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

// InsertEdit inserts text at a given offset without replacing anything. Its
// region has length zero and it cannot have children.
type InsertEdit struct {
	editNode
	text string
}

// NewInsertEdit returns an edit inserting text at offset. It panics if offset
// is negative.
func NewInsertEdit(offset int, text string) *InsertEdit {
	e := &InsertEdit{text: text}
	e.init(e, offset, 0)
	return e
}

// Text returns the text to insert.
func (e *InsertEdit) Text() string { return e.text }

func (e *InsertEdit) cloneEdit() Edit {
	c := &InsertEdit{text: e.text}
	c.initClone(c, &e.editNode)
	return c
}

func (e *InsertEdit) accept0(v Visitor) bool { return v.VisitInsert(e) }

func (e *InsertEdit) updateDocument(p *Processor) (int, error) {
	if err := p.replace(e.offset, e.length, e.text); err != nil {
		return 0, err
	}
	e.delta = len(e.text) - e.length
	return e.delta, nil
}
