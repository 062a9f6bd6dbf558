// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

// Package editscript decodes and encodes edit trees as YAML scripts, the
// on-disk format used by the teditcli command.
package editscript

import (
	"errors"
	"fmt"
	"io"

	"github.com/tigerwill90/tedit"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned when a script cannot be assembled into a valid
// edit tree.
var ErrInvalidScript = errors.New("invalid edit script")

// Supported operation names.
const (
	OpInsert     = "insert"
	OpDelete     = "delete"
	OpReplace    = "replace"
	OpGroup      = "group"
	OpMarker     = "marker"
	OpMoveSource = "move-source"
	OpMoveTarget = "move-target"
	OpCopySource = "copy-source"
	OpCopyTarget = "copy-target"
)

// Node describes one edit of a script. Move and copy sources carry an ID which
// their target references through Ref.
type Node struct {
	Op       string `yaml:"op"`
	Offset   int    `yaml:"offset"`
	Length   int    `yaml:"length,omitempty"`
	Text     string `yaml:"text,omitempty"`
	ID       string `yaml:"id,omitempty"`
	Ref      string `yaml:"ref,omitempty"`
	Children []Node `yaml:"children,omitempty"`
}

// Script is a sequence of edits applied as one atomic group.
type Script struct {
	Edits []Node `yaml:"edits"`
}

// Decode reads a YAML script from r.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScript, err)
	}
	return &s, nil
}

// Encode writes s as YAML to w.
func Encode(w io.Writer, s *Script) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(s)
}

// Build assembles the script into an edit tree rooted at a group edit,
// resolving move and copy pairs by ID. Structural violations surface as errors
// wrapping [tedit.ErrMalformedTree], script-level ones as errors wrapping
// [ErrInvalidScript].
func (s *Script) Build() (*tedit.MultiEdit, error) {
	b := &builder{sources: make(map[string]tedit.Edit)}
	root := tedit.NewMultiEdit()
	for _, n := range s.Edits {
		if err := b.build(root, n); err != nil {
			return nil, err
		}
	}
	if err := b.resolve(); err != nil {
		return nil, err
	}
	return root, nil
}

// FromUndo renders an undo edit as a script of plain replace operations in
// execution order: applying them one after the other restores the document the
// undo was recorded against.
func FromUndo(undo *tedit.UndoEdit) *Script {
	s := &Script{}
	for _, child := range undo.Children() {
		inverse := child.(*tedit.ReplaceEdit)
		s.Edits = append(s.Edits, Node{
			Op:     OpReplace,
			Offset: inverse.Offset(),
			Length: inverse.Length(),
			Text:   inverse.Text(),
		})
	}
	return s
}

type pendingRef struct {
	target tedit.Edit
	ref    string
}

type builder struct {
	sources map[string]tedit.Edit
	targets []pendingRef
}

func (b *builder) build(parent tedit.Edit, n Node) error {
	edit, err := b.newEdit(n)
	if err != nil {
		return err
	}
	if err := parent.AddChild(edit); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := b.build(edit, child); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) newEdit(n Node) (tedit.Edit, error) {
	if n.Offset < 0 || n.Length < 0 {
		return nil, fmt.Errorf("%w: negative offset or length in %q node", ErrInvalidScript, n.Op)
	}
	var edit tedit.Edit
	switch n.Op {
	case OpInsert:
		edit = tedit.NewInsertEdit(n.Offset, n.Text)
	case OpDelete:
		edit = tedit.NewDeleteEdit(n.Offset, n.Length)
	case OpReplace:
		edit = tedit.NewReplaceEdit(n.Offset, n.Length, n.Text)
	case OpGroup:
		edit = tedit.NewMultiEdit()
	case OpMarker:
		edit = tedit.NewRangeMarker(n.Offset, n.Length)
	case OpMoveSource:
		edit = tedit.NewMoveSourceEdit(n.Offset, n.Length)
	case OpCopySource:
		edit = tedit.NewCopySourceEdit(n.Offset, n.Length)
	case OpMoveTarget:
		edit = tedit.NewMoveTargetEdit(n.Offset)
	case OpCopyTarget:
		edit = tedit.NewCopyTargetEdit(n.Offset)
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", ErrInvalidScript, n.Op)
	}

	switch n.Op {
	case OpMoveSource, OpCopySource:
		if n.ID == "" {
			return nil, fmt.Errorf("%w: %q node without id", ErrInvalidScript, n.Op)
		}
		if _, dup := b.sources[n.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate source id %q", ErrInvalidScript, n.ID)
		}
		b.sources[n.ID] = edit
	case OpMoveTarget, OpCopyTarget:
		if n.Ref == "" {
			return nil, fmt.Errorf("%w: %q node without ref", ErrInvalidScript, n.Op)
		}
		b.targets = append(b.targets, pendingRef{target: edit, ref: n.Ref})
	}
	return edit, nil
}

func (b *builder) resolve() error {
	for _, pending := range b.targets {
		source, ok := b.sources[pending.ref]
		if !ok {
			return fmt.Errorf("%w: unresolved source ref %q", ErrInvalidScript, pending.ref)
		}
		switch target := pending.target.(type) {
		case *tedit.MoveTargetEdit:
			moveSource, ok := source.(*tedit.MoveSourceEdit)
			if !ok {
				return fmt.Errorf("%w: ref %q pairs a move target with a copy source", ErrInvalidScript, pending.ref)
			}
			target.SetSourceEdit(moveSource)
		case *tedit.CopyTargetEdit:
			copySource, ok := source.(*tedit.CopySourceEdit)
			if !ok {
				return fmt.Errorf("%w: ref %q pairs a copy target with a move source", ErrInvalidScript, pending.ref)
			}
			target.SetSourceEdit(copySource)
		}
	}
	return nil
}
