// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package editscript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tigerwill90/tedit"
)

func TestDecodeAndBuild(t *testing.T) {
	t.Parallel()
	const script = `
edits:
  - op: insert
    offset: 0
    text: "www."
  - op: insert
    offset: 0
    text: "eclipse."
`
	s, err := Decode(strings.NewReader(script))
	require.NoError(t, err)
	root, err := s.Build()
	require.NoError(t, err)

	doc := tedit.NewBuffer("org")
	_, err = root.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, "www.eclipse.org", doc.String())
}

func TestBuildNestedGroup(t *testing.T) {
	t.Parallel()
	const script = `
edits:
  - op: group
    children:
      - op: delete
        offset: 1
        length: 2
      - op: marker
        offset: 4
        length: 1
  - op: replace
    offset: 6
    length: 2
    text: "Z"
`
	s, err := Decode(strings.NewReader(script))
	require.NoError(t, err)
	root, err := s.Build()
	require.NoError(t, err)

	require.Equal(t, 2, root.ChildCount())
	group := root.ChildAt(0).(*tedit.MultiEdit)
	assert.Equal(t, tedit.Region{Offset: 1, Length: 4}, group.Region())

	doc := tedit.NewBuffer("abcdefgh")
	_, err = root.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, "adefZ", doc.String())
}

func TestBuildMovePair(t *testing.T) {
	t.Parallel()
	const script = `
edits:
  - op: move-source
    id: word
    offset: 4
    length: 6
  - op: move-target
    offset: 16
    ref: word
`
	s, err := Decode(strings.NewReader(script))
	require.NoError(t, err)
	root, err := s.Build()
	require.NoError(t, err)

	doc := tedit.NewBuffer("the quick brown fox")
	_, err = root.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, "the brown quick fox", doc.String())
}

func TestBuildCopyPair(t *testing.T) {
	t.Parallel()
	const script = `
edits:
  - op: copy-source
    id: a
    offset: 0
    length: 1
  - op: copy-target
    offset: 2
    ref: a
`
	s, err := Decode(strings.NewReader(script))
	require.NoError(t, err)
	root, err := s.Build()
	require.NoError(t, err)

	doc := tedit.NewBuffer("ab")
	_, err = root.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, "aba", doc.String())
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		script string
		target error
	}{
		{
			name: "unknown op",
			script: `
edits:
  - op: frobnicate
    offset: 0
`,
			target: ErrInvalidScript,
		},
		{
			name: "source without id",
			script: `
edits:
  - op: move-source
    offset: 0
    length: 2
`,
			target: ErrInvalidScript,
		},
		{
			name: "target without ref",
			script: `
edits:
  - op: move-target
    offset: 4
`,
			target: ErrInvalidScript,
		},
		{
			name: "unresolved ref",
			script: `
edits:
  - op: move-target
    offset: 4
    ref: missing
`,
			target: ErrInvalidScript,
		},
		{
			name: "duplicate id",
			script: `
edits:
  - op: copy-source
    id: a
    offset: 0
    length: 1
  - op: copy-source
    id: a
    offset: 2
    length: 1
`,
			target: ErrInvalidScript,
		},
		{
			name: "mismatched pair kinds",
			script: `
edits:
  - op: copy-source
    id: a
    offset: 0
    length: 1
  - op: move-target
    offset: 4
    ref: a
`,
			target: ErrInvalidScript,
		},
		{
			name: "negative offset",
			script: `
edits:
  - op: delete
    offset: -1
    length: 2
`,
			target: ErrInvalidScript,
		},
		{
			name: "overlapping edits",
			script: `
edits:
  - op: delete
    offset: 0
    length: 4
  - op: replace
    offset: 2
    length: 4
    text: "x"
`,
			target: tedit.ErrMalformedTree,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := Decode(strings.NewReader(tc.script))
			require.NoError(t, err)
			_, err = s.Build()
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestDecodeInvalidYAML(t *testing.T) {
	t.Parallel()
	_, err := Decode(strings.NewReader("edits: [whoops"))
	require.ErrorIs(t, err, ErrInvalidScript)
}

func TestFromUndoRoundTrip(t *testing.T) {
	t.Parallel()
	doc := tedit.NewBuffer("abcdef")
	root := tedit.NewMultiEdit()
	require.NoError(t, root.AddChild(tedit.NewDeleteEdit(1, 2)))
	require.NoError(t, root.AddChild(tedit.NewInsertEdit(5, "XY")))

	undo, err := root.Apply(doc)
	require.NoError(t, err)
	require.Equal(t, "adeXYf", doc.String())

	s := FromUndo(undo)
	require.Len(t, s.Edits, 2)

	// Encode and decode the undo script, then replay it in order.
	sb := new(strings.Builder)
	require.NoError(t, Encode(sb, s))
	decoded, err := Decode(strings.NewReader(sb.String()))
	require.NoError(t, err)

	for _, n := range decoded.Edits {
		require.Equal(t, OpReplace, n.Op)
		edit := tedit.NewReplaceEdit(n.Offset, n.Length, n.Text)
		_, err := edit.ApplyWithStyle(doc, tedit.None)
		require.NoError(t, err)
	}
	assert.Equal(t, "abcdef", doc.String())
}
