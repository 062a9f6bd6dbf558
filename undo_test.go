// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoRestoresOriginalDocument(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		content string
		build   func() Edit
		want    string
	}{
		{
			name:    "single delete",
			content: "abcdef",
			build: func() Edit {
				return NewDeleteEdit(1, 3)
			},
			want: "aef",
		},
		{
			name:    "mixed group",
			content: "package main",
			build: func() Edit {
				root := NewMultiEdit()
				_ = root.AddChild(NewReplaceEdit(0, 7, "pkg"))
				_ = root.AddChild(NewInsertEdit(8, "my_"))
				return root
			},
			want: "pkg my_main",
		},
		{
			name:    "adjacent edits",
			content: "0123456789",
			build: func() Edit {
				root := NewMultiEdit()
				_ = root.AddChild(NewDeleteEdit(0, 5))
				_ = root.AddChild(NewDeleteEdit(5, 5))
				return root
			},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := NewBuffer(tc.content)
			undo, err := tc.build().Apply(doc)
			require.NoError(t, err)
			require.Equal(t, tc.want, doc.String())

			_, err = undo.Apply(doc)
			require.NoError(t, err)
			assert.Equal(t, tc.content, doc.String())
		})
	}
}

func TestUndoProducesRedo(t *testing.T) {
	t.Parallel()
	doc := NewBuffer("abcdef")
	root := NewMultiEdit()
	require.NoError(t, root.AddChild(NewDeleteEdit(1, 2)))
	require.NoError(t, root.AddChild(NewInsertEdit(5, "XY")))

	undo, err := root.Apply(doc)
	require.NoError(t, err)
	mutated := doc.String()
	require.Equal(t, "adeXYf", mutated)

	redo, err := undo.Apply(doc)
	require.NoError(t, err)
	require.Equal(t, "abcdef", doc.String())

	// The redo edit replays the original change.
	_, err = redo.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, mutated, doc.String())
}

func TestUndoWithoutCreateUndoReturnsNil(t *testing.T) {
	t.Parallel()
	doc := NewBuffer("abcdef")
	undo, err := NewDeleteEdit(0, 2).Apply(doc)
	require.NoError(t, err)

	redo, err := undo.ApplyWithStyle(doc, None)
	require.NoError(t, err)
	assert.Nil(t, redo)
	assert.Equal(t, "abcdef", doc.String())
}

func TestUndoHoldsOneInversePerAtomicChange(t *testing.T) {
	t.Parallel()
	doc := NewBuffer("abcdef")
	root := NewMultiEdit()
	require.NoError(t, root.AddChild(NewDeleteEdit(0, 1)))
	require.NoError(t, root.AddChild(NewReplaceEdit(2, 2, "X")))
	require.NoError(t, root.AddChild(NewInsertEdit(6, "!")))

	undo, err := root.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, 3, undo.ChildCount())
	for _, child := range undo.Children() {
		assert.IsType(t, &ReplaceEdit{}, child)
	}
}
