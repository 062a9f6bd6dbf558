// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferReplace(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		content string
		offset  int
		length  int
		text    string
		want    string
	}{
		{name: "insert at start", content: "org", offset: 0, length: 0, text: "www.", want: "www.org"},
		{name: "insert at end", content: "abc", offset: 3, length: 0, text: "def", want: "abcdef"},
		{name: "delete range", content: "abcdef", offset: 1, length: 3, text: "", want: "aef"},
		{name: "replace shrinking", content: "abcdef", offset: 0, length: 4, text: "x", want: "xef"},
		{name: "replace growing", content: "abc", offset: 1, length: 1, text: "BBB", want: "aBBBc"},
		{name: "whole document", content: "abc", offset: 0, length: 3, text: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := NewBuffer(tc.content)
			require.NoError(t, doc.Replace(tc.offset, tc.length, tc.text))
			assert.Equal(t, tc.want, doc.String())
			assert.Equal(t, len(tc.want), doc.Length())
		})
	}
}

func TestBufferGet(t *testing.T) {
	t.Parallel()
	doc := NewBuffer("abcdef")

	got, err := doc.Get(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "bcd", got)

	got, err = doc.Get(6, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBufferBadLocation(t *testing.T) {
	t.Parallel()
	doc := NewBuffer("abc")
	cases := []struct {
		name   string
		offset int
		length int
	}{
		{name: "offset past end", offset: 4, length: 0},
		{name: "range past end", offset: 2, length: 5},
		{name: "negative offset", offset: -1, length: 1},
		{name: "negative length", offset: 0, length: -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := doc.Get(tc.offset, tc.length)
			require.ErrorIs(t, err, ErrBadLocation)

			err = doc.Replace(tc.offset, tc.length, "x")
			require.ErrorIs(t, err, ErrBadLocation)

			var bad *BadLocationError
			require.ErrorAs(t, err, &bad)
			assert.Equal(t, tc.offset, bad.Offset)
			assert.Equal(t, tc.length, bad.Length)
			assert.Equal(t, 3, bad.DocLength)
		})
	}
}

func TestBufferZeroValue(t *testing.T) {
	t.Parallel()
	var doc Buffer
	assert.Equal(t, 0, doc.Length())
	require.NoError(t, doc.Replace(0, 0, "hi"))
	assert.Equal(t, "hi", doc.String())
}
