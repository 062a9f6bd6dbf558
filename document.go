// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

import "slices"

// Document is the mutable character store an edit tree executes against. The
// engine treats it as opaque: all it needs is random access reads and a single
// atomic replace primitive. Offsets are zero-based byte offsets.
//
// Implementations must return an error wrapping [ErrBadLocation] when offset or
// offset+length falls outside [0, Length()].
type Document interface {
	// Length returns the current length of the document.
	Length() int
	// Get returns the length characters starting at offset.
	Get(offset, length int) (string, error)
	// Replace substitutes the length characters starting at offset with text.
	// A zero length inserts text at offset; empty text deletes the range.
	Replace(offset, length int, text string) error
}

// Buffer is an in-memory [Document] backed by a linear byte buffer.
// The zero value is an empty document ready for use.
type Buffer struct {
	content []byte
}

// NewBuffer returns a [Buffer] holding content.
func NewBuffer(content string) *Buffer {
	return &Buffer{content: []byte(content)}
}

// Length returns the current length of the buffer.
func (b *Buffer) Length() int { return len(b.content) }

// Get returns the length characters starting at offset.
func (b *Buffer) Get(offset, length int) (string, error) {
	if err := b.checkRange(offset, length); err != nil {
		return "", err
	}
	return string(b.content[offset : offset+length]), nil
}

// Replace substitutes the length characters starting at offset with text.
func (b *Buffer) Replace(offset, length int, text string) error {
	if err := b.checkRange(offset, length); err != nil {
		return err
	}
	b.content = slices.Replace(b.content, offset, offset+length, []byte(text)...)
	return nil
}

// String returns the current document content.
func (b *Buffer) String() string { return string(b.content) }

func (b *Buffer) checkRange(offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(b.content) {
		return &BadLocationError{Offset: offset, Length: length, DocLength: len(b.content)}
	}
	return nil
}
