// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

import "fmt"

// Region describes a contiguous range of characters in a document, by offset
// and length. The zero value is the empty region at offset zero.
type Region struct {
	Offset int
	Length int
}

// End returns the first offset after the region.
func (r Region) End() int { return r.Offset + r.Length }

// InclusiveEnd returns the last offset inside the region.
func (r Region) InclusiveEnd() int { return r.Offset + r.Length - 1 }

// IsEmpty reports whether the region has zero length.
func (r Region) IsEmpty() bool { return r.Length == 0 }

// Covers reports whether other lies entirely within r.
func (r Region) Covers(other Region) bool {
	return r.Offset <= other.Offset && other.End() <= r.End()
}

// Contains reports whether pos falls inside r.
func (r Region) Contains(pos int) bool {
	return r.Offset <= pos && pos < r.End()
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d]", r.Offset, r.Length)
}
