// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/tedit/blob/master/LICENSE.txt.

package tedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion(t *testing.T) {
	t.Parallel()
	r := Region{Offset: 4, Length: 3}
	assert.Equal(t, 7, r.End())
	assert.Equal(t, 6, r.InclusiveEnd())
	assert.False(t, r.IsEmpty())
	assert.True(t, Region{Offset: 2}.IsEmpty())
	assert.Equal(t, "[4,3]", r.String())
}

func TestRegionCovers(t *testing.T) {
	t.Parallel()
	r := Region{Offset: 4, Length: 4}
	assert.True(t, r.Covers(Region{Offset: 4, Length: 4}))
	assert.True(t, r.Covers(Region{Offset: 5, Length: 2}))
	assert.True(t, r.Covers(Region{Offset: 8, Length: 0}))
	assert.False(t, r.Covers(Region{Offset: 3, Length: 2}))
	assert.False(t, r.Covers(Region{Offset: 7, Length: 2}))
}

func TestRegionContains(t *testing.T) {
	t.Parallel()
	r := Region{Offset: 4, Length: 2}
	assert.False(t, r.Contains(3))
	assert.True(t, r.Contains(4))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))
}
