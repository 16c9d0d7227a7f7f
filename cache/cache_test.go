// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStats(t *testing.T) {
	cs := &Stats{}
	assert.Equal(t, int64(0), cs.HitRate())

	cs.Hit()
	cs.Miss()
	hit, miss := cs.Counts()
	assert.Equal(t, int64(1), hit)
	assert.Equal(t, int64(1), miss)
	assert.Equal(t, int64(500), cs.HitRate())

	cs.Hit()
	assert.Equal(t, int64(3), cs.Hit())
	assert.Equal(t, int64(750), cs.HitRate())
}

func TestLRUGetOrLoad(t *testing.T) {
	_, err := NewLRU(0)
	assert.Error(t, err)

	c, err := NewLRU(2)
	require.NoError(t, err)

	loads := 0
	loader := func(key any) (any, error) {
		loads++
		return key.(int) * 10, nil
	}

	v, err := c.GetOrLoad(1, loader)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = c.GetOrLoad(1, loader)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, loads)

	// evicts key 1
	c.GetOrLoad(2, loader)
	c.GetOrLoad(3, loader)
	_, ok := c.Get(1)
	assert.False(t, ok)

	hit, miss := c.Stats().Counts()
	assert.Equal(t, int64(1), hit)
	assert.Equal(t, int64(3), miss)

	errLoad := errors.New("load failed")
	_, err = c.GetOrLoad(4, func(any) (any, error) { return nil, errLoad })
	assert.ErrorIs(t, err, errLoad)
	_, ok = c.Get(4)
	assert.False(t, ok)
}
