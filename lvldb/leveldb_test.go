// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caspereye/stakingtracker/kv"
)

func TestLevelDB(t *testing.T) {
	var (
		key        = []byte("123")
		value      = []byte("456")
		inValidKey = []byte("abc")
	)

	persisted, err := New(filepath.Join(t.TempDir(), "main.db"), Options{CacheSize: 16, OpenFilesCacheCapacity: 16})
	require.NoError(t, err)
	defer persisted.Close()

	mem, err := NewMem()
	require.NoError(t, err)
	defer mem.Close()

	for _, db := range []*LevelDB{persisted, mem} {
		require.NoError(t, db.Put(key, value))

		ret1, err := db.Get(key)
		assert.NoError(t, err)

		ret2, err := db.Has(key)
		assert.NoError(t, err)

		ret3, err := db.Has(inValidKey)
		assert.NoError(t, err)

		require.NoError(t, db.Delete(key))
		_, ret4 := db.Get(key)

		tests := []struct {
			ret      any
			expected any
		}{
			{ret1, value},
			{ret2, true},
			{ret3, false},
			{db.IsNotFound(ret4), true},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.ret)
		}
	}
}

func TestLevelDBReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.db")

	db, err := New(path, Options{})
	require.NoError(t, err)
	require.NoError(t, db.Put([]byte("k"), []byte("v")))
	require.NoError(t, db.Close())

	db, err = New(path, Options{})
	require.NoError(t, err)
	defer db.Close()

	v, err := db.Get([]byte("k"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestLevelDBCloseReleasesLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.db")

	db, err := New(path, Options{})
	require.NoError(t, err)

	// locked while open
	_, err = New(path, Options{})
	assert.Error(t, err)

	require.NoError(t, db.Close())

	db, err = New(path, Options{})
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}

func TestLevelDBBulk(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	bulk := db.Bulk()
	require.NoError(t, bulk.Put([]byte("a"), []byte("1")))
	require.NoError(t, bulk.Put([]byte("b"), []byte("2")))
	assert.Equal(t, 2, bulk.Len())

	// nothing visible before write
	has, err := db.Has([]byte("a"))
	assert.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, bulk.Write())
	assert.Equal(t, 0, bulk.Len())

	v, err := db.Get([]byte("b"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("2"), v)
}

func TestLevelDBSnapshot(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("k"), []byte("v1")))
	snapshot := db.Snapshot()
	defer snapshot.Release()

	require.NoError(t, db.Put([]byte("k"), []byte("v2")))

	v, err := snapshot.Get([]byte("k"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
}

func TestBucketStore(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	a := kv.Bucket("a").NewStore(db)
	b := kv.Bucket("b").NewStore(db)

	require.NoError(t, a.Put([]byte("key"), []byte("in-a")))
	require.NoError(t, b.Put([]byte("key"), []byte("in-b")))

	raw, err := db.Get([]byte("akey"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("in-a"), raw)

	v, err := b.Get([]byte("key"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("in-b"), v)

	bulk := a.Bulk()
	require.NoError(t, bulk.Put([]byte("x"), []byte("1")))
	require.NoError(t, bulk.Put([]byte("y"), []byte("2")))
	require.NoError(t, bulk.Write())

	iter := a.Iterate(kv.Range{})
	defer iter.Release()

	var keys []string
	for iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	assert.NoError(t, iter.Error())
	assert.Equal(t, []string{"key", "x", "y"}, keys)

	_, err = b.Get([]byte("x"))
	assert.True(t, b.IsNotFound(err))
}
