// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/caspereye/stakingtracker/cache"
	"github.com/caspereye/stakingtracker/cspr"
	"github.com/caspereye/stakingtracker/kv"
)

const (
	storageBucket = kv.Bucket("s") // contract ++ slot => rlp value
	codeBucket    = kv.Bucket("c") // contract => code marker

	// DefaultCacheSize number of committed slots kept in memory.
	DefaultCacheSize = 1024
)

// Stater is the state creator.
// It owns the persistent store and a cache of committed slot values.
type Stater struct {
	db      kv.Store
	storage kv.Getter
	code    kv.Getter
	cache   *cache.LRU
}

// NewStater create a new stater on top of db.
func NewStater(db kv.Store, cacheSize int) (*Stater, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	c, err := cache.NewLRU(cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "create storage cache")
	}
	return &Stater{
		db:      db,
		storage: storageBucket.NewGetter(db),
		code:    codeBucket.NewGetter(db),
		cache:   c,
	}, nil
}

// NewState create a new state object viewing the committed data.
func (s *Stater) NewState() *State {
	return newState(s)
}

// CacheStats returns hit/miss counts of the slot cache.
func (s *Stater) CacheStats() (hit, miss int64) {
	return s.cache.Stats().Counts()
}

// loadStorage loads committed raw value of the slot. Absent slots load as empty.
func (s *Stater) loadStorage(key storageKey) (rlp.RawValue, error) {
	v, err := s.cache.GetOrLoad(key, func(any) (any, error) {
		metricStorageCounter().AddWithLabel(1, map[string]string{"type": "read", "target": "db"})
		data, err := s.storage.Get(key.bytes())
		if err != nil {
			if s.storage.IsNotFound(err) {
				return rlp.RawValue(nil), nil
			}
			return nil, err
		}
		return rlp.RawValue(data), nil
	})
	metricCacheHitRate().Set(s.cache.Stats().HitRate())
	if err != nil {
		return nil, err
	}
	return v.(rlp.RawValue), nil
}

func (s *Stater) loadCode(contract cspr.Bytes32) ([]byte, error) {
	data, err := s.code.Get(contract[:])
	if err != nil {
		if s.code.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}
