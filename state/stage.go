// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"
)

// Stage abstracts changes pending to be written into the store.
type Stage struct {
	stater  *Stater
	storage map[storageKey]rlp.RawValue
	codes   map[codeKey][]byte
}

// Len returns the number of changed entries.
func (s *Stage) Len() int {
	return len(s.storage) + len(s.codes)
}

// Commit writes all changes in one atomic batch.
func (s *Stage) Commit() error {
	if s.Len() == 0 {
		return nil
	}

	bulk := s.stater.db.Bulk()
	storage := storageBucket.NewPutter(bulk)
	code := codeBucket.NewPutter(bulk)

	for k, v := range s.storage {
		var err error
		if len(v) == 0 {
			err = storage.Delete(k.bytes())
		} else {
			err = storage.Put(k.bytes(), v)
		}
		if err != nil {
			return &Error{err}
		}
	}
	for k, v := range s.codes {
		var err error
		if len(v) == 0 {
			err = code.Delete(k[:])
		} else {
			err = code.Put(k[:], v)
		}
		if err != nil {
			return &Error{err}
		}
	}

	if err := bulk.Write(); err != nil {
		return &Error{err}
	}

	for k, v := range s.storage {
		s.stater.cache.Add(k, v)
	}
	metricStorageCounter().AddWithLabel(int64(len(s.storage)), map[string]string{"type": "write", "target": "db"})
	return nil
}
