// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package state manages contract storage slots on top of a key-value store.
// Changes are journaled in memory and only reach the store through Stage.Commit.
package state

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/caspereye/stakingtracker/cspr"
	"github.com/caspereye/stakingtracker/stackedmap"
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

type storageKey struct {
	contract cspr.Bytes32
	key      cspr.Bytes32
}

func (k storageKey) bytes() []byte {
	return append(append(make([]byte, 0, 64), k.contract[:]...), k.key[:]...)
}

type codeKey cspr.Bytes32

// State is a journaled view of contract storage.
type State struct {
	stater *Stater
	sm     *stackedmap.StackedMap[any, any]
}

func newState(stater *Stater) *State {
	s := &State{stater: stater}
	s.sm = stackedmap.New(s.cacheGetter)
	return s
}

// cacheGetter implements stackedmap.MapGetter.
func (s *State) cacheGetter(key any) (any, bool, error) {
	switch k := key.(type) {
	case storageKey:
		v, err := s.stater.loadStorage(k)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	case codeKey:
		code, err := s.stater.loadCode(cspr.Bytes32(k))
		if err != nil {
			return nil, false, err
		}
		return code, true, nil
	}
	panic(fmt.Errorf("unexpected key type %+v", key))
}

// GetRawStorage returns storage value in rlp raw for given contract and key.
func (s *State) GetRawStorage(contract, key cspr.Bytes32) (rlp.RawValue, error) {
	data, _, err := s.sm.Get(storageKey{contract, key})
	if err != nil {
		return nil, &Error{err}
	}
	return data.(rlp.RawValue), nil
}

// SetRawStorage set storage value in rlp raw. Empty raw clears the slot.
func (s *State) SetRawStorage(contract, key cspr.Bytes32, raw rlp.RawValue) {
	s.sm.Put(storageKey{contract, key}, raw)
}

// GetStorage returns storage value for the given contract and key.
func (s *State) GetStorage(contract, key cspr.Bytes32) (cspr.Bytes32, error) {
	raw, err := s.GetRawStorage(contract, key)
	if err != nil {
		return cspr.Bytes32{}, err
	}
	if len(raw) == 0 {
		return cspr.Bytes32{}, nil
	}
	kind, content, _, err := rlp.Split(raw)
	if err != nil {
		return cspr.Bytes32{}, &Error{errors.Wrapf(err, "decode slot %v", key)}
	}
	if kind == rlp.List || len(content) > 32 {
		return cspr.Bytes32{}, &Error{errors.Errorf("decode slot %v: not a 32-byte word", key)}
	}
	return cspr.BytesToBytes32(content), nil
}

// SetStorage set storage value for the given contract and key.
// The zero value deletes the slot.
func (s *State) SetStorage(contract, key, value cspr.Bytes32) {
	if value.IsZero() {
		s.SetRawStorage(contract, key, nil)
		return
	}
	v, _ := rlp.EncodeToBytes(bytes.TrimLeft(value[:], "\x00"))
	s.SetRawStorage(contract, key, v)
}

// GetCode returns the code marker of the contract, nil if never set.
func (s *State) GetCode(contract cspr.Bytes32) ([]byte, error) {
	code, _, err := s.sm.Get(codeKey(contract))
	if err != nil {
		return nil, &Error{err}
	}
	return code.([]byte), nil
}

// SetCode set code marker of the contract.
func (s *State) SetCode(contract cspr.Bytes32, code []byte) {
	s.sm.Put(codeKey(contract), code)
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
}

// Stage collects all changes made since the state was created.
func (s *State) Stage() *Stage {
	stage := &Stage{
		stater:  s.stater,
		storage: make(map[storageKey]rlp.RawValue),
		codes:   make(map[codeKey][]byte),
	}
	s.sm.Journal(func(k, v any) bool {
		switch key := k.(type) {
		case storageKey:
			stage.storage[key] = v.(rlp.RawValue)
		case codeKey:
			stage.codes[key] = v.([]byte)
		}
		return true
	})
	return stage
}
