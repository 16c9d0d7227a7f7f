// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"encoding/binary"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/caspereye/stakingtracker/cspr"
)

// Unsigned fixed size integers storable in a slot.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint is an unsigned integer variable occupying one storage slot,
// stored big-endian in the low bytes of the word.
type Uint[T Unsigned] struct {
	context *Context
	pos     cspr.Bytes32
}

type (
	Uint8  = Uint[uint8]
	Uint32 = Uint[uint32]
	Uint64 = Uint[uint64]
)

func NewUint[T Unsigned](context *Context, pos cspr.Bytes32) *Uint[T] {
	return &Uint[T]{context: context, pos: pos}
}

func NewUint8(context *Context, pos cspr.Bytes32) *Uint8   { return NewUint[uint8](context, pos) }
func NewUint32(context *Context, pos cspr.Bytes32) *Uint32 { return NewUint[uint32](context, pos) }
func NewUint64(context *Context, pos cspr.Bytes32) *Uint64 { return NewUint[uint64](context, pos) }

// Pos returns the storage position.
func (u *Uint[T]) Pos() cspr.Bytes32 {
	return u.pos
}

// Get loads the value, 0 if never set.
func (u *Uint[T]) Get() (T, error) {
	u.context.UseGas(cspr.SloadGas)
	return u.load()
}

// Set stores the value. Turning a zero slot non-zero costs SstoreSetGas,
// any other write SstoreResetGas.
func (u *Uint[T]) Set(value T) error {
	current, err := u.context.state.GetStorage(u.context.contract, u.pos)
	if err != nil {
		return err
	}
	if current.IsZero() && value != 0 {
		u.context.UseGas(cspr.SstoreSetGas)
	} else {
		u.context.UseGas(cspr.SstoreResetGas)
	}

	var word cspr.Bytes32
	binary.BigEndian.PutUint64(word[24:], uint64(value))
	u.context.state.SetStorage(u.context.contract, u.pos, word)
	return nil
}

func (u *Uint[T]) load() (T, error) {
	word, err := u.context.state.GetStorage(u.context.contract, u.pos)
	if err != nil {
		return 0, err
	}
	size := int(unsafe.Sizeof(T(0)))
	for _, b := range word[:32-size] {
		if b != 0 {
			return 0, errors.Errorf("slot %v: value overflows uint%d", u.pos, size*8)
		}
	}
	return T(binary.BigEndian.Uint64(word[24:])), nil
}
