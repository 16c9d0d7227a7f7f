// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package abi

import (
	"bytes"
	"encoding/hex"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// MethodID method id.
type MethodID [4]byte

// EmptyMethodID represents an empty method ID (used for constructors).
var EmptyMethodID = MethodID{}

// IsEmpty returns true if the MethodID is empty.
func (id MethodID) IsEmpty() bool {
	return id == EmptyMethodID
}

// Bytes returns a copy of the id as slice.
func (id MethodID) Bytes() []byte {
	return append([]byte(nil), id[:]...)
}

func (id MethodID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// Method see abi.Method in go-ethereum.
type Method struct {
	id     MethodID
	method ethabi.Method
}

// ID returns method id.
func (m *Method) ID() MethodID {
	return m.id
}

// Name returns method name.
func (m *Method) Name() string {
	return m.method.Name
}

// Const returns if the method is read only.
func (m *Method) Const() bool {
	return m.method.IsConstant()
}

// Sig returns the canonical signature, e.g. "recordSnapshot(uint64,uint32,uint8,uint32)".
func (m *Method) Sig() string {
	return m.method.Sig
}

// EncodeInput encode args to data, and the data is prefixed with method id.
func (m *Method) EncodeInput(args ...any) ([]byte, error) {
	data, err := m.method.Inputs.Pack(args...)
	if err != nil {
		return nil, err
	}

	// if constructor there is no selector to prefix
	if m.id.IsEmpty() {
		return data, nil
	}

	return append(m.id[:], data...), nil
}

// DecodeInput decode input data into argument values.
// Values outside the declared argument types are rejected.
func (m *Method) DecodeInput(input []byte) ([]any, error) {
	if m.id.IsEmpty() {
		return m.method.Inputs.Unpack(input)
	}

	if !bytes.HasPrefix(input, m.id[:]) {
		return nil, errors.New("input has incorrect prefix")
	}
	return m.method.Inputs.Unpack(input[4:])
}

// EncodeOutput encode output args to data.
func (m *Method) EncodeOutput(args ...any) ([]byte, error) {
	return m.method.Outputs.Pack(args...)
}

// DecodeOutput decode output data into values.
func (m *Method) DecodeOutput(output []byte) ([]any, error) {
	if len(output)%32 != 0 {
		return nil, errors.New("output has incorrect length")
	}
	return m.method.Outputs.Unpack(output)
}

// ExtractMethodID extract method id from input data.
func ExtractMethodID(input []byte) (id MethodID, err error) {
	if len(input) < len(id) {
		err = errors.New("input data too short")
		return
	}
	copy(id[:], input)
	return
}
