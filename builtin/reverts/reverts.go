// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	errorSelector = crypto.Keccak256([]byte("Error(string)"))[:4]
	stringArgs    = func() abi.Arguments {
		typ, _ := abi.NewType("string", "", nil)
		return abi.Arguments{{Type: typ}}
	}()
)

// ErrRequire is a contract level failure, reported to the caller as revert data
// rather than as a host error.
type ErrRequire struct {
	message string
}

func NewRequireError(message string) *ErrRequire {
	return &ErrRequire{
		message: message,
	}
}

func (e *ErrRequire) Error() string {
	return e.message
}

// Bytes returns the ABI encoded Error(string) revert data.
func (e *ErrRequire) Bytes() []byte {
	if e == nil {
		return nil
	}
	packed, _ := stringArgs.Pack(e.message)
	return append(append([]byte{}, errorSelector...), packed...)
}

// Unpack decodes revert data produced by ErrRequire.Bytes.
func Unpack(data []byte) (string, error) {
	return abi.UnpackRevert(data)
}

func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRequire
	if errors.As(e, &ve) {
		return ve != nil
	}
	return false
}
