// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cspr

import (
	"github.com/ethereum/go-ethereum/params"
)

// Gas schedule of the host. Storage costs follow the EVM so that a
// snapshot costs the same as it would in an equivalent Solidity contract.
const (
	CallGas        uint64 = params.TxGas          // intrinsic gas of every call
	SloadGas       uint64 = params.SloadGasEIP150 // EIP158 gas table
	SstoreSetGas   uint64 = params.SstoreSetGas   // zero -> non-zero
	SstoreResetGas uint64 = params.SstoreResetGas // non-zero -> any

	DefaultCallGasLimit uint64 = 1000 * 1000
)

// Units of the Casper network.
const (
	MotesPerCSPR uint64 = 1_000_000_000

	// WhaleThresholdCSPR an account holding more than this amount is a whale.
	// It's classified upstream, the tracker only stores the resulting count.
	WhaleThresholdCSPR uint64 = 100_000
)

// MotesToKiloCSPR converts an amount in motes to the unit of total_staked_k,
// i.e. thousands of CSPR, rounding down.
func MotesToKiloCSPR(motes uint64) uint64 {
	return motes / MotesPerCSPR / 1000
}
