// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package types holds the JSON bodies of the REST API, shared by the server and the client.
package types

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/caspereye/stakingtracker/runtime"
)

// Snapshot is the latest state of the tracker.
type Snapshot struct {
	TotalStakedK   uint64 `json:"totalStakedK"`
	WhaleCount     uint32 `json:"whaleCount"`
	RiskScore      uint8  `json:"riskScore"`
	ValidatorCount uint32 `json:"validatorCount"`
	SnapshotCount  uint32 `json:"snapshotCount"`
}

// SnapshotRequest is the body of a snapshot submission.
type SnapshotRequest struct {
	TotalStakedK   uint64 `json:"totalStakedK"`
	WhaleCount     uint32 `json:"whaleCount"`
	RiskScore      uint8  `json:"riskScore"`
	ValidatorCount uint32 `json:"validatorCount"`
}

// Field is a single tracker value.
type Field struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

// CallData is an ABI encoded call.
type CallData struct {
	Data hexutil.Bytes `json:"data"`
}

type CallResult struct {
	Data         hexutil.Bytes `json:"data"`
	GasUsed      uint64        `json:"gasUsed"`
	Reverted     bool          `json:"reverted"`
	RevertReason string        `json:"revertReason,omitempty"`
}

// StorageValue is the raw value of a storage slot.
type StorageValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func ConvertCallResult(out *runtime.Output) *CallResult {
	return &CallResult{
		Data:         out.Data,
		GasUsed:      out.GasUsed,
		Reverted:     out.Reverted,
		RevertReason: out.RevertReason,
	}
}
