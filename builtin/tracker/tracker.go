// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package tracker is the binder of the StakingTracker contract. It keeps the
// latest network wide staking snapshot pushed by an off-chain analyzer.
package tracker

import (
	"math"

	"github.com/caspereye/stakingtracker/builtin/reverts"
	"github.com/caspereye/stakingtracker/builtin/solidity"
)

// DefaultRiskScore the risk score of a freshly deployed tracker.
const DefaultRiskScore uint8 = 50

var (
	SlotTotalStakedK    = solidity.SlotOf("total_staked_k")
	SlotWhaleCount      = solidity.SlotOf("whale_count")
	SlotRiskScore       = solidity.SlotOf("risk_score")
	SlotValidatorCount  = solidity.SlotOf("validator_count")
	SlotLastUpdateBlock = solidity.SlotOf("last_update_block")
	SlotSnapshotCount   = solidity.SlotOf("snapshot_count")
)

// ErrSnapshotCountOverflow reverts a snapshot that would wrap the counter.
var ErrSnapshotCountOverflow = reverts.NewRequireError("snapshot count overflow")

// Snapshot the four metrics carried by a single record call.
type Snapshot struct {
	TotalStakedK   uint64 // total stake in thousands of CSPR
	WhaleCount     uint32
	RiskScore      uint8 // 0-100 by convention, not enforced
	ValidatorCount uint32
}

// Tracker binder of the `StakingTracker` contract.
type Tracker struct {
	totalStakedK    *solidity.Uint64
	whaleCount      *solidity.Uint32
	riskScore       *solidity.Uint8
	validatorCount  *solidity.Uint32
	lastUpdateBlock *solidity.Uint64 // reserved, written only by Init
	snapshotCount   *solidity.Uint32
}

func New(sctx *solidity.Context) *Tracker {
	return &Tracker{
		totalStakedK:    solidity.NewUint64(sctx, SlotTotalStakedK),
		whaleCount:      solidity.NewUint32(sctx, SlotWhaleCount),
		riskScore:       solidity.NewUint8(sctx, SlotRiskScore),
		validatorCount:  solidity.NewUint32(sctx, SlotValidatorCount),
		lastUpdateBlock: solidity.NewUint64(sctx, SlotLastUpdateBlock),
		snapshotCount:   solidity.NewUint32(sctx, SlotSnapshotCount),
	}
}

// Init sets the initial values. The host runs it once at deployment.
func (t *Tracker) Init() error {
	if err := t.totalStakedK.Set(0); err != nil {
		return err
	}
	if err := t.whaleCount.Set(0); err != nil {
		return err
	}
	if err := t.riskScore.Set(DefaultRiskScore); err != nil {
		return err
	}
	if err := t.validatorCount.Set(0); err != nil {
		return err
	}
	if err := t.lastUpdateBlock.Set(0); err != nil {
		return err
	}
	return t.snapshotCount.Set(0)
}

// RecordSnapshot overwrites the four metrics and bumps the snapshot count.
// Values are stored as given.
func (t *Tracker) RecordSnapshot(s Snapshot) error {
	if err := t.totalStakedK.Set(s.TotalStakedK); err != nil {
		return err
	}
	if err := t.whaleCount.Set(s.WhaleCount); err != nil {
		return err
	}
	if err := t.riskScore.Set(s.RiskScore); err != nil {
		return err
	}
	if err := t.validatorCount.Set(s.ValidatorCount); err != nil {
		return err
	}

	count, err := t.snapshotCount.Get()
	if err != nil {
		return err
	}
	if count == math.MaxUint32 {
		return ErrSnapshotCountOverflow
	}
	return t.snapshotCount.Set(count + 1)
}

func (t *Tracker) TotalStakedK() (uint64, error) {
	return t.totalStakedK.Get()
}

func (t *Tracker) WhaleCount() (uint32, error) {
	return t.whaleCount.Get()
}

func (t *Tracker) RiskScore() (uint8, error) {
	return t.riskScore.Get()
}

func (t *Tracker) ValidatorCount() (uint32, error) {
	return t.validatorCount.Get()
}

func (t *Tracker) SnapshotCount() (uint32, error) {
	return t.snapshotCount.Get()
}
