// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gascharger

import (
	"errors"
	"fmt"

	"github.com/caspereye/stakingtracker/cspr"
)

// ErrOutOfGas is the panic value raised by Charge once the limit is exceeded.
// The host recovers it and reverts the call.
var ErrOutOfGas = errors.New("out of gas")

// Charger meters gas of a single call and keeps a per-operation breakdown.
type Charger struct {
	limit          uint64
	sloadOps       uint64
	sstoreSetOps   uint64
	sstoreResetOps uint64
	customGas      uint64
	totalGas       uint64
}

// New creates a charger allowing at most limit gas. Zero means unlimited.
func New(limit uint64) *Charger {
	return &Charger{limit: limit}
}

// Charge consumes gas. It panics with ErrOutOfGas when the limit is exceeded,
// in which case all the remaining gas is consumed.
func (c *Charger) Charge(gas uint64) {
	if c.limit > 0 && (gas > c.limit || c.totalGas > c.limit-gas) {
		c.totalGas = c.limit
		panic(ErrOutOfGas)
	}
	c.totalGas += gas

	switch {
	case gas == 0:
	case gas == cspr.SstoreSetGas:
		c.sstoreSetOps++
	case gas == cspr.SstoreResetGas:
		c.sstoreResetOps++
	case gas == cspr.SloadGas:
		c.sloadOps++
	default:
		c.customGas += gas
	}
}

func (c *Charger) Breakdown() string {
	return fmt.Sprintf(
		"SLOAD: %d ops (%d gas) | SSTORE_SET: %d ops (%d gas) | SSTORE_RESET: %d ops (%d gas) | CUSTOM: %d gas | TOTAL: %d gas",
		c.sloadOps,
		c.sloadOps*cspr.SloadGas,
		c.sstoreSetOps,
		c.sstoreSetOps*cspr.SstoreSetGas,
		c.sstoreResetOps,
		c.sstoreResetOps*cspr.SstoreResetGas,
		c.customGas,
		c.totalGas,
	)
}

func (c *Charger) TotalGas() uint64 {
	return c.totalGas
}

// Limit returns the gas limit, zero if unlimited.
func (c *Charger) Limit() uint64 {
	return c.limit
}
