// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gascharger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caspereye/stakingtracker/cspr"
)

func TestCharger(t *testing.T) {
	c := New(0)
	c.Charge(cspr.SloadGas)
	c.Charge(cspr.SloadGas)
	c.Charge(cspr.SstoreSetGas)
	c.Charge(cspr.SstoreResetGas)
	c.Charge(cspr.CallGas)

	assert.Equal(t, 2*cspr.SloadGas+cspr.SstoreSetGas+cspr.SstoreResetGas+cspr.CallGas, c.TotalGas())
	assert.Equal(t,
		"SLOAD: 2 ops (400 gas) | SSTORE_SET: 1 ops (20000 gas) | SSTORE_RESET: 1 ops (5000 gas) | CUSTOM: 21000 gas | TOTAL: 46400 gas",
		c.Breakdown())
}

func TestChargerOutOfGas(t *testing.T) {
	c := New(cspr.SloadGas * 2)
	c.Charge(cspr.SloadGas)
	c.Charge(cspr.SloadGas)

	assert.PanicsWithValue(t, ErrOutOfGas, func() {
		c.Charge(1)
	})
	assert.Equal(t, cspr.SloadGas*2, c.TotalGas())

	c = New(10)
	assert.PanicsWithValue(t, ErrOutOfGas, func() {
		c.Charge(^uint64(0))
	})
	assert.Equal(t, uint64(10), c.TotalGas())
}
