// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package solidity lays out typed values over contract storage slots the way
// a Solidity compiler would, charging gas for every access.
package solidity

import (
	"github.com/caspereye/stakingtracker/cspr"
	"github.com/caspereye/stakingtracker/state"
)

type UseGasFunc func(gas uint64)

type Context struct {
	contract cspr.Bytes32
	state    *state.State
	charger  UseGasFunc
}

func NewContext(contract cspr.Bytes32, state *state.State, charger UseGasFunc) *Context {
	return &Context{
		contract: contract,
		state:    state,
		charger:  charger,
	}
}

func (c *Context) Contract() cspr.Bytes32 {
	return c.contract
}

func (c *Context) State() *state.State {
	return c.state
}

func (c *Context) UseGas(gas uint64) {
	if c.charger != nil {
		c.charger(gas)
	}
}

// SlotOf returns the storage position of a named variable.
// Names are limited to 32 bytes.
func SlotOf(name string) cspr.Bytes32 {
	return cspr.BytesToBytes32([]byte(name))
}
