// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"fmt"

	"github.com/caspereye/stakingtracker/abi"
	"github.com/caspereye/stakingtracker/builtin/gen"
	"github.com/caspereye/stakingtracker/cspr"
	"github.com/caspereye/stakingtracker/state"
)

type contract struct {
	name     string
	Hash     cspr.Bytes32
	ABI      *abi.ABI
	codeHash cspr.Bytes32
}

func mustLoadContract(name string) *contract {
	asset := "compiled/" + name + ".abi"
	data := gen.MustAsset(asset)
	abi, err := abi.New(data)
	if err != nil {
		panic(fmt.Errorf("load ABI for '%s': %w", name, err))
	}

	return &contract{
		name,
		cspr.Blake2b([]byte(name)),
		abi,
		cspr.Blake2b(data),
	}
}

// Name returns the contract name.
func (c *contract) Name() string {
	return c.name
}

// CodeHash identifies the deployed interface, it's stored as the deployment marker.
func (c *contract) CodeHash() cspr.Bytes32 {
	return c.codeHash
}

// Deployed returns whether the contract has been deployed in the given state.
func (c *contract) Deployed(st *state.State) (bool, error) {
	code, err := st.GetCode(c.Hash)
	if err != nil {
		return false, err
	}
	return len(code) > 0, nil
}
