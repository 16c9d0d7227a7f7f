// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package builtin binds native contracts to their ABI.
package builtin

import (
	"github.com/caspereye/stakingtracker/builtin/solidity"
	"github.com/caspereye/stakingtracker/builtin/tracker"
	"github.com/caspereye/stakingtracker/state"
)

// Builtin contracts binding.
var StakingTracker = &trackerContract{mustLoadContract("StakingTracker")}

type trackerContract struct{ *contract }

// Native returns the binder of the tracker operating on the given state.
// A nil charger disables gas metering.
func (t *trackerContract) Native(st *state.State, charger solidity.UseGasFunc) *tracker.Tracker {
	return tracker.New(solidity.NewContext(t.Hash, st, charger))
}

// Deploy runs the constructor and stores the deployment marker.
func (t *trackerContract) Deploy(st *state.State, charger solidity.UseGasFunc) error {
	if err := t.Native(st, charger).Init(); err != nil {
		return err
	}
	st.SetCode(t.Hash, t.codeHash.Bytes())
	return nil
}
