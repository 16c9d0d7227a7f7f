// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"github.com/caspereye/stakingtracker/builtin/tracker"
)

func init() {
	defines := []struct {
		name string
		run  func(env *Env) ([]any, error)
	}{
		{"recordSnapshot", func(env *Env) ([]any, error) {
			args := env.Args()
			snapshot := tracker.Snapshot{
				TotalStakedK:   args[0].(uint64),
				WhaleCount:     args[1].(uint32),
				RiskScore:      args[2].(uint8),
				ValidatorCount: args[3].(uint32),
			}
			return nil, tracker.New(env.Context()).RecordSnapshot(snapshot)
		}},
		{"getTotalStakedK", func(env *Env) ([]any, error) {
			v, err := tracker.New(env.Context()).TotalStakedK()
			return []any{v}, err
		}},
		{"getWhaleCount", func(env *Env) ([]any, error) {
			v, err := tracker.New(env.Context()).WhaleCount()
			return []any{v}, err
		}},
		{"getRiskScore", func(env *Env) ([]any, error) {
			v, err := tracker.New(env.Context()).RiskScore()
			return []any{v}, err
		}},
		{"getValidatorCount", func(env *Env) ([]any, error) {
			v, err := tracker.New(env.Context()).ValidatorCount()
			return []any{v}, err
		}},
		{"getSnapshotCount", func(env *Env) ([]any, error) {
			v, err := tracker.New(env.Context()).SnapshotCount()
			return []any{v}, err
		}},
	}
	abi := StakingTracker.ABI
	for _, def := range defines {
		if method, found := abi.MethodByName(def.name); found {
			nativeMethods[methodKey{StakingTracker.Hash, method.ID()}] = &NativeMethod{
				contract: StakingTracker.Hash,
				abi:      method,
				run:      def.run,
			}
		} else {
			panic("method not found: " + def.name)
		}
	}
}
