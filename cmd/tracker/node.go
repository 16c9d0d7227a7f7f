// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"

	"github.com/pkg/errors"

	"github.com/caspereye/stakingtracker/builtin"
	"github.com/caspereye/stakingtracker/co"
	"github.com/caspereye/stakingtracker/health"
	"github.com/caspereye/stakingtracker/log"
	"github.com/caspereye/stakingtracker/runtime"
)

// ensureDeployed deploys the tracker on a fresh database.
func ensureDeployed(ctx context.Context, executor *runtime.Executor) error {
	deployed, err := executor.Deployed()
	if err != nil {
		return err
	}
	if deployed {
		count, err := snapshotCount(ctx, executor)
		if err != nil {
			return err
		}
		log.Info("tracker loaded", "snapshots", count)
		return nil
	}

	out, err := executor.Deploy(ctx)
	if err != nil {
		return errors.WithMessage(err, "deploy tracker")
	}
	if out.Reverted {
		return errors.Errorf("deploy tracker: reverted: %s", out.RevertReason)
	}
	return nil
}

func snapshotCount(ctx context.Context, executor *runtime.Executor) (uint32, error) {
	method, _ := builtin.StakingTracker.ABI.MethodByName("getSnapshotCount")
	input, err := method.EncodeInput()
	if err != nil {
		return 0, err
	}
	out, err := executor.Inspect(ctx, input)
	if err != nil {
		return 0, err
	}
	if out.Reverted {
		return 0, errors.Errorf("getSnapshotCount reverted: %s", out.RevertReason)
	}
	values, err := method.DecodeOutput(out.Data)
	if err != nil {
		return 0, err
	}
	return values[0].(uint32), nil
}

// newSnapshotFollower returns a loop reporting committed snapshots to the health
// tracker until its ctx is done. Commits made after this call are not missed, even
// before the loop starts.
func newSnapshotFollower(executor *runtime.Executor, h *health.Health) func(ctx context.Context) {
	waiter := executor.NewSnapshotWaiter()
	return func(ctx context.Context) {
		followSnapshots(ctx, executor, waiter, h)
	}
}

func followSnapshots(ctx context.Context, executor *runtime.Executor, waiter co.Waiter, h *health.Health) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-waiter.C():
			count, err := snapshotCount(ctx, executor)
			if err != nil {
				if ctx.Err() == nil {
					log.Warn("failed to read snapshot count", "err", err)
				}
				continue
			}
			h.NewSnapshot(count)
			log.Debug("snapshot recorded", "count", count)
		}
	}
}
