// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package runtime is the call dispatch entry point of a tracker deployment.
// It owns the deployment state and executes calls strictly one at a time,
// each one atomically.
package runtime

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/caspereye/stakingtracker/builtin"
	"github.com/caspereye/stakingtracker/builtin/gascharger"
	"github.com/caspereye/stakingtracker/builtin/reverts"
	"github.com/caspereye/stakingtracker/co"
	"github.com/caspereye/stakingtracker/cspr"
	"github.com/caspereye/stakingtracker/log"
	"github.com/caspereye/stakingtracker/state"
)

var logger = log.WithContext("pkg", "runtime")

var (
	ErrNotDeployed     = errors.New("contract not deployed")
	ErrAlreadyDeployed = errors.New("contract already deployed")
)

// Options of the executor.
type Options struct {
	// GasLimit caps the gas of a single call, the default is cspr.DefaultCallGasLimit.
	GasLimit uint64
}

// Output is the result of a call.
type Output struct {
	Data         []byte
	GasUsed      uint64
	Reverted     bool
	RevertReason string
}

// Executor executes calls against the tracker deployment.
type Executor struct {
	mu        sync.Mutex
	stater    *state.Stater
	gasLimit  uint64
	snapshots co.Signal
}

// New create an executor on top of the stater.
func New(stater *state.Stater, opts Options) *Executor {
	if opts.GasLimit == 0 {
		opts.GasLimit = cspr.DefaultCallGasLimit
	}
	return &Executor{
		stater:   stater,
		gasLimit: opts.GasLimit,
	}
}

// GasLimit returns the gas limit of a single call.
func (e *Executor) GasLimit() uint64 {
	return e.gasLimit
}

// NewSnapshotWaiter returns a waiter fired whenever a state changing call is committed.
func (e *Executor) NewSnapshotWaiter() co.Waiter {
	return e.snapshots.NewWaiter()
}

// Deployed returns whether the tracker has been deployed.
func (e *Executor) Deployed() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return builtin.StakingTracker.Deployed(e.stater.NewState())
}

// Deploy runs the tracker constructor. It can succeed only once per store.
func (e *Executor) Deploy(ctx context.Context) (*Output, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st := e.stater.NewState()
	deployed, err := builtin.StakingTracker.Deployed(st)
	if err != nil {
		return nil, err
	}
	if deployed {
		return nil, ErrAlreadyDeployed
	}

	charger := gascharger.New(e.gasLimit)
	out, err := e.run(st, charger, func() ([]byte, error) {
		return nil, builtin.StakingTracker.Deploy(st, charger.Charge)
	})
	if err != nil {
		return nil, err
	}
	if out.Reverted {
		return out, nil
	}
	if err := st.Stage().Commit(); err != nil {
		return nil, err
	}
	logger.Info("contract deployed",
		"contract", builtin.StakingTracker.Hash.AbbrevString(),
		"gas", out.GasUsed)
	return out, nil
}

// Call executes a call and commits its effects, unless it reverts.
func (e *Executor) Call(ctx context.Context, data []byte) (*Output, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.execute(ctx, data, true)
}

// Inspect executes a call without committing, for read only queries.
func (e *Executor) Inspect(ctx context.Context, data []byte) (*Output, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.execute(ctx, data, false)
}

// InspectBatch inspects several calls against the same committed state.
// No call can be executed in between.
func (e *Executor) InspectBatch(ctx context.Context, inputs [][]byte) ([]*Output, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	outputs := make([]*Output, 0, len(inputs))
	for _, data := range inputs {
		out, err := e.execute(ctx, data, false)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// Storage returns the committed value of a raw storage slot of the tracker.
func (e *Executor) Storage(ctx context.Context, key cspr.Bytes32) (cspr.Bytes32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return cspr.Bytes32{}, err
	}
	return e.stater.NewState().GetStorage(builtin.StakingTracker.Hash, key)
}

func (e *Executor) execute(ctx context.Context, data []byte, commit bool) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st := e.stater.NewState()
	deployed, err := builtin.StakingTracker.Deployed(st)
	if err != nil {
		return nil, err
	}
	if !deployed {
		return nil, ErrNotDeployed
	}

	var (
		start    = time.Now()
		name     = "unknown"
		readOnly = true
		charger  = gascharger.New(e.gasLimit)
	)
	out, err := e.run(st, charger, func() ([]byte, error) {
		charger.Charge(cspr.CallGas)
		method, err := builtin.FindNativeMethod(builtin.StakingTracker.Hash, data)
		if err != nil {
			return nil, err
		}
		name, readOnly = method.Name(), method.Const()
		return method.Call(st, charger.Charge, data)
	})
	if err != nil {
		metricCallCount().AddWithLabel(1, map[string]string{"method": name, "outcome": "error"})
		return nil, err
	}

	if commit && !out.Reverted && !readOnly {
		if err := st.Stage().Commit(); err != nil {
			metricCallCount().AddWithLabel(1, map[string]string{"method": name, "outcome": "error"})
			return nil, err
		}
		e.observeSnapshot(st)
		e.snapshots.Broadcast()
	}

	outcome := "success"
	if out.Reverted {
		outcome = "reverted"
	}
	metricCallCount().AddWithLabel(1, map[string]string{"method": name, "outcome": outcome})
	metricCallGas().ObserveWithLabels(int64(out.GasUsed), map[string]string{"method": name})
	metricCallDuration().Observe(time.Since(start).Milliseconds())

	logger.Debug("call executed",
		"method", name,
		"commit", commit,
		"gas", out.GasUsed,
		"reverted", out.Reverted,
		"reason", out.RevertReason,
		"breakdown", charger.Breakdown())
	return out, nil
}

// run runs fn at a checkpoint of st. Contract level failures revert to the
// checkpoint and are reported in the output, other errors are returned.
func (e *Executor) run(st *state.State, charger *gascharger.Charger, fn func() ([]byte, error)) (out *Output, err error) {
	checkpoint := st.NewCheckpoint()

	defer func() {
		if r := recover(); r != nil {
			if r != gascharger.ErrOutOfGas {
				panic(r)
			}
			st.RevertTo(checkpoint)
			out, err = revert(charger, reverts.NewRequireError(gascharger.ErrOutOfGas.Error())), nil
		}
	}()

	data, err := fn()
	if err != nil {
		var (
			inputErr  *builtin.InputError
			requireEr *reverts.ErrRequire
		)
		switch {
		case errors.As(err, &requireEr):
			st.RevertTo(checkpoint)
			return revert(charger, requireEr), nil
		case errors.As(err, &inputErr):
			st.RevertTo(checkpoint)
			return revert(charger, reverts.NewRequireError(inputErr.Error())), nil
		}
		return nil, errors.WithMessage(err, "execute")
	}
	return &Output{Data: data, GasUsed: charger.TotalGas()}, nil
}

func revert(charger *gascharger.Charger, reason *reverts.ErrRequire) *Output {
	return &Output{
		Data:         reason.Bytes(),
		GasUsed:      charger.TotalGas(),
		Reverted:     true,
		RevertReason: reason.Error(),
	}
}

// observeSnapshot exports the committed snapshot as gauges.
func (e *Executor) observeSnapshot(st *state.State) {
	tr := builtin.StakingTracker.Native(st, nil)

	set := func(field string, v uint64, err error) {
		if err != nil {
			logger.Warn("failed to read snapshot field", "field", field, "err", err)
			return
		}
		metricSnapshot().SetWithLabel(int64(v), map[string]string{"field": field})
	}

	total, err := tr.TotalStakedK()
	set("total_staked_k", total, err)
	whales, err := tr.WhaleCount()
	set("whale_count", uint64(whales), err)
	risk, err := tr.RiskScore()
	set("risk_score", uint64(risk), err)
	validators, err := tr.ValidatorCount()
	set("validator_count", uint64(validators), err)
	count, err := tr.SnapshotCount()
	set("snapshot_count", uint64(count), err)
}
