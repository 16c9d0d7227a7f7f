// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tracker

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/caspereye/stakingtracker/abi"
	"github.com/caspereye/stakingtracker/api/types"
	"github.com/caspereye/stakingtracker/api/utils"
	"github.com/caspereye/stakingtracker/builtin"
	"github.com/caspereye/stakingtracker/runtime"
)

// getters in the order of the Snapshot fields
var fields = []struct {
	name   string
	method string
}{
	{"total-staked-k", "getTotalStakedK"},
	{"whale-count", "getWhaleCount"},
	{"risk-score", "getRiskScore"},
	{"validator-count", "getValidatorCount"},
	{"snapshot-count", "getSnapshotCount"},
}

type Tracker struct {
	executor *runtime.Executor
}

func New(executor *runtime.Executor) *Tracker {
	return &Tracker{executor}
}

// read runs the getters in one batch, so that the values are consistent.
func (t *Tracker) read(ctx context.Context, methods ...string) ([]uint64, error) {
	abis := make([]*abi.Method, 0, len(methods))
	inputs := make([][]byte, 0, len(methods))
	for _, name := range methods {
		method, ok := builtin.StakingTracker.ABI.MethodByName(name)
		if !ok {
			return nil, fmt.Errorf("method %s not found", name)
		}
		input, err := method.EncodeInput()
		if err != nil {
			return nil, err
		}
		abis = append(abis, method)
		inputs = append(inputs, input)
	}

	outputs, err := t.executor.InspectBatch(ctx, inputs)
	if err != nil {
		return nil, convertError(err)
	}

	values := make([]uint64, 0, len(outputs))
	for i, out := range outputs {
		if out.Reverted {
			return nil, fmt.Errorf("%s reverted: %s", methods[i], out.RevertReason)
		}
		decoded, err := abis[i].DecodeOutput(out.Data)
		if err != nil {
			return nil, errors.WithMessagef(err, "decode %s", methods[i])
		}
		v, err := toUint64(decoded[0])
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (t *Tracker) handleGetSnapshot(w http.ResponseWriter, req *http.Request) error {
	methods := make([]string, 0, len(fields))
	for _, f := range fields {
		methods = append(methods, f.method)
	}
	values, err := t.read(req.Context(), methods...)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &types.Snapshot{
		TotalStakedK:   values[0],
		WhaleCount:     uint32(values[1]),
		RiskScore:      uint8(values[2]),
		ValidatorCount: uint32(values[3]),
		SnapshotCount:  uint32(values[4]),
	})
}

func (t *Tracker) handleGetField(w http.ResponseWriter, req *http.Request) error {
	name := mux.Vars(req)["field"]
	for _, f := range fields {
		if f.name != name {
			continue
		}
		values, err := t.read(req.Context(), f.method)
		if err != nil {
			return err
		}
		return utils.WriteJSON(w, &types.Field{Name: name, Value: values[0]})
	}
	return utils.NotFound(fmt.Errorf("field %q not found", name))
}

func (t *Tracker) handlePostSnapshot(w http.ResponseWriter, req *http.Request) error {
	var body types.SnapshotRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}

	method, _ := builtin.StakingTracker.ABI.MethodByName("recordSnapshot")
	input, err := method.EncodeInput(body.TotalStakedK, body.WhaleCount, body.RiskScore, body.ValidatorCount)
	if err != nil {
		return err
	}

	out, err := t.executor.Call(req.Context(), input)
	if err != nil {
		return convertError(err)
	}
	return utils.WriteJSON(w, types.ConvertCallResult(out))
}

func (t *Tracker) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("GET /tracker").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetSnapshot))
	sub.Path("/snapshots").
		Methods(http.MethodPost).
		Name("POST /tracker/snapshots").
		HandlerFunc(utils.WrapHandlerFunc(t.handlePostSnapshot))
	sub.Path("/{field}").
		Methods(http.MethodGet).
		Name("GET /tracker/{field}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetField))
}

func toUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case uint8:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	}
	return 0, fmt.Errorf("unexpected output type %T", v)
}

func convertError(err error) error {
	if errors.Is(err, runtime.ErrNotDeployed) {
		return utils.ServiceUnavailable(err)
	}
	return err
}
