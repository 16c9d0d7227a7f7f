// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package contracts

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/caspereye/stakingtracker/api/types"
	"github.com/caspereye/stakingtracker/api/utils"
	"github.com/caspereye/stakingtracker/builtin/solidity"
	"github.com/caspereye/stakingtracker/cspr"
	"github.com/caspereye/stakingtracker/runtime"
)

// Contracts serves raw ABI calls and storage reads of the tracker.
type Contracts struct {
	executor *runtime.Executor
}

func New(executor *runtime.Executor) *Contracts {
	return &Contracts{executor}
}

func (c *Contracts) handleCall(commit bool) utils.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		var body types.CallData
		if err := utils.ParseJSON(req.Body, &body); err != nil {
			return utils.BadRequest(errors.WithMessage(err, "body"))
		}

		run := c.executor.Inspect
		if commit {
			run = c.executor.Call
		}
		out, err := run(req.Context(), body.Data)
		if err != nil {
			if errors.Is(err, runtime.ErrNotDeployed) {
				return utils.ServiceUnavailable(err)
			}
			return err
		}
		return utils.WriteJSON(w, types.ConvertCallResult(out))
	}
}

// parseKey accepts a hex encoded 32 bytes key, or a slot name such as "last_update_block".
func parseKey(s string) (cspr.Bytes32, error) {
	if strings.HasPrefix(s, "0x") {
		return cspr.ParseBytes32(s)
	}
	if len(s) == 0 || len(s) > 32 {
		return cspr.Bytes32{}, errors.New("invalid slot name")
	}
	return solidity.SlotOf(s), nil
}

func (c *Contracts) handleGetStorage(w http.ResponseWriter, req *http.Request) error {
	key, err := parseKey(mux.Vars(req)["key"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "key"))
	}
	value, err := c.executor.Storage(req.Context(), key)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &types.StorageValue{
		Key:   key.String(),
		Value: value.String(),
	})
}

func (c *Contracts) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/call").
		Methods(http.MethodPost).
		Name("POST /contracts/call").
		HandlerFunc(utils.WrapHandlerFunc(c.handleCall(true)))
	sub.Path("/inspect").
		Methods(http.MethodPost).
		Name("POST /contracts/inspect").
		HandlerFunc(utils.WrapHandlerFunc(c.handleCall(false)))
	sub.Path("/storage/{key}").
		Methods(http.MethodGet).
		Name("GET /contracts/storage/{key}").
		HandlerFunc(utils.WrapHandlerFunc(c.handleGetStorage))
}
