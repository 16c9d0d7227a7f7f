// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/caspereye/stakingtracker/api/types"
	"github.com/caspereye/stakingtracker/trackerclient"
)

func snapshotRequest(ctx *cli.Context) (*types.SnapshotRequest, error) {
	for _, f := range []cli.Uint64Flag{totalStakedKFlag, whaleCountFlag, riskScoreFlag, validatorCountFlag} {
		if !ctx.IsSet(f.Name) {
			return nil, errors.Errorf("missing --%s", f.Name)
		}
	}

	bounded := func(name string, limit uint64) (uint64, error) {
		v := ctx.Uint64(name)
		if v > limit {
			return 0, errors.Errorf("--%s out of range [0, %d]", name, limit)
		}
		return v, nil
	}

	whales, err := bounded(whaleCountFlag.Name, math.MaxUint32)
	if err != nil {
		return nil, err
	}
	risk, err := bounded(riskScoreFlag.Name, math.MaxUint8)
	if err != nil {
		return nil, err
	}
	validators, err := bounded(validatorCountFlag.Name, math.MaxUint32)
	if err != nil {
		return nil, err
	}
	return &types.SnapshotRequest{
		TotalStakedK:   ctx.Uint64(totalStakedKFlag.Name),
		WhaleCount:     uint32(whales),
		RiskScore:      uint8(risk),
		ValidatorCount: uint32(validators),
	}, nil
}

func recordAction(ctx *cli.Context) error {
	req, err := snapshotRequest(ctx)
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), ctx.Duration(timeoutFlag.Name))
	defer cancel()

	result, err := trackerclient.New(ctx.String(apiURLFlag.Name)).RecordSnapshot(reqCtx, req)
	if err != nil {
		return err
	}
	if result.Reverted {
		return errors.Errorf("snapshot reverted: %s", result.RevertReason)
	}
	fmt.Fprintf(os.Stdout, "snapshot recorded, gas used %d\n", result.GasUsed)
	return nil
}

func showAction(ctx *cli.Context) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), ctx.Duration(timeoutFlag.Name))
	defer cancel()

	s, err := trackerclient.New(ctx.String(apiURLFlag.Name)).GetSnapshot(reqCtx)
	if err != nil {
		return err
	}
	printSnapshot(os.Stdout, s)
	return nil
}

func printSnapshot(w io.Writer, s *types.Snapshot) {
	fmt.Fprintf(w, `Total staked    [ %d kCSPR ]
Whales          [ %d ]
Risk score      [ %d ]
Validators      [ %d ]
Snapshots       [ %d ]
`,
		s.TotalStakedK,
		s.WhaleCount,
		s.RiskScore,
		s.ValidatorCount,
		s.SnapshotCount)
}
