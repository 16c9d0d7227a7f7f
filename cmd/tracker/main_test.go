// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/caspereye/stakingtracker/api/types"
	"github.com/caspereye/stakingtracker/builtin"
	"github.com/caspereye/stakingtracker/health"
	"github.com/caspereye/stakingtracker/lvldb"
	"github.com/caspereye/stakingtracker/runtime"
	"github.com/caspereye/stakingtracker/state"
)

// runApp runs an app with the node flags, handing the parsed context to fn.
func runApp(t *testing.T, args []string, fn func(ctx *cli.Context) error) error {
	app := cli.NewApp()
	app.Flags = []cli.Flag{
		configFlag,
		persistFlag,
		apiAddrFlag,
		enableMetricsFlag,
		verbosityFlag,
		healthStaleFlag,
	}
	app.Action = fn
	return app.Run(append([]string{"tracker"}, args...))
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
api-addr: 0.0.0.0:9000
enable-metrics: true
verbosity: 4
persist: false
health-stale-after: 10m
`)

	err := runApp(t, []string{"--config", path, "--verbosity", "2"}, func(ctx *cli.Context) error {
		require.NoError(t, loadConfig(ctx))

		assert.Equal(t, "0.0.0.0:9000", ctx.String(apiAddrFlag.Name))
		assert.True(t, ctx.Bool(enableMetricsFlag.Name))
		assert.False(t, ctx.BoolT(persistFlag.Name))
		assert.Equal(t, 10*time.Minute, ctx.Duration(healthStaleFlag.Name))
		// the command line wins
		assert.Equal(t, uint64(2), ctx.Uint64(verbosityFlag.Name))
		return nil
	})
	require.NoError(t, err)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     string
	}{
		{"unknown key", "p2p-port: 1", `unknown key "p2p-port"`},
		{"bad value", "verbosity: loud", `invalid value for "verbosity"`},
		{"not yaml", "api-addr: [", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			err := runApp(t, []string{"--config", path}, func(ctx *cli.Context) error {
				return loadConfig(ctx)
			})
			assert.ErrorContains(t, err, tt.err)
		})
	}

	err := runApp(t, nil, func(ctx *cli.Context) error {
		return loadConfig(ctx)
	})
	assert.NoError(t, err)
}

func TestInitLogger(t *testing.T) {
	var buf bytes.Buffer
	err := runApp(t, []string{"--verbosity", "4"}, func(ctx *cli.Context) error {
		level := initLogger(ctx, &buf)
		assert.Equal(t, "DEBUG", level.Level().String())
		return nil
	})
	require.NoError(t, err)
}

func TestSnapshotRequest(t *testing.T) {
	run := func(args ...string) (*types.SnapshotRequest, error) {
		var (
			req *types.SnapshotRequest
			err error
		)
		app := cli.NewApp()
		app.Flags = []cli.Flag{totalStakedKFlag, whaleCountFlag, riskScoreFlag, validatorCountFlag}
		app.Action = func(ctx *cli.Context) error {
			req, err = snapshotRequest(ctx)
			return nil
		}
		require.NoError(t, app.Run(append([]string{"record"}, args...)))
		return req, err
	}

	req, err := run("--total-staked-k", "1000", "--whale-count", "5", "--risk-score", "25", "--validator-count", "100")
	require.NoError(t, err)
	assert.Equal(t, &types.SnapshotRequest{TotalStakedK: 1000, WhaleCount: 5, RiskScore: 25, ValidatorCount: 100}, req)

	_, err = run("--total-staked-k", "1", "--whale-count", "1", "--risk-score", "256", "--validator-count", "1")
	assert.ErrorContains(t, err, "--risk-score out of range")

	_, err = run("--total-staked-k", "1", "--whale-count", "4294967296", "--risk-score", "1", "--validator-count", "1")
	assert.ErrorContains(t, err, "--whale-count out of range")

	_, err = run("--total-staked-k", "1")
	assert.ErrorContains(t, err, "missing --whale-count")
}

func TestPrintSnapshot(t *testing.T) {
	var buf bytes.Buffer
	printSnapshot(&buf, &types.Snapshot{TotalStakedK: 1000, WhaleCount: 5, RiskScore: 25, ValidatorCount: 100, SnapshotCount: 1})

	assert.Contains(t, buf.String(), "Total staked    [ 1000 kCSPR ]")
	assert.Contains(t, buf.String(), "Snapshots       [ 1 ]")
}

func TestEnsureDeployedAndFollow(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()
	stater, err := state.NewStater(db, 0)
	require.NoError(t, err)
	executor := runtime.New(stater, runtime.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, ensureDeployed(ctx, executor))
	// idempotent on an existing deployment
	require.NoError(t, ensureDeployed(ctx, executor))

	h := health.New(time.Minute)
	h.Deployed(true)

	follow := newSnapshotFollower(executor, h)

	// recorded before the loop runs, as when the API serves before the follower starts
	record, _ := builtin.StakingTracker.ABI.MethodByName("recordSnapshot")
	data, err := record.EncodeInput(uint64(1000), uint32(5), uint8(25), uint32(100))
	require.NoError(t, err)
	_, err = executor.Call(ctx, data)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		follow(ctx)
	}()

	assert.Eventually(t, func() bool {
		status, _ := h.Status()
		return status.Healthy && status.SnapshotIngestion.Count == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
