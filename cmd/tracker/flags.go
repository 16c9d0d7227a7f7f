// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"time"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/caspereye/stakingtracker/cspr"
	"github.com/caspereye/stakingtracker/log"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to a YAML file of flag values, flags set on the command line take precedence",
	}
	dataDirFlag = cli.StringFlag{
		Name:  "data-dir",
		Value: defaultDataDir(),
		Usage: "directory for the tracker database",
	}
	persistFlag = cli.BoolTFlag{
		Name:  "persist",
		Usage: "save state to disk, set to false to keep state in memory",
	}
	cacheFlag = cli.IntFlag{
		Name:  "cache",
		Value: 64,
		Usage: "megabytes of ram allocated to the database cache",
	}
	apiAddrFlag = cli.StringFlag{
		Name:  "api-addr",
		Value: "localhost:8680",
		Usage: "API service listening address",
	}
	apiCorsFlag = cli.StringFlag{
		Name:  "api-cors",
		Value: "",
		Usage: "comma separated list of domains from which to accept cross origin requests to API",
	}
	apiCallGasLimitFlag = cli.Uint64Flag{
		Name:  "api-call-gas-limit",
		Value: cspr.DefaultCallGasLimit,
		Usage: "limit contract call gas",
	}
	enableAPILogsFlag = cli.BoolFlag{
		Name:  "enable-api-logs",
		Usage: "enables API requests logging",
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:  "enable-metrics",
		Usage: "enables metrics collection",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:  "metrics-addr",
		Value: "localhost:2113",
		Usage: "metrics service listening address",
	}
	healthStaleFlag = cli.DurationFlag{
		Name:  "health-stale-after",
		Value: 0,
		Usage: "report unhealthy once no snapshot was recorded for this long (0 disables the check)",
	}
	verbosityFlag = cli.Uint64Flag{
		Name:  "verbosity",
		Value: log.LegacyLevelInfo,
		Usage: "log verbosity (0-9)",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:  "json-logs",
		Usage: "output logs in JSON format",
	}

	// client commands
	apiURLFlag = cli.StringFlag{
		Name:  "api",
		Value: "http://localhost:8680",
		Usage: "URL of the tracker node API",
	}
	totalStakedKFlag = cli.Uint64Flag{
		Name:  "total-staked-k",
		Usage: "total stake in thousands of CSPR",
	}
	whaleCountFlag = cli.Uint64Flag{
		Name:  "whale-count",
		Usage: "number of accounts staking more than 100,000 CSPR",
	}
	riskScoreFlag = cli.Uint64Flag{
		Name:  "risk-score",
		Usage: "network risk score (0-255)",
	}
	validatorCountFlag = cli.Uint64Flag{
		Name:  "validator-count",
		Usage: "number of active validators",
	}
	timeoutFlag = cli.DurationFlag{
		Name:  "timeout",
		Value: 10 * time.Second,
		Usage: "request timeout",
	}
)
