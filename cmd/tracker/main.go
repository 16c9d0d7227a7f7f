// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/caspereye/stakingtracker/api"
	"github.com/caspereye/stakingtracker/co"
	"github.com/caspereye/stakingtracker/health"
	"github.com/caspereye/stakingtracker/log"
	"github.com/caspereye/stakingtracker/metrics"
	"github.com/caspereye/stakingtracker/runtime"
	"github.com/caspereye/stakingtracker/state"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "tracker",
		Usage:     "Casper network staking tracker node",
		Copyright: "2026 The CasperEye developers",
		Flags: []cli.Flag{
			configFlag,
			dataDirFlag,
			persistFlag,
			cacheFlag,
			apiAddrFlag,
			apiCorsFlag,
			apiCallGasLimitFlag,
			enableAPILogsFlag,
			enableMetricsFlag,
			metricsAddrFlag,
			healthStaleFlag,
			verbosityFlag,
			jsonLogsFlag,
		},
		Action: defaultAction,
		Commands: []cli.Command{
			{
				Name:  "record",
				Usage: "submit a staking snapshot to a running node",
				Flags: []cli.Flag{
					apiURLFlag,
					totalStakedKFlag,
					whaleCountFlag,
					riskScoreFlag,
					validatorCountFlag,
					timeoutFlag,
				},
				Action: recordAction,
			},
			{
				Name:   "show",
				Usage:  "print the latest snapshot of a running node",
				Flags:  []cli.Flag{apiURLFlag, timeoutFlag},
				Action: showAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	if err := loadConfig(ctx); err != nil {
		return err
	}

	exitSignal := handleExitSignal()
	logLevel := initLogger(ctx, os.Stderr)
	defer func() { log.Info("exited") }()

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}

	db, location, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer func() { log.Info("closing main database..."); db.Close() }()

	stater, err := state.NewStater(db, state.DefaultCacheSize)
	if err != nil {
		return err
	}
	executor := runtime.New(stater, runtime.Options{
		GasLimit: ctx.Uint64(apiCallGasLimitFlag.Name),
	})

	h := health.New(ctx.Duration(healthStaleFlag.Name))
	if err := ensureDeployed(exitSignal, executor); err != nil {
		return err
	}
	h.Deployed(true)
	follow := newSnapshotFollower(executor, h)

	apiURL, srvCloser, err := startAPIServer(ctx.String(apiAddrFlag.Name), api.New(executor, h, api.Options{
		AllowedOrigins:  ctx.String(apiCorsFlag.Name),
		EnableReqLogger: ctx.Bool(enableAPILogsFlag.Name),
		EnableMetrics:   ctx.Bool(enableMetricsFlag.Name),
		LogLevel:        logLevel,
	}))
	if err != nil {
		return err
	}
	defer func() { log.Info("stopping API server..."); srvCloser() }()

	metricsURL := ""
	if ctx.Bool(enableMetricsFlag.Name) {
		url, closer, err := startMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return err
		}
		defer func() { log.Info("stopping metrics server..."); closer() }()
		metricsURL = url
	}

	printStartupMessage(location, apiURL, metricsURL)

	var goes co.Goes
	goes.Go(func() { follow(exitSignal) })
	<-exitSignal.Done()
	return goes.Wait()
}

func printStartupMessage(location, apiURL, metricsURL string) {
	if metricsURL == "" {
		metricsURL = "Disabled"
	}
	fmt.Printf(`Starting %v
    Database     [ %v ]
    API portal   [ %v ]
    Metrics      [ %v ]
`,
		"tracker/"+fullVersion(),
		location,
		apiURL,
		metricsURL)
}
