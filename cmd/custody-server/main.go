// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/ziflex/lecho/v2"

	api "github.com/optakt/stellar-custody/api/custody"
	"github.com/optakt/stellar-custody/custody/envelope"
	"github.com/optakt/stellar-custody/custody/lifecycle"
	"github.com/optakt/stellar-custody/custody/payment"
	"github.com/optakt/stellar-custody/custody/registry"
	"github.com/optakt/stellar-custody/custody/submitter"
	"github.com/optakt/stellar-custody/custody/swap"
	"github.com/optakt/stellar-custody/horizon"
	"github.com/optakt/stellar-custody/models/custody"
	"github.com/optakt/stellar-custody/service/metrics"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagBalance  string
		flagDomain   string
		flagHorizon  string
		flagLevel    string
		flagMetrics  string
		flagPort     uint16
		flagRegistry string
		flagTimeout  time.Duration
	)

	pflag.StringVarP(&flagBalance, "starting-balance", "b", "1", "native balance given to newly created accounts")
	pflag.StringVarP(&flagDomain, "home-domain", "d", "", "home domain set on newly created accounts")
	pflag.StringVarP(&flagHorizon, "horizon", "z", "", "URL of the Horizon server, defaults to the network's public instance")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address on which to expose metrics (no metrics are exposed when left empty)")
	pflag.Uint16VarP(&flagPort, "port", "p", 8080, "port to host the custody API on")
	pflag.StringVarP(&flagRegistry, "registry", "r", "registry.toml", "path to the account registry file")
	pflag.DurationVarP(&flagTimeout, "timeout", "t", envelope.DefaultTimeout, "validity window of built transactions")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	balance, err := decimal.NewFromString(flagBalance)
	if err != nil || !balance.IsPositive() {
		log.Error().Str("starting_balance", flagBalance).Err(err).Msg("invalid starting balance")
		return failure
	}

	// Load the account registry, which also decides which network we run on.
	reg, err := registry.Load(flagRegistry)
	if err != nil {
		log.Error().Str("registry", flagRegistry).Err(err).Msg("could not load registry")
		return failure
	}
	params := custody.NetworkParams[reg.Mode()]

	// Only the test network client can use the friendbot faucet.
	var client *horizonclient.Client
	switch params.Mode {
	case custody.ModeTest:
		testnet := *horizonclient.DefaultTestNetClient
		client = &testnet
	default:
		client = &horizonclient.Client{
			HorizonURL: params.Horizon,
			HTTP:       &http.Client{Timeout: time.Minute},
		}
	}
	if flagHorizon != "" {
		client.HorizonURL = flagHorizon
	}

	// Custody components initialization.
	ledger := horizon.NewClient(log, client)
	submit := submitter.NewMetricsSubmitter(submitter.New(log, ledger), prometheus.DefaultRegisterer)
	accounts := lifecycle.New(log, params, ledger, submit, reg,
		lifecycle.WithStartingBalance(balance),
		lifecycle.WithHomeDomain(flagDomain),
		lifecycle.WithTimeout(flagTimeout),
	)
	payments := payment.New(log, params, ledger, submit, reg,
		payment.WithTimeout(flagTimeout),
	)
	swaps := swap.New(log, params, ledger, submit, flagTimeout)

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.Use(middleware.Recover())
	api.NewServer(accounts, payments, swaps).Register(server)

	var stats *metrics.Server
	if flagMetrics != "" {
		stats = metrics.NewServer(log, flagMetrics, prometheus.DefaultGatherer)
		go func() {
			err := stats.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
	}

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Str("mode", string(params.Mode)).Str("horizon", client.HorizonURL).Msg("Custody Server starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Custody Server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("Custody Server stopped")
	}()

	select {
	case <-sig:
		log.Info().Msg("Custody Server stopping")
	case <-done:
		log.Info().Msg("Custody Server done")
	case <-failed:
		log.Warn().Msg("Custody Server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err = server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down custody API")
		return failure
	}
	if stats != nil {
		err = stats.Stop(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down metrics server")
			return failure
		}
	}

	return success
}
