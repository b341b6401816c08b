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

package horizon

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/clients/horizonclient"
	protocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"

	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/models/custody"
)

const (
	typeNative = "native"
	typePool   = "liquidity_pool_shares"
)

// Client reads account and fee snapshots from a Horizon server and submits
// envelopes to it.
type Client struct {
	log zerolog.Logger
	api API
}

// NewClient creates a ledger client on top of the given Horizon API.
func NewClient(log zerolog.Logger, api API) *Client {

	c := Client{
		log: log.With().Str("component", "horizon").Logger(),
		api: api,
	}

	return &c
}

// Account loads a fresh snapshot of the given account. It returns a
// failure.AccountNotFound error if the account does not exist.
func (c *Client) Account(ctx context.Context, address string) (custody.Account, error) {

	err := ctx.Err()
	if err != nil {
		return custody.Account{}, err
	}

	record, err := c.api.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	herr := horizonclient.GetError(err)
	if herr != nil && herr.Problem.Status == http.StatusNotFound {
		return custody.Account{}, failure.AccountNotFound{
			Address:     address,
			Description: failure.NewDescription("account does not exist on the ledger"),
		}
	}
	if err != nil {
		return custody.Account{}, fmt.Errorf("could not get account details: %w", err)
	}

	sequence, err := record.GetSequenceNumber()
	if err != nil {
		return custody.Account{}, fmt.Errorf("could not get sequence number: %w", err)
	}

	balances := make([]custody.Balance, 0, len(record.Balances))
	for _, line := range record.Balances {

		// Pool shares can't be sent or trusted as regular assets.
		if line.Type == typePool {
			continue
		}

		balance, err := convertBalance(line)
		if err != nil {
			return custody.Account{}, fmt.Errorf("could not convert balance (type: %s, code: %s): %w", line.Type, line.Code, err)
		}

		balances = append(balances, balance)
	}

	account := custody.Account{
		Address:  address,
		Sequence: sequence,
		Balances: balances,
	}

	c.log.Debug().
		Str("address", address).
		Int64("sequence", sequence).
		Int("balances", len(balances)).
		Msg("account loaded")

	return account, nil
}

// Fees loads the current fee statistics of the network.
func (c *Client) Fees(ctx context.Context) (custody.Fees, error) {

	err := ctx.Err()
	if err != nil {
		return custody.Fees{}, err
	}

	stats, err := c.api.FeeStats()
	if err != nil {
		return custody.Fees{}, fmt.Errorf("could not get fee stats: %w", err)
	}

	fees := custody.Fees{
		Base: stats.LastLedgerBaseFee,
		Max:  stats.MaxFee.Max,
	}

	return fees, nil
}

// SubmitTransaction submits a signed transaction envelope and returns its
// hash. A refusal by the network is returned as failure.NetworkRejection.
func (c *Client) SubmitTransaction(ctx context.Context, tx *txnbuild.Transaction) (string, error) {

	err := ctx.Err()
	if err != nil {
		return "", err
	}

	result, err := c.api.SubmitTransaction(tx)
	if err != nil {
		return "", rejection(err)
	}

	return result.Hash, nil
}

// SubmitFeeBump submits a signed fee-bump envelope and returns its hash.
func (c *Client) SubmitFeeBump(ctx context.Context, tx *txnbuild.FeeBumpTransaction) (string, error) {

	err := ctx.Err()
	if err != nil {
		return "", err
	}

	result, err := c.api.SubmitFeeBumpTransaction(tx)
	if err != nil {
		return "", rejection(err)
	}

	return result.Hash, nil
}

// Fund asks the faucet of the test network to create the given account.
func (c *Client) Fund(ctx context.Context, address string) (string, error) {

	err := ctx.Err()
	if err != nil {
		return "", err
	}

	result, err := c.api.Fund(address)
	if err != nil {
		return "", rejection(err)
	}

	return result.Hash, nil
}

func convertBalance(line protocol.Balance) (custody.Balance, error) {

	amount, err := decimal.NewFromString(line.Balance)
	if err != nil {
		return custody.Balance{}, fmt.Errorf("could not parse amount: %w", err)
	}

	limit := decimal.Zero
	if line.Limit != "" {
		limit, err = decimal.NewFromString(line.Limit)
		if err != nil {
			return custody.Balance{}, fmt.Errorf("could not parse limit: %w", err)
		}
	}

	asset := custody.Native()
	if line.Type != typeNative {
		asset = custody.Asset{
			Code:   line.Code,
			Issuer: line.Issuer,
		}
	}

	balance := custody.Balance{
		Asset:  asset,
		Amount: amount,
		Limit:  limit,
	}

	return balance, nil
}

// rejection converts a Horizon problem into a network rejection. Errors that
// did not come from Horizon are returned unchanged.
func rejection(err error) error {

	herr := horizonclient.GetError(err)
	if herr == nil {
		return err
	}

	r := failure.NetworkRejection{
		Status:      herr.Problem.Status,
		Title:       herr.Problem.Title,
		Description: failure.NewDescription(herr.Problem.Detail),
	}

	codes, err := herr.ResultCodes()
	if err == nil && codes != nil {
		r.Transaction = codes.TransactionCode
		r.Operations = codes.OperationCodes
		if codes.InnerTransactionCode != "" {
			r.Description = failure.NewDescription(herr.Problem.Detail,
				failure.WithString("inner_transaction", codes.InnerTransactionCode),
			)
		}
	}

	return r
}
