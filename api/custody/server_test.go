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

package custody_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stellar/go/txnbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/stellar-custody/api/custody"
	"github.com/optakt/stellar-custody/custody/failure"
	"github.com/optakt/stellar-custody/custody/lifecycle"
	"github.com/optakt/stellar-custody/custody/payment"
	"github.com/optakt/stellar-custody/custody/swap"
	model "github.com/optakt/stellar-custody/models/custody"
	"github.com/optakt/stellar-custody/testing/mocks"
)

type accountsMock struct {
	create     func(ctx context.Context, req lifecycle.CreateRequest) (lifecycle.Created, error)
	createDemo func(ctx context.Context) (lifecycle.Created, error)
	delete     func(ctx context.Context, secret string) (model.Submission, error)
	trustline  func(ctx context.Context, req lifecycle.TrustlineRequest) (model.Submission, error)
}

func (a *accountsMock) CreateAccount(ctx context.Context, req lifecycle.CreateRequest) (lifecycle.Created, error) {
	return a.create(ctx, req)
}

func (a *accountsMock) CreateDemoAccount(ctx context.Context) (lifecycle.Created, error) {
	return a.createDemo(ctx)
}

func (a *accountsMock) DeleteAccount(ctx context.Context, secret string) (model.Submission, error) {
	return a.delete(ctx, secret)
}

func (a *accountsMock) ValidateTrustLine(ctx context.Context, req lifecycle.TrustlineRequest) (model.Submission, error) {
	return a.trustline(ctx, req)
}

type paymentsMock struct {
	send     func(ctx context.Context, req payment.Request) (payment.Result, error)
	priority func(ctx context.Context, req payment.HighPriorityRequest) (model.Submission, error)
}

func (p *paymentsMock) SendPayment(ctx context.Context, req payment.Request) (payment.Result, error) {
	return p.send(ctx, req)
}

func (p *paymentsMock) SendHighPriorityPayment(ctx context.Context, req payment.HighPriorityRequest) (model.Submission, error) {
	return p.priority(ctx, req)
}

type swapsMock struct {
	swap func(ctx context.Context, sender model.SwapParty, recipient model.SwapParty, memo string) swap.Result
}

func (s *swapsMock) SwapPayment(ctx context.Context, sender model.SwapParty, recipient model.SwapParty, memo string) swap.Result {
	return s.swap(ctx, sender, recipient, memo)
}

func baselineAccounts() *accountsMock {
	created := lifecycle.Created{
		Keypair:    mocks.GenericKeypair(4),
		Submission: model.Accepted(mocks.GenericHash),
	}
	return &accountsMock{
		create: func(context.Context, lifecycle.CreateRequest) (lifecycle.Created, error) {
			return created, nil
		},
		createDemo: func(context.Context) (lifecycle.Created, error) {
			return created, nil
		},
		delete: func(context.Context, string) (model.Submission, error) {
			return model.Accepted(mocks.GenericHash), nil
		},
		trustline: func(context.Context, lifecycle.TrustlineRequest) (model.Submission, error) {
			return model.Submission{}, nil
		},
	}
}

func baselinePayments() *paymentsMock {
	return &paymentsMock{
		send: func(context.Context, payment.Request) (payment.Result, error) {
			return payment.Result{Submission: model.Accepted(mocks.GenericHash)}, nil
		},
		priority: func(context.Context, payment.HighPriorityRequest) (model.Submission, error) {
			return model.Accepted(mocks.GenericHash), nil
		},
	}
}

func baselineSwaps() *swapsMock {
	return &swapsMock{
		swap: func(context.Context, model.SwapParty, model.SwapParty, string) swap.Result {
			return swap.Result{Status: swap.Settled, Submission: model.Accepted(mocks.GenericHash)}
		},
	}
}

func call(t *testing.T, handler echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	err := handler(ctx)

	return rec, err
}

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, code, httpErr.Code)
}

func TestServer_CreateAccount(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		accounts := baselineAccounts()
		accounts.create = func(_ context.Context, req lifecycle.CreateRequest) (lifecycle.Created, error) {
			assert.Equal(t, mocks.GenericSecret(1), req.Secret)
			assert.Equal(t, mocks.GenericAsset("USD").Descriptor(), req.Trustline)
			return lifecycle.Created{
				Keypair:    mocks.GenericKeypair(4),
				Submission: model.Rejected(failure.NetworkRejection{Status: http.StatusBadRequest, Transaction: "tx_failed"}),
			}, nil
		}

		s := custody.NewServer(accounts, baselinePayments(), baselineSwaps())

		body := `{"secret":"` + mocks.GenericSecret(1) + `","trustline":"` + mocks.GenericAsset("USD").Descriptor() + `"}`
		rec, err := call(t, s.CreateAccount, body)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res custody.AccountResponse
		err = json.Unmarshal(rec.Body.Bytes(), &res)
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericAddress(4), res.Address)
		assert.Equal(t, mocks.GenericSecret(4), res.Secret)
		require.NotNil(t, res.Submission.Rejection)
		assert.Equal(t, "tx_failed", res.Submission.Rejection.Transaction)
	})

	t.Run("role funded without body fields", func(t *testing.T) {
		t.Parallel()

		s := custody.NewServer(baselineAccounts(), baselinePayments(), baselineSwaps())

		rec, err := call(t, s.CreateAccount, `{}`)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("handles invalid secret", func(t *testing.T) {
		t.Parallel()

		s := custody.NewServer(baselineAccounts(), baselinePayments(), baselineSwaps())

		_, err := call(t, s.CreateAccount, `{"secret":"`+mocks.GenericAddress(1)+`"}`)

		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("handles invalid JSON", func(t *testing.T) {
		t.Parallel()

		s := custody.NewServer(baselineAccounts(), baselinePayments(), baselineSwaps())

		_, err := call(t, s.CreateAccount, `{"secret":`)

		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("handles missing role", func(t *testing.T) {
		t.Parallel()

		accounts := baselineAccounts()
		accounts.create = func(context.Context, lifecycle.CreateRequest) (lifecycle.Created, error) {
			return lifecycle.Created{}, failure.InvalidAccountRole{Role: "ghost"}
		}

		s := custody.NewServer(accounts, baselinePayments(), baselineSwaps())

		_, err := call(t, s.CreateAccount, `{}`)

		requireStatus(t, err, http.StatusUnprocessableEntity)
	})
}

func TestServer_CreateDemoAccount(t *testing.T) {
	s := custody.NewServer(baselineAccounts(), baselinePayments(), baselineSwaps())

	rec, err := call(t, s.CreateDemoAccount, ``)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), mocks.GenericAddress(4))
}

func TestServer_DeleteAccount(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		s := custody.NewServer(baselineAccounts(), baselinePayments(), baselineSwaps())

		rec, err := call(t, s.DeleteAccount, `{"secret":"`+mocks.GenericSecret(2)+`"}`)

		require.NoError(t, err)
		var res custody.Submission
		err = json.Unmarshal(rec.Body.Bytes(), &res)
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericHash, res.Hash)
	})

	t.Run("handles missing secret", func(t *testing.T) {
		t.Parallel()

		s := custody.NewServer(baselineAccounts(), baselinePayments(), baselineSwaps())

		_, err := call(t, s.DeleteAccount, `{}`)

		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("handles missing destination role", func(t *testing.T) {
		t.Parallel()

		accounts := baselineAccounts()
		accounts.delete = func(context.Context, string) (model.Submission, error) {
			return model.Submission{}, failure.NoDestinationRole{}
		}

		s := custody.NewServer(accounts, baselinePayments(), baselineSwaps())

		_, err := call(t, s.DeleteAccount, `{"secret":"`+mocks.GenericSecret(2)+`"}`)

		requireStatus(t, err, http.StatusUnprocessableEntity)
	})

	t.Run("handles missing account", func(t *testing.T) {
		t.Parallel()

		accounts := baselineAccounts()
		accounts.delete = func(context.Context, string) (model.Submission, error) {
			return model.Submission{}, failure.AccountNotFound{Address: mocks.GenericAddress(2)}
		}

		s := custody.NewServer(accounts, baselinePayments(), baselineSwaps())

		_, err := call(t, s.DeleteAccount, `{"secret":"`+mocks.GenericSecret(2)+`"}`)

		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("handles internal failure", func(t *testing.T) {
		t.Parallel()

		accounts := baselineAccounts()
		accounts.delete = func(context.Context, string) (model.Submission, error) {
			return model.Submission{}, mocks.GenericError
		}

		s := custody.NewServer(accounts, baselinePayments(), baselineSwaps())

		_, err := call(t, s.DeleteAccount, `{"secret":"`+mocks.GenericSecret(2)+`"}`)

		requireStatus(t, err, http.StatusInternalServerError)
	})
}

func TestServer_ValidateTrustLine(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		usd := mocks.GenericAsset("USD").Descriptor()
		eur := mocks.GenericAsset("EUR").Descriptor()

		accounts := baselineAccounts()
		accounts.trustline = func(_ context.Context, req lifecycle.TrustlineRequest) (model.Submission, error) {
			assert.Equal(t, usd, req.Asset)
			assert.Equal(t, eur, req.Revoke)
			assert.True(t, req.Keep)
			return model.Submission{}, nil
		}

		s := custody.NewServer(accounts, baselinePayments(), baselineSwaps())

		body := `{"asset":"` + usd + `","secret":"` + mocks.GenericSecret(2) + `","revoke":"` + eur + `","keep":true}`
		rec, err := call(t, s.ValidateTrustLine, body)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("handles malformed asset", func(t *testing.T) {
		t.Parallel()

		s := custody.NewServer(baselineAccounts(), baselinePayments(), baselineSwaps())

		_, err := call(t, s.ValidateTrustLine, `{"asset":"USD","secret":"`+mocks.GenericSecret(2)+`"}`)

		requireStatus(t, err, http.StatusBadRequest)
	})
}

func TestServer_SendPayment(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		payments := baselinePayments()
		payments.send = func(_ context.Context, req payment.Request) (payment.Result, error) {
			require.Len(t, req.Payments, 1)
			assert.Equal(t, "native", req.Payments[0].Asset)
			assert.Equal(t, "12.5", req.Payments[0].Amount)
			assert.Equal(t, mocks.GenericAddress(1), req.Payments[0].Destination)
			assert.False(t, req.FeeBump)
			return payment.Result{Submission: model.Accepted(mocks.GenericHash)}, nil
		}

		s := custody.NewServer(baselineAccounts(), payments, baselineSwaps())

		body := `{"secret":"` + mocks.GenericSecret(0) + `","payments":[{"asset":"native","amount":"12.5","destination":"` + mocks.GenericAddress(1) + `"}]}`
		rec, err := call(t, s.SendPayment, body)

		require.NoError(t, err)
		var res custody.PaymentResponse
		err = json.Unmarshal(rec.Body.Bytes(), &res)
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericHash, res.Submission.Hash)
		assert.Empty(t, res.Envelope)
	})

	t.Run("deferred envelope is encoded", func(t *testing.T) {
		t.Parallel()

		tx := mocks.GenericTransaction()
		payments := baselinePayments()
		payments.send = func(context.Context, payment.Request) (payment.Result, error) {
			return payment.Result{Transaction: tx}, nil
		}

		s := custody.NewServer(baselineAccounts(), payments, baselineSwaps())

		body := `{"secret":"` + mocks.GenericSecret(0) + `","fee_bump":true,"payments":[{"asset":"native","amount":"1","destination":"` + mocks.GenericAddress(1) + `"}]}`
		rec, err := call(t, s.SendPayment, body)

		require.NoError(t, err)
		var res custody.PaymentResponse
		err = json.Unmarshal(rec.Body.Bytes(), &res)
		require.NoError(t, err)

		want, err := tx.Base64()
		require.NoError(t, err)
		assert.Equal(t, want, res.Envelope)

		parsed, err := txnbuild.TransactionFromXDR(res.Envelope)
		require.NoError(t, err)
		_, ok := parsed.Transaction()
		assert.True(t, ok)
	})

	t.Run("handles intent without recipient", func(t *testing.T) {
		t.Parallel()

		s := custody.NewServer(baselineAccounts(), baselinePayments(), baselineSwaps())

		body := `{"secret":"` + mocks.GenericSecret(0) + `","payments":[{"asset":"native","amount":"1"}]}`
		_, err := call(t, s.SendPayment, body)

		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("handles invalid amount", func(t *testing.T) {
		t.Parallel()

		s := custody.NewServer(baselineAccounts(), baselinePayments(), baselineSwaps())

		body := `{"secret":"` + mocks.GenericSecret(0) + `","payments":[{"asset":"native","amount":"-1","destination":"` + mocks.GenericAddress(1) + `"}]}`
		_, err := call(t, s.SendPayment, body)

		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("handles memo longer than 28 bytes", func(t *testing.T) {
		t.Parallel()

		payments := baselinePayments()
		payments.send = func(context.Context, payment.Request) (payment.Result, error) {
			t.Fatal("payment should not be sent")
			return payment.Result{}, nil
		}

		s := custody.NewServer(baselineAccounts(), payments, baselineSwaps())

		memo := strings.Repeat("€", 10)
		body := `{"secret":"` + mocks.GenericSecret(0) + `","payments":[{"asset":"native","amount":"1","destination":"` + mocks.GenericAddress(1) + `","memo":"` + memo + `"}]}`
		_, err := call(t, s.SendPayment, body)

		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("handles invalid memo", func(t *testing.T) {
		t.Parallel()

		payments := baselinePayments()
		payments.send = func(context.Context, payment.Request) (payment.Result, error) {
			return payment.Result{}, failure.InvalidMemo{Memo: "memo"}
		}

		s := custody.NewServer(baselineAccounts(), payments, baselineSwaps())

		body := `{"secret":"` + mocks.GenericSecret(0) + `","payments":[{"asset":"native","amount":"1","destination":"` + mocks.GenericAddress(1) + `"}]}`
		_, err := call(t, s.SendPayment, body)

		requireStatus(t, err, http.StatusUnprocessableEntity)
	})

	t.Run("handles empty payment list", func(t *testing.T) {
		t.Parallel()

		payments := baselinePayments()
		payments.send = func(context.Context, payment.Request) (payment.Result, error) {
			return payment.Result{}, failure.EmptyPaymentList{}
		}

		s := custody.NewServer(baselineAccounts(), payments, baselineSwaps())

		_, err := call(t, s.SendPayment, `{"secret":"`+mocks.GenericSecret(0)+`","payments":[]}`)

		requireStatus(t, err, http.StatusUnprocessableEntity)
	})

	t.Run("handles insufficient balance", func(t *testing.T) {
		t.Parallel()

		payments := baselinePayments()
		payments.send = func(context.Context, payment.Request) (payment.Result, error) {
			return payment.Result{}, failure.InsufficientBalance{
				Description: failure.NewDescription("not enough", failure.WithString("asset", "native")),
			}
		}

		s := custody.NewServer(baselineAccounts(), payments, baselineSwaps())

		body := `{"secret":"` + mocks.GenericSecret(0) + `","payments":[{"asset":"native","amount":"1","destination":"` + mocks.GenericAddress(1) + `"}]}`
		_, err := call(t, s.SendPayment, body)

		requireStatus(t, err, http.StatusUnprocessableEntity)
	})
}

func TestServer_SendHighPriorityPayment(t *testing.T) {
	payments := baselinePayments()
	payments.priority = func(_ context.Context, req payment.HighPriorityRequest) (model.Submission, error) {
		assert.True(t, req.PayCommission)
		return model.Accepted(mocks.GenericHash), nil
	}

	s := custody.NewServer(baselineAccounts(), payments, baselineSwaps())

	body := `{"secret":"` + mocks.GenericSecret(0) + `","pay_commission":true,"payments":[{"asset":"native","amount":"1","destination_secret":"` + mocks.GenericSecret(1) + `"}]}`
	rec, err := call(t, s.SendHighPriorityPayment, body)

	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), mocks.GenericHash)
}

func TestServer_SwapPayment(t *testing.T) {
	sender := `{"secret":"` + mocks.GenericSecret(0) + `","asset":"native","amount":"10"}`
	recipient := `{"secret":"` + mocks.GenericSecret(1) + `","asset":"` + mocks.GenericAsset("USD").Descriptor() + `","amount":"5"}`

	t.Run("declined swap is reported in body", func(t *testing.T) {
		t.Parallel()

		swaps := baselineSwaps()
		swaps.swap = func(_ context.Context, s model.SwapParty, r model.SwapParty, memo string) swap.Result {
			assert.Equal(t, mocks.GenericSecret(0), s.Secret)
			assert.Equal(t, mocks.GenericSecret(1), r.Secret)
			assert.Equal(t, "trade", memo)
			return swap.Result{Status: swap.Declined, Err: failure.InsufficientBalance{}}
		}

		s := custody.NewServer(baselineAccounts(), baselinePayments(), swaps)

		rec, err := call(t, s.SwapPayment, `{"sender":`+sender+`,"recipient":`+recipient+`,"memo":"trade"}`)

		require.NoError(t, err)
		var res custody.SwapResponse
		err = json.Unmarshal(rec.Body.Bytes(), &res)
		require.NoError(t, err)
		assert.Equal(t, "declined", res.Status)
		assert.NotEmpty(t, res.Error)
	})

	t.Run("handles memo longer than 28 bytes", func(t *testing.T) {
		t.Parallel()

		swaps := baselineSwaps()
		swaps.swap = func(context.Context, model.SwapParty, model.SwapParty, string) swap.Result {
			t.Fatal("swap should not be processed")
			return swap.Result{}
		}

		s := custody.NewServer(baselineAccounts(), baselinePayments(), swaps)

		_, err := call(t, s.SwapPayment, `{"sender":`+sender+`,"recipient":`+recipient+`,"memo":"`+strings.Repeat("€", 10)+`"}`)

		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("handles invalid party", func(t *testing.T) {
		t.Parallel()

		s := custody.NewServer(baselineAccounts(), baselinePayments(), baselineSwaps())

		_, err := call(t, s.SwapPayment, `{"sender":`+sender+`,"recipient":{"secret":"","asset":"native","amount":"1"}}`)

		requireStatus(t, err, http.StatusBadRequest)
	})
}
