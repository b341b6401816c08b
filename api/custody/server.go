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

package custody

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/optakt/stellar-custody/custody/lifecycle"
	"github.com/optakt/stellar-custody/custody/payment"
)

// Server exposes the custody operations over HTTP.
type Server struct {
	validate *validator.Validate
	accounts Accounts
	payments Payments
	swaps    Swaps
}

// NewServer creates a new server handling requests with the given custody
// components.
func NewServer(accounts Accounts, payments Payments, swaps Swaps) *Server {

	s := Server{
		validate: newRequestValidator(),
		accounts: accounts,
		payments: payments,
		swaps:    swaps,
	}

	return &s
}

// Register adds the routes of the server to the given router.
func (s *Server) Register(router *echo.Echo) {
	router.POST("/accounts", s.CreateAccount)
	router.POST("/accounts/demo", s.CreateDemoAccount)
	router.POST("/accounts/delete", s.DeleteAccount)
	router.POST("/trustlines", s.ValidateTrustLine)
	router.POST("/payments", s.SendPayment)
	router.POST("/payments/priority", s.SendHighPriorityPayment)
	router.POST("/swaps", s.SwapPayment)
}

// CreateAccount implements the `POST /accounts` endpoint.
func (s *Server) CreateAccount(ctx echo.Context) error {

	var req CreateAccountRequest
	err := s.decode(ctx, &req)
	if err != nil {
		return err
	}

	created, err := s.accounts.CreateAccount(ctx.Request().Context(), lifecycle.CreateRequest{
		Secret:    req.Secret,
		Trustline: req.Trustline,
	})
	if err != nil {
		return operationError("could not create account", err)
	}

	return ctx.JSON(http.StatusOK, convertCreated(created))
}

// CreateDemoAccount implements the `POST /accounts/demo` endpoint.
func (s *Server) CreateDemoAccount(ctx echo.Context) error {

	created, err := s.accounts.CreateDemoAccount(ctx.Request().Context())
	if err != nil {
		return operationError("could not create demo account", err)
	}

	return ctx.JSON(http.StatusOK, convertCreated(created))
}

// DeleteAccount implements the `POST /accounts/delete` endpoint.
func (s *Server) DeleteAccount(ctx echo.Context) error {

	var req DeleteAccountRequest
	err := s.decode(ctx, &req)
	if err != nil {
		return err
	}

	sub, err := s.accounts.DeleteAccount(ctx.Request().Context(), req.Secret)
	if err != nil {
		return operationError("could not delete account", err)
	}

	return ctx.JSON(http.StatusOK, convertSubmission(sub))
}

// ValidateTrustLine implements the `POST /trustlines` endpoint.
func (s *Server) ValidateTrustLine(ctx echo.Context) error {

	var req TrustlineRequest
	err := s.decode(ctx, &req)
	if err != nil {
		return err
	}

	sub, err := s.accounts.ValidateTrustLine(ctx.Request().Context(), lifecycle.TrustlineRequest{
		Asset:  req.Asset,
		Secret: req.Secret,
		Revoke: req.Revoke,
		Keep:   req.Keep,
	})
	if err != nil {
		return operationError("could not validate trustline", err)
	}

	return ctx.JSON(http.StatusOK, convertSubmission(sub))
}

// SendPayment implements the `POST /payments` endpoint.
func (s *Server) SendPayment(ctx echo.Context) error {

	var req PaymentRequest
	err := s.decode(ctx, &req)
	if err != nil {
		return err
	}

	result, err := s.payments.SendPayment(ctx.Request().Context(), payment.Request{
		Payments: req.Payments,
		Secret:   req.Secret,
		FeeBump:  req.FeeBump,
	})
	if err != nil {
		return operationError("could not send payment", err)
	}

	res := PaymentResponse{
		Submission: convertSubmission(result.Submission),
	}
	if result.Transaction != nil {
		res.Envelope, err = result.Transaction.Base64()
		if err != nil {
			return newHTTPError(http.StatusInternalServerError, "could not encode envelope", err)
		}
	}

	return ctx.JSON(http.StatusOK, res)
}

// SendHighPriorityPayment implements the `POST /payments/priority` endpoint.
func (s *Server) SendHighPriorityPayment(ctx echo.Context) error {

	var req PriorityPaymentRequest
	err := s.decode(ctx, &req)
	if err != nil {
		return err
	}

	sub, err := s.payments.SendHighPriorityPayment(ctx.Request().Context(), payment.HighPriorityRequest{
		Payments:      req.Payments,
		Secret:        req.Secret,
		PayCommission: req.PayCommission,
	})
	if err != nil {
		return operationError("could not send high-priority payment", err)
	}

	return ctx.JSON(http.StatusOK, PaymentResponse{Submission: convertSubmission(sub)})
}

// SwapPayment implements the `POST /swaps` endpoint. Declined and failed
// swaps are outcomes, not request errors, so they are reported in the body.
func (s *Server) SwapPayment(ctx echo.Context) error {

	var req SwapRequest
	err := s.decode(ctx, &req)
	if err != nil {
		return err
	}

	result := s.swaps.SwapPayment(ctx.Request().Context(), req.Sender, req.Recipient, req.Memo)

	return ctx.JSON(http.StatusOK, convertSwap(result))
}

func (s *Server) decode(ctx echo.Context, req interface{}) error {

	err := ctx.Bind(req)
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "could not decode request", err)
	}

	err = s.validate.Struct(req)
	if err != nil {
		return requestError(err)
	}

	return nil
}
