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
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/optakt/stellar-custody/custody/failure"
)

type httpError struct {
	Message string                 `json:"message"`
	Err     string                 `json:"error,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e httpError) Error() string {
	if e.Err == "" {
		return e.Message
	}
	return fmt.Sprintf("%v (err: %v)", e.Message, e.Err)
}

func newHTTPError(code int, message string, err error) *echo.HTTPError {
	e := httpError{
		Message: message,
	}
	if err != nil {
		e.Err = err.Error()
	}

	return echo.NewHTTPError(code, e)
}

// requestError converts a binding or validation failure of a request body.
func requestError(err error) *echo.HTTPError {

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return newHTTPError(http.StatusBadRequest, "could not decode request", err)
	}

	details := make(map[string]interface{}, len(verrs))
	for _, verr := range verrs {
		details[verr.Namespace()] = verr.Tag()
	}

	e := httpError{
		Message: "invalid request",
		Err:     err.Error(),
		Details: details,
	}

	return echo.NewHTTPError(http.StatusBadRequest, e)
}

// operationError converts the error of a custody operation, using the kind
// of failure to select the status code.
func operationError(message string, err error) *echo.HTTPError {

	var description failure.Description
	code := http.StatusInternalServerError

	var (
		notFound     failure.AccountNotFound
		malformed    failure.MalformedAssetDescriptor
		amount       failure.InvalidAmount
		memo         failure.InvalidMemo
		key          failure.InvalidKey
		role         failure.InvalidAccountRole
		destination  failure.NoDestinationRole
		empty        failure.EmptyPaymentList
		insufficient failure.InsufficientBalance
		private      failure.MissingPrivateKey
	)
	switch {
	case errors.As(err, &notFound):
		code, description = http.StatusNotFound, notFound.Description
	case errors.As(err, &malformed):
		code, description = http.StatusUnprocessableEntity, malformed.Description
	case errors.As(err, &amount):
		code, description = http.StatusUnprocessableEntity, amount.Description
	case errors.As(err, &memo):
		code, description = http.StatusUnprocessableEntity, memo.Description
	case errors.As(err, &key):
		code, description = http.StatusUnprocessableEntity, key.Description
	case errors.As(err, &role):
		code, description = http.StatusUnprocessableEntity, role.Description
	case errors.As(err, &destination):
		code, description = http.StatusUnprocessableEntity, destination.Description
	case errors.As(err, &empty):
		code, description = http.StatusUnprocessableEntity, empty.Description
	case errors.As(err, &insufficient):
		code, description = http.StatusUnprocessableEntity, insufficient.Description
	case errors.As(err, &private):
		code, description = http.StatusUnprocessableEntity, private.Description
	}

	e := httpError{
		Message: message,
		Err:     err.Error(),
	}
	if len(description.Fields) > 0 {
		e.Details = make(map[string]interface{}, len(description.Fields))
		description.Fields.Iterate(func(key string, val interface{}) {
			e.Details[key] = val
		})
	}

	return echo.NewHTTPError(code, e)
}
