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
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/stellar/go/keypair"

	"github.com/optakt/stellar-custody/custody/asset"
	"github.com/optakt/stellar-custody/custody/envelope"
	model "github.com/optakt/stellar-custody/models/custody"
)

// Field names are only used by the validator library when rendering plain
// errors, but they are mandatory arguments of `ReportError`.
const (
	destinationField = "destination"
)

func newRequestValidator() *validator.Validate {

	v := validator.New()

	// Register custom tags for the string encodings of keys, assets and
	// amounts used throughout the requests.
	tags := map[string]validator.Func{
		"address": addressValidator,
		"secret":  secretValidator,
		"asset":   assetValidator,
		"amount":  amountValidator,
		"memo":    memoValidator,
	}
	for tag, fn := range tags {
		err := v.RegisterValidation(tag, fn)
		if err != nil {
			panic(fmt.Sprintf("could not register validation (%s): %s", tag, err))
		}
	}

	v.RegisterStructValidation(intentValidator, model.PaymentIntent{})

	return v
}

func addressValidator(fl validator.FieldLevel) bool {
	_, err := keypair.ParseAddress(fl.Field().String())
	return err == nil
}

func secretValidator(fl validator.FieldLevel) bool {
	_, err := keypair.ParseFull(fl.Field().String())
	return err == nil
}

func assetValidator(fl validator.FieldLevel) bool {
	_, err := asset.Resolve(fl.Field().String())
	return err == nil
}

func amountValidator(fl validator.FieldLevel) bool {
	_, err := asset.ParseAmount(fl.Field().String())
	return err == nil
}

func memoValidator(fl validator.FieldLevel) bool {
	return envelope.CheckMemo(fl.Field().String()) == nil
}

// intentValidator makes sure a payment intent has a recipient.
func intentValidator(sl validator.StructLevel) {

	intent := sl.Current().Interface().(model.PaymentIntent)
	if intent.Destination == "" && intent.DestinationSecret == "" {
		sl.ReportError(intent.Destination, destinationField, destinationField, "required_without", "")
	}
}
