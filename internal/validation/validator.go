package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns the validator used for all request payloads. Validation stays
// deliberately shallow: required fields and non-negative numbers only. The
// order total is never checked against the item prices, since callers may
// apply promotional pricing.
func New() *validatorv10.Validate {
	return validatorv10.New()
}
