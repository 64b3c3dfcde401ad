// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the early-access form and the
// shape check applied to backend responses.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation, which
//     the form uses to re-check a single edited field.
//   - ValidationErrors: field name to message map, one message per field.
//   - Normalization: a separate pure stage turning valid form input into the
//     request payload (see NormalizeEarlyAccess).
//   - Response schema: a JSON schema every early-access response body must
//     satisfy before it is decoded (see ValidateEarlyAccessResponse).
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
