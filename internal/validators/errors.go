// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrFormInvalid matches any ValidationErrors via errors.Is.
	ErrFormInvalid = errors.New("form input is invalid")

	// ErrResponseShape matches any *SchemaError via errors.Is.
	ErrResponseShape = errors.New("response does not match expected shape")
)

// ValidationErrors maps a form field name to a single human-readable message.
// At most one message is kept per field: the first rule that fails wins.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ErrFormInvalid.Error()
	}

	parts := make([]string, 0, len(e))
	for _, field := range slices.Sorted(maps.Keys(e)) {
		parts = append(parts, field+": "+e[field])
	}
	return ErrFormInvalid.Error() + ": " + strings.Join(parts, "; ")
}

func (e ValidationErrors) Is(target error) bool {
	return target == ErrFormInvalid
}

// Without returns a copy of e with field removed. The receiver is not
// modified; a nil map is returned when nothing is left.
func (e ValidationErrors) Without(field string) ValidationErrors {
	if _, ok := e[field]; !ok {
		return e
	}

	out := make(ValidationErrors, len(e)-1)
	for k, v := range e {
		if k != field {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SchemaError reports a response body that failed the JSON schema check.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	if len(e.Problems) == 0 {
		return ErrResponseShape.Error()
	}
	return ErrResponseShape.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrResponseShape
}
