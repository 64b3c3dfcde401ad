// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"

	"github.com/regulatrix/early-access/internal/adapter"
	"github.com/regulatrix/early-access/internal/validators"
)

// ToUserMessage maps any submission error to the sentence shown under the
// form. It is total: nil and unknown errors get the generic message.
//
// Bad request and unprocessable entity responses always map to the generic
// form message; the backend's own text is not shown.
func ToUserMessage(err error) string {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) && apiErr != nil {
		switch {
		case apiErr.HTTPStatus == http.StatusBadRequest || apiErr.HTTPStatus == http.StatusUnprocessableEntity:
			return MsgCheckForm
		case apiErr.HTTPStatus >= http.StatusInternalServerError:
			return MsgServerError
		case apiErr.Code == adapter.CodeTimeout || apiErr.Code == adapter.CodeNetworkError:
			return MsgConnection
		case apiErr.Message != "":
			return apiErr.Message
		default:
			return MsgGeneric
		}
	}

	var schemaErr *validators.SchemaError
	if errors.As(err, &schemaErr) {
		return MsgUnexpectedResponse
	}

	return MsgGeneric
}

// RequestIDFromError returns the backend correlation id carried by err, or
// an empty string.
func RequestIDFromError(err error) string {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr.RequestID
	}
	return ""
}
