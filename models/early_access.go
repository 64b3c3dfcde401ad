// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the kind of organisation a lead represents.
type Role string

const (
	RoleAgency   Role = "agency"
	RoleMerchant Role = "merchant"
)

// Roles lists every accepted [Role] in display order.
var Roles = []Role{RoleAgency, RoleMerchant}

// Valid reports whether r is one of the accepted roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// FormInput is the raw state of the early-access form as the user types it.
// Values are not trimmed or validated; see validators.EarlyAccessValidator.
type FormInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	// Website may be empty.
	Website string `json:"website"`
	Role    Role   `json:"role"`
}

// NewFormInput returns the initial form state: empty fields, merchant role.
func NewFormInput() FormInput {
	return FormInput{Role: RoleMerchant}
}

// EarlyAccessRequest is the normalised payload sent to POST /api/early-access.
//
// Website is nil when the user left it blank; the key is then omitted from
// the JSON body entirely because the backend treats a missing key and an
// empty string differently.
type EarlyAccessRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company string  `json:"company"`
	Website *string `json:"website,omitempty"`
	Role    Role    `json:"role"`
}

// EarlyAccessResponse is the success/failure envelope returned by the backend.
type EarlyAccessResponse struct {
	Success   bool    `json:"success"`
	Message   *string `json:"message,omitempty"`
	Error     *string `json:"error,omitempty"`
	RequestID *string `json:"request_id,omitempty"`
}

// MessageOr returns Message, or fallback when the backend sent none.
func (r EarlyAccessResponse) MessageOr(fallback string) string {
	if r.Message == nil {
		return fallback
	}
	return *r.Message
}

// ErrorOr returns Error, or fallback when the backend sent none.
func (r EarlyAccessResponse) ErrorOr(fallback string) string {
	if r.Error == nil {
		return fallback
	}
	return *r.Error
}

// RequestIDValue returns the correlation id, or an empty string.
func (r EarlyAccessResponse) RequestIDValue() string {
	if r.RequestID == nil {
		return ""
	}
	return *r.RequestID
}
