// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/regulatrix/early-access/models"
)

// Field name constants used both as keys of ValidationErrors and as the
// optional field scope of Validate.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldCompany = "company"
	FieldWebsite = "website"
	FieldRole    = "role"
)

// Fields lists the form fields in display order.
var Fields = []string{FieldName, FieldEmail, FieldCompany, FieldWebsite, FieldRole}

const (
	MsgNameRequired    = "Name is required."
	MsgInvalidEmail    = "Enter a valid email address."
	MsgCompanyRequired = "Company is required."
	MsgInvalidWebsite  = "Website must be a valid URL."
	MsgInvalidRole     = "Select a valid role."
)

const minTextLength = 2

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// EarlyAccessValidator implements Validator for the early-access form.
// It accepts models.FormInput and models.EarlyAccessRequest, by value or
// pointer. Each field is checked independently, so an invalid email never
// hides errors on other fields.
type EarlyAccessValidator struct{}

// NewEarlyAccessValidator constructs an EarlyAccessValidator and returns it
// as the Validator interface.
func NewEarlyAccessValidator() Validator {
	return &EarlyAccessValidator{}
}

// Validate returns nil, a ValidationErrors describing every invalid field,
// ErrUnsupportedType or ErrUnknownField.
func (v *EarlyAccessValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FormInput:
		return v.validateForm(value, fields...)
	case *models.FormInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateForm(*value, fields...)

	case models.EarlyAccessRequest:
		return v.validateForm(formFromRequest(value), fields...)
	case *models.EarlyAccessRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateForm(formFromRequest(*value), fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EarlyAccessValidator) validateForm(input models.FormInput, fields ...string) error {
	if len(fields) == 0 {
		fields = Fields
	}

	errs := ValidationErrors{}
	for _, f := range fields {
		var msg string
		switch f {
		case FieldName:
			msg = checkMinLength(input.Name, MsgNameRequired)
		case FieldEmail:
			if !isEmail(strings.TrimSpace(input.Email)) {
				msg = MsgInvalidEmail
			}
		case FieldCompany:
			msg = checkMinLength(input.Company, MsgCompanyRequired)
		case FieldWebsite:
			if website := strings.TrimSpace(input.Website); website != "" && !isAbsoluteURL(website) {
				msg = MsgInvalidWebsite
			}
		case FieldRole:
			if !input.Role.Valid() {
				msg = MsgInvalidRole
			}
		default:
			return ErrUnknownField
		}

		if msg != "" {
			if _, seen := errs[f]; !seen {
				errs[f] = msg
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkMinLength(value, msg string) string {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < minTextLength {
		return msg
	}
	return ""
}

// isEmail runs emailRegex as a first pass, then rejects dot placement in the
// local part and empty or hyphen-edged domain labels.
func isEmail(s string) bool {
	if !emailRegex.MatchString(s) {
		return false
	}

	local, domain, _ := strings.Cut(s, "@")
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}

	for _, label := range strings.Split(domain, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func formFromRequest(req models.EarlyAccessRequest) models.FormInput {
	input := models.FormInput{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Role:    req.Role,
	}
	if req.Website != nil {
		input.Website = *req.Website
	}
	return input
}
