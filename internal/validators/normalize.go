// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/regulatrix/early-access/models"
)

// NormalizeEarlyAccess trims every field of input. Website stays nil when
// it is blank so the key is left out of the request body.
// Callers must validate input first.
func NormalizeEarlyAccess(input models.FormInput) models.EarlyAccessRequest {
	req := models.EarlyAccessRequest{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Company: strings.TrimSpace(input.Company),
		Role:    input.Role,
	}

	if website := strings.TrimSpace(input.Website); website != "" {
		req.Website = &website
	}

	return req
}

// BuildEarlyAccessRequest validates input with v and, when it is valid,
// returns the normalized request.
func BuildEarlyAccessRequest(ctx context.Context, v Validator, input models.FormInput) (models.EarlyAccessRequest, error) {
	if err := v.Validate(ctx, input); err != nil {
		return models.EarlyAccessRequest{}, err
	}
	return NormalizeEarlyAccess(input), nil
}
