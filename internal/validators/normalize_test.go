// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regulatrix/early-access/models"
)

func TestNormalizeEarlyAccess_TrimsFields(t *testing.T) {
	in := models.FormInput{
		Name:    "  Jane Doe ",
		Email:   " jane@example.com",
		Company: "Regulatrix  ",
		Website: "  https://x.io  ",
		Role:    models.RoleAgency,
	}

	req := NormalizeEarlyAccess(in)

	assert.Equal(t, "Jane Doe", req.Name)
	assert.Equal(t, "jane@example.com", req.Email)
	assert.Equal(t, "Regulatrix", req.Company)
	require.NotNil(t, req.Website)
	assert.Equal(t, "https://x.io", *req.Website)
	assert.Equal(t, models.RoleAgency, req.Role)
}

func TestNormalizeEarlyAccess_WebsiteKey(t *testing.T) {
	tests := []struct {
		name    string
		website string
		want    string
	}{
		{"empty website omits key", "", `{"name":"Jane Doe","email":"jane@example.com","company":"Regulatrix","role":"merchant"}`},
		{"blank website omits key", "   ", `{"name":"Jane Doe","email":"jane@example.com","company":"Regulatrix","role":"merchant"}`},
		{"website kept", "https://x.io", `{"name":"Jane Doe","email":"jane@example.com","company":"Regulatrix","website":"https://x.io","role":"merchant"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.Website = tt.website

			body, err := json.Marshal(NormalizeEarlyAccess(in))

			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}

func TestBuildEarlyAccessRequest(t *testing.T) {
	v := NewEarlyAccessValidator()

	t.Run("valid input is normalized", func(t *testing.T) {
		in := validInput()
		in.Name = " Jane Doe "

		req, err := BuildEarlyAccessRequest(context.Background(), v, in)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", req.Name)
		assert.Nil(t, req.Website)
	})

	t.Run("invalid input returns field errors", func(t *testing.T) {
		in := validInput()
		in.Company = ""

		req, err := BuildEarlyAccessRequest(context.Background(), v, in)

		assert.Equal(t, models.EarlyAccessRequest{}, req)
		assert.Equal(t, ValidationErrors{FieldCompany: MsgCompanyRequired}, validationErrors(t, err))
	})
}
