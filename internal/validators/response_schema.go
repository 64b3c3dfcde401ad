// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/regulatrix/early-access/models"
)

const earlyAccessResponseSchemaJSON = `{
	"type": "object",
	"required": ["success"],
	"properties": {
		"success":    {"type": "boolean"},
		"message":    {"type": "string"},
		"error":      {"type": "string"},
		"request_id": {"type": "string"}
	}
}`

var earlyAccessResponseSchema = mustSchema(earlyAccessResponseSchemaJSON)

func mustSchema(source string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("validators: compile schema: %v", err))
	}
	return schema
}

// ValidateEarlyAccessResponse checks a decoded JSON body (as produced by
// encoding/json into an any) against the early-access response schema and
// returns the typed envelope. Shape mismatches return *SchemaError.
func ValidateEarlyAccessResponse(body any) (models.EarlyAccessResponse, error) {
	result, err := earlyAccessResponseSchema.Validate(gojsonschema.NewGoLoader(body))
	if err != nil {
		return models.EarlyAccessResponse{}, &SchemaError{Problems: []string{err.Error()}}
	}

	if !result.Valid() {
		problems := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			problems[i] = desc.String()
		}
		return models.EarlyAccessResponse{}, &SchemaError{Problems: problems}
	}

	obj, ok := body.(map[string]any)
	if !ok {
		return models.EarlyAccessResponse{}, &SchemaError{Problems: []string{fmt.Sprintf("unexpected body type %T", body)}}
	}

	success, _ := obj["success"].(bool)
	resp := models.EarlyAccessResponse{Success: success}
	resp.Message = optionalString(obj, "message")
	resp.Error = optionalString(obj, "error")
	resp.RequestID = optionalString(obj, "request_id")

	return resp, nil
}

func optionalString(obj map[string]any, key string) *string {
	s, ok := obj[key].(string)
	if !ok {
		return nil
	}
	return &s
}
