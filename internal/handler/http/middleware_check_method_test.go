// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(status) }
	}

	router.Post(EarlyAccessPath, ok(http.StatusOK))
	router.Post(FrontendEventsPath, ok(http.StatusAccepted))
	router.Get(VersionPath, ok(http.StatusOK))

	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "registered POST passes", method: http.MethodPost, path: EarlyAccessPath, want: http.StatusOK},
		{name: "registered events POST passes", method: http.MethodPost, path: FrontendEventsPath, want: http.StatusAccepted},
		{name: "GET on POST route is hidden", method: http.MethodGet, path: EarlyAccessPath, want: http.StatusNotFound},
		{name: "DELETE on events route is hidden", method: http.MethodDelete, path: FrontendEventsPath, want: http.StatusNotFound},
		{name: "POST on GET route is hidden", method: http.MethodPost, path: VersionPath, want: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}
