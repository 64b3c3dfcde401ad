// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/regulatrix/early-access/internal/config"
	"github.com/regulatrix/early-access/internal/handler"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, address string) *server {
	t.Helper()

	cfg := &config.ServerConfig{
		Address:         address,
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
		Release:         "v-test",
	}
	handlers, err := handler.NewHandlers(cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return s.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, &config.ServerConfig{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServesAndShutsDownOnCancel(t *testing.T) {
	// Arrange
	s := newTestServer(t, "127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Act
	go func() { done <- s.Run(ctx) }()

	select {
	case <-s.ready:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start")
	}

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + s.addr + "/api/version")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	cancel()

	// Assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "v-test", string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunListenError(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:99999")

	err := s.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
