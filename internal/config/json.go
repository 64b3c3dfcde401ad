// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// StructuredJSONConfig mirrors the JSON config file layout.
type StructuredJSONConfig struct {
	APIBaseURL     string   `json:"api_base_url"`
	AppEnv         string   `json:"app_env"`
	Release        string   `json:"release"`
	RequestTimeout Duration `json:"request_timeout"`

	Telemetry struct {
		Enabled      *bool    `json:"enabled"`
		QueueSize    int      `json:"queue_size"`
		FlushTimeout Duration `json:"flush_timeout"`
		Route        string   `json:"route"`
	} `json:"telemetry,omitempty"`
}

// parseJSON reads the JSON config file into a config layer. Only values that
// are present in the file are put into the layer.
func parseJSON(jsonFilePath string) (map[string]string, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.toLayer(), nil
}

func (c StructuredJSONConfig) toLayer() map[string]string {
	layer := make(map[string]string)
	put := func(key, value string) {
		if value != "" {
			layer[key] = value
		}
	}

	put(KeyAPIBaseURL, c.APIBaseURL)
	put(KeyAppEnv, c.AppEnv)
	put(KeyRelease, c.Release)
	if c.RequestTimeout != 0 {
		put(KeyRequestTimeout, c.RequestTimeout.String())
	}
	if c.Telemetry.Enabled != nil {
		put(KeyTelemetryEnabled, strconv.FormatBool(*c.Telemetry.Enabled))
	}
	if c.Telemetry.QueueSize != 0 {
		put(KeyTelemetryQueueSize, strconv.Itoa(c.Telemetry.QueueSize))
	}
	if c.Telemetry.FlushTimeout != 0 {
		put(KeyTelemetryFlushTimeout, c.Telemetry.FlushTimeout.String())
	}
	put(KeyTelemetryRoute, c.Telemetry.Route)

	return layer
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
