// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// ClientFlags is the result of parsing client command-line flags.
type ClientFlags struct {
	// Values holds only the flags that were explicitly set, keyed by the
	// config key they override.
	Values map[string]string

	// EnvFile is the .env file to load; empty means DefaultDotEnvPath.
	EnvFile string
}

// flagKeys maps flag names to the config key they set.
var flagKeys = map[string]string{
	"api":             KeyAPIBaseURL,
	"env":             KeyAppEnv,
	"release":         KeyRelease,
	"request-timeout": KeyRequestTimeout,
	"telemetry":       KeyTelemetryEnabled,
	"c":               KeyConfigFile,
	"config":          KeyConfigFile,
}

// ParseFlags parses client configuration flags from args (without the
// program name).
//
// Flags:
//
//	-api API base URL (e.g. "https://api.example.com")
//	-env app environment: development, staging or production
//	-release release tag reported with telemetry
//	-request-timeout API request timeout (e.g. "8s")
//	-telemetry enable telemetry delivery (default true)
//	-c/-config json file path with configs
//	-env-file .env file path (default ".env")
func ParseFlags(args []string) (ClientFlags, error) {
	fs := flag.NewFlagSet("early-access", flag.ContinueOnError)

	fs.String("api", "", "API base URL")
	fs.String("env", "", "App environment (development|staging|production)")
	fs.String("release", "", "Release tag")
	fs.Duration("request-timeout", 0, "Request timeout (e.g., 8s)")
	fs.Bool("telemetry", true, "Enable telemetry delivery")
	fs.String("c", "", "JSON config file path")
	fs.String("config", "", "JSON config file path (alias)")
	envFile := fs.String("env-file", "", ".env file path")

	if err := fs.Parse(args); err != nil {
		return ClientFlags{}, err
	}

	values := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			values[key] = f.Value.String()
		}
	})

	return ClientFlags{Values: values, EnvFile: *envFile}, nil
}

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty (all interfaces), and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
