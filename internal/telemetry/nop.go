// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"context"

	"github.com/regulatrix/early-access/models"
)

// Nop is an Emitter that discards every event. It is used when telemetry
// is disabled.
type Nop struct{}

func (Nop) Track(models.EventName, map[string]any) {}

func (Nop) Start(context.Context) {}

func (Nop) Stop() {}
