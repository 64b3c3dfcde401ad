// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/regulatrix/early-access/models"

type submitDoneMsg struct {
	outcome models.SubmitOutcome
}

type clearStatusMsg struct{}
