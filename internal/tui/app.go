// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/regulatrix/early-access/models"
)

// RootModel wraps the form page:
// 1) handles global ctrl+c quit
// 2) toggles the build info window
// 3) delegates all other messages to the page
type RootModel struct {
	page tea.Model

	buildInfo models.AppBuildInfo
	release   string

	showBuildInfo bool
	quitByUser    bool
}

func NewRootModel(page tea.Model, buildInfo models.AppBuildInfo, release string) RootModel {
	return RootModel{
		page:      page,
		buildInfo: buildInfo,
		release:   release,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.page == nil {
		return nil
	}
	return r.page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if r.page == nil {
		return r, nil
	}

	updated, cmd := r.page.Update(msg)
	r.page = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.release)
	}
	if r.page == nil {
		return renderPage("EARLY ACCESS", "", "")
	}
	return r.page.View()
}
