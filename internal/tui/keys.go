// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next       key.Binding
	prev       key.Binding
	submit     key.Binding
	toggleRole key.Binding
	copyID     key.Binding
	buildInfo  key.Binding
	esc        key.Binding
	quit       key.Binding
}

var keys = keyMap{
	next:       key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	prev:       key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	toggleRole: key.NewBinding(key.WithKeys("left", "right", " "), key.WithHelp("←/→", "role")),
	copyID:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy request id")),
	buildInfo:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// formHelp is the hotkey line of the form page.
func formHelp() string {
	bindings := []key.Binding{keys.next, keys.prev, keys.toggleRole, keys.submit, keys.copyID, keys.buildInfo}

	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " │ "
		}
		out += b.Help().Key + ": " + b.Help().Desc
	}
	return out
}
