// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/regulatrix/early-access/internal/service"
	"github.com/regulatrix/early-access/internal/validators"
	"github.com/regulatrix/early-access/models"
)

const (
	MsgCopied      = "Request ID copied."
	MsgNothingCopy = "No request ID to copy."
	msgCopyFailed  = "Could not copy: "

	statusTTL = 2 * time.Second
)

// textFields are the text inputs in display order. The role selector
// follows them and has index len(textFields).
var textFields = []struct {
	name        string
	label       string
	placeholder string
	limit       int
}{
	{name: validators.FieldName, label: "Name", placeholder: "Jane Doe", limit: 120},
	{name: validators.FieldEmail, label: "Email", placeholder: "jane@company.com", limit: 254},
	{name: validators.FieldCompany, label: "Company", placeholder: "Acme Inc.", limit: 120},
	{name: validators.FieldWebsite, label: "Website", placeholder: "https://acme.com (optional)", limit: 2048},
}

// FormModel is the early-access form page. It owns the raw input state and
// the last submission outcome; all validation and delivery run in the
// FormService.
type FormModel struct {
	ctx   context.Context
	forms service.FormService

	inputs []textinput.Model
	role   models.Role
	focus  int

	state       models.FormState
	message     string
	fieldErrors validators.ValidationErrors
	requestID   string

	// status is a transient line for clipboard feedback.
	status string
	copy   func(string) error
}

// NewFormModel creates an empty form with the merchant role selected and
// the name input focused.
func NewFormModel(ctx context.Context, forms service.FormService) *FormModel {
	m := &FormModel{
		ctx:   ctx,
		forms: forms,
		state: models.FormStateIdle,
		copy:  clipboard.WriteAll,
	}

	m.inputs = make([]textinput.Model, len(textFields))
	for i, f := range textFields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = f.limit
		in.Width = 40
		m.inputs[i] = in
	}
	m.reset()

	return m
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		m.applyOutcome(msg.outcome)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.next):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, keys.prev):
		m.setFocus(m.focus - 1)
		return m, nil
	case key.Matches(msg, keys.submit):
		return m, m.submit()
	case key.Matches(msg, keys.copyID):
		return m, m.copyRequestID()
	}

	if m.focus == len(m.inputs) {
		if key.Matches(msg, keys.toggleRole) {
			m.toggleRole()
			m.edited(validators.FieldRole)
		}
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.edited(textFields[m.focus].name)
	}
	return m, cmd
}

// submit starts one submission. Enter is ignored while a submission is in
// flight.
func (m *FormModel) submit() tea.Cmd {
	if m.state == models.FormStateSubmitting {
		return nil
	}

	m.state = models.FormStateSubmitting
	m.message = ""

	ctx := m.ctx
	forms := m.forms
	input := m.formInput()

	return func() tea.Msg {
		return submitDoneMsg{outcome: forms.Submit(ctx, input)}
	}
}

func (m *FormModel) applyOutcome(outcome models.SubmitOutcome) {
	// A concurrent submit was refused by the service; the first one is
	// still running and will deliver its own outcome.
	if outcome.State == models.FormStateSubmitting {
		return
	}

	m.state = outcome.State
	m.message = outcome.Message
	m.fieldErrors = outcome.FieldErrors
	if outcome.RequestID != "" {
		m.requestID = outcome.RequestID
	}

	if outcome.State == models.FormStateSuccess {
		m.reset()
	}
}

// edited clears the error of field. Unless a submission is in flight the
// previous outcome is dismissed.
func (m *FormModel) edited(field string) {
	m.fieldErrors = m.fieldErrors.Without(field)
	if m.state == models.FormStateSubmitting {
		return
	}
	m.state = models.FormStateIdle
	m.message = ""
}

func (m *FormModel) copyRequestID() tea.Cmd {
	if m.requestID == "" {
		m.status = MsgNothingCopy
	} else if err := m.copy(m.requestID); err != nil {
		m.status = msgCopyFailed + err.Error()
	} else {
		m.status = MsgCopied
	}

	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *FormModel) toggleRole() {
	if m.role == models.RoleAgency {
		m.role = models.RoleMerchant
		return
	}
	m.role = models.RoleAgency
}

// reset empties the inputs and restores the default role. Feedback and the
// last request id are kept.
func (m *FormModel) reset() {
	defaults := models.NewFormInput()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.role = defaults.Role
	m.setFocus(0)
}

func (m *FormModel) setFocus(i int) {
	n := len(m.inputs) + 1
	m.focus = (i%n + n) % n

	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *FormModel) formInput() models.FormInput {
	return models.FormInput{
		Name:    m.inputs[0].Value(),
		Email:   m.inputs[1].Value(),
		Company: m.inputs[2].Value(),
		Website: m.inputs[3].Value(),
		Role:    m.role,
	}
}

// View implements [tea.Model].
func (m *FormModel) View() string {
	var b strings.Builder

	for i, f := range textFields {
		b.WriteString(m.label(i, f.label))
		b.WriteString("[")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
		m.writeFieldError(&b, f.name)
	}

	b.WriteString(m.label(len(m.inputs), "Role"))
	for i, role := range models.Roles {
		if i > 0 {
			b.WriteString("  ")
		}
		if role == m.role {
			b.WriteString("(•) ")
		} else {
			b.WriteString("( ) ")
		}
		b.WriteString(roleTitle(role))
	}
	b.WriteString("\n")
	m.writeFieldError(&b, validators.FieldRole)

	if m.state == models.FormStateSubmitting {
		b.WriteString("\n[Submitting...]\n")
	} else {
		b.WriteString("\n[Request access]\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(feedbackStyle(m.state).Render(m.message))
		b.WriteString("\n")
	}
	if m.requestID != "" {
		b.WriteString(helpStyle.Render("Request ID: " + m.requestID))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("REQUEST EARLY ACCESS", strings.TrimRight(b.String(), "\n"), formHelp())
}

func (m *FormModel) label(i int, text string) string {
	if i == m.focus {
		return focusedStyle.Render(labelStyle.Render(text))
	}
	return labelStyle.Render(text)
}

func (m *FormModel) writeFieldError(b *strings.Builder, field string) {
	if msg, ok := m.fieldErrors[field]; ok {
		b.WriteString(fieldErrorStyle.Render("  " + msg))
		b.WriteString("\n")
	}
}

func roleTitle(r models.Role) string {
	switch r {
	case models.RoleAgency:
		return "Agency"
	case models.RoleMerchant:
		return "Merchant"
	default:
		return string(r)
	}
}
