package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update handles messages.
func (m *WorkbenchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScrolls()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case copyFlashExpiredMsg:
		// Cosmetic badge reset only; no conversion or quiz state changes.
		if m.copiedCardID == msg.cardID {
			m.copiedCardID = ""
		}
		return m, nil
	}

	// Remaining messages (cursor blink etc.) go to the focused input.
	var cmds []tea.Cmd
	if m.decimalInput.Focused() {
		var cmd tea.Cmd
		m.decimalInput, cmd = m.decimalInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.answerInput.Focused() {
		var cmd tea.Cmd
		m.answerInput, cmd = m.answerInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleKeyPress dispatches key events: modal stack first, then the focused
// text inputs, then global workbench shortcuts.
func (m *WorkbenchModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
			m.syncFocus()
		}
		return m, cmd
	}

	if m.decimalInput.Focused() {
		return m.handleDecimalInputKeys(msg)
	}
	if m.answerInput.Focused() {
		return m.handleAnswerInputKeys(msg)
	}

	return m.handleGlobalKeys(msg)
}

// handleDecimalInputKeys routes keys while the decimal field is focused.
// Everything except navigation types into the field; each change revalidates.
func (m *WorkbenchModel) handleDecimalInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextSection):
		m.nextSection()
		return m, nil

	case key.Matches(msg, m.keys.PrevSection):
		m.prevSection()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.activeSection = SectionBits
		m.syncFocus()
		return m, nil
	}

	before := m.decimalInput.Value()
	var cmd tea.Cmd
	m.decimalInput, cmd = m.decimalInput.Update(msg)
	if after := m.decimalInput.Value(); after != before {
		m.applyDecimalInput(after)
	}
	return m, cmd
}

// handleAnswerInputKeys routes keys while the quiz answer field is focused.
func (m *WorkbenchModel) handleAnswerInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextSection):
		m.nextSection()
		return m, nil

	case key.Matches(msg, m.keys.PrevSection):
		m.prevSection()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.nextTab()
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.prevTab()
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.answerInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.submitAnswer()
		return m, nil
	}

	var cmd tea.Cmd
	m.answerInput, cmd = m.answerInput.Update(msg)
	return m, cmd
}

// handleGlobalKeys handles workbench-level shortcuts. Only reached when no
// modal is on the stack and no text input is focused.
func (m *WorkbenchModel) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.PushModal(newHelpModal())
		return m, nil

	case key.Matches(msg, k.NextSection):
		m.nextSection()
		return m, nil

	case key.Matches(msg, k.PrevSection):
		m.prevSection()
		return m, nil

	case key.Matches(msg, k.NextTab):
		m.nextTab()
		m.syncFocus()
		return m, nil

	case key.Matches(msg, k.PrevTab):
		m.prevTab()
		m.syncFocus()
		return m, nil

	case key.Matches(msg, k.GotoTab):
		if idx := int(msg.Runes[0] - '1'); idx >= 0 && idx < len(m.tabs) {
			m.activeTabIdx = idx
			m.activeSection = SectionTab
			m.syncFocus()
		}
		return m, nil

	case key.Matches(msg, k.Reference):
		m.navRequest = "reference"
		return m, nil

	case key.Matches(msg, k.ManualMode):
		m.setManualMode(!m.manualMode)
		return m, nil

	case key.Matches(msg, k.InvertSign):
		m.invertSign()
		return m, nil
	}

	switch m.activeSection {
	case SectionBits:
		return m.handleBitStripKeys(msg)
	case SectionTab:
		return m.handleTabKeys(msg)
	}
	return m, nil
}

func (m *WorkbenchModel) handleBitStripKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Left):
		if m.bitCursor > 0 {
			m.bitCursor--
		}
	case key.Matches(msg, k.Right):
		if m.bitCursor < len(m.pattern)-1 {
			m.bitCursor++
		}
	case key.Matches(msg, k.ToggleBit):
		m.toggleSelectedBit()
	}
	return m, nil
}

func (m *WorkbenchModel) handleTabKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.activeTab().ID {
	case tabConversions:
		return m.handleConversionKeys(msg)
	case tabExplanation:
		return m.handleExplanationKeys(msg)
	case tabQuiz:
		return m.handleQuizKeys(msg)
	case tabLog:
		return m.handleLogKeys(msg)
	}
	return m, nil
}

func (m *WorkbenchModel) handleConversionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Left):
		if m.activeCardIdx > 0 {
			m.activeCardIdx--
		}
	case key.Matches(msg, k.Right):
		if m.activeCardIdx < len(m.cards)-1 {
			m.activeCardIdx++
		}
	case key.Matches(msg, k.Up):
		// Cards lay out two per row.
		if m.activeCardIdx >= 2 {
			m.activeCardIdx -= 2
		}
	case key.Matches(msg, k.Down):
		if m.activeCardIdx+2 < len(m.cards) {
			m.activeCardIdx += 2
		}
	case key.Matches(msg, k.Copy):
		return m, m.copyActiveCard()
	case key.Matches(msg, k.BaseUp):
		if bn := m.baseNCard(); bn != nil {
			bn.Adjust(1)
			m.logger.Info("custom base changed", zap.Int("base", bn.Base()))
		}
	case key.Matches(msg, k.BaseDown):
		if bn := m.baseNCard(); bn != nil {
			bn.Adjust(-1)
			m.logger.Info("custom base changed", zap.Int("base", bn.Base()))
		}
	}
	return m, nil
}

func (m *WorkbenchModel) handleExplanationKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Method):
		if m.method == MethodPowers {
			m.method = MethodDivision
		} else {
			m.method = MethodPowers
		}
		m.explainScroll = 0
		m.logger.Info("explanation method switched", zap.Int("method", int(m.method)))
	case key.Matches(msg, k.Up):
		if m.explainScroll > 0 {
			m.explainScroll--
		}
	case key.Matches(msg, k.Down):
		m.explainScroll++
		m.clampScrolls()
	}
	return m, nil
}

func (m *WorkbenchModel) handleQuizKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.NewQuestion) {
		m.startQuestion()
		return m, nil
	}
	return m, nil
}

func (m *WorkbenchModel) handleLogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.ClearLog):
		m.ring.Clear()
		m.logScroll = 0
		m.logger.Info("event log cleared")
	case key.Matches(msg, k.Up):
		m.logScroll++
		m.clampScrolls()
	case key.Matches(msg, k.Down):
		if m.logScroll > 0 {
			m.logScroll--
		}
	}
	return m, nil
}

// clampScrolls keeps scroll offsets inside their content bounds. Called from
// Update so View stays pure.
func (m *WorkbenchModel) clampScrolls() {
	visible := m.tabContentHeight()
	if visible < 1 {
		visible = 1
	}

	maxExplain := len(m.explanationLines()) - visible
	if maxExplain < 0 {
		maxExplain = 0
	}
	if m.explainScroll > maxExplain {
		m.explainScroll = maxExplain
	}

	maxLog := m.ring.Len() - visible
	if maxLog < 0 {
		maxLog = 0
	}
	if m.logScroll > maxLog {
		m.logScroll = maxLog
	}
}
