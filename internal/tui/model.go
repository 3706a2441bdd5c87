package tui

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/bitlearn/bitvis/internal/bits"
	"github.com/bitlearn/bitvis/internal/eventlog"
	"github.com/bitlearn/bitvis/internal/quiz"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Section represents the focusable workbench sections.
type Section int

const (
	SectionInput Section = iota // decimal input field
	SectionBits                 // bit strip
	SectionTab                  // active tab content
)

// ExplainMethod selects the explanation mode.
type ExplainMethod int

const (
	MethodPowers   ExplainMethod = iota // powers-of-two decomposition (default)
	MethodDivision                      // repeated division by two
)

// Tab identifiers.
const (
	tabConversions = "conversions"
	tabExplanation = "explanation"
	tabQuiz        = "quiz"
	tabLog         = "log"
)

// Tab is one content tab below the bit strip.
type Tab struct {
	ID    string
	Title string
}

// copyFlashExpiredMsg resets a card's "Copied!" badge after the flash delay.
// Purely cosmetic: it never touches conversion or quiz state.
type copyFlashExpiredMsg struct {
	cardID string
}

// InputState holds the decimal input field and its validation state.
type InputState struct {
	decimalInput textinput.Model
	inputErr     error // last parse/range error; nil while the input is valid
	manualMode   bool  // bit boxes editable, decimal input read-only
}

// BitState holds the current value and its derived 8-bit pattern.
type BitState struct {
	value     int
	pattern   bits.Pattern
	bitCursor int // selected bit strip index, 0 = MSB
}

// CardState holds the conversion cards and copy feedback.
type CardState struct {
	cards         []Card
	activeCardIdx int
	copiedCardID  string // card currently flashing "Copied!"
}

// ExplainState holds the explanation tab state.
type ExplainState struct {
	method        ExplainMethod
	explainScroll int
}

// QuizState holds the quiz generator, session, and answer input.
type QuizState struct {
	gen         *quiz.Generator
	session     *quiz.Session
	answerInput textinput.Model
}

// LogState holds the event log tab state.
type LogState struct {
	ring      *eventlog.Ring
	logScroll int
}

// Options configures a WorkbenchModel. Zero values get sensible defaults.
type Options struct {
	Base           int           // starting base for the Base-N card
	CopyFlash      time.Duration // how long a card's "Copied!" badge shows
	ManualStart    bool          // start in manual bit edit mode
	Ring           *eventlog.Ring
	Logger         *zap.Logger
	Rand           *rand.Rand         // quiz randomness; nil = time-seeded
	WriteClipboard func(string) error // nil = system clipboard
}

// WorkbenchModel is the main TUI model.
// Sub-state is organized into embedded structs for readability;
// Go's field promotion means m.fieldName access is unchanged.
type WorkbenchModel struct {
	InputState
	BitState
	CardState
	ExplainState
	QuizState
	LogState

	width  int
	height int

	activeSection Section
	tabs          []Tab
	activeTabIdx  int

	keys           KeyMap
	logger         *zap.Logger
	copyFlash      time.Duration
	writeClipboard func(string) error

	modalStack []Modal
	navRequest string // page ID to switch to, drained by WorkbenchPage
}

// NewWorkbenchModel creates the workbench with the initial value 0.
func NewWorkbenchModel(opts Options) *WorkbenchModel {
	if opts.Base == 0 {
		opts.Base = 10
	}
	if opts.CopyFlash == 0 {
		opts.CopyFlash = 1200 * time.Millisecond
	}
	if opts.Ring == nil {
		opts.Ring = eventlog.NewRing(256)
	}
	if opts.Logger == nil {
		opts.Logger = eventlog.Logger(opts.Ring)
	}
	if opts.WriteClipboard == nil {
		opts.WriteClipboard = clipboard.WriteAll
	}

	decimalInput := textinput.New()
	decimalInput.Placeholder = "Enter decimal (-128 to 255)"
	decimalInput.CharLimit = 5
	decimalInput.SetValue("0")

	answerInput := textinput.New()
	answerInput.Placeholder = "Enter your answer"
	answerInput.CharLimit = 5

	pattern, _ := bits.FromDecimal(0)

	m := &WorkbenchModel{
		InputState: InputState{
			decimalInput: decimalInput,
			manualMode:   opts.ManualStart,
		},
		BitState: BitState{
			pattern: pattern,
		},
		CardState: CardState{
			cards: defaultCards(opts.Base),
		},
		QuizState: QuizState{
			gen:         quiz.NewGenerator(opts.Rand),
			session:     quiz.NewSession(),
			answerInput: answerInput,
		},
		LogState: LogState{
			ring: opts.Ring,
		},

		tabs: []Tab{
			{ID: tabConversions, Title: "Base Conversions"},
			{ID: tabExplanation, Title: "Explanation"},
			{ID: tabQuiz, Title: "Quiz Mode"},
			{ID: tabLog, Title: "Event Log"},
		},

		keys:           DefaultKeyMap(),
		logger:         opts.Logger,
		copyFlash:      opts.CopyFlash,
		writeClipboard: opts.WriteClipboard,
	}

	if m.manualMode {
		m.activeSection = SectionBits
	} else {
		m.decimalInput.Focus()
	}

	m.logger.Info("workbench ready")
	return m
}

// Init starts the cursor blink for the focused input.
func (m *WorkbenchModel) Init() tea.Cmd {
	return textinput.Blink
}

// applyDecimalInput revalidates the decimal input text. Valid input updates
// the value and pattern; parse and range errors are signaled and leave the
// previous state untouched.
func (m *WorkbenchModel) applyDecimalInput(text string) {
	v, err := bits.ParseDecimal(text)
	if err != nil {
		m.inputErr = err
		m.logger.Warn("invalid decimal input", zap.String("text", text), zap.Error(err))
		return
	}

	m.inputErr = nil
	m.setValue(v)
	m.logger.Info("decimal input changed", zap.Int("value", v))
}

// setValue updates the current value and re-derives the bit pattern.
func (m *WorkbenchModel) setValue(v int) {
	pattern, err := bits.FromDecimal(v)
	if err != nil {
		m.logger.Error("value out of range", zap.Int("value", v), zap.Error(err))
		return
	}
	m.value = v
	m.pattern = pattern
	m.explainScroll = 0
}

// syncInputToValue writes the current value back into the decimal field,
// e.g. after a manual bit toggle or sign inversion.
func (m *WorkbenchModel) syncInputToValue() {
	m.decimalInput.SetValue(strconv.Itoa(m.value))
	m.inputErr = nil
}

// toggleSelectedBit flips the bit under the cursor and re-derives the decimal
// value from the new pattern. Only available in manual mode.
func (m *WorkbenchModel) toggleSelectedBit() {
	if !m.manualMode {
		m.logger.Warn("bit toggle ignored, manual mode off")
		return
	}

	power := m.pattern[m.bitCursor].Power
	m.pattern = m.pattern.Toggle(power)
	m.value = m.pattern.Decimal()
	m.syncInputToValue()
	m.explainScroll = 0
	m.logger.Info("bit toggled", zap.Int("power", power), zap.Int("value", m.value))
}

// setManualMode switches manual bit editing on or off. Manual mode makes the
// decimal input read-only and moves focus to the bit strip.
func (m *WorkbenchModel) setManualMode(on bool) {
	m.manualMode = on
	if on {
		m.decimalInput.Blur()
		if m.activeSection == SectionInput {
			m.activeSection = SectionBits
		}
		m.logger.Info("manual mode enabled")
	} else {
		m.logger.Info("manual mode disabled")
	}
}

// invertSign flips the sign of the current value via two's complement.
// Rejected while the input is invalid and for -128 (whose negation is not
// representable); the current state stays untouched.
func (m *WorkbenchModel) invertSign() {
	if m.inputErr != nil {
		m.logger.Warn("cannot invert invalid input")
		return
	}

	inverted, err := bits.Invert(m.value)
	if err != nil {
		m.logger.Warn("invert rejected", zap.Int("value", m.value), zap.Error(err))
		return
	}

	before := m.value
	m.setValue(inverted)
	m.syncInputToValue()
	m.logger.Info("sign inverted", zap.Int("from", before), zap.Int("to", inverted))
}

// copyActiveCard writes the selected card's value to the clipboard and
// schedules the badge reset. The scheduled message is a no-op on state.
func (m *WorkbenchModel) copyActiveCard() tea.Cmd {
	if m.activeCardIdx >= len(m.cards) {
		return nil
	}
	card := m.cards[m.activeCardIdx]
	text := card.Value(m.pattern.Unsigned())

	if err := m.writeClipboard(text); err != nil {
		m.logger.Error("clipboard write failed", zap.Error(err))
		return nil
	}

	m.copiedCardID = card.ID()
	m.logger.Info("copied to clipboard", zap.String("card", card.ID()), zap.String("text", text))

	id := card.ID()
	return tea.Tick(m.copyFlash, func(time.Time) tea.Msg {
		return copyFlashExpiredMsg{cardID: id}
	})
}

// startQuestion asks a fresh random question, replacing any outstanding one.
func (m *WorkbenchModel) startQuestion() {
	q := m.gen.Question()
	m.session.Ask(q)
	m.answerInput.SetValue("")
	m.answerInput.Focus()
	m.logger.Info("quiz question asked", zap.String("prompt", q.Prompt))
}

// submitAnswer checks the answer text. Unparsable answers do not consume an
// attempt; counted submissions show the result modal.
func (m *WorkbenchModel) submitAnswer() {
	res, err := m.session.Submit(m.answerInput.Value())
	if err != nil {
		m.logger.Warn("quiz answer rejected", zap.Error(err))
		return
	}

	m.answerInput.SetValue("")
	m.answerInput.Blur()
	m.PushModal(newResultModal(res))
	m.logger.Info("quiz answer scored",
		zap.Bool("correct", res.Correct),
		zap.Int("given", res.Given),
		zap.Int("answer", res.Question.Answer),
		zap.String("score", res.Score.String()),
	)
}

func (m *WorkbenchModel) activeTab() Tab {
	return m.tabs[m.activeTabIdx]
}

func (m *WorkbenchModel) nextTab() {
	m.activeTabIdx = (m.activeTabIdx + 1) % len(m.tabs)
}

func (m *WorkbenchModel) prevTab() {
	m.activeTabIdx = (m.activeTabIdx - 1 + len(m.tabs)) % len(m.tabs)
}

func (m *WorkbenchModel) nextSection() {
	m.activeSection = m.shiftSection(1)
	m.syncFocus()
}

func (m *WorkbenchModel) prevSection() {
	m.activeSection = m.shiftSection(-1)
	m.syncFocus()
}

// shiftSection steps through the focusable sections in either direction.
// The decimal input is skipped while manual mode makes it read-only, so the
// cycle stays a two-stop loop instead of bouncing back off the input.
func (m *WorkbenchModel) shiftSection(delta int) Section {
	s := (int(m.activeSection) + delta + 3) % 3
	if Section(s) == SectionInput && m.manualMode {
		s = (s + delta + 3) % 3
	}
	return Section(s)
}

// syncFocus keeps textinput focus in line with the active section. The
// decimal input is never focused in manual mode.
func (m *WorkbenchModel) syncFocus() {
	if m.activeSection == SectionInput && m.manualMode {
		m.activeSection = SectionBits
	}

	if m.activeSection == SectionInput {
		m.decimalInput.Focus()
	} else {
		m.decimalInput.Blur()
	}

	if m.activeSection == SectionTab && m.activeTab().ID == tabQuiz {
		if _, ok := m.session.Current(); ok {
			m.answerInput.Focus()
			return
		}
	}
	m.answerInput.Blur()
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *WorkbenchModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *WorkbenchModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *WorkbenchModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *WorkbenchModel) HasModal() bool {
	return len(m.modalStack) > 0
}

// takeNav returns and clears the pending page switch request.
func (m *WorkbenchModel) takeNav() string {
	id := m.navRequest
	m.navRequest = ""
	return id
}

// WorkbenchPage adapts WorkbenchModel to the Page interface.
type WorkbenchPage struct {
	Model *WorkbenchModel
}

// NewWorkbenchPage wraps a WorkbenchModel as a Page.
func NewWorkbenchPage(m *WorkbenchModel) *WorkbenchPage {
	return &WorkbenchPage{Model: m}
}

func (p *WorkbenchPage) ID() string { return "workbench" }

func (p *WorkbenchPage) Init() tea.Cmd {
	return p.Model.Init()
}

func (p *WorkbenchPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.Model.Update(msg)
	if id := p.Model.takeNav(); id != "" {
		return cmd, &PageNav{PageID: id}
	}
	return cmd, nil
}

func (p *WorkbenchPage) View(width, height int) string {
	p.Model.width = width
	p.Model.height = height
	return p.Model.View()
}
