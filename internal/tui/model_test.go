package tui

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bitlearn/bitvis/internal/eventlog"
)

// fakeClipboard captures copied text instead of touching the system clipboard.
type fakeClipboard struct {
	text  string
	calls int
	err   error
}

func (f *fakeClipboard) write(s string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.text = s
	return nil
}

func newTestModel() (*WorkbenchModel, *fakeClipboard) {
	clip := &fakeClipboard{}
	m := NewWorkbenchModel(Options{
		Ring:           eventlog.NewRing(64),
		Rand:           rand.New(rand.NewSource(1)),
		WriteClipboard: clip.write,
	})
	m.width = 100
	m.height = 40
	return m, clip
}

func TestNewWorkbenchModel_Defaults(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()

	if got := m.value; got != 0 {
		t.Fatalf("initial value = %d, want 0", got)
	}
	if got := m.pattern.String(); got != "00000000" {
		t.Fatalf("initial pattern = %q, want 00000000", got)
	}
	if got := m.decimalInput.Value(); got != "0" {
		t.Fatalf("initial input = %q, want \"0\"", got)
	}
	if got := len(m.tabs); got != 4 {
		t.Fatalf("tab count = %d, want 4", got)
	}
	if got := len(m.cards); got != 4 {
		t.Fatalf("card count = %d, want 4", got)
	}
	if !m.decimalInput.Focused() {
		t.Fatal("decimal input not focused at start")
	}
}

func TestApplyDecimalInput_ValidUpdatesPattern(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()

	m.applyDecimalInput("200")

	if got := m.value; got != 200 {
		t.Fatalf("value = %d, want 200", got)
	}
	if got := m.pattern.String(); got != "11001000" {
		t.Fatalf("pattern = %q, want 11001000", got)
	}
	if m.inputErr != nil {
		t.Fatalf("input error = %v, want nil", m.inputErr)
	}
}

func TestApplyDecimalInput_OutOfRangeKeepsState(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()
	m.applyDecimalInput("42")

	m.applyDecimalInput("300")

	if m.inputErr == nil {
		t.Fatal("expected range error for 300")
	}
	if got := m.value; got != 42 {
		t.Fatalf("value = %d, want previous 42", got)
	}
	if got := m.pattern.String(); got != "00101010" {
		t.Fatalf("pattern = %q, want unchanged 00101010", got)
	}
}

func TestApplyDecimalInput_GarbageKeepsState(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()
	m.applyDecimalInput("-1")

	m.applyDecimalInput("abc")

	if m.inputErr == nil {
		t.Fatal("expected parse error for abc")
	}
	if got := m.value; got != -1 {
		t.Fatalf("value = %d, want previous -1", got)
	}
}

func TestToggleSelectedBit_RequiresManualMode(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()

	m.bitCursor = 0
	m.toggleSelectedBit()

	if got := m.value; got != 0 {
		t.Fatalf("value = %d, want 0 while manual mode off", got)
	}
}

func TestToggleSelectedBit_UpdatesValueAndInput(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()
	m.setManualMode(true)

	m.bitCursor = 0 // MSB, power 7
	m.toggleSelectedBit()

	if got := m.value; got != -128 {
		t.Fatalf("value after MSB toggle = %d, want -128", got)
	}
	if got := m.decimalInput.Value(); got != "-128" {
		t.Fatalf("input text = %q, want -128", got)
	}

	m.bitCursor = 7 // LSB, power 0
	m.toggleSelectedBit()

	if got := m.value; got != -127 {
		t.Fatalf("value after LSB toggle = %d, want -127", got)
	}
	if got := m.pattern.String(); got != "10000001" {
		t.Fatalf("pattern = %q, want 10000001", got)
	}
}

func TestInvertSign_RoundTrips(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()
	m.applyDecimalInput("56")

	m.invertSign()
	if got := m.value; got != -56 {
		t.Fatalf("value = %d, want -56", got)
	}
	if got := m.decimalInput.Value(); got != "-56" {
		t.Fatalf("input text = %q, want -56", got)
	}

	m.invertSign()
	if got := m.value; got != 56 {
		t.Fatalf("value = %d, want 56 after double invert", got)
	}
}

func TestInvertSign_MinValueRejected(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()
	m.applyDecimalInput("-128")

	m.invertSign()

	if got := m.value; got != -128 {
		t.Fatalf("value = %d, want -128 (inversion of -128 must be rejected)", got)
	}
}

func TestInvertSign_IgnoredWhileInputInvalid(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()
	m.applyDecimalInput("17")
	m.applyDecimalInput("oops")

	m.invertSign()

	if got := m.value; got != 17 {
		t.Fatalf("value = %d, want 17 untouched", got)
	}
}

func TestCopyActiveCard_FlashAndExpiry(t *testing.T) {
	t.Parallel()

	m, clip := newTestModel()
	m.applyDecimalInput("200")
	m.activeCardIdx = 2 // hex card

	cmd := m.copyActiveCard()
	if cmd == nil {
		t.Fatal("copy returned no expiry command")
	}
	if got := clip.text; got != "c8" {
		t.Fatalf("clipboard = %q, want c8", got)
	}
	if got := m.copiedCardID; got != "hex" {
		t.Fatalf("copied card = %q, want hex", got)
	}

	// The flash expiry is cosmetic only.
	before := m.value
	m.Update(copyFlashExpiredMsg{cardID: "hex"})
	if got := m.copiedCardID; got != "" {
		t.Fatalf("badge still set after expiry: %q", got)
	}
	if got := m.value; got != before {
		t.Fatalf("value changed by flash expiry: %d", got)
	}
}

func TestCopyActiveCard_StaleExpiryKeepsNewBadge(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()
	m.activeCardIdx = 0
	m.copyActiveCard()
	m.activeCardIdx = 1
	m.copyActiveCard()

	m.Update(copyFlashExpiredMsg{cardID: "binary"})

	if got := m.copiedCardID; got != "octal" {
		t.Fatalf("badge = %q, want octal to survive stale expiry", got)
	}
}

func TestCopyActiveCard_ClipboardFailure(t *testing.T) {
	t.Parallel()

	m, clip := newTestModel()
	clip.err = errFake

	if cmd := m.copyActiveCard(); cmd != nil {
		t.Fatal("expected no expiry command on clipboard failure")
	}
	if got := m.copiedCardID; got != "" {
		t.Fatalf("badge = %q, want none on failure", got)
	}
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "fake clipboard failure" }

func TestQuizSubmit_PushesResultModal(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()
	m.startQuestion()

	q, ok := m.session.Current()
	if !ok {
		t.Fatal("no outstanding question after startQuestion")
	}

	m.answerInput.SetValue(strconv.Itoa(q.Answer))
	m.submitAnswer()

	if !m.HasModal() {
		t.Fatal("expected result modal after submission")
	}
	if got := m.session.Score().String(); got != "1/1" {
		t.Fatalf("score = %q, want 1/1", got)
	}
	if _, ok := m.session.Current(); ok {
		t.Fatal("question still outstanding after counted submission")
	}
}

func TestQuizSubmit_UnparsableDoesNotConsume(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()
	m.startQuestion()

	m.answerInput.SetValue("twelve")
	m.submitAnswer()

	if m.HasModal() {
		t.Fatal("unparsable answer must not show a result modal")
	}
	if got := m.session.Score().Total; got != 0 {
		t.Fatalf("total = %d, want 0 after unparsable answer", got)
	}
	if _, ok := m.session.Current(); !ok {
		t.Fatal("question consumed by unparsable answer")
	}
}

func TestPushModal_DedupesByID(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()

	m.PushModal(newHelpModal())
	m.PushModal(newHelpModal())

	if got := len(m.modalStack); got != 1 {
		t.Fatalf("modal stack depth = %d, want 1", got)
	}
}

func TestSyncFocus_ManualModeSkipsInput(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel()
	m.setManualMode(true)

	m.activeSection = SectionInput
	m.syncFocus()

	if got := m.activeSection; got != SectionBits {
		t.Fatalf("section = %d, want bits while manual mode on", got)
	}
	if m.decimalInput.Focused() {
		t.Fatal("decimal input focused in manual mode")
	}
}

func TestCopyFlashDuration_Configurable(t *testing.T) {
	t.Parallel()

	m := NewWorkbenchModel(Options{
		CopyFlash:      50 * time.Millisecond,
		Ring:           eventlog.NewRing(8),
		WriteClipboard: func(string) error { return nil },
	})

	if got := m.copyFlash; got != 50*time.Millisecond {
		t.Fatalf("copy flash = %v, want 50ms", got)
	}
}

var _ tea.Model = (*WorkbenchModel)(nil)
