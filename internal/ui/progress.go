// Package ui renders live progress for directory runs with Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tungsten/internal/driver"
)

// fileState is where one file is in the pipeline; later states never go back.
type fileState uint8

const (
	stateQueued fileState = iota
	stateLoading
	stateLexing
	stateDone
	stateCached
	stateFailed
)

var (
	stateLabels = [...]string{"queued", "loading", "lexing", "done", "cached", "error"}
	// доля файла, засчитываемая в общий прогресс
	stateWeight = [...]float64{0, 0.1, 0.5, 1, 1, 1}

	grey  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	cyan  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	green = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	red   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	stateStyles = [...]lipgloss.Style{grey, cyan, cyan, green, green, red}
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
)

func (s fileState) String() string { return stateLabels[s] }

func (s fileState) finished() bool { return s >= stateDone }

// stateOf maps a driver event to a row state; ok is false for events that do
// not change the row.
func stateOf(ev driver.ProgressEvent) (fileState, bool) {
	switch ev.Status {
	case driver.StatusQueued:
		return stateQueued, true
	case driver.StatusError:
		return stateFailed, true
	case driver.StatusDone:
		if ev.Stage == driver.StageCache {
			return stateCached, true
		}
		return stateDone, true
	case driver.StatusWorking:
		switch ev.Stage {
		case driver.StageLoad:
			return stateLoading, true
		case driver.StageLex:
			return stateLexing, true
		}
	}
	return stateQueued, false
}

type fileRow struct {
	path    string
	state   fileState
	elapsed time.Duration
}

type progressModel struct {
	title   string
	events  <-chan driver.ProgressEvent
	spinner spinner.Model
	bar     progress.Model
	rows    []fileRow
	byPath  map[string]int
	width   int
	done    bool
}

type eventMsg driver.ProgressEvent
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model with one row per file. It quits
// when events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.ProgressEvent) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cyan

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		rows:    make([]fileRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.rows[i] = fileRow{path: f}
		m.byPath[f] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.ProgressEvent(msg)), m.waitEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		next, cmd := m.bar.Update(msg)
		m.bar = next.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) waitEvent() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) apply(ev driver.ProgressEvent) tea.Cmd {
	idx, known := m.byPath[ev.File]
	state, ok := stateOf(ev)
	if !known || !ok {
		return nil
	}
	row := &m.rows[idx]
	if row.state.finished() {
		return nil
	}
	row.state = state
	row.elapsed = ev.Elapsed
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range m.rows {
		sum += stateWeight[r.state]
	}
	return sum / float64(len(m.rows))
}

func (m *progressModel) counts() (done, cached, failed int) {
	for _, r := range m.rows {
		switch r.state {
		case stateDone:
			done++
		case stateCached:
			cached++
		case stateFailed:
			failed++
		}
	}
	return done, cached, failed
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	if m.done {
		b.WriteString(titleStyle.Render("done: " + m.title))
	} else {
		b.WriteString(m.spinner.View() + " " + titleStyle.Render(m.title))
	}
	b.WriteString("\n\n")

	nameWidth := max(m.width-30, 20)
	for _, r := range m.rows {
		fmt.Fprintf(&b, "  %s %s", stateStyles[r.state].Render(fmt.Sprintf("%8s", r.state)), truncate(r.path, nameWidth))
		if r.state.finished() && r.elapsed > 0 {
			b.WriteString(grey.Render(fmt.Sprintf("  %.1fms", float64(r.elapsed)/float64(time.Millisecond))))
		}
		b.WriteByte('\n')
	}

	done, cached, failed := m.counts()
	fmt.Fprintf(&b, "\n  %d files: %d done, %d cached, %d failed\n", len(m.rows), done, cached, failed)
	if m.done {
		b.WriteString(m.bar.ViewAs(1.0))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	return b.String()
}

// truncate shortens value to width terminal cells; the "..." tail counts
// toward the width.
func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	default:
		return runewidth.Truncate(value, width, "...")
	}
}
