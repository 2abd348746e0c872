package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yasu691/fragmenta/internal/model"
)

// AutoSaveDelay is how long typing must pause before the draft is saved.
const AutoSaveDelay = time.Second

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// DraftStore is what the compose screen reads and autosaves.
type DraftStore interface {
	GetDraft() (*model.Draft, error)
	SaveDraft(content string) (*model.Draft, error)
	GetSettings() (model.AppSettings, error)
}

// SubmitFunc commits a note.
type SubmitFunc func(ctx context.Context, text string, tags model.TagSelection) (model.HistoryEntry, error)

// ComposeModel is the note editor. Edits are saved to the draft slot after
// AutoSaveDelay of inactivity when auto-save is enabled; ctrl+s submits.
type ComposeModel struct {
	textarea textarea.Model
	store    DraftStore
	submit   SubmitFunc
	tags     model.TagSelection
	autoSave bool
	delay    time.Duration

	// edits counts changes; an autosave tick only fires for the latest one
	edits      int
	savedEdits int

	submitting bool
	status     string

	// Entry is set once the note has been submitted
	Entry *model.HistoryEntry

	// Err is the last submission error
	Err error
}

type autoSaveMsg struct{ edit int }

type draftSavedMsg struct {
	edit  int
	draft *model.Draft
}

type draftErrMsg struct{ err error }

type submittedMsg struct{ entry model.HistoryEntry }

type submitErrMsg struct{ err error }

// NewComposeModel opens the editor with the saved draft, if any.
func NewComposeModel(st DraftStore, submit SubmitFunc, tags model.TagSelection) (*ComposeModel, error) {
	settings, err := st.GetSettings()
	if err != nil {
		return nil, err
	}

	draft, err := st.GetDraft()
	if err != nil {
		return nil, err
	}

	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(12)
	ta.Focus()

	m := &ComposeModel{
		textarea: ta,
		store:    st,
		submit:   submit,
		tags:     tags,
		autoSave: settings.AutoSaveDraft,
		delay:    AutoSaveDelay,
	}

	if draft != nil {
		m.textarea.SetValue(draft.Content)
		m.status = fmt.Sprintf("draft restored (saved %s)", draft.SavedAt.Local().Format(time.DateTime))
	}

	return m, nil
}

// Value returns the text being edited.
func (m *ComposeModel) Value() string {
	return m.textarea.Value()
}

func (m *ComposeModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case autoSaveMsg:
		// a successful submit clears the draft; a late tick must not bring it back
		if m.submitting || m.Entry != nil {
			return m, nil
		}

		if msg.edit != m.edits || msg.edit == m.savedEdits {
			return m, nil
		}

		return m, m.saveDraft(msg.edit, m.textarea.Value())

	case draftSavedMsg:
		if msg.edit > m.savedEdits {
			m.savedEdits = msg.edit
		}

		m.status = "draft saved " + msg.draft.SavedAt.Local().Format(time.TimeOnly)

		return m, nil

	case draftErrMsg:
		m.status = "draft not saved: " + msg.err.Error()
		return m, nil

	case submittedMsg:
		m.submitting = false
		m.Entry = &msg.entry
		m.Err = nil

		return m, tea.Quit

	case submitErrMsg:
		m.submitting = false
		m.Err = msg.err
		m.status = ""

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.flushDraft()
			return m, tea.Quit

		case "ctrl+s":
			if m.submitting {
				return m, nil
			}

			m.submitting = true
			m.Err = nil
			m.status = "submitting..."

			return m, m.submitNote(m.textarea.Value())
		}
	}

	if m.submitting {
		return m, nil
	}

	before := m.textarea.Value()

	var cmd tea.Cmd

	m.textarea, cmd = m.textarea.Update(msg)

	if m.textarea.Value() != before {
		m.edits++

		if m.autoSave {
			edit := m.edits
			cmd = tea.Batch(cmd, tea.Tick(m.delay, func(time.Time) tea.Msg {
				return autoSaveMsg{edit: edit}
			}))
		}
	}

	return m, cmd
}

func (m *ComposeModel) View() string {
	if m.Entry != nil {
		return successStyle.Render(fmt.Sprintf("\n  ✓ Submitted %s\n  %s\n\n", m.Entry.FileName, m.Entry.URL))
	}

	var sb strings.Builder

	sb.WriteString(headerStyle.Render("New note") + "\n")

	if tags := m.tags.Values(); len(tags) > 0 {
		sb.WriteString(blurredStyle.Render("tags: ") + tagStyle.Render(strings.Join(tags, ", ")) + "\n")
	}

	sb.WriteString("\n" + m.textarea.View() + "\n\n")

	if m.Err != nil {
		sb.WriteString(errorStyle.Render(fmt.Sprintf("  ✗ %v", m.Err)) + "\n")
		sb.WriteString(blurredStyle.Render("  your text is kept; ctrl+s to try again") + "\n")
	} else if m.status != "" {
		sb.WriteString(blurredStyle.Render("  "+m.status) + "\n")
	}

	sb.WriteString(blurredStyle.Render(" ctrl+s: submit • esc: quit"))

	return sb.String()
}

// flushDraft saves pending edits before the screen closes.
func (m *ComposeModel) flushDraft() {
	if !m.autoSave || m.edits == m.savedEdits || m.Entry != nil {
		return
	}

	if _, err := m.store.SaveDraft(m.textarea.Value()); err == nil {
		m.savedEdits = m.edits
	}
}

func (m *ComposeModel) saveDraft(edit int, content string) tea.Cmd {
	return func() tea.Msg {
		draft, err := m.store.SaveDraft(content)
		if err != nil {
			return draftErrMsg{err}
		}

		return draftSavedMsg{edit: edit, draft: draft}
	}
}

func (m *ComposeModel) submitNote(text string) tea.Cmd {
	tags := m.tags

	return func() tea.Msg {
		entry, err := m.submit(context.Background(), text, tags)
		if err != nil {
			return submitErrMsg{err}
		}

		return submittedMsg{entry}
	}
}

// RunCompose runs the editor until it is closed and returns the final model.
func RunCompose(m *ComposeModel) (*ComposeModel, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, err
	}

	return final.(*ComposeModel), nil
}
