package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/pomodoro"
)

const progressWidth = 20

// Renderer formats engine state for a terminal. Colors are only emitted when
// the output supports them.
type Renderer struct {
	work   lipgloss.Style
	rest   lipgloss.Style
	clock  lipgloss.Style
	paused lipgloss.Style
	alert  lipgloss.Style
	muted  lipgloss.Style
}

// NewRenderer creates a renderer whose color profile is detected from out.
func NewRenderer(out io.Writer) *Renderer {
	renderer := lipgloss.NewRenderer(out)
	return &Renderer{
		work:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		rest:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		clock:  renderer.NewStyle().Bold(true),
		paused: renderer.NewStyle().Foreground(lipgloss.Color("244")),
		alert:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		muted:  renderer.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// Status renders a one-line summary such as
// "Focus 24:13 [#---...] 3% · 2 pomodoros".
func (renderer *Renderer) Status(snapshot pomodoro.Snapshot) string {
	label := renderer.rest
	if snapshot.Session == pomodoro.SessionWork {
		label = renderer.work
	}

	parts := []string{
		label.Render(snapshot.DisplayLabel()),
		renderer.clock.Render(snapshot.FormattedTime()),
		ProgressBar(snapshot.ProgressFraction(), progressWidth),
		fmt.Sprintf("%d%%", int(snapshot.ProgressFraction()*100)),
		renderer.muted.Render("· " + pomodoroCount(snapshot.CompletedWorkSessions)),
	}
	if !snapshot.Running {
		parts = append(parts, renderer.paused.Render("(paused)"))
	}
	return strings.Join(parts, " ")
}

// Completion renders the announcement printed when a session ends.
func (renderer *Renderer) Completion(completion pomodoro.Completion) string {
	return renderer.alert.Render(fmt.Sprintf("%s finished, next up: %s",
		completion.Finished.Name(), completion.Next.Label()))
}

// ProgressBar draws fraction as a bar of the given width.
func ProgressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func pomodoroCount(count int) string {
	if count == 1 {
		return "1 pomodoro"
	}
	return fmt.Sprintf("%d pomodoros", count)
}
