package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/springlab/internal/material"
)

const historyCapacity = 600

// TickMsg drives the live decay animation.
type TickMsg time.Time

// Watch animates the spring constant decaying over time at an
// adjustable temperature.
type Watch struct {
	model    *material.Model
	temp     float64
	t        float64
	dt       float64
	duration float64
	fps      int
	history  []float64
	current  material.Result
	running  bool
	err      error
}

func NewWatch(m *material.Model, temp, duration float64, fps int) Watch {
	if fps <= 0 {
		fps = 30
	}
	return Watch{
		model:    m,
		temp:     temp,
		dt:       duration / float64(fps) / 10,
		duration: duration,
		fps:      fps,
		history:  make([]float64, 0, historyCapacity),
		running:  true,
	}
}

func (w Watch) Init() tea.Cmd {
	return w.tick()
}

func (w Watch) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(w.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (w Watch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return w, tea.Quit
		case " ":
			w.running = !w.running
		case "r":
			w.t = 0
			w.history = w.history[:0]
			w.err = nil
			w.running = true
		case "up":
			w.setTemperature(w.temp + 5)
		case "down":
			w.setTemperature(w.temp - 5)
		}
		return w, nil

	case TickMsg:
		if w.running && w.t <= w.duration && w.err == nil {
			r, err := w.model.Evaluate(w.temp, w.t)
			if err != nil {
				w.err = err
				w.running = false
			} else {
				w.current = r
				w.history = append(w.history, r.K)
				if len(w.history) > historyCapacity {
					w.history = w.history[1:]
				}
				w.t += w.dt
			}
		}
		return w, w.tick()
	}
	return w, nil
}

// setTemperature restarts the trace; mixing samples from two
// temperatures in one curve would be misleading.
func (w *Watch) setTemperature(temp float64) {
	if temp <= w.model.MinTemperature() {
		return
	}
	w.temp = temp
	w.t = 0
	w.history = w.history[:0]
	w.err = nil
	w.running = true
}

func (w Watch) View() string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render("spring constant decay"))
	sb.WriteString("\n")

	if len(w.history) > 1 {
		graph := asciigraph.Plot(w.history,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
		)
		sb.WriteString(GraphStyle.Render(graph))
		sb.WriteString("\n")
	}

	rows := []struct {
		label string
		value string
	}{
		{"temperature", fmt.Sprintf("%.1f C", w.temp)},
		{"elapsed", fmt.Sprintf("%.2f s", w.t)},
		{"modulus", fmt.Sprintf("%.4g Pa", w.current.E)},
		{"spring k", fmt.Sprintf("%.4g N/m", w.current.K)},
	}
	for _, row := range rows {
		sb.WriteString(LabelStyle.Render(row.label))
		sb.WriteString(ValueStyle.Render(row.value))
		sb.WriteString("\n")
	}

	if w.err != nil {
		sb.WriteString(ValueStyle.Render(w.err.Error()))
		sb.WriteString("\n")
	}

	status := "running"
	if !w.running {
		status = "paused"
	}
	if w.t > w.duration {
		status = "done"
	}
	sb.WriteString(HelpStyle.Render(fmt.Sprintf("[%s]  space pause · r reset · up/down temperature · q quit", status)))
	sb.WriteString("\n")

	return sb.String()
}

// RunWatch starts the live view and blocks until the user quits.
func RunWatch(m *material.Model, temp, duration float64, fps int) error {
	p := tea.NewProgram(NewWatch(m, temp, duration, fps))
	_, err := p.Run()
	return err
}
