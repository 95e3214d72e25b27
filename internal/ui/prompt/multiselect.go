package prompt

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/gw/internal/ui/styles"
)

// MultiSelectResult holds the result of a multi-selection prompt.
type MultiSelectResult struct {
	Values    []string
	Cancelled bool
}

type multiSelectModel struct {
	prompt    string
	options   []string
	cursor    int
	selected  map[int]bool
	done      bool
	cancelled bool
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "space":
		m.selected[m.cursor] = !m.selected[m.cursor]
	case "a":
		for i := range m.options {
			m.selected[i] = true
		}
	case "n":
		m.selected = make(map[int]bool)
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m multiSelectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(styles.Render(styles.Bold, m.prompt))
	b.WriteString("\n")

	for i, opt := range m.options {
		checkbox := "[ ]"
		if m.selected[i] {
			checkbox = "[x]"
		}
		line := fmt.Sprintf("  %s %s", checkbox, opt)
		if i == m.cursor {
			line = styles.Render(styles.WorkingStyle, "> "+line[2:])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	count := 0
	for _, on := range m.selected {
		if on {
			count++
		}
	}
	footer := fmt.Sprintf("%d/%d selected · space toggle · a all · n none · enter confirm · q cancel",
		count, len(m.options))
	b.WriteString(styles.Render(styles.MutedStyle, footer))

	return tea.NewView(b.String())
}

// values returns the selected options in list order.
func (m multiSelectModel) values() []string {
	var out []string
	for i, opt := range m.options {
		if m.selected[i] {
			out = append(out, opt)
		}
	}
	return out
}

// MultiSelect shows a multi-selection prompt. When preselectAll is
// true every option starts selected.
func MultiSelect(prompt string, options []string, preselectAll bool) (MultiSelectResult, error) {
	if len(options) == 0 {
		return MultiSelectResult{Cancelled: true}, nil
	}

	selected := make(map[int]bool, len(options))
	if preselectAll {
		for i := range options {
			selected[i] = true
		}
	}

	model := multiSelectModel{
		prompt:   prompt,
		options:  options,
		selected: selected,
	}
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return MultiSelectResult{}, err
	}
	m := finalModel.(multiSelectModel)

	if m.cancelled {
		return MultiSelectResult{Cancelled: true}, nil
	}
	return MultiSelectResult{Values: m.values()}, nil
}
