// Package tui is the interactive single-stepper: registers, the program
// listing around the pc, the output tape, and the instruction history,
// with step and run keys.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ezrec/dm32/cpu"
	"github.com/ezrec/dm32/emulator"
)

const (
	listWindow = 14   // Listing rows shown around the pc.
	tapeWindow = 12   // Output tape rows kept on screen.
	histWindow = 12   // History rows kept on screen.
	runBurst   = 4096 // Steps per press of the run key.
)

type model struct {
	emu *emulator.Emulator

	output  *bytes.Buffer
	history *[]string
	done    bool
	fault   error
}

// InitialModel wraps a loaded emulator. The output tape is redirected
// into the tape pane; the input tape stays wherever the caller pointed
// it. The history pane feeds off the CPU's step listener, so it shows
// every fetched instruction as the CPU saw it.
func InitialModel(emu *emulator.Emulator) model {
	output := &bytes.Buffer{}
	emu.Tape.Output = output

	history := &[]string{}
	emu.Cpu.Subscribe(func(event cpu.StepEvent) {
		*history = append(*history, fmt.Sprintf("%4d  %v", event.Addr, event.Instr))
	})

	return model{
		emu:     emu,
		output:  output,
		history: history,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s":
			m.step()
		case "r":
			for range runBurst {
				if m.done || m.fault != nil {
					break
				}
				m.step()
			}
		}
	}
	return m, nil
}

func (m *model) step() {
	if m.done || m.fault != nil {
		return
	}

	done, err := m.emu.Step()
	if err != nil {
		m.fault = err
		return
	}
	m.done = done
}

func (m model) buildRegisterState() string {
	var stateBuilder strings.Builder
	for n, reg := range m.emu.Cpu.Bank {
		fmt.Fprintf(&stateBuilder, "%-3s %11d\n", fmt.Sprintf("r%d", n), reg.Get())
	}
	fmt.Fprintf(&stateBuilder, "flags: %v", m.emu.Cpu.Flags)
	return stateBuilder.String()
}

func (m model) buildListing() string {
	var stateBuilder strings.Builder

	lines := m.emu.Program.Lines
	pc := m.emu.Pc()

	at := 0
	for n, line := range lines {
		if line.Addr == pc {
			at = n
			break
		}
	}

	first := at - listWindow/2
	if first > len(lines)-listWindow {
		first = len(lines) - listWindow
	}
	if first < 0 {
		first = 0
	}

	for n := first; n < len(lines) && n < first+listWindow; n++ {
		line := lines[n]
		row := fmt.Sprintf("%4d  0x%08x  %s", line.Addr, line.Word, strings.TrimSpace(line.Text))
		if line.Addr == pc {
			row = pcStyle.Render("-> " + row)
		} else {
			row = "   " + row
		}
		stateBuilder.WriteString(row + "\n")
	}

	return stateBuilder.String()
}

func (m model) buildHistory() string {
	history := *m.history
	if len(history) > histWindow {
		history = history[len(history)-histWindow:]
	}

	var stateBuilder strings.Builder
	for i, text := range history {
		if i != len(history)-1 {
			fmt.Fprintf(&stateBuilder, "   %s\n", text)
		} else {
			fmt.Fprintf(&stateBuilder, "*  %s\n", text)
		}
	}
	return stateBuilder.String()
}

func (m model) buildTapeState() string {
	lines := strings.Split(strings.TrimRight(m.output.String(), "\n"), "\n")
	if len(lines) > tapeWindow {
		lines = lines[len(lines)-tapeWindow:]
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	switch {
	case m.fault != nil:
		return faultStyle.Render(m.fault.Error())
	case m.done:
		return pcStyle.Render("halted")
	}
	return fmt.Sprintf("pc %d  steps %d", m.emu.Pc(), m.emu.Cpu.Steps)
}

func (m model) View() string {
	titleContent := titleStyle.
		Foreground(lipgloss.Color("20")).
		Align(lipgloss.Left).
		Height(1).
		Render("DM32 - tape machine stepper")

	regContent := titleStyle.Render("Registers") + "\n" + boxStyle.Width(20).Render(m.buildRegisterState())
	listContent := titleStyle.Render("Program") + "\n" + boxStyle.Width(48).Render(m.buildListing())
	tapeContent := titleStyle.Render("Output Tape") + "\n" + boxStyle.Width(16).Render(m.buildTapeState())

	histContent := titleStyle.Render("History") + "\n" + boxStyle.Width(48).Render(m.buildHistory())
	cmd := titleStyle.Render("Commands") + "\n" + boxStyle.Width(20).Render("(q)uit \n(s)tep \n(r)un")

	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, regContent, listContent, tapeContent)
	footArea := lipgloss.JoinHorizontal(lipgloss.Top, cmd, histContent)

	fullScreen := lipgloss.JoinVertical(lipgloss.Left, titleContent, mainArea, m.status(), footArea)

	return lipgloss.Place(100, 40, lipgloss.Center, lipgloss.Center, fullScreen)
}

// StartUI runs the stepper until the user quits.
func StartUI(emu *emulator.Emulator) (err error) {
	p := tea.NewProgram(InitialModel(emu), tea.WithAltScreen())
	_, err = p.Run()
	return
}
