package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/dm32/emulator"
)

func loadModel(t *testing.T, program ...string) model {
	assert := assert.New(t)

	emu := emulator.NewEmulator(emulator.Config{})
	emu.Tape.Input = strings.NewReader("")

	err := emu.LoadSource(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	return InitialModel(emu)
}

func TestModelStep(t *testing.T) {
	assert := assert.New(t)

	m := loadModel(t,
		"LOAD r1,count",
		"LOAD r5,outaddr",
		"loop: STORE r1,r5,r0[0]",
		"SUB r1,r1,r2[1]",
		"JUMP/P loop",
		"STORE r1,r5,r0[0]",
		"HALT r0,r0,r0[0]",
		"count: DATA 3",
		"outaddr: DATA $(OUTPUT)",
	)

	m.step()
	assert.Len(*m.history, 1)
	assert.False(m.done)

	for !m.done && m.fault == nil {
		m.step()
	}

	assert.Nil(m.fault)
	assert.Equal("3\n2\n1\n0\n", m.output.String())
	assert.Contains(m.buildTapeState(), "0")
	assert.Contains(m.buildRegisterState(), "flags:")
	assert.Contains(m.status(), "halted")

	// Stepping past the halt is a no-op.
	steps := m.emu.Cpu.Steps
	m.step()
	assert.Equal(steps, m.emu.Cpu.Steps)
}

func TestModelKeys(t *testing.T) {
	assert := assert.New(t)

	m := loadModel(t,
		"ADD r1,r0,r0[5]",
		"HALT r0,r0,r0[0]",
	)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Nil(cmd)
	m = next.(model)
	assert.Len(*m.history, 1)
	assert.Equal(int32(5), m.emu.Cpu.Bank[1].Get())

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Nil(cmd)
	m = next.(model)
	assert.True(m.done)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(cmd)
}

func TestModelListing(t *testing.T) {
	assert := assert.New(t)

	m := loadModel(t,
		"ADD r1,r0,r0[5]",
		"HALT r0,r0,r0[0]",
	)

	listing := m.buildListing()
	assert.Contains(listing, "ADD r1,r0,r0[5]")
	assert.Contains(listing, "-> ")

	m.step()
	assert.Contains(m.buildHistory(), "*     0  ADD      r1,r0,r0[5]")
}

func TestModelFault(t *testing.T) {
	assert := assert.New(t)

	m := loadModel(t, "LOAD r1,r0,r0[-1]")

	m.step()
	assert.Error(m.fault)
	assert.Contains(m.status(), "line 1")

	// The fetch was published to the listener before the fault landed.
	assert.Len(*m.history, 1)

	// A faulted machine refuses further steps.
	m.step()
	assert.Len(*m.history, 1)
}
