package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestBar(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	assert.Equal(t, strings.Repeat("░", barWidth), Bar(0, "#4A9B8E"))
	assert.Equal(t, strings.Repeat("█", 6)+strings.Repeat("░", 14), Bar(33, "#4A9B8E"))
	assert.Equal(t, strings.Repeat("█", barWidth), Bar(150, "not-a-colour"))
}

func TestPrintTable(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	var buf bytes.Buffer

	PrintTable([][]string{{"#", "Exercise"}, {"1", "Glute Bridge"}}, &buf)

	assert.Contains(t, buf.String(), "Glute Bridge")
	assert.Contains(t, buf.String(), "Exercise")
}

func TestHex(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	_, err := pterm.NewRGBFromHEX("#4A9B8E")
	assert.NoError(t, err)

	assert.Equal(t, "Phase 1", Hex("#4A9B8E", "Phase 1"))
	assert.Equal(t, "Phase 1", Hex("teal", "Phase 1"))
}

func TestPain(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	for _, p := range []int{0, 2, 5, 9} {
		assert.Equal(t, "pain", Pain(p, "pain"))
	}
}
