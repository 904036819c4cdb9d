package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmOptionsCompose(t *testing.T) {
	cfg := confirmConfig{}
	opts := []ConfirmOption{
		WithLabels("Send", "Abort"),
		WithDescription("Gas is paid from the signing account"),
	}
	for _, o := range opts {
		o(&cfg)
	}

	assert.Equal(t, "Send", cfg.affirmative)
	assert.Equal(t, "Abort", cfg.negative)
	assert.Equal(t, "Gas is paid from the signing account", cfg.description)
}

func TestOutputRedirect(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Print("plain")
	Printf("%s=%d\n", "gas", 21000)
	KeyValue([2]string{"To", "0xabc"}, [2]string{"Function", "transfer"})

	got := buf.String()
	assert.Contains(t, got, "plain\n")
	assert.Contains(t, got, "gas=21000\n")
	assert.Contains(t, got, "  To:       0xabc\n")
	assert.Contains(t, got, "  Function: transfer\n")
}

func TestRenderTable(t *testing.T) {
	rendered := RenderTable("Functions", []string{"Selector", "Signature"}, [][]string{
		{"0xa9059cbb", "transfer(address,uint256)"},
		{"0x70a08231", "balanceOf(address)"},
	})

	assert.Contains(t, rendered, "Functions")
	assert.Contains(t, rendered, "Selector")
	assert.Contains(t, rendered, "0xa9059cbb")
	assert.Contains(t, rendered, "balanceOf(address)")
	assert.Less(t, strings.Index(rendered, "transfer"), strings.Index(rendered, "balanceOf"))
}

func TestSpinnerWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := &Spinner{output: &buf}

	s.Start("Submitting transaction...")
	s.Update("Waiting for receipt...")
	s.Stop()

	assert.Contains(t, buf.String(), "Submitting transaction...")
	assert.Contains(t, buf.String(), "Waiting for receipt...")
}
