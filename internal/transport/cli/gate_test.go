package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func askWith(answer string) bool {
	gate := NewTerminalGate(bufio.NewReader(strings.NewReader(answer)), &bytes.Buffer{})

	return gate.Ask("¿Deseas eliminar el producto Mouse?")
}

func TestTerminalGateAffirmations(t *testing.T) {
	for _, answer := range []string{"s\n", "si\n", "sí\n", "y\n", "yes\n", "  S  \n"} {
		assert.True(t, askWith(answer), "answer %q should confirm", answer)
	}
}

func TestTerminalGateDenials(t *testing.T) {
	for _, answer := range []string{"n\n", "no\n", "\n", "sii\n", "ys\n"} {
		assert.False(t, askWith(answer), "answer %q should deny", answer)
	}
}

func TestTerminalGateEOFDenies(t *testing.T) {
	assert.False(t, askWith(""))
}

func TestTerminalGateAssumeYesSkipsPrompt(t *testing.T) {
	out := &bytes.Buffer{}
	gate := NewTerminalGate(bufio.NewReader(strings.NewReader("")), out)
	gate.AssumeYes()

	assert.True(t, gate.Ask("¿Deseas eliminar el pedido #4?"))
	assert.Empty(t, out.String())
}

func TestTerminalGateWritesPrompt(t *testing.T) {
	out := &bytes.Buffer{}
	gate := NewTerminalGate(bufio.NewReader(strings.NewReader("n\n")), out)

	gate.Ask("¿Deseas eliminar el cliente Ana?")

	assert.Contains(t, out.String(), "¿Deseas eliminar el cliente Ana? [s/N]: ")
}

func TestTerminalNotifier(t *testing.T) {
	out := &bytes.Buffer{}
	notifier := NewTerminalNotifier(out)

	notifier.Success("producto guardado correctamente")
	notifier.Error("no se pudo conectar con el servidor")

	assert.Equal(t, "✔ producto guardado correctamente\n✖ no se pudo conectar con el servidor\n", out.String())
}
