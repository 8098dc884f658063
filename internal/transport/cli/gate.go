package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminalGate asks for confirmation on the terminal. Anything but an
// explicit yes answers false: an empty line, EOF or a typo never
// confirms a destructive action.
type TerminalGate struct {
	in  *bufio.Reader
	out io.Writer

	// assumeYes short-circuits the prompt; set by the --yes flag, which
	// is itself the explicit affirmation.
	assumeYes bool
}

// NewTerminalGate creates a gate reading answers from in.
func NewTerminalGate(in *bufio.Reader, out io.Writer) *TerminalGate {
	return &TerminalGate{in: in, out: out}
}

// AssumeYes makes the gate confirm without prompting.
func (g *TerminalGate) AssumeYes() {
	g.assumeYes = true
}

// Ask prints the prompt and reads the answer.
func (g *TerminalGate) Ask(message string) bool {
	if g.assumeYes {
		return true
	}

	fmt.Fprintf(g.out, "%s [s/N]: ", message)

	line, err := g.in.ReadString('\n')
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí", "y", "yes":
		return true
	default:
		return false
	}
}

// TerminalNotifier prints operation outcomes to the terminal.
type TerminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier creates a notifier writing to out.
func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) Success(message string) {
	fmt.Fprintf(n.out, "✔ %s\n", message)
}

func (n *TerminalNotifier) Error(message string) {
	fmt.Fprintf(n.out, "✖ %s\n", message)
}
