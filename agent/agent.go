package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the interactive chat session at the counter.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Advisor *Advisor
}

// New creates an Agent around an advisor, with w for the agent's output
// (e.g. os.Stdout) and r for user input (e.g. os.Stdin).
func New(w io.Writer, r io.Reader, advisor *Advisor) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Advisor: advisor,
	}
}

const prompt = "asistente> "

// Run starts the interactive REPL session for the agent. Any prompts
// given are consumed first, then input is read interactively.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Advisor.chat == nil {
		if err := a.Advisor.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Asistente de la bodega. Escribe 'salir' para terminar.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		switch strings.TrimSpace(input) {
		case "salir", "bye", "exit":
			return nil
		}

		content, err := a.Advisor.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			fmt.Fprintln(a.w, ErrorMsg)
			continue
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
