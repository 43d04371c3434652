package input

import (
	"fmt"
	"strings"
)

// Prompter asks the operator questions over a Reader. With Yes set,
// every prompt resolves to its default answer without reading input,
// which is how --yes downgrades interactive friction.
type Prompter struct {
	Reader Reader
	Yes    bool
}

// NewPrompter creates a Prompter over the given reader.
func NewPrompter(r Reader, yes bool) *Prompter {
	return &Prompter{Reader: r, Yes: yes}
}

// readAnswer reads one line and returns it trimmed and lowercased.
// EOF or read errors resolve to the empty answer.
func (p *Prompter) readAnswer() string {
	line, err := p.Reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(line))
}

// Confirm asks a yes/no question. def is returned on an empty answer
// or when Yes is set.
func (p *Prompter) Confirm(prompt string, def bool) bool {
	if p.Yes {
		return def
	}

	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Printf("%s %s ", prompt, hint)

	answer := p.readAnswer()
	if answer == "" {
		return def
	}
	return strings.HasPrefix(answer, "y")
}

// Choose asks the operator to pick one of options by its first letter.
// Options are matched case-insensitively on their first rune; an empty
// answer selects def. When Yes is set, def is returned immediately.
func (p *Prompter) Choose(prompt string, options []string, def string) string {
	if p.Yes {
		return def
	}

	fmt.Printf("%s [%s] ", prompt, strings.Join(options, "/"))

	answer := p.readAnswer()
	if answer == "" {
		return def
	}
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt), answer[:1]) {
			return opt
		}
	}
	return def
}

// Line asks for a free-form value, returning def on an empty answer or
// when Yes is set. Unlike Confirm, the answer's case is preserved.
func (p *Prompter) Line(prompt, def string) string {
	if p.Yes {
		return def
	}

	if def != "" {
		fmt.Printf("%s [%s]: ", prompt, def)
	} else {
		fmt.Printf("%s: ", prompt)
	}

	line, err := p.Reader.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def
	}
	return answer
}

// Pause blocks until the operator presses Enter. A no-op when Yes is
// set.
func (p *Prompter) Pause(prompt string) {
	if p.Yes {
		return
	}
	fmt.Print(prompt)
	_, _ = p.Reader.ReadString('\n')
}
