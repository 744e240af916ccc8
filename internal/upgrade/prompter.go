package upgrade

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/purduesigbots/purdueros-cli/internal/messages"
)

// Prompter asks the user to disambiguate a kernel identifier.
type Prompter interface {
	// ChooseKernel shows candidates once and returns the user's answer verbatim.
	// It does not validate the answer or ask again.
	ChooseKernel(candidates []string) (string, error)
}

// LinePrompter reads a single answer line from In. In may be a terminal or
// a pipe; an empty answer or EOF yields "".
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
	// ShowPrompt reports whether the prompt text is written to Out, usually
	// only when In is a terminal. Nil means always.
	ShowPrompt func() bool
}

// ChooseKernel writes "Multiple kernels matched. Which kernel? (a, b) " when
// ShowPrompt allows it and returns the next input line with surrounding
// whitespace removed.
func (p LinePrompter) ChooseKernel(candidates []string) (string, error) {
	out := p.Out
	if out == nil || (p.ShowPrompt != nil && !p.ShowPrompt()) {
		out = io.Discard
	}
	if _, err := fmt.Fprintf(out, messages.PromptChooseKernelFmt, strings.Join(candidates, messages.PromptOptionSeparator)); err != nil {
		return "", fmt.Errorf(messages.UpgradeWritePromptFmt, err)
	}
	if p.In == nil {
		return "", nil
	}
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf(messages.UpgradeReadPromptFmt, err)
	}
	return strings.TrimSpace(line), nil
}

// PromptFuncs adapts callbacks into a Prompter.
type PromptFuncs struct {
	ChooseKernelFunc func(candidates []string) (string, error)
}

// ChooseKernel calls ChooseKernelFunc.
// Returns an error if no ChooseKernelFunc is configured.
func (p PromptFuncs) ChooseKernel(candidates []string) (string, error) {
	if p.ChooseKernelFunc == nil {
		return "", fmt.Errorf(messages.UpgradePrompterRequired)
	}
	return p.ChooseKernelFunc(candidates)
}
