// Package cli holds the small interactive helpers used by staticmap's
// example programs.
package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrNoChoices is returned by Select when there is nothing to choose from.
var ErrNoChoices = errors.New("no choices to select from")

// SelectOptions tweak how Select talks to the terminal. The zero value uses
// the process's stdin and stdout.
type SelectOptions struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
	Size   int
}

// Select shows an arrow-key menu of choices and returns the one picked.
// Typing filters the list to choices with the typed prefix. The order of
// choices is preserved.
func Select(label string, choices []string, opts SelectOptions) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	sel := &promptui.Select{
		Label:    label,
		Items:    choices,
		Size:     opts.Size,
		Stdin:    opts.Stdin,
		Stdout:   opts.Stdout,
		Searcher: PrefixSearcher(choices),
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", err
	}

	return value, nil
}

// PrefixSearcher returns a promptui searcher that keeps the choices starting
// with the typed input. An empty input matches nothing, which makes promptui
// show the full list.
func PrefixSearcher(choices []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if len(input) == 0 {
			return false
		}

		return strings.HasPrefix(choices[index], input)
	}
}

// IsInterrupt reports whether err means the user backed out of a prompt
// (Ctrl-C or Ctrl-D) rather than something going wrong.
func IsInterrupt(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort)
}
