// Package picker lets the operator choose input files interactively when none
// are named on the command line.
package picker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/manifoldco/promptui"
)

// DoneItem ends the selection.
const DoneItem = "[done]"

// ChooseFunc presents items and returns the index of the chosen one.
type ChooseFunc func(label string, items []string) (int, error)

// Picker collects files one prompt at a time until DoneItem is chosen.
type Picker struct {
	label  string
	choose ChooseFunc
}

// New returns a Picker backed by a promptui selection list.
func New(label string) *Picker {
	return &Picker{label: label, choose: promptChoose}
}

// NewWithChooser returns a Picker that asks choose instead of the terminal.
func NewWithChooser(label string, choose ChooseFunc) *Picker {
	return &Picker{label: label, choose: choose}
}

// Pick returns the chosen candidates in selection order.
//
// Interrupting the prompt (Ctrl-C) discards the selection and returns nil.
// End of input keeps what was selected so far.
func (p *Picker) Pick(candidates []string) ([]string, error) {
	remaining := append([]string(nil), candidates...)
	var selected []string

	for len(remaining) > 0 {
		items := append([]string{DoneItem}, remaining...)
		label := p.label
		if len(selected) > 0 {
			label = fmt.Sprintf("%s (%d selected)", p.label, len(selected))
		}

		idx, err := p.choose(label, items)
		switch {
		case errors.Is(err, promptui.ErrInterrupt):
			return nil, nil
		case errors.Is(err, promptui.ErrEOF):
			return selected, nil
		case err != nil:
			return nil, fmt.Errorf("file picker: %w", err)
		}

		if idx <= 0 || idx >= len(items) {
			break
		}

		selected = append(selected, items[idx])
		remaining = append(remaining[:idx-1], remaining[idx:]...)
	}

	return selected, nil
}

// Candidates lists the regular files in dir whose names end in one of the
// extensions (case-insensitive), sorted by name.
func Candidates(dir string, extensions ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if matchesExtension(entry.Name(), extensions) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	return files, nil
}

func matchesExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}

	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}

	return false
}

func promptChoose(label string, items []string) (int, error) {
	searcher := func(input string, index int) bool {
		name := strings.ReplaceAll(strings.ToLower(items[index]), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")

		return strings.Contains(name, input)
	}

	p := promptui.Select{
		Label:    label,
		Items:    items,
		Searcher: searcher,
		Size:     10,
	}

	idx, _, err := p.Run()

	return idx, err
}
