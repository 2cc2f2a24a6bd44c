// Package collision detects converted files whose UFS content is identical.
package collision

// Tracker maps document fingerprints to the first input that produced them.
// It is not safe for concurrent use.
type Tracker struct {
	firstInput map[string]string // fingerprint → first input
	inputs     []string          // tracked inputs, in order
	duplicates int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		firstInput: make(map[string]string),
		inputs:     make([]string, 0),
	}
}

// Track records that input produced a document with the given fingerprint.
//
// Returns the earlier input with the same fingerprint and true if there was
// one. An empty fingerprint is ignored.
func (t *Tracker) Track(input, fingerprint string) (string, bool) {
	if fingerprint == "" {
		return "", false
	}

	t.inputs = append(t.inputs, input)

	if first, exists := t.firstInput[fingerprint]; exists {
		t.duplicates++
		return first, true
	}
	t.firstInput[fingerprint] = input

	return "", false
}

// Inputs returns the tracked inputs in the order Track saw them.
func (t *Tracker) Inputs() []string {
	return t.inputs
}

// Count returns the number of tracked inputs.
func (t *Tracker) Count() int {
	return len(t.inputs)
}

// Duplicates returns how many tracked inputs repeated an earlier fingerprint.
func (t *Tracker) Duplicates() int {
	return t.duplicates
}

// Reset clears all tracked state.
func (t *Tracker) Reset() {
	for k := range t.firstInput {
		delete(t.firstInput, k)
	}
	t.inputs = t.inputs[:0]
	t.duplicates = 0
}
