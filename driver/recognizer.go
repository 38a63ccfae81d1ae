package driver

import (
	"fmt"
	"sort"

	"github.com/renfa/renfa/spec"
)

type RecognizerOption func(r *Recognizer) error

// TraceFrontiers makes the recognizer record the frontier after every step.
// The trace is for diagnostics; recognition itself doesn't need it.
func TraceFrontiers() RecognizerOption {
	return func(r *Recognizer) error {
		r.traceFrontiers = true
		return nil
	}
}

// Frontier is the set of states the automaton may be in at some point of a
// run, in ascending state order.
type Frontier []int

type Result struct {
	Accepted bool

	// Frontiers[0] is the frontier before any input symbol was consumed, and
	// Frontiers[i] is the frontier after the i-th symbol. It is populated
	// only when the TraceFrontiers option is enabled.
	Frontiers []Frontier
}

// Recognizer runs input strings through a compiled ε-NFA. It never mutates
// the automaton, so a single recognizer can serve any number of runs.
type Recognizer struct {
	a              *spec.CompiledAutomaton
	text2Sym       map[string]int
	traceFrontiers bool
}

func NewRecognizer(a *spec.CompiledAutomaton, opts ...RecognizerOption) (*Recognizer, error) {
	if a.States == nil || a.Transitions == nil {
		return nil, fmt.Errorf("compiled automaton is incomplete")
	}
	if len(a.EpsilonClosures) != a.States.StateCount+1 {
		return nil, fmt.Errorf("ε-closure table is incomplete; states: %v, closures: %v", a.States.StateCount, len(a.EpsilonClosures))
	}

	text2Sym := map[string]int{}
	for sym, text := range a.Transitions.Symbols {
		if sym == 0 {
			// The symbol 0 is the ε label. No input symbol maps to it.
			continue
		}
		text2Sym[text] = sym
	}

	r := &Recognizer{
		a:        a,
		text2Sym: text2Sym,
	}

	for _, opt := range opts {
		err := opt(r)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Recognize decides whether the automaton accepts the input. Recognition
// cannot fail: an input symbol outside the alphabet simply matches no
// transition, empties the frontier, and guarantees rejection.
func (r *Recognizer) Recognize(input string) *Result {
	result := &Result{}

	frontier := r.closureOf(map[int]struct{}{
		r.a.States.InitialState: {},
	})
	r.trace(result, frontier)

	for _, c := range input {
		sym, ok := r.text2Sym[string(c)]

		next := map[int]struct{}{}
		if ok {
			for state := range frontier {
				for _, dst := range r.a.Transitions.Entries[state*r.a.Transitions.SymbolCount+sym] {
					next[dst] = struct{}{}
				}
			}
		}

		// An empty frontier stays empty for the rest of the input. The loop
		// continues anyway because the verdict is decided after the last
		// symbol either way.
		frontier = r.closureOf(next)
		r.trace(result, frontier)
	}

	_, accepted := frontier[r.a.States.AcceptingState]
	result.Accepted = accepted

	return result
}

func (r *Recognizer) closureOf(states map[int]struct{}) map[int]struct{} {
	closure := map[int]struct{}{}
	for state := range states {
		for _, dst := range r.a.EpsilonClosures[state] {
			closure[dst] = struct{}{}
		}
	}
	return closure
}

func (r *Recognizer) trace(result *Result, frontier map[int]struct{}) {
	if !r.traceFrontiers {
		return
	}

	f := make(Frontier, 0, len(frontier))
	for state := range frontier {
		f = append(f, state)
	}
	sort.Ints(f)
	result.Frontiers = append(result.Frontiers, f)
}

// StateLabel returns the text of the non-terminal a state was derived from,
// or the accepting-state label for the synthesized accepting state.
func (r *Recognizer) StateLabel(state int) string {
	if state < 0 || state >= len(r.a.States.Labels) {
		return ""
	}
	return r.a.States.Labels[state]
}

// Alphabet returns the terminal alphabet of the automaton.
func (r *Recognizer) Alphabet() []string {
	return r.a.Transitions.Symbols[1:]
}
