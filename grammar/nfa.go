package grammar

import (
	"fmt"
	"sort"
	"strings"
)

type stateID int

// stateIDNil represents an invalid state. Valid states are assigned numbers
// greater than or equal to 1.
const stateIDNil = stateID(0)

type stateIDSet struct {
	// `s` represents a set of state IDs.
	// However, immediately after adding a state ID, the elements may be
	// duplicated. When you need an aligned set with no duplicates, you can
	// get such value via the set function.
	s      []stateID
	sorted bool
}

func newStateIDSet() *stateIDSet {
	return &stateIDSet{
		s:      []stateID{},
		sorted: false,
	}
}

func (s *stateIDSet) String() string {
	if len(s.s) <= 0 {
		return "{}"
	}
	ids := s.set()
	var b strings.Builder
	fmt.Fprintf(&b, "{")
	for i, id := range ids {
		if i <= 0 {
			fmt.Fprintf(&b, "%v", id)
			continue
		}
		fmt.Fprintf(&b, ", %v", id)
	}
	fmt.Fprintf(&b, "}")
	return b.String()
}

func (s *stateIDSet) set() []stateID {
	s.sortAndRemoveDuplicates()
	return s.s
}

func (s *stateIDSet) add(id stateID) *stateIDSet {
	s.s = append(s.s, id)
	s.sorted = false
	return s
}

func (s *stateIDSet) merge(t *stateIDSet) *stateIDSet {
	s.s = append(s.s, t.s...)
	s.sorted = false
	return s
}

func (s *stateIDSet) contains(id stateID) bool {
	for _, v := range s.set() {
		if v == id {
			return true
		}
	}
	return false
}

func (s *stateIDSet) sortAndRemoveDuplicates() {
	if s.sorted || len(s.s) == 0 {
		return
	}

	sort.Slice(s.s, func(i, j int) bool {
		return s.s[i] < s.s[j]
	})

	lastV := s.s[0]
	nextIdx := 1
	for _, v := range s.s[1:] {
		if v == lastV {
			continue
		}
		s.s[nextIdx] = v
		nextIdx++
		lastV = v
	}
	s.s = s.s[:nextIdx]
	s.sorted = true
}

// transitionKey identifies the transitions a state has on a symbol.
// The nil symbol represents the ε label.
type transitionKey struct {
	state stateID
	sym   symbol
}

// NFA is an ε-NFA derived from a right-linear grammar. Each declared
// non-terminal maps to the state whose number equals the symbol number, and
// the accepting state is synthesized past every non-terminal state. The
// accepting state never corresponds to a user-defined symbol, so it cannot
// collide with one.
type NFA struct {
	stateCount     int
	initialState   stateID
	acceptingState stateID
	transitions    map[transitionKey]*stateIDSet
}

func genNFA(gram *Grammar) *NFA {
	r := gram.symbolTable.reader()
	acceptingState := stateID(r.nonTerminalCount() + 1)

	transitions := map[transitionKey]*stateIDSet{}
	addTransition := func(key transitionKey, dst stateID) {
		// Multiple rules may share a source state and a symbol. The
		// destinations form a set; an insertion never overwrites.
		if set, ok := transitions[key]; ok {
			set.add(dst)
			return
		}
		transitions[key] = newStateIDSet().add(dst)
	}

	for _, rule := range gram.ruleSet.getAllRules() {
		key := transitionKey{
			state: stateID(rule.lhs.num()),
			sym:   rule.terminal,
		}
		dst := acceptingState
		if !rule.dst.isNil() {
			dst = stateID(rule.dst.num())
		}
		addTransition(key, dst)
	}

	return &NFA{
		stateCount:     r.nonTerminalCount() + 1,
		initialState:   stateID(gram.startSymbol.num()),
		acceptingState: acceptingState,
		transitions:    transitions,
	}
}
