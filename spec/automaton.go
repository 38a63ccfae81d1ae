package spec

// CompiledAutomaton is a portable representation of an ε-NFA generated from
// a right-linear grammar. All tables are finalized at compile time; a driver
// only reads them.
type CompiledAutomaton struct {
	Name            string           `json:"name"`
	States          *States          `json:"states"`
	Transitions     *TransitionTable `json:"transitions"`
	EpsilonClosures [][]int          `json:"epsilon_closures"`
}

type States struct {
	// Labels[s] is the text of the non-terminal symbol the state s was
	// derived from. Since 0 represents an invalid value in the transition
	// table, states are assigned numbers greater than or equal to 1.
	// The accepting state is synthesized by the compiler, so its label is
	// not a user-defined symbol.
	Labels []string `json:"labels"`

	StateCount     int `json:"state_count"`
	InitialState   int `json:"initial_state"`
	AcceptingState int `json:"accepting_state"`
}

type TransitionTable struct {
	// Symbols[0] represents the ε label, and the remaining entries are the
	// terminal alphabet.
	Symbols     []string `json:"symbols"`
	SymbolCount int      `json:"symbol_count"`

	// Entries[state*SymbolCount+symbol] is the set of destination states of
	// the transitions the source state has on the symbol. A nil entry means
	// the state has no transition on the symbol.
	Entries [][]int `json:"entries"`

	RowCount int `json:"row_count"`
}
