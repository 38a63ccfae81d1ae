package grammar

import (
	"fmt"

	"github.com/renfa/renfa/spec"
)

// The label contains `<` and `>` to avoid conflicting with user-defined
// symbols.
const acceptingStateLabel = "<accept>"

// Compile converts a validated grammar into a portable ε-NFA. The layout of
// every table only depends on the declaration order of the grammar, so
// compiling the same grammar twice yields structurally identical automatons.
func Compile(gram *Grammar) (*spec.CompiledAutomaton, error) {
	if gram.ruleSet.isEmpty() {
		return nil, fmt.Errorf("a grammar needs at least one production")
	}
	if gram.startSymbol.isNil() {
		return nil, fmt.Errorf("a grammar needs a start symbol")
	}

	nfa := genNFA(gram)
	closures := genEpsilonClosureTable(nfa)

	r := gram.symbolTable.reader()

	var states *spec.States
	{
		labels := make([]string, nfa.stateCount+1)
		for num, text := range r.nonTerminalTexts() {
			labels[num] = text
		}
		labels[nfa.acceptingState] = acceptingStateLabel

		states = &spec.States{
			Labels:         labels,
			StateCount:     nfa.stateCount,
			InitialState:   int(nfa.initialState),
			AcceptingState: int(nfa.acceptingState),
		}
	}

	var tranTab *spec.TransitionTable
	{
		symbols := r.terminalTexts()
		symbolCount := len(symbols)
		rowCount := nfa.stateCount + 1

		entries := make([][]int, rowCount*symbolCount)
		for key, dsts := range nfa.transitions {
			col := 0
			if !key.sym.isNil() {
				col = key.sym.num().Int()
			}
			entries[int(key.state)*symbolCount+col] = stateIDsToInts(dsts.set())
		}

		tranTab = &spec.TransitionTable{
			Symbols:     symbols,
			SymbolCount: symbolCount,
			Entries:     entries,
			RowCount:    rowCount,
		}
	}

	epsilonClosures := make([][]int, nfa.stateCount+1)
	for q, closure := range closures {
		epsilonClosures[q] = stateIDsToInts(closure.set())
	}

	return &spec.CompiledAutomaton{
		Name:            gram.name,
		States:          states,
		Transitions:     tranTab,
		EpsilonClosures: epsilonClosures,
	}, nil
}

func stateIDsToInts(ids []stateID) []int {
	ints := make([]int, len(ids))
	for i, id := range ids {
		ints[i] = int(id)
	}
	return ints
}
