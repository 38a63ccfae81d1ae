package grammar

// genEpsilonClosureTable computes, for every state of the NFA, the set of
// states reachable via zero or more ε transitions. The table is computed
// once; the driver only looks closures up.
//
// Each closure is a breadth-first traversal following only ε-labeled
// transitions. The visited set guards against revisiting, so the traversal
// terminates even when the ε sub-graph contains cycles.
func genEpsilonClosureTable(nfa *NFA) map[stateID]*stateIDSet {
	closures := map[stateID]*stateIDSet{}
	for q := stateID(1); q <= stateID(nfa.stateCount); q++ {
		closures[q] = genEpsilonClosure(nfa, q)
	}
	return closures
}

func genEpsilonClosure(nfa *NFA, state stateID) *stateIDSet {
	closure := newStateIDSet().add(state)
	visited := map[stateID]struct{}{
		state: {},
	}
	queue := []stateID{state}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		dsts, ok := nfa.transitions[transitionKey{state: current, sym: symbolNil}]
		if !ok {
			continue
		}
		for _, next := range dsts.set() {
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			closure.add(next)
			queue = append(queue, next)
		}
	}
	return closure
}
