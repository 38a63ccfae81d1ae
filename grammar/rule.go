package grammar

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

type ruleID [32]byte

func (id ruleID) String() string {
	return hex.EncodeToString(id[:])
}

func genRuleID(lhs symbol, terminal symbol, dst symbol) ruleID {
	seq := lhs.byte()
	seq = append(seq, terminal.byte()...)
	seq = append(seq, dst.byte()...)
	return ruleID(sha256.Sum256(seq))
}

// rule is a validated right-linear production. A rule takes one of the
// following three forms:
//
//	A → ε:  terminal and dst are both nil.
//	A → a:  dst is nil.
//	A → aB: terminal and dst are both non-nil.
type rule struct {
	id       ruleID
	lhs      symbol
	terminal symbol
	dst      symbol
}

func newRule(lhs symbol, terminal symbol, dst symbol) (*rule, error) {
	if lhs.isNil() || !lhs.isNonTerminal() {
		return nil, fmt.Errorf("LHS must be a non-terminal symbol; LHS: %v", lhs)
	}
	if !terminal.isNil() && !terminal.isTerminal() {
		return nil, fmt.Errorf("the symbol consumed by a rule must be a terminal symbol; got: %v", terminal)
	}
	if !dst.isNil() && !dst.isNonTerminal() {
		return nil, fmt.Errorf("the destination of a rule must be a non-terminal symbol; got: %v", dst)
	}
	if terminal.isNil() && !dst.isNil() {
		return nil, fmt.Errorf("an ε rule cannot have a destination; destination: %v", dst)
	}

	return &rule{
		id:       genRuleID(lhs, terminal, dst),
		lhs:      lhs,
		terminal: terminal,
		dst:      dst,
	}, nil
}

func (r *rule) isEmpty() bool {
	return r.terminal.isNil()
}

type ruleSet struct {
	rules     []*rule
	lhs2Rules map[symbol][]*rule
	id2Rule   map[ruleID]*rule
}

func newRuleSet() *ruleSet {
	return &ruleSet{
		lhs2Rules: map[symbol][]*rule{},
		id2Rule:   map[ruleID]*rule{},
	}
}

// append adds a rule to the set. Duplicate rules are legal but meaningless
// because the transition relation unions destinations, so they are dropped.
func (rs *ruleSet) append(r *rule) bool {
	if _, ok := rs.id2Rule[r.id]; ok {
		return false
	}

	rs.rules = append(rs.rules, r)
	if rules, ok := rs.lhs2Rules[r.lhs]; ok {
		rs.lhs2Rules[r.lhs] = append(rules, r)
	} else {
		rs.lhs2Rules[r.lhs] = []*rule{r}
	}
	rs.id2Rule[r.id] = r

	return true
}

func (rs *ruleSet) findByLHS(lhs symbol) ([]*rule, bool) {
	if lhs.isNil() {
		return nil, false
	}

	rules, ok := rs.lhs2Rules[lhs]
	return rules, ok
}

// getAllRules returns all rules in definition order.
func (rs *ruleSet) getAllRules() []*rule {
	return rs.rules
}

func (rs *ruleSet) isEmpty() bool {
	return len(rs.rules) == 0
}
