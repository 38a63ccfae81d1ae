package grammar

import (
	"fmt"

	verr "github.com/renfa/renfa/error"
	"github.com/renfa/renfa/spec"
)

// Grammar is a semantically validated right-linear grammar. Every rule it
// holds matches one of the three allowed forms, and every symbol the rules
// mention is declared.
type Grammar struct {
	name        string
	symbolTable *symbolTable
	startSymbol symbol
	ruleSet     *ruleSet
}

func (g *Grammar) Name() string {
	return g.name
}

type GrammarBuilder struct {
	AST *spec.RootNode

	errs verr.SpecErrors
}

func (b *GrammarBuilder) Build() (*Grammar, error) {
	var specName string
	{
		errOccurred := false
		for _, dir := range b.AST.Directives {
			if dir.Name != "name" {
				continue
			}

			if len(dir.Parameters) != 1 || dir.Parameters[0].ID == "" {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDirInvalidParam,
					Detail: "'name' takes just one ID parameter",
					Row:    dir.Pos.Row,
					Col:    dir.Pos.Col,
				})

				errOccurred = true
				break
			}

			specName = dir.Parameters[0].ID
			break
		}

		if specName == "" && !errOccurred {
			b.errs = append(b.errs, &verr.SpecError{
				Cause: semErrNoGrammarName,
			})
		}
	}

	symTab, startSym := b.genSymbolTable(b.AST)
	if len(b.errs) > 0 {
		return nil, b.errs
	}

	ruleSet := b.genRuleSet(b.AST, symTab)
	if len(b.errs) > 0 {
		return nil, b.errs
	}

	return &Grammar{
		name:        specName,
		symbolTable: symTab,
		startSymbol: startSym,
		ruleSet:     ruleSet,
	}, nil
}

// genSymbolTable registers the declared terminal and non-terminal symbols
// and resolves the start symbol. Non-terminals are registered first so that
// their symbol numbers, which the compiler turns into state numbers, follow
// the declaration order.
func (b *GrammarBuilder) genSymbolTable(root *spec.RootNode) (*symbolTable, symbol) {
	symTab := newSymbolTable()
	w := symTab.writer()

	var termsDir, nonTermsDir, startDir *spec.DirectiveNode
	for _, dir := range root.Directives {
		switch dir.Name {
		case "name":
			// Already handled.
		case "terminals":
			termsDir = dir
		case "nonterminals":
			nonTermsDir = dir
		case "start":
			startDir = dir
		default:
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDirInvalidName,
				Detail: dir.Name,
				Row:    dir.Pos.Row,
				Col:    dir.Pos.Col,
			})
		}
	}

	if nonTermsDir == nil || len(nonTermsDir.Parameters) == 0 {
		b.errs = append(b.errs, &verr.SpecError{
			Cause: semErrNoNonTerminal,
		})
	} else {
		for _, param := range nonTermsDir.Parameters {
			_, err := w.registerNonTerminalSymbol(param.ID)
			if err != nil {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDuplicateName,
					Detail: param.ID,
					Row:    param.Pos.Row,
					Col:    param.Pos.Col,
				})
			}
		}
	}

	if termsDir == nil || len(termsDir.Parameters) == 0 {
		b.errs = append(b.errs, &verr.SpecError{
			Cause: semErrNoTerminal,
		})
	} else {
		for _, param := range termsDir.Parameters {
			_, err := w.registerTerminalSymbol(param.ID)
			if err != nil {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrDuplicateName,
					Detail: param.ID,
					Row:    param.Pos.Row,
					Col:    param.Pos.Col,
				})
			}
		}
	}

	var startSym symbol
	if startDir == nil {
		b.errs = append(b.errs, &verr.SpecError{
			Cause: semErrNoStart,
		})
	} else if len(startDir.Parameters) != 1 || startDir.Parameters[0].ID == "" {
		b.errs = append(b.errs, &verr.SpecError{
			Cause:  semErrDirInvalidParam,
			Detail: "'start' takes just one ID parameter",
			Row:    startDir.Pos.Row,
			Col:    startDir.Pos.Col,
		})
	} else {
		param := startDir.Parameters[0]
		sym, ok := symTab.reader().toSymbol(param.ID)
		if !ok || !sym.isNonTerminal() {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrUndeclaredStart,
				Detail: param.ID,
				Row:    param.Pos.Row,
				Col:    param.Pos.Col,
			})
		} else {
			startSym = sym
		}
	}

	return symTab, startSym
}

// genRuleSet validates every production against the three right-linear
// forms. The forms are tried in a fixed priority order so that ambiguous
// bodies resolve deterministically: the ε form first, then the
// terminal+destination form, and the terminal-only form last.
func (b *GrammarBuilder) genRuleSet(root *spec.RootNode, symTab *symbolTable) *ruleSet {
	r := symTab.reader()
	ruleSet := newRuleSet()

	if len(root.Productions) == 0 {
		b.errs = append(b.errs, &verr.SpecError{
			Cause: semErrNoProduction,
		})
		return ruleSet
	}

	for _, prod := range root.Productions {
		lhsSym, ok := r.toSymbol(prod.LHS)
		if !ok || !lhsSym.isNonTerminal() {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrNonTermLHSNeeded,
				Detail: prod.LHS,
				Row:    prod.Pos.Row,
				Col:    prod.Pos.Col,
			})
			continue
		}

		for _, alt := range prod.RHS {
			terminal, dst, ok := b.genRuleBody(r, prod, alt)
			if !ok {
				continue
			}

			rule, err := newRule(lhsSym, terminal, dst)
			if err != nil {
				b.errs = append(b.errs, &verr.SpecError{
					Cause:  semErrInvalidRuleShape,
					Detail: err.Error(),
					Row:    alt.Pos.Row,
					Col:    alt.Pos.Col,
				})
				continue
			}

			// A duplicate rule adds nothing to the transition relation,
			// so it is silently dropped.
			ruleSet.append(rule)
		}
	}

	return ruleSet
}

func (b *GrammarBuilder) genRuleBody(r *symbolTableReader, prod *spec.ProductionNode, alt *spec.AlternativeNode) (symbol, symbol, bool) {
	elems := alt.Elements

	switch {
	case len(elems) == 1 && elems[0].Empty:
		return symbolNil, symbolNil, true
	case len(elems) == 2 && !elems[0].Empty && !elems[1].Empty:
		terminal, ok := b.resolveRuleSymbol(r, elems[0], symbolKindTerminal)
		if !ok {
			return symbolNil, symbolNil, false
		}
		dst, ok := b.resolveRuleSymbol(r, elems[1], symbolKindNonTerminal)
		if !ok {
			return symbolNil, symbolNil, false
		}
		return terminal, dst, true
	case len(elems) == 1:
		terminal, ok := b.resolveRuleSymbol(r, elems[0], symbolKindTerminal)
		if !ok {
			return symbolNil, symbolNil, false
		}
		return terminal, symbolNil, true
	default:
		b.errs = append(b.errs, &verr.SpecError{
			Cause:  semErrInvalidRuleShape,
			Detail: describeAlternative(prod, alt),
			Row:    alt.Pos.Row,
			Col:    alt.Pos.Col,
		})
		return symbolNil, symbolNil, false
	}
}

func (b *GrammarBuilder) resolveRuleSymbol(r *symbolTableReader, elem *spec.ElementNode, kind symbolKind) (symbol, bool) {
	sym, ok := r.toSymbol(elem.ID)
	if !ok {
		b.errs = append(b.errs, &verr.SpecError{
			Cause:  semErrUndefinedSym,
			Detail: elem.ID,
			Row:    elem.Pos.Row,
			Col:    elem.Pos.Col,
		})
		return symbolNil, false
	}

	var matched bool
	switch kind {
	case symbolKindTerminal:
		matched = sym.isTerminal()
	case symbolKindNonTerminal:
		matched = sym.isNonTerminal()
	}
	if !matched {
		b.errs = append(b.errs, &verr.SpecError{
			Cause:  semErrInvalidRuleShape,
			Detail: fmt.Sprintf("'%v' must be a %v here", elem.ID, kind),
			Row:    elem.Pos.Row,
			Col:    elem.Pos.Col,
		})
		return symbolNil, false
	}

	return sym, true
}

func describeAlternative(prod *spec.ProductionNode, alt *spec.AlternativeNode) string {
	if len(alt.Elements) == 0 {
		return fmt.Sprintf("a production of '%v' has an empty body; use ε to derive the empty string", prod.LHS)
	}
	return fmt.Sprintf("a production of '%v' has %v body symbols", prod.LHS, len(alt.Elements))
}
