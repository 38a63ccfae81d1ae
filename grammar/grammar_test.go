package grammar

import (
	"strings"
	"testing"

	verr "github.com/renfa/renfa/error"
	"github.com/renfa/renfa/spec"
)

func TestGrammarBuilder_Build(t *testing.T) {
	src := `
#name test;
#terminals a b;
#nonterminals S A;
#start S;

S -> a A | b;
A -> b | epsilon;
`
	gram := buildGrammar(t, src)

	if gram.Name() != "test" {
		t.Fatalf("unexpected grammar name; want: %v, got: %v", "test", gram.Name())
	}

	r := gram.symbolTable.reader()
	if r.terminalCount() != 2 {
		t.Fatalf("unexpected terminal count; want: %v, got: %v", 2, r.terminalCount())
	}
	if r.nonTerminalCount() != 2 {
		t.Fatalf("unexpected non-terminal count; want: %v, got: %v", 2, r.nonTerminalCount())
	}

	startText, ok := r.toText(gram.startSymbol)
	if !ok || startText != "S" {
		t.Fatalf("unexpected start symbol; want: %v, got: %v", "S", startText)
	}

	rules := gram.ruleSet.getAllRules()
	if len(rules) != 4 {
		t.Fatalf("unexpected rule count; want: %v, got: %v", 4, len(rules))
	}
	if !rules[3].isEmpty() {
		t.Fatalf("the last rule must be an ε rule; got: %+v", rules[3])
	}
}

func TestGrammarBuilder_Build_DuplicateRulesAreDropped(t *testing.T) {
	src := `
#name test;
#terminals a;
#nonterminals S A;
#start S;

S -> a A;
S -> a A;
`
	gram := buildGrammar(t, src)

	rules := gram.ruleSet.getAllRules()
	if len(rules) != 1 {
		t.Fatalf("unexpected rule count; want: %v, got: %v", 1, len(rules))
	}
}

func TestGrammarBuilder_SpecError(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		cause   error
	}{
		{
			caption: "a grammar needs a name",
			src: `
#terminals a;
#nonterminals S;
#start S;
S -> a;
`,
			cause: semErrNoGrammarName,
		},
		{
			caption: "a grammar needs at least one terminal symbol",
			src: `
#name test;
#nonterminals S;
#start S;
S -> a;
`,
			cause: semErrNoTerminal,
		},
		{
			caption: "a grammar needs at least one non-terminal symbol",
			src: `
#name test;
#terminals a;
#start S;
S -> a;
`,
			cause: semErrNoNonTerminal,
		},
		{
			caption: "a grammar needs a start symbol",
			src: `
#name test;
#terminals a;
#nonterminals S;
S -> a;
`,
			cause: semErrNoStart,
		},
		{
			caption: "a start symbol must be a declared non-terminal",
			src: `
#name test;
#terminals a;
#nonterminals S;
#start T;
S -> a;
`,
			cause: semErrUndeclaredStart,
		},
		{
			caption: "a terminal cannot be the start symbol",
			src: `
#name test;
#terminals a;
#nonterminals S;
#start a;
S -> a;
`,
			cause: semErrUndeclaredStart,
		},
		{
			caption: "terminals and non-terminals cannot share a name",
			src: `
#name test;
#terminals a S;
#nonterminals S;
#start S;
S -> a;
`,
			cause: semErrDuplicateName,
		},
		{
			caption: "a rule cannot use an undeclared symbol",
			src: `
#name test;
#terminals a b;
#nonterminals S;
#start S;
S -> c;
`,
			cause: semErrUndefinedSym,
		},
		{
			caption: "the LHS of a production must be a declared non-terminal",
			src: `
#name test;
#terminals a;
#nonterminals S;
#start S;
a -> a;
`,
			cause: semErrNonTermLHSNeeded,
		},
		{
			caption: "an undeclared LHS is rejected",
			src: `
#name test;
#terminals a;
#nonterminals S;
#start S;
T -> a;
`,
			cause: semErrNonTermLHSNeeded,
		},
		{
			caption: "a production body cannot have more than two symbols",
			src: `
#name test;
#terminals a;
#nonterminals S A;
#start S;
S -> a A A;
`,
			cause: semErrInvalidRuleShape,
		},
		{
			caption: "a production body cannot be empty",
			src: `
#name test;
#terminals a;
#nonterminals S;
#start S;
S -> | a;
`,
			cause: semErrInvalidRuleShape,
		},
		{
			caption: "ε cannot be mixed with other symbols",
			src: `
#name test;
#terminals a;
#nonterminals S A;
#start S;
S -> a ε;
`,
			cause: semErrInvalidRuleShape,
		},
		{
			caption: "a non-terminal cannot appear where a terminal is required",
			src: `
#name test;
#terminals a;
#nonterminals S A;
#start S;
S -> A;
`,
			cause: semErrInvalidRuleShape,
		},
		{
			caption: "a terminal cannot appear where a non-terminal is required",
			src: `
#name test;
#terminals a b;
#nonterminals S;
#start S;
S -> a b;
`,
			cause: semErrInvalidRuleShape,
		},
		{
			caption: "an unknown directive is rejected",
			src: `
#name test;
#terminals a;
#nonterminals S;
#start S;
#foo bar;
S -> a;
`,
			cause: semErrDirInvalidName,
		},
		{
			caption: "'name' takes just one parameter",
			src: `
#name test test2;
#terminals a;
#nonterminals S;
#start S;
S -> a;
`,
			cause: semErrDirInvalidParam,
		},
		{
			caption: "'start' takes just one parameter",
			src: `
#name test;
#terminals a;
#nonterminals S A;
#start S A;
S -> a;
`,
			cause: semErrDirInvalidParam,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			ast, err := spec.Parse(strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			b := GrammarBuilder{
				AST: ast,
			}
			_, err = b.Build()
			specErrs, ok := err.(verr.SpecErrors)
			if !ok {
				t.Fatalf("an error must occur; want: %v, got: %v", tt.cause, err)
			}
			for _, specErr := range specErrs {
				if specErr.Cause == tt.cause {
					return
				}
			}
			t.Fatalf("expected error was not reported; want: %v, got: %v", tt.cause, specErrs)
		})
	}
}

func TestGrammarBuilder_EmptyGrammar(t *testing.T) {
	// The parser rejects a source without productions, so an empty rule set
	// can only reach the builder via a programmatically constructed AST.
	ast := &spec.RootNode{
		Directives: []*spec.DirectiveNode{
			{
				Name:       "name",
				Parameters: []*spec.ParameterNode{{ID: "test"}},
			},
			{
				Name:       "terminals",
				Parameters: []*spec.ParameterNode{{ID: "a"}},
			},
			{
				Name:       "nonterminals",
				Parameters: []*spec.ParameterNode{{ID: "S"}},
			},
			{
				Name:       "start",
				Parameters: []*spec.ParameterNode{{ID: "S"}},
			},
		},
	}
	b := GrammarBuilder{
		AST: ast,
	}
	_, err := b.Build()
	specErrs, ok := err.(verr.SpecErrors)
	if !ok {
		t.Fatalf("an error must occur; want: %v, got: %v", semErrNoProduction, err)
	}
	for _, specErr := range specErrs {
		if specErr.Cause == semErrNoProduction {
			return
		}
	}
	t.Fatalf("expected error was not reported; want: %v, got: %v", semErrNoProduction, specErrs)
}

func buildGrammar(t *testing.T, src string) *Grammar {
	t.Helper()
	ast, err := spec.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	b := GrammarBuilder{
		AST: ast,
	}
	gram, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return gram
}
