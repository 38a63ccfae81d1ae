package spec

import (
	"strings"
	"testing"

	verr "github.com/renfa/renfa/error"
)

func TestParse(t *testing.T) {
	directive := func(name string, params ...*ParameterNode) *DirectiveNode {
		return &DirectiveNode{
			Name:       name,
			Parameters: params,
		}
	}
	param := func(id string) *ParameterNode {
		return &ParameterNode{
			ID: id,
		}
	}
	production := func(lhs string, alts ...*AlternativeNode) *ProductionNode {
		return &ProductionNode{
			LHS: lhs,
			RHS: alts,
		}
	}
	alternative := func(elems ...*ElementNode) *AlternativeNode {
		return &AlternativeNode{
			Elements: elems,
		}
	}
	id := func(id string) *ElementNode {
		return &ElementNode{
			ID: id,
		}
	}
	empty := func() *ElementNode {
		return &ElementNode{
			Empty: true,
		}
	}

	tests := []struct {
		caption string
		src     string
		ast     *RootNode
		synErr  *SyntaxError
	}{
		{
			caption: "a grammar has directives and productions",
			src: `
#name test;
#terminals a b;
#nonterminals S A;
#start S;

S -> a A | b;
A -> epsilon;
`,
			ast: &RootNode{
				Directives: []*DirectiveNode{
					directive("name", param("test")),
					directive("terminals", param("a"), param("b")),
					directive("nonterminals", param("S"), param("A")),
					directive("start", param("S")),
				},
				Productions: []*ProductionNode{
					production("S",
						alternative(id("a"), id("A")),
						alternative(id("b")),
					),
					production("A",
						alternative(empty()),
					),
				},
			},
		},
		{
			caption: "directives and productions may interleave",
			src: `
#nonterminals S;
S -> a;
#terminals a;
#name test;
#start S;
`,
			ast: &RootNode{
				Directives: []*DirectiveNode{
					directive("nonterminals", param("S")),
					directive("terminals", param("a")),
					directive("name", param("test")),
					directive("start", param("S")),
				},
				Productions: []*ProductionNode{
					production("S",
						alternative(id("a")),
					),
				},
			},
		},
		{
			caption: "an alternative may be empty",
			src:     `S -> | a;`,
			ast: &RootNode{
				Productions: []*ProductionNode{
					production("S",
						alternative(),
						alternative(id("a")),
					),
				},
			},
		},
		{
			caption: "a grammar must have at least one production",
			src:     `#name test;`,
			synErr:  synErrNoProduction,
		},
		{
			caption: "a directive needs a name",
			src:     `# ;`,
			synErr:  synErrNoDirectiveName,
		},
		{
			caption: "a production needs the arrow",
			src:     `S a;`,
			synErr:  synErrNoArrow,
		},
		{
			caption: "a production needs the terminating semicolon",
			src:     `S -> a`,
			synErr:  synErrNoSemicolon,
		},
		{
			caption: "a production name is missing",
			src:     `-> a;`,
			synErr:  synErrNoProductionName,
		},
		{
			caption: "an invalid token aborts parsing",
			src:     `S -> a ? b;`,
			synErr:  synErrInvalidToken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			ast, err := Parse(strings.NewReader(tt.src))
			if tt.synErr != nil {
				specErr, ok := err.(*verr.SpecError)
				if !ok {
					t.Fatalf("unexpected error; want: %v, got: %v", tt.synErr, err)
				}
				if specErr.Cause != tt.synErr {
					t.Fatalf("unexpected error cause; want: %v, got: %v", tt.synErr, specErr.Cause)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testRootNode(t, ast, tt.ast)
		})
	}
}

func testRootNode(t *testing.T, root, expected *RootNode) {
	t.Helper()
	if len(root.Directives) != len(expected.Directives) {
		t.Fatalf("unexpected directive count; want: %v, got: %v", len(expected.Directives), len(root.Directives))
	}
	for i, dir := range root.Directives {
		testDirectiveNode(t, dir, expected.Directives[i])
	}
	if len(root.Productions) != len(expected.Productions) {
		t.Fatalf("unexpected production count; want: %v, got: %v", len(expected.Productions), len(root.Productions))
	}
	for i, prod := range root.Productions {
		testProductionNode(t, prod, expected.Productions[i])
	}
}

func testDirectiveNode(t *testing.T, dir, expected *DirectiveNode) {
	t.Helper()
	if dir.Name != expected.Name {
		t.Fatalf("unexpected directive name; want: %v, got: %v", expected.Name, dir.Name)
	}
	if len(dir.Parameters) != len(expected.Parameters) {
		t.Fatalf("unexpected parameter count; want: %v, got: %v", len(expected.Parameters), len(dir.Parameters))
	}
	for i, p := range dir.Parameters {
		if p.ID != expected.Parameters[i].ID {
			t.Fatalf("unexpected parameter; want: %v, got: %v", expected.Parameters[i].ID, p.ID)
		}
	}
}

func testProductionNode(t *testing.T, prod, expected *ProductionNode) {
	t.Helper()
	if prod.LHS != expected.LHS {
		t.Fatalf("unexpected LHS; want: %v, got: %v", expected.LHS, prod.LHS)
	}
	if len(prod.RHS) != len(expected.RHS) {
		t.Fatalf("unexpected alternative count; want: %v, got: %v", len(expected.RHS), len(prod.RHS))
	}
	for i, alt := range prod.RHS {
		if len(alt.Elements) != len(expected.RHS[i].Elements) {
			t.Fatalf("unexpected element count; want: %v, got: %v", len(expected.RHS[i].Elements), len(alt.Elements))
		}
		for j, elem := range alt.Elements {
			expElem := expected.RHS[i].Elements[j]
			if elem.ID != expElem.ID || elem.Empty != expElem.Empty {
				t.Fatalf("unexpected element; want: %+v, got: %+v", expElem, elem)
			}
		}
	}
}
