package spec

import (
	"io"

	verr "github.com/renfa/renfa/error"
)

type RootNode struct {
	Directives  []*DirectiveNode
	Productions []*ProductionNode
}

type DirectiveNode struct {
	Name       string
	Parameters []*ParameterNode
	Pos        Position
}

type ParameterNode struct {
	ID  string
	Pos Position
}

type ProductionNode struct {
	LHS string
	RHS []*AlternativeNode
	Pos Position
}

type AlternativeNode struct {
	Elements []*ElementNode
	Pos      Position
}

type ElementNode struct {
	ID    string
	Empty bool
	Pos   Position
}

func Parse(src io.Reader) (*RootNode, error) {
	p := newParser(src)
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
}

func newParser(src io.Reader) *parser {
	return &parser{
		lex: newLexer(src),
	}
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			retErr = err.(error)
			return
		}
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	root := &RootNode{}
	for {
		if p.consume(tokenKindEOF) {
			break
		}
		if p.consume(tokenKindDirectiveMarker) {
			root.Directives = append(root.Directives, p.parseDirective())
			continue
		}
		root.Productions = append(root.Productions, p.parseProduction())
	}
	if len(root.Productions) == 0 {
		raiseSyntaxError(synErrNoProduction, p.lastPos())
	}
	return root
}

func (p *parser) parseDirective() *DirectiveNode {
	dirPos := p.lastTok.pos
	if !p.consume(tokenKindID) {
		raiseSyntaxError(synErrNoDirectiveName, p.errPos())
	}
	name := p.lastTok.text
	var params []*ParameterNode
	for p.consume(tokenKindID) {
		params = append(params, &ParameterNode{
			ID:  p.lastTok.text,
			Pos: p.lastTok.pos,
		})
	}
	if !p.consume(tokenKindSemicolon) {
		raiseSyntaxError(synErrNoSemicolon, p.errPos())
	}
	return &DirectiveNode{
		Name:       name,
		Parameters: params,
		Pos:        dirPos,
	}
}

func (p *parser) parseProduction() *ProductionNode {
	if !p.consume(tokenKindID) {
		raiseSyntaxError(synErrNoProductionName, p.errPos())
	}
	lhs := p.lastTok.text
	lhsPos := p.lastTok.pos
	if !p.consume(tokenKindArrow) {
		raiseSyntaxError(synErrNoArrow, p.errPos())
	}
	alt := p.parseAlternative()
	rhs := []*AlternativeNode{alt}
	for {
		if !p.consume(tokenKindOr) {
			break
		}
		alt := p.parseAlternative()
		rhs = append(rhs, alt)
	}
	if !p.consume(tokenKindSemicolon) {
		raiseSyntaxError(synErrNoSemicolon, p.errPos())
	}
	return &ProductionNode{
		LHS: lhs,
		RHS: rhs,
		Pos: lhsPos,
	}
}

func (p *parser) parseAlternative() *AlternativeNode {
	altPos := p.errPos()
	var elems []*ElementNode
	for {
		elem := p.parseElement()
		if elem == nil {
			break
		}
		elems = append(elems, elem)
	}
	return &AlternativeNode{
		Elements: elems,
		Pos:      altPos,
	}
}

func (p *parser) parseElement() *ElementNode {
	switch {
	case p.consume(tokenKindID):
		return &ElementNode{
			ID:  p.lastTok.text,
			Pos: p.lastTok.pos,
		}
	case p.consume(tokenKindEmpty):
		return &ElementNode{
			Empty: true,
			Pos:   p.lastTok.pos,
		}
	}
	return nil
}

func (p *parser) consume(expected tokenKind) bool {
	var tok *token
	var err error
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		tok, err = p.lex.next()
		if err != nil {
			panic(err)
		}
	}
	if tok.kind == tokenKindInvalid {
		p.lastTok = tok
		raiseSyntaxError(synErrInvalidToken, tok.pos)
	}
	if tok.kind == expected {
		p.lastTok = tok
		return true
	}
	p.peekedTok = tok

	return false
}

// errPos returns the position of the token that caused the parser to stop,
// that is, the token waiting in the peek buffer.
func (p *parser) errPos() Position {
	if p.peekedTok != nil {
		return p.peekedTok.pos
	}
	return p.lastPos()
}

func (p *parser) lastPos() Position {
	if p.lastTok != nil {
		return p.lastTok.pos
	}
	return newPosition(1, 1)
}

func raiseSyntaxError(synErr *SyntaxError, pos Position) {
	panic(&verr.SpecError{
		Cause: synErr,
		Row:   pos.Row,
		Col:   pos.Col,
	})
}
