package spec

import (
	"bufio"
	"io"
)

type tokenKind string

const (
	tokenKindID              = tokenKind("id")
	tokenKindDirectiveMarker = tokenKind("#")
	tokenKindArrow           = tokenKind("->")
	tokenKindOr              = tokenKind("|")
	tokenKindSemicolon       = tokenKind(";")
	tokenKindEmpty           = tokenKind("ε")
	tokenKindEOF             = tokenKind("eof")
	tokenKindInvalid         = tokenKind("invalid")
)

// The keyword `epsilon` and the symbol `ε` are synonymous spellings of
// the empty production body.
const emptyKeyword = "epsilon"

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newIDToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindID,
		text: text,
		pos:  pos,
	}
}

func newEmptyToken(pos Position) *token {
	return &token{
		kind: tokenKindEmpty,
		pos:  pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind: tokenKindEOF,
		pos:  pos,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

type lexer struct {
	r *bufio.Reader

	// row and col are the position of the rune the lexer reads next.
	// Both are 1-based.
	row int
	col int

	prevRune   rune
	prevPos    Position
	prevEOF    bool
	pushedBack bool
}

func newLexer(src io.Reader) *lexer {
	return &lexer{
		r:   bufio.NewReader(src),
		row: 1,
		col: 1,
	}
}

func (l *lexer) next() (*token, error) {
	for {
		c, pos, eof, err := l.readRune()
		if err != nil {
			return nil, err
		}
		if eof {
			return newEOFToken(pos), nil
		}

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue
		case c == '/':
			c, _, eof, err := l.readRune()
			if err != nil {
				return nil, err
			}
			if eof || c != '/' {
				if !eof {
					l.unreadRune()
				}
				return newInvalidToken("/", pos), nil
			}
			err = l.skipToLineEnd()
			if err != nil {
				return nil, err
			}
			continue
		case c == '#':
			return newSymbolToken(tokenKindDirectiveMarker, pos), nil
		case c == '|':
			return newSymbolToken(tokenKindOr, pos), nil
		case c == ';':
			return newSymbolToken(tokenKindSemicolon, pos), nil
		case c == 'ε':
			return newEmptyToken(pos), nil
		case c == '-':
			c, _, eof, err := l.readRune()
			if err != nil {
				return nil, err
			}
			if eof || c != '>' {
				if !eof {
					l.unreadRune()
				}
				return newInvalidToken("-", pos), nil
			}
			return newSymbolToken(tokenKindArrow, pos), nil
		case isIDRune(c):
			text, err := l.readID(c)
			if err != nil {
				return nil, err
			}
			if text == emptyKeyword {
				return newEmptyToken(pos), nil
			}
			return newIDToken(text, pos), nil
		default:
			return newInvalidToken(string(c), pos), nil
		}
	}
}

func isIDRune(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func (l *lexer) readID(head rune) (string, error) {
	id := []rune{head}
	for {
		c, _, eof, err := l.readRune()
		if err != nil {
			return "", err
		}
		if eof {
			break
		}
		if !isIDRune(c) {
			l.unreadRune()
			break
		}
		id = append(id, c)
	}
	return string(id), nil
}

func (l *lexer) skipToLineEnd() error {
	for {
		c, _, eof, err := l.readRune()
		if err != nil {
			return err
		}
		if eof || c == '\n' {
			return nil
		}
	}
}

func (l *lexer) readRune() (rune, Position, bool, error) {
	if l.pushedBack {
		l.pushedBack = false
		return l.prevRune, l.prevPos, l.prevEOF, nil
	}

	pos := newPosition(l.row, l.col)
	c, _, err := l.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			l.prevRune = 0
			l.prevPos = pos
			l.prevEOF = true
			return 0, pos, true, nil
		}
		return 0, pos, false, err
	}

	if c == '\n' {
		l.row++
		l.col = 1
	} else {
		l.col++
	}

	l.prevRune = c
	l.prevPos = pos
	l.prevEOF = false

	return c, pos, false, nil
}

func (l *lexer) unreadRune() {
	l.pushedBack = true
}
