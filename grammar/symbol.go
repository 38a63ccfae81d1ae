package grammar

import "fmt"

type symbolKind string

const (
	symbolKindNonTerminal = symbolKind("non-terminal")
	symbolKindTerminal    = symbolKind("terminal")
)

func (k symbolKind) String() string {
	return string(k)
}

type symbolNum uint16

func (n symbolNum) Int() int {
	return int(n)
}

type symbol uint16

func (s symbol) String() string {
	kind, num := s.describe()
	var prefix string
	switch kind {
	case symbolKindNonTerminal:
		prefix = "n"
	case symbolKindTerminal:
		prefix = "t"
	default:
		prefix = "?"
	}
	return fmt.Sprintf("%v%v", prefix, num)
}

const (
	maskKindPart    = uint16(0x8000) // 1000 0000 0000 0000
	maskNonTerminal = uint16(0x0000) // 0000 0000 0000 0000
	maskTerminal    = uint16(0x8000) // 1000 0000 0000 0000

	maskNumberPart = uint16(0x7fff) // 0111 1111 1111 1111

	symbolNil = symbol(0) // 0000 0000 0000 0000

	symbolNumMin = symbolNum(1)
	symbolNumMax = symbolNum(0x7fff)
)

func newSymbol(kind symbolKind, num symbolNum) (symbol, error) {
	if num < symbolNumMin || num > symbolNumMax {
		return symbolNil, fmt.Errorf("a symbol number must be within %v to %v; passed: %v", symbolNumMin, symbolNumMax, num)
	}

	kindMask := maskNonTerminal
	if kind == symbolKindTerminal {
		kindMask = maskTerminal
	}
	return symbol(kindMask | uint16(num)), nil
}

func (s symbol) num() symbolNum {
	_, num := s.describe()
	return num
}

func (s symbol) byte() []byte {
	if s.isNil() {
		return []byte{0, 0}
	}
	return []byte{byte(uint16(s) >> 8), byte(uint16(s) & 0x00ff)}
}

func (s symbol) isNil() bool {
	_, num := s.describe()
	return num == 0
}

func (s symbol) isNonTerminal() bool {
	if s.isNil() {
		return false
	}
	kind, _ := s.describe()
	return kind == symbolKindNonTerminal
}

func (s symbol) isTerminal() bool {
	if s.isNil() {
		return false
	}
	return !s.isNonTerminal()
}

func (s symbol) describe() (symbolKind, symbolNum) {
	kind := symbolKindNonTerminal
	if uint16(s)&maskKindPart > 0 {
		kind = symbolKindTerminal
	}
	num := symbolNum(uint16(s) & maskNumberPart)
	return kind, num
}

type symbolTable struct {
	text2Sym     map[string]symbol
	sym2Text     map[symbol]string
	nonTermTexts []string
	termTexts    []string
	nonTermNum   symbolNum
	termNum      symbolNum
}

type symbolTableWriter struct {
	*symbolTable
}

type symbolTableReader struct {
	*symbolTable
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		text2Sym: map[string]symbol{},
		sym2Text: map[symbol]string{},
		termTexts: []string{
			"", // Nil
		},
		nonTermTexts: []string{
			"", // Nil
		},
		nonTermNum: symbolNumMin,
		termNum:    symbolNumMin,
	}
}

func (t *symbolTable) writer() *symbolTableWriter {
	return &symbolTableWriter{
		symbolTable: t,
	}
}

func (t *symbolTable) reader() *symbolTableReader {
	return &symbolTableReader{
		symbolTable: t,
	}
}

func (w *symbolTableWriter) registerNonTerminalSymbol(text string) (symbol, error) {
	if sym, ok := w.text2Sym[text]; ok {
		if !sym.isNonTerminal() {
			return symbolNil, fmt.Errorf("symbol '%v' is already defined as a %v", text, symbolKindTerminal)
		}
		return sym, nil
	}
	sym, err := newSymbol(symbolKindNonTerminal, w.nonTermNum)
	if err != nil {
		return symbolNil, err
	}
	w.nonTermNum++
	w.text2Sym[text] = sym
	w.sym2Text[sym] = text
	w.nonTermTexts = append(w.nonTermTexts, text)
	return sym, nil
}

func (w *symbolTableWriter) registerTerminalSymbol(text string) (symbol, error) {
	if sym, ok := w.text2Sym[text]; ok {
		if !sym.isTerminal() {
			return symbolNil, fmt.Errorf("symbol '%v' is already defined as a %v", text, symbolKindNonTerminal)
		}
		return sym, nil
	}
	sym, err := newSymbol(symbolKindTerminal, w.termNum)
	if err != nil {
		return symbolNil, err
	}
	w.termNum++
	w.text2Sym[text] = sym
	w.sym2Text[sym] = text
	w.termTexts = append(w.termTexts, text)
	return sym, nil
}

func (r *symbolTableReader) toSymbol(text string) (symbol, bool) {
	if sym, ok := r.text2Sym[text]; ok {
		return sym, true
	}
	return symbolNil, false
}

func (r *symbolTableReader) toText(sym symbol) (string, bool) {
	text, ok := r.sym2Text[sym]
	return text, ok
}

// terminalTexts returns the terminal texts indexed by symbol number.
// The entry 0 is reserved for the nil symbol.
func (r *symbolTableReader) terminalTexts() []string {
	return r.termTexts
}

// nonTerminalTexts returns the non-terminal texts indexed by symbol number.
// The entry 0 is reserved for the nil symbol.
func (r *symbolTableReader) nonTerminalTexts() []string {
	return r.nonTermTexts
}

func (r *symbolTableReader) terminalCount() int {
	return len(r.termTexts) - 1
}

func (r *symbolTableReader) nonTerminalCount() int {
	return len(r.nonTermTexts) - 1
}
