package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	semErrNoGrammarName    = newSemanticError("name is missing")
	semErrNoTerminal       = newSemanticError("a grammar needs at least one terminal symbol")
	semErrNoNonTerminal    = newSemanticError("a grammar needs at least one non-terminal symbol")
	semErrNoStart          = newSemanticError("a grammar needs a start symbol")
	semErrNoProduction     = newSemanticError("a grammar needs at least one production")
	semErrUndeclaredStart  = newSemanticError("a start symbol must be a declared non-terminal")
	semErrDuplicateName    = newSemanticError("duplicate names are not allowed between terminals and non-terminals")
	semErrUndefinedSym     = newSemanticError("undefined symbol")
	semErrNonTermLHSNeeded = newSemanticError("the LHS of a production must be a declared non-terminal")
	semErrInvalidRuleShape = newSemanticError("a production body must have the form ε, a, or aB")
	semErrDirInvalidName   = newSemanticError("invalid directive name")
	semErrDirInvalidParam  = newSemanticError("invalid parameter")
)
