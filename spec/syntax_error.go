package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	synErrInvalidToken     = newSyntaxError("invalid token")
	synErrNoProduction     = newSyntaxError("a grammar must have at least one production")
	synErrNoProductionName = newSyntaxError("a production name is missing")
	synErrNoArrow          = newSyntaxError("the arrow '->' must precede production bodies")
	synErrNoSemicolon      = newSyntaxError("the semicolon is missing at the last of a declaration")
	synErrNoDirectiveName  = newSyntaxError("a directive needs a name")
)
