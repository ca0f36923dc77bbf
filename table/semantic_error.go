package table

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
	semErrUndefinedSymbol     = newSemanticError("undefined symbol")
	semErrNotAState           = newSemanticError("a state block must be named by a state")
	semErrAmbiguousTransition = newSemanticError("a transition pair must contain exactly one state and one action")
)
