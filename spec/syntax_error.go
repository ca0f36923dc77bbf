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
	// lexical errors
	synErrInvalidIntLiteral = newSyntaxError("an integer literal must be a decimal or a 0x-prefixed hexadecimal number")

	// syntax errors
	synErrInvalidToken        = newSyntaxError("invalid token")
	synErrNoStateName         = newSyntaxError("a state block must start with a state name")
	synErrNoBlockArrow        = newSyntaxError("=> is missing between a state name and its block")
	synErrNoBlockOpen         = newSyntaxError("a state block must be enclosed in { }")
	synErrUnclosedBlock       = newSyntaxError("unclosed state block")
	synErrNoRuleArrow         = newSyntaxError("=> is missing between an input pattern and a transition")
	synErrNoTransition        = newSyntaxError("a rule needs a transition expression")
	synErrInvalidTransition   = newSyntaxError("a transition must be a single symbol or a (state, action) pair")
	synErrNoRangeEnd          = newSyntaxError("an inclusive range needs an upper bound")
	synErrByteOutOfRange      = newSyntaxError("a byte value must be between 0x00 and 0xFF")
	synErrRangeReversed       = newSyntaxError("the lower bound of a range must not exceed its upper bound")
	synErrUnsupportedMetaData = newSyntaxError("unsupported metadata")
	synErrNoMetaDataParam     = newSyntaxError("%name needs an identifier parameter")
)
