package engine

import "fmt"

// ErrorKind is the taxonomy of structured errors the evaluator can raise
// (§7). Every evaluator path wraps a non-LogicError cause as a
// LogicError; the original cause is preserved for inspection.
type ErrorKind string

const (
	KindTypeError      ErrorKind = "TypeError"
	KindNameError      ErrorKind = "NameError"
	KindArityError     ErrorKind = "ArityError"
	KindUnknownFunc    ErrorKind = "UnknownFunction"
	KindUnknownOp      ErrorKind = "UnknownOperator"
	KindDivByZero      ErrorKind = "DivisionByZero"
	KindFixpointDiverge ErrorKind = "FixpointDiverged"
	KindFixpointIterFail ErrorKind = "FixpointIterationFailed"
	KindMalformed      ErrorKind = "MalformedExpression"
)

// LogicError is the single error shape surfaced to hosts: a kind, a
// message, the offending node's truncated rendering, and the original
// cause when one exists (§7: "a tagged error with kind + message").
type LogicError struct {
	Kind    ErrorKind
	Message string
	Node    string
	Cause   error
}

func (e *LogicError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Node)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *LogicError) Unwrap() error { return e.Cause }

func newLogicError(kind ErrorKind, node string, message string, cause error) *LogicError {
	return &LogicError{Kind: kind, Message: message, Node: node, Cause: cause}
}

// wrap turns any non-LogicError into a LogicError carrying node's
// rendering and the cause. A LogicError is returned unchanged so nested
// eval calls don't pile up redundant wrapping.
func wrap(err error, node string) error {
	if err == nil {
		return nil
	}
	if le, ok := err.(*LogicError); ok {
		return le
	}
	return newLogicError(KindTypeError, node, err.Error(), err)
}
