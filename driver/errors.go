package driver

import "strings"

// MissingFunctionError reports that a rule or philosophy's requires.functions
// names a function the registry does not have — a driver-only preflight
// diagnostic (§4.8 expansion), clearer than letting evaluation fail deep
// inside a quantifier with a raw NameError/UnknownFunction. The evaluator
// itself never raises this kind (§7 expansion note). ExecutePhilosophy and
// ExecutePhilosophySelfProof also return it when a constituent rule name
// cannot be resolved; such entries in Missing carry a "rule:" prefix.
type MissingFunctionError struct {
	Document string
	Missing  []string
}

func (e *MissingFunctionError) Error() string {
	return e.Document + ": missing required function(s): " + strings.Join(e.Missing, ", ")
}
