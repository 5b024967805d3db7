package cache

import "github.com/riverside/logicengine/ast"

// Key returns the canonical cache key for n and whether n is closed
// (contains no free Var — §4.6, §9 open question 4). A node that binds
// its own variable (Quantifier, Fixpoint) is closed as long as nothing
// outside that binder is referenced, matching ast.Node.FreeVars.
func Key(n ast.Node) (key string, closed bool) {
	return n.Canonical(), len(n.FreeVars()) == 0
}
