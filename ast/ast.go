// Package ast defines the expression tree the evaluator consumes (C3):
// the eight constructors of spec.md §3, exhaustive and immutable once
// built by the external loader. The evaluator pattern-matches on the
// concrete type the way the teacher's Evaluator.Eval switches on
// parser.Node (eval/eval.go), but over this package's logic-shaped
// node set rather than a MOO expression grammar.
package ast

import (
	"fmt"
	"strings"

	"github.com/riverside/logicengine/value"
)

// Node is implemented by every AST constructor.
type Node interface {
	// Canonical renders a deterministic structural form used as the
	// evaluation cache key (§4.6, §9 open question 4). Two nodes that are
	// structurally identical render identically; nodes differing in any
	// field render differently.
	Canonical() string
	// Render renders a short, human-readable form for trace entries and
	// error messages (§4.7, §7). Truncation is the caller's job.
	Render() string
	// FreeVars reports the set of Var names the node can observe that are
	// not bound by the node itself — used by the cache to decide whether
	// a sub-expression is closed (§4.6: "no Var node" is the conservative
	// special case; FreeVars generalizes it to account for Quantifier and
	// Fixpoint's own binder).
	FreeVars() map[string]struct{}
}

// Literal wraps a constant Value.
type Literal struct {
	Val value.Value
}

func (l Literal) Canonical() string { return "Literal(" + l.Val.Display() + ")" }
func (l Literal) Render() string    { return l.Val.Display() }
func (l Literal) FreeVars() map[string]struct{} { return map[string]struct{}{} }

// Var references a bound name.
type Var struct {
	Name string
}

func (v Var) Canonical() string { return "Var(" + v.Name + ")" }
func (v Var) Render() string    { return v.Name }
func (v Var) FreeVars() map[string]struct{} {
	return map[string]struct{}{v.Name: {}}
}

// OperatorKind enumerates the logical/comparison operators (§3).
// Implies is the §9-resolved extension: a implies b ≡ (not a) or b.
type OperatorKind int

const (
	OpAnd OperatorKind = iota
	OpOr
	OpNot
	OpEquals
	OpLessThan
	OpLessEqual
	OpGreaterThan
	OpGreaterEqual
	OpImplies
)

func (k OperatorKind) String() string {
	switch k {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpNot:
		return "not"
	case OpEquals:
		return "equals"
	case OpLessThan:
		return "less_than"
	case OpLessEqual:
		return "less_equal"
	case OpGreaterThan:
		return "greater_than"
	case OpGreaterEqual:
		return "greater_equal"
	case OpImplies:
		return "implies"
	default:
		return "unknown_operator"
	}
}

// Operator applies an operator to its operands. not is unary; the rest
// are binary (§3).
type Operator struct {
	Op   OperatorKind
	Args []Node
}

func (o Operator) Canonical() string {
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = a.Canonical()
	}
	return fmt.Sprintf("Operator(%s,[%s])", o.Op, strings.Join(parts, ","))
}

func (o Operator) Render() string {
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = a.Render()
	}
	return fmt.Sprintf("%s(%s)", o.Op, strings.Join(parts, ", "))
}

func (o Operator) FreeVars() map[string]struct{} {
	return unionFree(o.Args...)
}

// Call invokes a registered function by name.
type Call struct {
	Name string
	Args []Node
}

func (c Call) Canonical() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.Canonical()
	}
	return fmt.Sprintf("Call(%s,[%s])", c.Name, strings.Join(parts, ","))
}

func (c Call) Render() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.Render()
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(parts, ", "))
}

func (c Call) FreeVars() map[string]struct{} {
	return unionFree(c.Args...)
}

// QuantifierKind distinguishes forall from exists.
type QuantifierKind int

const (
	Forall QuantifierKind = iota
	Exists
)

func (k QuantifierKind) String() string {
	if k == Forall {
		return "forall"
	}
	return "exists"
}

// Quantifier binds Var within Condition while iterating Domain (§3, §4.5).
// The binding shadows only within Condition; it is not visible to Domain
// and is discarded once the quantifier returns.
type Quantifier struct {
	Kind      QuantifierKind
	Var       string
	Domain    Node
	Condition Node
}

func (q Quantifier) Canonical() string {
	return fmt.Sprintf("Quantifier(%s,%s,%s,%s)", q.Kind, q.Var, q.Domain.Canonical(), q.Condition.Canonical())
}

func (q Quantifier) Render() string {
	return fmt.Sprintf("%s %s in %s : %s", q.Kind, q.Var, q.Domain.Render(), q.Condition.Render())
}

func (q Quantifier) FreeVars() map[string]struct{} {
	free := unionFree(q.Domain)
	for name := range q.Condition.FreeVars() {
		if name != q.Var {
			free[name] = struct{}{}
		}
	}
	return free
}

// If is a conditional with an optional else branch.
type If struct {
	Cond Node
	Then Node
	Else Node // nil means "absent"
}

func (i If) Canonical() string {
	elseC := "<none>"
	if i.Else != nil {
		elseC = i.Else.Canonical()
	}
	return fmt.Sprintf("If(%s,%s,%s)", i.Cond.Canonical(), i.Then.Canonical(), elseC)
}

func (i If) Render() string {
	if i.Else != nil {
		return fmt.Sprintf("if %s then %s else %s", i.Cond.Render(), i.Then.Render(), i.Else.Render())
	}
	return fmt.Sprintf("if %s then %s", i.Cond.Render(), i.Then.Render())
}

func (i If) FreeVars() map[string]struct{} {
	if i.Else != nil {
		return unionFree(i.Cond, i.Then, i.Else)
	}
	return unionFree(i.Cond, i.Then)
}

// FixpointStrategy selects the convergence discipline (§4.5).
type FixpointStrategy int

const (
	StrategyStandard FixpointStrategy = iota
	StrategyLeast                     // mu
	StrategyGreatest                  // nu
	StrategyExact
	StrategyNumeric
)

func (s FixpointStrategy) String() string {
	switch s {
	case StrategyStandard:
		return "standard"
	case StrategyLeast:
		return "least"
	case StrategyGreatest:
		return "greatest"
	case StrategyExact:
		return "exact"
	case StrategyNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Fixpoint approximates a value x with x = f(x) by iterating Expr, which
// observes the current approximation through Var (§3, §4.5). Initial,
// MaxIterations, Strategy, and Tolerance are optional; zero values mean
// "use the per-strategy default" (Initial, MaxIterations, Strategy) or
// "exact convergence" (Tolerance, which only the numeric strategy reads).
type Fixpoint struct {
	Var           string
	Expr          Node
	Initial       Node // nil means "use strategy default"
	MaxIterations int  // 0 means "use default of 1000"
	Strategy      FixpointStrategy
	Tolerance     int64 // numeric strategy: converged when |current-next| <= Tolerance
}

func (f Fixpoint) Canonical() string {
	initC := "<default>"
	if f.Initial != nil {
		initC = f.Initial.Canonical()
	}
	return fmt.Sprintf("Fixpoint(%s,%s,%s,%d,%s,%d)", f.Var, f.Expr.Canonical(), initC, f.MaxIterations, f.Strategy, f.Tolerance)
}

func (f Fixpoint) Render() string {
	return fmt.Sprintf("fixpoint{%s=%s, strategy=%s}", f.Var, f.Expr.Render(), f.Strategy)
}

func (f Fixpoint) FreeVars() map[string]struct{} {
	free := map[string]struct{}{}
	for name := range f.Expr.FreeVars() {
		if name != f.Var {
			free[name] = struct{}{}
		}
	}
	if f.Initial != nil {
		for name := range f.Initial.FreeVars() {
			free[name] = struct{}{}
		}
	}
	return free
}

// GetField projects a map's value at Key, or null if absent.
type GetField struct {
	Obj Node
	Key string
}

func (g GetField) Canonical() string { return fmt.Sprintf("GetField(%s,%s)", g.Obj.Canonical(), g.Key) }
func (g GetField) Render() string    { return fmt.Sprintf("%s.%s", g.Obj.Render(), g.Key) }
func (g GetField) FreeVars() map[string]struct{} { return unionFree(g.Obj) }

// HasField reports whether Key is present on Obj.
type HasField struct {
	Obj Node
	Key string
}

func (h HasField) Canonical() string {
	return fmt.Sprintf("HasField(%s,%s)", h.Obj.Canonical(), h.Key)
}
func (h HasField) Render() string { return fmt.Sprintf("has_field(%s, %s)", h.Obj.Render(), h.Key) }
func (h HasField) FreeVars() map[string]struct{} { return unionFree(h.Obj) }

func unionFree(nodes ...Node) map[string]struct{} {
	out := map[string]struct{}{}
	for _, n := range nodes {
		for name := range n.FreeVars() {
			out[name] = struct{}{}
		}
	}
	return out
}

// RenderTruncated renders n and truncates to at most k runes, appending
// an ellipsis when truncated — used for LogicError node renderings (§7).
func RenderTruncated(n Node, k int) string {
	r := n.Render()
	runes := []rune(r)
	if len(runes) <= k {
		return r
	}
	return string(runes[:k]) + "..."
}
