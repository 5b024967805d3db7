// Package driver implements the rule/philosophy driver (C8): it takes an
// already-loaded Document — whatever produced it, a YAML file via
// cmd/logicdemo or a test fixture built by hand — and drives the
// evaluator with the conventional bindings spec.md §4.8 names. Grounded
// on conformance/schema.go's TestSuite/TestCase/Expectation yaml-tagged
// structs and conformance/runner.go's Runner/Run(test) TestResult shape,
// adapted from "run a MOO expression against a database fixture" to "run
// a logic expression against a repository-introspection environment".
package driver

import (
	"github.com/riverside/logicengine/ast"
	"github.com/riverside/logicengine/value"
)

// Document is the top-level unit the driver consumes: a rule document, a
// philosophy document, or (commonly in a shared file) both. Only the
// plain metadata fields are yaml-tagged for direct unmarshaling — Logic
// fields hold an already-built ast.Node, assembled by whatever external
// loader turns a rule file's expression syntax into this package's AST
// (that translation is explicitly out of scope, spec.md §1 Non-goals).
type Document struct {
	Rule       *Rule       `yaml:"rule,omitempty"`
	Philosophy *Philosophy `yaml:"philosophy,omitempty"`
}

// Requirements names functions a rule or philosophy's logic depends on,
// checked with CheckRequiredFunctions before evaluation (§4.8 expansion).
// Grounded on conformance.Requirements.Features.
type Requirements struct {
	Functions []string `yaml:"functions,omitempty"`
}

// Rule is a single named logical formula plus its unit tests and
// self-validation block (spec.md §4.8: rule.logic, rule.unit_tests,
// rule.self_validation.logic).
type Rule struct {
	Name           string         `yaml:"name"`
	Description    string         `yaml:"description,omitempty"`
	Requires       Requirements   `yaml:"requires,omitempty"`
	Logic          ast.Node       `yaml:"-"`
	UnitTests      []UnitTest     `yaml:"-"`
	SelfValidation SelfValidation `yaml:"-"`
}

// UnitTest binds TestData into a fresh environment, evaluates TestLogic,
// and compares the result to ExpectedResult by exact structural equality
// (spec.md §4.8: "must match exactly").
type UnitTest struct {
	Name           string
	TestData       map[string]value.Value
	TestLogic      ast.Node
	ExpectedResult value.Value
}

// SelfValidation is evaluated with rule/rule_logic already bound, the
// rule's own claim about itself (spec.md §4.8).
type SelfValidation struct {
	Logic ast.Node
}

// Philosophy composes named constituent rules into a higher-level formula
// (spec.md §1: "a philosophy is a higher-level formula composed of
// rules"). Rules names the constituent rule IDs the driver resolves and
// binds into the "rules" map entry (§4.8 expansion), grounded on
// conformance.Requirements.Features for the "what this needs" shape.
type Philosophy struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Requires    Requirements `yaml:"requires,omitempty"`
	Rules       []string     `yaml:"rules,omitempty"`
	FormalLogic FormalLogic  `yaml:"-"`
	SelfProof   SelfProof    `yaml:"-"`
}

// FormalLogic wraps the philosophy's conclusion (spec.md §4.8:
// philosophy.formal_logic.conclusion.logic).
type FormalLogic struct {
	Conclusion Conclusion
}

// Conclusion holds the logic expression execute_philosophy evaluates.
type Conclusion struct {
	Logic ast.Node
}

// SelfProof is evaluated with the same bindings as the conclusion, the
// philosophy's own claim about itself (spec.md §4.8).
type SelfProof struct {
	Logic ast.Node
}
