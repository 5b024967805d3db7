package driver

import (
	"fmt"

	"github.com/riverside/logicengine/ast"
	"github.com/riverside/logicengine/engine"
	"github.com/riverside/logicengine/env"
	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/value"
)

// CheckRequiredFunctions reports a *MissingFunctionError listing any name
// in req.Functions the registry does not have, or nil when all are
// present — the preflight step §4.8's expansion adds ahead of
// ExecuteRule/ExecutePhilosophy (grounded on conformance.Requirements,
// checked the way runner.go pre-validates a suite's Requires.Features
// before running any test in it).
func CheckRequiredFunctions(documentName string, req Requirements, reg *registry.Registry) error {
	var missing []string
	for _, name := range req.Functions {
		if !reg.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingFunctionError{Document: documentName, Missing: missing}
	}
	return nil
}

// ExecuteRule evaluates doc.Rule.Logic, first checking Requires.Functions
// and binding "rule" (the rule's own metadata, introspectable) and
// "rule_logic" (the rule's logic as an AST-as-value tree) into
// environment for the logic to reference (spec.md §4.8).
func ExecuteRule(e *engine.Engine, doc *Document, environment *env.Environment) (value.Value, error) {
	if doc.Rule == nil {
		return nil, fmt.Errorf("document has no rule")
	}
	rule := doc.Rule
	if err := CheckRequiredFunctions(rule.Name, rule.Requires, e.Registry); err != nil {
		return nil, err
	}

	environment.Push()
	defer environment.Pop()
	bindRule(environment, rule)

	return e.Eval(rule.Logic, environment)
}

// UnitTestReport is the per-test outcome execute_rule_unit_tests reports,
// grounded on conformance.TestResult's Passed/Error shape.
type UnitTestReport struct {
	Name   string
	Passed bool
	Got    value.Value
	Error  error
}

// ExecuteRuleUnitTests runs every entry of doc.Rule.UnitTests in its own
// fresh environment (spec.md §4.8): bind TestData, evaluate TestLogic,
// compare to ExpectedResult by exact structural equality. It returns
// overall pass/fail (false on the first mismatch or error, matching
// spec.md's "first mismatch yields overall false") alongside the full
// per-test report so a host can show which test failed.
func ExecuteRuleUnitTests(e *engine.Engine, doc *Document) (bool, []UnitTestReport) {
	if doc.Rule == nil {
		return false, nil
	}
	reports := make([]UnitTestReport, 0, len(doc.Rule.UnitTests))
	overall := true
	for _, ut := range doc.Rule.UnitTests {
		environment := env.New()
		for name, v := range ut.TestData {
			environment.Bind(name, v)
		}
		got, err := e.Eval(ut.TestLogic, environment)
		report := UnitTestReport{Name: ut.Name, Got: got, Error: err}
		if err != nil {
			report.Passed = false
		} else {
			report.Passed = value.Equal(got, ut.ExpectedResult)
		}
		if !report.Passed {
			overall = false
		}
		reports = append(reports, report)
	}
	return overall, reports
}

// ExecuteRuleSelfValidation evaluates doc.Rule.SelfValidation.Logic with
// rule/rule_logic bound, same as ExecuteRule (spec.md §4.8).
func ExecuteRuleSelfValidation(e *engine.Engine, doc *Document) (bool, error) {
	if doc.Rule == nil || doc.Rule.SelfValidation.Logic == nil {
		return false, fmt.Errorf("rule has no self_validation block")
	}
	environment := env.New()
	bindRule(environment, doc.Rule)

	v, err := e.Eval(doc.Rule.SelfValidation.Logic, environment)
	if err != nil {
		return false, err
	}
	return value.AsBool(v)
}

// RuleLookup resolves a constituent rule name to its definition — the
// driver needs one to fill in Philosophy.Rules (§4.8 expansion); hosts
// typically back it with a map[string]*Rule built from every rule
// document they loaded alongside the philosophy.
type RuleLookup func(name string) (*Rule, bool)

// IntrospectionOverrides supplies the conventional file_organization /
// code_structure / code_quality maps a philosophy's logic reads (spec.md
// §4.8: "each a map of named booleans the host may override"). A nil
// entry binds an empty map rather than leaving the name unbound.
type IntrospectionOverrides struct {
	FileOrganization map[string]bool
	CodeStructure    map[string]bool
	CodeQuality      map[string]bool
}

// ExecutePhilosophy evaluates doc.Philosophy.FormalLogic.Conclusion.Logic
// against a caller-supplied environment (spec.md §4.8:
// execute_philosophy(doc, env) → Value, same shape as ExecuteRule), with
// philosophy/formal_logic bound, the conventional introspection maps
// bound (overridden by overrides when given), and "rules" resolved from
// doc.Philosophy.Rules via lookup — each constituent rule's logic exposed
// as rules.<name> so the conclusion can reference
// get_field(rules, "naming_convention") (§4.8 expansion).
func ExecutePhilosophy(e *engine.Engine, doc *Document, environment *env.Environment, overrides IntrospectionOverrides, lookup RuleLookup) (value.Value, error) {
	if doc.Philosophy == nil {
		return nil, fmt.Errorf("document has no philosophy")
	}
	phil := doc.Philosophy
	if err := CheckRequiredFunctions(phil.Name, phil.Requires, e.Registry); err != nil {
		return nil, err
	}

	environment.Push()
	defer environment.Pop()
	if err := bindPhilosophy(environment, phil, overrides, lookup); err != nil {
		return nil, err
	}

	return e.Eval(phil.FormalLogic.Conclusion.Logic, environment)
}

// ExecutePhilosophySelfProof evaluates doc.Philosophy.SelfProof.Logic
// under the same bindings as ExecutePhilosophy (spec.md §4.8).
func ExecutePhilosophySelfProof(e *engine.Engine, doc *Document, overrides IntrospectionOverrides, lookup RuleLookup) (bool, error) {
	if doc.Philosophy == nil || doc.Philosophy.SelfProof.Logic == nil {
		return false, fmt.Errorf("philosophy has no self_proof block")
	}
	phil := doc.Philosophy

	environment := env.New()
	if err := bindPhilosophy(environment, phil, overrides, lookup); err != nil {
		return false, err
	}

	v, err := e.Eval(phil.SelfProof.Logic, environment)
	if err != nil {
		return false, err
	}
	return value.AsBool(v)
}

func bindRule(environment *env.Environment, rule *Rule) {
	environment.Bind("rule", ruleMetaValue(rule))
	environment.Bind("rule_logic", ast.ToValue(rule.Logic))
}

func ruleMetaValue(rule *Rule) value.Value {
	return value.NewMap([]string{"name", "description"}, map[string]value.Value{
		"name":        value.Str{V: rule.Name},
		"description": value.Str{V: rule.Description},
	})
}

func bindPhilosophy(environment *env.Environment, phil *Philosophy, overrides IntrospectionOverrides, lookup RuleLookup) error {
	environment.Bind("philosophy", value.NewMap([]string{"name", "description"}, map[string]value.Value{
		"name":        value.Str{V: phil.Name},
		"description": value.Str{V: phil.Description},
	}))
	environment.Bind("formal_logic", ast.ToValue(phil.FormalLogic.Conclusion.Logic))
	environment.Bind("file_organization", boolMap(overrides.FileOrganization))
	environment.Bind("code_structure", boolMap(overrides.CodeStructure))
	environment.Bind("code_quality", boolMap(overrides.CodeQuality))

	rulesKeys := make([]string, 0, len(phil.Rules))
	rulesValues := make(map[string]value.Value, len(phil.Rules))
	for _, name := range phil.Rules {
		rule, ok := lookup(name)
		if !ok {
			return &MissingFunctionError{Document: phil.Name, Missing: []string{"rule:" + name}}
		}
		rulesKeys = append(rulesKeys, name)
		rulesValues[name] = ast.ToValue(rule.Logic)
	}
	environment.Bind("rules", value.NewMap(rulesKeys, rulesValues))
	return nil
}

func boolMap(m map[string]bool) value.Value {
	keys := make([]string, 0, len(m))
	values := make(map[string]value.Value, len(m))
	for k, v := range m {
		keys = append(keys, k)
		values[k] = value.Bool{V: v}
	}
	return value.NewMap(keys, values)
}
