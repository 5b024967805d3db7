package driver_test

import (
	"testing"

	"github.com/riverside/logicengine/ast"
	"github.com/riverside/logicengine/driver"
	"github.com/riverside/logicengine/engine"
	"github.com/riverside/logicengine/env"
	"github.com/riverside/logicengine/functions"
	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/value"
)

func newTestEngine() *engine.Engine {
	r := registry.New()
	functions.RegisterCore(r)
	return engine.New(r)
}

func sampleRule() *driver.Rule {
	return &driver.Rule{
		Name:        "no_todo_markers",
		Description: "repositories should not carry unresolved TODO markers",
		Requires:    driver.Requirements{Functions: []string{"contains"}},
		Logic: ast.Operator{Op: ast.OpEquals, Args: []ast.Node{
			ast.GetField{Obj: ast.Var{Name: "rule"}, Key: "name"},
			ast.Literal{Val: value.Str{V: "no_todo_markers"}},
		}},
		UnitTests: []driver.UnitTest{
			{
				Name:           "positive_count_is_greater_than_zero",
				TestData:       map[string]value.Value{"x": value.Int{V: 5}},
				TestLogic:      ast.Operator{Op: ast.OpGreaterThan, Args: []ast.Node{ast.Var{Name: "x"}, ast.Literal{Val: value.Int{V: 0}}}},
				ExpectedResult: value.Bool{V: true},
			},
			{
				Name:           "zero_is_not_greater_than_zero",
				TestData:       map[string]value.Value{"x": value.Int{V: 0}},
				TestLogic:      ast.Operator{Op: ast.OpGreaterThan, Args: []ast.Node{ast.Var{Name: "x"}, ast.Literal{Val: value.Int{V: 0}}}},
				ExpectedResult: value.Bool{V: false},
			},
		},
		SelfValidation: driver.SelfValidation{
			Logic: ast.Operator{Op: ast.OpEquals, Args: []ast.Node{
				ast.GetField{Obj: ast.Var{Name: "rule"}, Key: "name"},
				ast.Literal{Val: value.Str{V: "no_todo_markers"}},
			}},
		},
	}
}

func samplePhilosophy() *driver.Philosophy {
	return &driver.Philosophy{
		Name:  "clean_repository",
		Rules: []string{"no_todo_markers"},
		FormalLogic: driver.FormalLogic{
			Conclusion: driver.Conclusion{
				Logic: ast.HasField{Obj: ast.Var{Name: "rules"}, Key: "no_todo_markers"},
			},
		},
		SelfProof: driver.SelfProof{
			Logic: ast.Literal{Val: value.Bool{V: true}},
		},
	}
}

func TestExecuteRule(t *testing.T) {
	e := newTestEngine()
	doc := &driver.Document{Rule: sampleRule()}
	v, err := driver.ExecuteRule(e, doc, env.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.(value.Bool).V {
		t.Error("expected rule logic to report true")
	}
}

func TestExecuteRuleMissingFunction(t *testing.T) {
	e := newTestEngine()
	rule := sampleRule()
	rule.Requires.Functions = []string{"definitely_not_registered"}
	doc := &driver.Document{Rule: rule}

	_, err := driver.ExecuteRule(e, doc, env.New())
	if err == nil {
		t.Fatal("expected a MissingFunctionError")
	}
	if _, ok := err.(*driver.MissingFunctionError); !ok {
		t.Errorf("expected *driver.MissingFunctionError, got %T", err)
	}
}

func TestExecuteRuleUnitTests(t *testing.T) {
	e := newTestEngine()
	doc := &driver.Document{Rule: sampleRule()}

	overall, reports := driver.ExecuteRuleUnitTests(e, doc)
	if !overall {
		t.Errorf("expected all unit tests to pass, got %+v", reports)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	for _, r := range reports {
		if !r.Passed {
			t.Errorf("test %s failed: got %v, err %v", r.Name, r.Got, r.Error)
		}
	}
}

func TestExecuteRuleUnitTestsReportsFirstMismatch(t *testing.T) {
	e := newTestEngine()
	rule := sampleRule()
	rule.UnitTests[1].ExpectedResult = value.Bool{V: true} // now wrong
	doc := &driver.Document{Rule: rule}

	overall, reports := driver.ExecuteRuleUnitTests(e, doc)
	if overall {
		t.Error("expected overall false when a unit test mismatches")
	}
	if reports[1].Passed {
		t.Error("expected the mutated test to be reported as failed")
	}
}

func TestExecuteRuleSelfValidation(t *testing.T) {
	e := newTestEngine()
	doc := &driver.Document{Rule: sampleRule()}
	ok, err := driver.ExecuteRuleSelfValidation(e, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected self_validation to pass")
	}
}

func TestExecutePhilosophy(t *testing.T) {
	e := newTestEngine()
	rule := sampleRule()
	doc := &driver.Document{Philosophy: samplePhilosophy()}

	lookup := func(name string) (*driver.Rule, bool) {
		if name == rule.Name {
			return rule, true
		}
		return nil, false
	}

	v, err := driver.ExecutePhilosophy(e, doc, env.New(), driver.IntrospectionOverrides{}, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.(value.Bool).V {
		t.Error("expected philosophy conclusion to hold once the constituent rule resolves")
	}
}

func TestExecutePhilosophyUnresolvedRule(t *testing.T) {
	e := newTestEngine()
	doc := &driver.Document{Philosophy: samplePhilosophy()}
	lookup := func(name string) (*driver.Rule, bool) { return nil, false }

	_, err := driver.ExecutePhilosophy(e, doc, env.New(), driver.IntrospectionOverrides{}, lookup)
	if err == nil {
		t.Fatal("expected an error when a constituent rule cannot be resolved")
	}
}

func TestExecutePhilosophySelfProof(t *testing.T) {
	e := newTestEngine()
	rule := sampleRule()
	doc := &driver.Document{Philosophy: samplePhilosophy()}
	lookup := func(name string) (*driver.Rule, bool) { return rule, name == rule.Name }

	ok, err := driver.ExecutePhilosophySelfProof(e, doc, driver.IntrospectionOverrides{}, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected self_proof to hold")
	}
}

func TestIntrospectionOverridesBound(t *testing.T) {
	e := newTestEngine()
	rule := sampleRule()
	phil := samplePhilosophy()
	phil.FormalLogic.Conclusion.Logic = ast.HasField{Obj: ast.Var{Name: "file_organization"}, Key: "one_package_per_directory"}
	doc := &driver.Document{Philosophy: phil}
	lookup := func(name string) (*driver.Rule, bool) { return rule, name == rule.Name }

	v, err := driver.ExecutePhilosophy(e, doc, env.New(), driver.IntrospectionOverrides{
		FileOrganization: map[string]bool{"one_package_per_directory": true},
	}, lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.(value.Bool).V {
		t.Error("expected file_organization override to be visible to the conclusion logic")
	}
}
