// Command logicdemo is a thin illustrative entry point for the logic
// engine — not the real CLI a host application would ship (§1 Non-goals
// exclude CLI parsing/output/exit codes from the core), but the teacher
// always ships a cmd/ entry point (cmd/barn/main.go) and this mirrors its
// flag-driven, load-then-report shape against the logic driver instead of
// a MOO server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/riverside/logicengine/ast"
	"github.com/riverside/logicengine/driver"
	"github.com/riverside/logicengine/engine"
	"github.com/riverside/logicengine/env"
	"github.com/riverside/logicengine/functions"
	"github.com/riverside/logicengine/registry"
	"github.com/riverside/logicengine/value"
)

// ruleMetaFile is the plain-data shape a rule's metadata can be loaded
// from: name, description, and required function names. Translating a
// rule file's logic syntax into ast.Node is the external loader's job
// (out of scope, spec.md §1) — this demo always supplies its own logic
// tree, matching the sample rule used throughout the test suite, so
// -rule-file only has to carry what yaml.v3 can unmarshal directly.
type ruleMetaFile struct {
	Rule struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Requires    []string `yaml:"requires"`
	} `yaml:"rule"`
}

func main() {
	ruleFile := flag.String("rule-file", "", "YAML file with rule.{name,description,requires} metadata")
	traceEnabled := flag.Bool("trace", false, "Enable execution tracing and print it after running")
	runUnitTests := flag.Bool("unit-tests", true, "Run the rule's unit tests")
	runSelfValidation := flag.Bool("self-validate", true, "Run the rule's self-validation block")
	flag.Parse()

	meta := ruleMetaFile{}
	meta.Rule.Name = "no_todo_markers"
	meta.Rule.Description = "repositories should not carry unresolved TODO markers"

	if *ruleFile != "" {
		data, err := os.ReadFile(*ruleFile)
		if err != nil {
			log.Fatalf("reading rule file: %v", err)
		}
		if err := yaml.Unmarshal(data, &meta); err != nil {
			log.Fatalf("parsing rule file: %v", err)
		}
	}

	rule := demoRule(meta)
	doc := &driver.Document{Rule: rule}

	reg := registry.New()
	functions.RegisterCore(reg)
	functions.RegisterFilesystemBridge(reg)
	e := engine.New(reg)
	e.EnableTracing(*traceEnabled)

	v, err := driver.ExecuteRule(e, doc, env.New())
	if err != nil {
		log.Fatalf("execute_rule: %v", err)
	}
	fmt.Printf("execute_rule(%s) = %s\n", rule.Name, v.Display())

	if *runUnitTests {
		overall, reports := driver.ExecuteRuleUnitTests(e, doc)
		fmt.Printf("execute_rule_unit_tests(%s) = %v\n", rule.Name, overall)
		for _, r := range reports {
			status := "pass"
			if !r.Passed {
				status = "FAIL"
			}
			fmt.Printf("  [%s] %s\n", status, r.Name)
		}
	}

	if *runSelfValidation {
		ok, err := driver.ExecuteRuleSelfValidation(e, doc)
		if err != nil {
			log.Fatalf("execute_rule_self_validation: %v", err)
		}
		fmt.Printf("execute_rule_self_validation(%s) = %v\n", rule.Name, ok)
	}

	if *traceEnabled {
		fmt.Println("--- trace ---")
		for _, line := range e.ExecutionTrace() {
			fmt.Println(line)
		}
		m := e.Metrics()
		fmt.Printf("function_calls=%d cache_hits=%d cache_misses=%d\n", m.FunctionCalls, m.CacheHits, m.CacheMisses)
	}
}

// demoRule builds the fixed logic tree the binary demonstrates, combined
// with whatever metadata -rule-file overrode.
func demoRule(meta ruleMetaFile) *driver.Rule {
	requires := meta.Rule.Requires
	if requires == nil {
		requires = []string{"contains"}
	}
	return &driver.Rule{
		Name:        meta.Rule.Name,
		Description: meta.Rule.Description,
		Requires:    driver.Requirements{Functions: requires},
		Logic: ast.Operator{Op: ast.OpEquals, Args: []ast.Node{
			ast.GetField{Obj: ast.Var{Name: "rule"}, Key: "name"},
			ast.Literal{Val: value.Str{V: meta.Rule.Name}},
		}},
		UnitTests: []driver.UnitTest{
			{
				Name:           "positive_count_is_greater_than_zero",
				TestData:       map[string]value.Value{"x": value.Int{V: 5}},
				TestLogic:      ast.Operator{Op: ast.OpGreaterThan, Args: []ast.Node{ast.Var{Name: "x"}, ast.Literal{Val: value.Int{V: 0}}}},
				ExpectedResult: value.Bool{V: true},
			},
		},
		SelfValidation: driver.SelfValidation{
			Logic: ast.Operator{Op: ast.OpEquals, Args: []ast.Node{
				ast.GetField{Obj: ast.Var{Name: "rule"}, Key: "name"},
				ast.Literal{Val: value.Str{V: meta.Rule.Name}},
			}},
		},
	}
}
