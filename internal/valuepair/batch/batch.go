// Package batch verifies ValuePair.Add over many operand pairs. Each sum is
// checked against a reference computed by evaluating "a + b" with expr.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"github.com/samestrin/valuepair-fixture/internal/valuepair"
)

// ReferenceExpression is evaluated against each case's operands.
const ReferenceExpression = "a + b"

// DefaultJSONPath selects the case array in JSON input.
const DefaultJSONPath = "cases"

// Case is one pair to verify. Operands are kept as text so the run's kind
// decides how they are parsed.
type Case struct {
	Name   string `yaml:"name" toml:"name" json:"name"`
	A      string `yaml:"a" toml:"a" json:"a"`
	B      string `yaml:"b" toml:"b" json:"b"`
	Expect string `yaml:"expect" toml:"expect" json:"expect,omitempty"`
}

// CaseResult is the outcome for one case.
type CaseResult struct {
	Name      string `json:"name"`
	Kind      string `json:"kind,omitempty"`
	Sum       string `json:"sum,omitempty"`
	Reference string `json:"reference,omitempty"`
	Expect    string `json:"expect,omitempty"`
	OK        bool   `json:"ok"`
	Message   string `json:"message,omitempty"`
}

// Report summarizes a run.
type Report struct {
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// SupportedExtensions returns the file extensions LoadCases understands.
func SupportedExtensions() []string {
	return []string{".yaml", ".yml", ".toml", ".json"}
}

// rawCase accepts operands written as numbers or strings.
type rawCase struct {
	Name   string      `yaml:"name" toml:"name"`
	A      interface{} `yaml:"a" toml:"a"`
	B      interface{} `yaml:"b" toml:"b"`
	Expect interface{} `yaml:"expect" toml:"expect"`
}

type caseFile struct {
	Cases []rawCase `yaml:"cases" toml:"cases"`
}

// LoadCases reads cases from a YAML, TOML or JSON file. jsonPath is a gjson
// path to the case array and only applies to JSON input.
func LoadCases(path, jsonPath string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, valuepair.ErrFileNotFound(path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var f caseFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, ErrInvalidCaseFile(path, err)
		}
		return normalize(f.Cases), nil
	case ".toml":
		var f caseFile
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, ErrInvalidCaseFile(path, err)
		}
		return normalize(f.Cases), nil
	case ".json":
		return parseJSONCases(path, data, jsonPath)
	default:
		return nil, valuepair.ErrUnsupportedFormat(path, SupportedExtensions())
	}
}

func parseJSONCases(path string, data []byte, jsonPath string) ([]Case, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidCaseFile(path, fmt.Errorf("invalid JSON"))
	}
	if jsonPath == "" {
		jsonPath = DefaultJSONPath
	}

	list := gjson.GetBytes(data, jsonPath)
	if !list.Exists() {
		return nil, ErrInvalidCaseFile(path, fmt.Errorf("path not found: %s", jsonPath))
	}
	if !list.IsArray() {
		return nil, ErrInvalidCaseFile(path, fmt.Errorf("path %s is not an array", jsonPath))
	}

	var cases []Case
	for i, item := range list.Array() {
		c := Case{
			Name:   item.Get("name").String(),
			A:      item.Get("a").String(),
			B:      item.Get("b").String(),
			Expect: item.Get("expect").String(),
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func normalize(raw []rawCase) []Case {
	cases := make([]Case, 0, len(raw))
	for i, r := range raw {
		c := Case{
			Name:   r.Name,
			A:      scalar(r.A),
			B:      scalar(r.B),
			Expect: scalar(r.Expect),
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		cases = append(cases, c)
	}
	return cases
}

func scalar(v interface{}) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	default:
		return fmt.Sprint(n)
	}
}

// Run verifies each case in order.
func Run(kind valuepair.Kind, cases []Case) (*Report, error) {
	program, err := expr.Compile(ReferenceExpression)
	if err != nil {
		return nil, fmt.Errorf("compile reference expression: %w", err)
	}

	report := &Report{Cases: make([]CaseResult, 0, len(cases))}
	for _, c := range cases {
		cr := verify(program, kind, c)
		report.Total++
		if cr.OK {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Cases = append(report.Cases, cr)
	}
	return report, nil
}

func verify(program *vm.Program, kind valuepair.Kind, c Case) CaseResult {
	cr := CaseResult{Name: c.Name, Expect: c.Expect}

	// expect takes part in auto resolution so "5.0" compares as a float
	// rather than failing to parse as an integer.
	kind = kind.Resolve(c.A, c.B, c.Expect)

	ops, err := valuepair.ParseOperands(kind, c.A, c.B)
	if err != nil {
		cr.Message = err.Error()
		return cr
	}
	cr.Kind = string(ops.Kind)

	res := ops.Add()
	cr.Sum = valuepair.FormatNumber(res.Sum)

	ref, err := expr.Run(program, ops.Env())
	if err != nil {
		cr.Message = fmt.Sprintf("reference evaluation failed: %v", err)
		return cr
	}
	cr.Reference = valuepair.FormatNumber(ref)

	if cr.Sum != cr.Reference {
		cr.Message = fmt.Sprintf("sum %s differs from reference %s", cr.Sum, cr.Reference)
		return cr
	}

	if c.Expect != "" {
		want, err := valuepair.ParseOperands(ops.Kind, c.Expect, "0")
		if err != nil {
			cr.Message = fmt.Sprintf("invalid expect value %q", c.Expect)
			return cr
		}
		if wantSum := valuepair.FormatNumber(want.Add().Sum); wantSum != cr.Sum {
			cr.Message = fmt.Sprintf("sum %s, expected %s", cr.Sum, wantSum)
			return cr
		}
	}

	cr.OK = true
	return cr
}

// ErrInvalidCaseFile reports a case file that could not be decoded.
func ErrInvalidCaseFile(path string, cause error) *valuepair.Error {
	return &valuepair.Error{
		Type:    valuepair.ErrTypeInvalidInput,
		Message: fmt.Sprintf("invalid case file: %s", path),
		Cause:   cause,
		Hint:    "Case files hold a 'cases' list of {name, a, b, expect} entries.",
	}
}
