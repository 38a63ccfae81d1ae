package tester

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/renfa/renfa/driver"
	"github.com/renfa/renfa/spec"
)

type TestResult struct {
	TestCasePath string
	Error        error
}

func (r *TestResult) String() string {
	if r.Error != nil {
		return fmt.Sprintf("Failed %v: %v", r.TestCasePath, r.Error)
	}
	return fmt.Sprintf("Passed %v", r.TestCasePath)
}

type TestCaseWithMetadata struct {
	TestCase *TestCase
	FilePath string
	Error    error
}

func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		c, err := parseTestCase(testPath)
		return []*TestCaseWithMetadata{
			{
				TestCase: c,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestCase(testCasePath string) (*TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTestCase(f)
}

type Tester struct {
	Automaton *spec.CompiledAutomaton
	Cases     []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, runTest(t.Automaton, c))
	}
	return rs
}

func runTest(a *spec.CompiledAutomaton, c *TestCaseWithMetadata) *TestResult {
	r, err := driver.NewRecognizer(a)
	if err != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        err,
		}
	}

	res := r.Recognize(string(c.TestCase.Input))
	if res.Accepted != c.TestCase.Accepted {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("expected the input to be %v, but it was %v", verdict(c.TestCase.Accepted), verdict(res.Accepted)),
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
	}
}

func verdict(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}
