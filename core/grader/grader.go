// Package grader checks a student's script against an exercise: a YAML file
// of cases, each giving arguments, stdin and the expected output and exit
// status.
package grader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	shlex "github.com/anmitsu/go-shlex"
	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"

	"github.com/shelldrill/shelldrill/core/runner"
)

// Exercise is a graded assignment.
type Exercise struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Cases       []Case `json:"cases" validate:"required,min=1,dive"`
}

// Case is one invocation of the student's script.
type Case struct {
	Name string `json:"name" validate:"required"`
	// Args is the command line passed to the script, shell-style quoted.
	Args string `json:"args"`
	// Stdin is fed to the script.
	Stdin string `json:"stdin"`
	// Setup commands run in the work directory before the script.
	Setup []string `json:"setup"`
	// WantStdout is compared to the script's stdout. Both sides are
	// whitespace-trimmed unless Exact is set.
	WantStdout string `json:"want_stdout"`
	Exact      bool   `json:"exact"`
	// WantStatus is the expected exit status.
	WantStatus int `json:"want_status"`
}

// Load reads and validates an exercise file.
func Load(path string) (*Exercise, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var out Exercise
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, fmt.Errorf("parsing exercise %s: %w", path, err)
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	if err := validate.Struct(&out); err != nil {
		return nil, fmt.Errorf("invalid exercise %s: %w", path, err)
	}

	return &out, nil
}

// Result is the outcome of one case.
type Result struct {
	Case   string
	Pass   bool
	Reason string
}

// Grade runs the script once per case and compares the outcomes. Each case
// gets a fresh scratch directory so cases can't contaminate one another.
func (e *Exercise) Grade(ctx context.Context, scriptPath string) ([]Result, error) {
	var results []Result

	for _, c := range e.Cases {
		result, err := e.gradeCase(ctx, scriptPath, c)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		results = append(results, result)
	}

	return results, nil
}

func (e *Exercise) gradeCase(ctx context.Context, scriptPath string, c Case) (Result, error) {
	workDir, err := os.MkdirTemp("", "shelldrill-grade")
	if err != nil {
		return Result{}, err
	}
	defer os.RemoveAll(workDir)

	for _, setup := range c.Setup {
		status, err := runner.RunCommand(ctx, setup, &runner.Options{
			Dir:    workDir,
			Stdin:  strings.NewReader(""),
			Stdout: io.Discard,
			Stderr: io.Discard,
		})
		if err != nil {
			return Result{}, fmt.Errorf("setup %q: %w", setup, err)
		}
		if status != 0 {
			return Result{}, fmt.Errorf("setup %q exited %d", setup, status)
		}
	}

	params, err := shlex.Split(c.Args, true)
	if err != nil {
		return Result{}, fmt.Errorf("bad args %q: %w", c.Args, err)
	}

	stdout := &bytes.Buffer{}
	status, err := runner.RunFile(ctx, scriptPath, &runner.Options{
		Dir:    workDir,
		Params: params,
		Stdin:  strings.NewReader(c.Stdin),
		Stdout: stdout,
		Stderr: io.Discard,
	})
	if err != nil {
		// A script that fails to parse or read is a failed case, not a
		// grader error.
		return Result{Case: c.Name, Pass: false, Reason: err.Error()}, nil
	}

	if status != c.WantStatus {
		return Result{
			Case:   c.Name,
			Pass:   false,
			Reason: fmt.Sprintf("exit status %d, want %d", status, c.WantStatus),
		}, nil
	}

	got, want := stdout.String(), c.WantStdout
	if !c.Exact {
		got = strings.TrimSpace(got)
		want = strings.TrimSpace(want)
	}
	if got != want {
		return Result{
			Case:   c.Name,
			Pass:   false,
			Reason: fmt.Sprintf("stdout mismatch\n--- want ---\n%s\n--- got ---\n%s", want, got),
		}, nil
	}

	return Result{Case: c.Name, Pass: true}, nil
}

var (
	passMark = color.New(color.FgGreen, color.Bold)
	failMark = color.New(color.FgRed, color.Bold)
)

// Report writes a human-readable summary and reports whether every case
// passed.
func Report(w io.Writer, exercise string, results []Result, colored bool) bool {
	mark := func(c *color.Color, s string) string {
		if colored {
			return c.Sprint(s)
		}
		return s
	}

	passed := 0
	for _, r := range results {
		if r.Pass {
			passed++
			fmt.Fprintf(w, "%s %s\n", mark(passMark, "PASS"), r.Case)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", mark(failMark, "FAIL"), r.Case)
		for _, line := range strings.Split(r.Reason, "\n") {
			fmt.Fprintf(w, "     %s\n", line)
		}
	}

	fmt.Fprintf(w, "%s: %d/%d cases passed\n", exercise, passed, len(results))
	return passed == len(results)
}
