package php

//go:generate mockgen -source=query.go -destination=runner_mock_test.go -package=php

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"unicode/utf8"
)

// A Runner runs an external command and returns what it wrote to stdout.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is the Runner backed by os/exec. The command is resolved through
// PATH. Its exit status is ignored: whatever it printed before exiting is
// returned, and an error is reported only when the process could not be
// started or its output could not be collected.
type ExecRunner struct{}

var _ Runner = (*ExecRunner)(nil)

// Output runs name with args and returns its stdout. Stderr is discarded.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, err
	}

	return stdout.Bytes(), nil
}

// A VersionQuery returns the raw output of `php -v`, or false if it could not
// be obtained.
type VersionQuery func(ctx context.Context) (string, bool)

// NewVersionQuery returns a VersionQuery that runs `php -v` through runner.
func NewVersionQuery(runner Runner) VersionQuery {
	return func(ctx context.Context) (string, bool) {
		return QueryVersion(ctx, runner)
	}
}

// QueryVersion runs `php -v` through runner and returns its stdout. It returns
// false if php could not be run or printed something other than UTF-8 text.
func QueryVersion(ctx context.Context, runner Runner) (string, bool) {
	out, err := runner.Output(ctx, "php", "-v")
	if err != nil {
		return "", false
	}
	if !utf8.Valid(out) {
		return "", false
	}
	return string(out), true
}
