// Package shell executes commands for the CLI automation agent. Commands
// run directly through exec, never through a shell; the command string is
// split into words with quote handling first.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result carries the outcome of one command execution.
type Result struct {
	ReturnCode int
	Stdout     string
	Stderr     string
}

// ExitError reports a non-zero exit when check mode is on. The captured
// output rides along so callers can still surface it.
type ExitError struct {
	Cmd    string
	Result Result
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Cmd, e.Result.ReturnCode)
}

// RunOptions adjusts how a command runs.
type RunOptions struct {
	// Check makes a non-zero exit an error.
	Check bool
	// Cwd overrides the working directory when non-empty.
	Cwd string
	// Env overrides or extends the inherited environment.
	Env map[string]string
}

// RunCLI splits cmd into words and executes it, capturing stdout and
// stderr. Exec errors (missing binary, bad cwd) are returned as errors;
// a non-zero exit is an error only when opts.Check is set.
func RunCLI(ctx context.Context, cmd string, opts RunOptions) (Result, error) {
	words, err := SplitWords(cmd)
	if err != nil {
		return Result{}, err
	}
	if len(words) == 0 {
		return Result{}, fmt.Errorf("empty command")
	}
	return runArgs(ctx, cmd, words, opts)
}

// RunGcloud executes a gcloud command; args is the argument string
// without the leading executable name.
func RunGcloud(ctx context.Context, args string, opts RunOptions) (Result, error) {
	words, err := SplitWords(args)
	if err != nil {
		return Result{}, err
	}
	return runArgs(ctx, "gcloud "+args, append([]string{"gcloud"}, words...), opts)
}

func runArgs(ctx context.Context, display string, words []string, opts RunOptions) (Result, error) {
	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	if opts.Cwd != "" {
		cmd.Dir = opts.Cwd
	}
	if len(opts.Env) > 0 {
		env := os.Environ()
		for k, v := range opts.Env {
			env = append(env, k+"="+v)
		}
		cmd.Env = env
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, fmt.Errorf("running %q: %w", display, err)
		}
		result.ReturnCode = exitErr.ExitCode()
		if opts.Check {
			return result, &ExitError{Cmd: display, Result: result}
		}
	}
	return result, nil
}

// SplitWords splits a command line into words. Single and double quotes
// group words and are stripped; a backslash escapes the next character
// outside single quotes. An unterminated quote is an error.
func SplitWords(line string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)
	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case quote == '\'' && r != '\'':
			current.WriteRune(r)
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '\'' || r == '"'):
			quote = r
			inWord = true
		case quote == 0 && (r == ' ' || r == '\t' || r == '\n'):
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if escaped || quote != 0 {
		return nil, fmt.Errorf("unterminated quote in command: %s", line)
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}
