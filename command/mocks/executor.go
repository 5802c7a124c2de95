package mocks

import (
	"context"
	"os/exec"
	"sync"
)

// ScriptedExecutor fakes external commands for tests. Created commands still
// run, but are redirected to a local printf that emits the scripted output,
// so callers exercise their full exec paths without the real binary being
// present.
//
// Scripts are keyed by subcommand: the first argument that is not part of a
// global flag. An invocation of `tmux -S /sock new-window ...` is keyed as
// "new-window". Commands with no subcommand are keyed by the binary name.
type ScriptedExecutor struct {
	mu    sync.Mutex
	calls [][]string

	// Outputs maps a subcommand to the stdout it should produce.
	Outputs map[string]string

	// Fail lists subcommands whose invocation should exit non-zero.
	Fail map[string]bool

	// Missing lists binary names LookPath should report as absent.
	Missing map[string]bool
}

// globalFlagsWithValue are flags that consume the following argument before
// the subcommand appears.
var globalFlagsWithValue = map[string]bool{
	"-S": true,
	"-L": true,
	"-f": true,
}

func scriptKey(name string, args []string) string {
	for i := 0; i < len(args); i++ {
		if globalFlagsWithValue[args[i]] {
			i++
			continue
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			continue
		}
		return args[i]
	}
	return name
}

func (e *ScriptedExecutor) record(name string, args []string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	call := append([]string{name}, args...)
	e.calls = append(e.calls, call)
	return scriptKey(name, args)
}

func (e *ScriptedExecutor) build(ctx context.Context, key string) *exec.Cmd {
	if e.Fail[key] {
		if ctx != nil {
			return exec.CommandContext(ctx, "false")
		}
		return exec.Command("false")
	}
	out := e.Outputs[key]
	if ctx != nil {
		return exec.CommandContext(ctx, "printf", "%s", out)
	}
	return exec.Command("printf", "%s", out)
}

// Command implements command.Executor.
func (e *ScriptedExecutor) Command(name string, args ...string) *exec.Cmd {
	key := e.record(name, args)
	return e.build(nil, key)
}

// CommandContext implements command.Executor.
func (e *ScriptedExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	key := e.record(name, args)
	return e.build(ctx, key)
}

// LookPath implements command.Executor.
func (e *ScriptedExecutor) LookPath(name string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Missing[name] {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return "/usr/bin/" + name, nil
}

// Calls returns a copy of every recorded invocation, argv style.
func (e *ScriptedExecutor) Calls() [][]string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([][]string, len(e.calls))
	for i, call := range e.calls {
		out[i] = append([]string(nil), call...)
	}
	return out
}

// CallsFor returns only the invocations whose subcommand matches key.
func (e *ScriptedExecutor) CallsFor(key string) [][]string {
	var out [][]string
	for _, call := range e.Calls() {
		if len(call) > 1 && scriptKey(call[0], call[1:]) == key {
			out = append(out, call)
		}
	}
	return out
}
