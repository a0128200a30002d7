package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) note(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Register(ctx context.Context) error    { return f.note("register") }
func (f *fakeExec) Login(ctx context.Context) error       { return f.note("login") }
func (f *fakeExec) Park(ctx context.Context) error        { return f.note("park") }
func (f *fakeExec) Spot(ctx context.Context) error        { return f.note("spot") }
func (f *fakeExec) Directions(ctx context.Context) error  { return f.note("directions") }
func (f *fakeExec) Clear(ctx context.Context) error       { return f.note("clear") }
func (f *fakeExec) TimerStart(ctx context.Context) error  { return f.note("timer start") }
func (f *fakeExec) TimerCancel(ctx context.Context) error { return f.note("timer cancel") }
func (f *fakeExec) TimerStatus(ctx context.Context) error { return f.note("timer status") }
func (f *fakeExec) Sync(ctx context.Context) error        { return f.note("sync") }
func (f *fakeExec) Logout(ctx context.Context) error      { return f.note("logout") }

func TestRun_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"park",
		"spot",
		"",
		"directions",
		"timer start",
		"timer status",
		"timer cancel",
		"sync",
		"clear",
		"logout",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer

	if err := Run(context.Background(), exec, bufio.NewReader(strings.NewReader(input)), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{
		"login", "park", "spot", "directions",
		"timer start", "timer status", "timer cancel",
		"sync", "clear", "logout",
	}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %+v, want %+v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q", i, exec.calls[i], want[i])
		}
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Fatalf("help text not printed: %q", out.String())
	}
	if !strings.Contains(out.String(), "Bye.") {
		t.Fatalf("exit message not printed")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	err := Run(context.Background(), exec, bufio.NewReader(strings.NewReader("frobnicate\nexit\n")), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %+v", exec.calls)
	}
	if !strings.Contains(out.String(), "Unknown command") {
		t.Fatalf("missing unknown-command hint: %q", out.String())
	}
}

func TestRun_TimerUsage(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	if err := Run(context.Background(), exec, bufio.NewReader(strings.NewReader("timer\ntimer reset\nquit\n")), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %+v", exec.calls)
	}
	if !strings.Contains(out.String(), "Usage: timer start|cancel|status") {
		t.Fatalf("missing timer usage: %q", out.String())
	}
}

func TestRun_EOFTerminates(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	if err := Run(context.Background(), exec, bufio.NewReader(strings.NewReader("spot\n")), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(exec.calls) != 1 || exec.calls[0] != "spot" {
		t.Fatalf("calls = %+v", exec.calls)
	}
}
