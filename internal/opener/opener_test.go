package opener

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestOpenUsesPlatformHandler(t *testing.T) {
	o := New(nil)
	var gotName string
	var gotArgs []string
	o.launch = func(name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}

	o.Open("https://social.example/@mona")
	if gotName == "" {
		t.Fatalf("handler was not invoked")
	}
	if len(gotArgs) == 0 || gotArgs[len(gotArgs)-1] != "https://social.example/@mona" {
		t.Errorf("url not passed to handler: %v", gotArgs)
	}
}

func TestOpenFailureIsLoggedAndSwallowed(t *testing.T) {
	var buf strings.Builder
	o := New(slog.New(slog.NewTextHandler(&buf, nil)))
	o.launch = func(string, ...string) error { return errors.New("no display") }

	o.Open("https://social.example") // must not panic or return anything
	if !strings.Contains(buf.String(), "failed to open url") {
		t.Errorf("expected a warning log, got %q", buf.String())
	}
}

func TestOpenEmptyURLIgnored(t *testing.T) {
	o := New(nil)
	called := false
	o.launch = func(string, ...string) error { called = true; return nil }
	o.Open("")
	if called {
		t.Errorf("empty target must not launch a handler")
	}
}

func TestHandlerCommandPerPlatform(t *testing.T) {
	tests := []struct {
		goos string
		name string
	}{
		{"darwin", "open"},
		{"windows", "rundll32"},
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
	}
	for _, tt := range tests {
		name, args := handlerCommand(tt.goos, "https://x.example")
		if name != tt.name {
			t.Errorf("%s: got %q, want %q", tt.goos, name, tt.name)
		}
		if args[len(args)-1] != "https://x.example" {
			t.Errorf("%s: url missing from args %v", tt.goos, args)
		}
	}
}
