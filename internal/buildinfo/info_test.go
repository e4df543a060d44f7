package buildinfo

import (
	"runtime"
	"testing"
)

func TestString(t *testing.T) {
	want := "dev (commit: none, built: unknown)"
	if got := String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGoVersion(t *testing.T) {
	if got := GoVersion(); got != runtime.Version() {
		t.Errorf("expected %q, got %q", runtime.Version(), got)
	}
}

func TestModuleVersionUnknown(t *testing.T) {
	if got := ModuleVersion("example.com/not/linked"); got != Unknown {
		t.Errorf("expected %q, got %q", Unknown, got)
	}
}
