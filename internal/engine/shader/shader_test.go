package shader

import (
	"errors"
	"fmt"
	"testing"
)

func TestCompileErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&CompileError{Stage: Vertex, Log: "0:3: 'foo' : undeclared identifier"},
			"error in vertex shader: 0:3: 'foo' : undeclared identifier"},
		{&CompileError{Stage: Fragment, Log: "syntax error"},
			"error in fragment shader: syntax error"},
		{&LinkError{Log: "varying mismatch"},
			"link error in program: varying mismatch"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("creating renderer: %w", &CompileError{Stage: Fragment, Log: "bad"})

	var ce *CompileError
	if !errors.As(wrapped, &ce) {
		t.Fatal("expected CompileError in chain")
	}
	if ce.Stage != Fragment {
		t.Errorf("Stage = %s, want fragment", ce.Stage)
	}

	var le *LinkError
	if errors.As(wrapped, &le) {
		t.Error("CompileError should not match LinkError")
	}
}

func TestInfoLogTrim(t *testing.T) {
	got := infoLog(6, func(buf []byte) {
		copy(buf, "oops\n\x00")
	})
	if got != "oops" {
		t.Errorf("infoLog = %q, want %q", got, "oops")
	}

	if got := infoLog(0, nil); got != "(no log)" {
		t.Errorf("empty infoLog = %q", got)
	}
}
