package valuepair

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindAuto, false},
		{"auto", KindAuto, false},
		{"INT", KindInt, false},
		{" float ", KindFloat, false},
		{"complex", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKind(%q) expected error", tt.in)
				}
				if !IsType(err, ErrTypeInvalidInput) {
					t.Errorf("ParseKind(%q) error type mismatch: %v", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInvalidKindHintListsValidKinds(t *testing.T) {
	_, err := ParseKind("complex")
	msg := FormatError(err)
	for _, k := range ValidKinds() {
		if !strings.Contains(msg, k) {
			t.Errorf("hint should list %q, got %q", k, msg)
		}
		if _, err := ParseKind(k); err != nil {
			t.Errorf("ParseKind(%q) rejected a listed kind: %v", k, err)
		}
	}
}

func TestKindResolve(t *testing.T) {
	tests := []struct {
		kind   Kind
		values []string
		want   Kind
	}{
		{KindAuto, []string{"2", "3"}, KindInt},
		{KindAuto, []string{"2", "0.5"}, KindFloat},
		{KindAuto, []string{"2", "3", ""}, KindInt},
		{KindAuto, []string{"2", "3", "5.0"}, KindFloat},
		{"", []string{"-1", "1"}, KindInt},
		{KindInt, []string{"0.5", "1"}, KindInt},
		{KindFloat, []string{"2", "3"}, KindFloat},
	}

	for _, tt := range tests {
		if got := tt.kind.Resolve(tt.values...); got != tt.want {
			t.Errorf("%q.Resolve(%v) = %q, want %q", tt.kind, tt.values, got, tt.want)
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		a, b     string
		wantKind Kind
		wantSum  interface{}
	}{
		{"ints", KindAuto, "2", "3", KindInt, int64(5)},
		{"cancel out", KindAuto, "-1", "1", KindInt, int64(0)},
		{"fractions", KindAuto, "0.5", "0.25", KindFloat, 0.75},
		{"forced float", KindFloat, "2", "3", KindFloat, 5.0},
		{"mixed resolves float", KindAuto, "1", "0.5", KindFloat, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.kind, tt.a, tt.b)
			if err != nil {
				t.Fatalf("Evaluate() error: %v", err)
			}
			if res.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", res.Kind, tt.wantKind)
			}
			if res.Sum != tt.wantSum {
				t.Errorf("Sum = %v (%T), want %v (%T)", res.Sum, res.Sum, tt.wantSum, tt.wantSum)
			}
		})
	}
}

func TestEvaluateIntOverflowWraps(t *testing.T) {
	res, err := Evaluate(KindInt, "9223372036854775807", "1")
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if res.Sum != int64(math.MinInt64) {
		t.Errorf("Sum = %v, want %d", res.Sum, int64(math.MinInt64))
	}
}

func TestEvaluateInvalidOperand(t *testing.T) {
	_, err := Evaluate(KindInt, "2", "three")
	if err == nil {
		t.Fatal("expected error for malformed operand")
	}

	var vpErr *Error
	if !errors.As(err, &vpErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if vpErr.Type != ErrTypeInvalidInput {
		t.Errorf("Type = %v, want ErrTypeInvalidInput", vpErr.Type)
	}
	if !strings.Contains(err.Error(), `operand b: "three"`) {
		t.Errorf("error should name operand b, got %q", err.Error())
	}
	if !strings.Contains(FormatError(err), "Hint:") {
		t.Errorf("FormatError should include hint, got %q", FormatError(err))
	}
}

func TestOperandsEnv(t *testing.T) {
	ops, err := ParseOperands(KindInt, "4", "5")
	if err != nil {
		t.Fatalf("ParseOperands() error: %v", err)
	}
	env := ops.Env()
	if env["a"] != int64(4) || env["b"] != int64(5) {
		t.Errorf("Env() = %v", env)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{int64(-12), "-12"},
		{0.75, "0.75"},
		{5.0, "5"},
		{"x", "x"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Type: ErrTypeUnknown, Message: "wrapped", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if err.Error() != "wrapped: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.WithHint("try again").FormatWithHint() != "wrapped: boom\n  Hint: try again" {
		t.Errorf("FormatWithHint() = %q", err.FormatWithHint())
	}
}
