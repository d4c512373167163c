package valuepair

import (
	"bytes"
	"io"
	"math"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestAddInt(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"positive", 2, 3, 5},
		{"cancel out", -1, 1, 0},
		{"zeros", 0, 0, 0},
		{"negative", -7, -8, -15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.a, tt.b).Add(); got != tt.want {
				t.Errorf("New(%d, %d).Add() = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAddFloat(t *testing.T) {
	if got := New(0.5, 0.25).Add(); got != 0.75 {
		t.Errorf("New(0.5, 0.25).Add() = %v, want 0.75", got)
	}
}

func TestAddOverflowWraps(t *testing.T) {
	p := New[int8](math.MaxInt8, 1)
	if got := p.Add(); got != math.MinInt8 {
		t.Errorf("Add() = %d, want %d", got, math.MinInt8)
	}
}

func TestAccessors(t *testing.T) {
	p := New[uint16](4, 9)
	if p.A() != 4 || p.B() != 9 {
		t.Errorf("A(), B() = %d, %d, want 4, 9", p.A(), p.B())
	}
}

func TestFprintValues(t *testing.T) {
	pairs := []ValuePair[float64]{New(2.0, 3.0), New(-1.0, 1.0), New(1e300, 1e300)}

	for _, p := range pairs {
		var buf bytes.Buffer
		if err := p.FprintValues(&buf); err != nil {
			t.Fatalf("FprintValues() error: %v", err)
		}
		if buf.String() != "0\n1\n2\n3\n" {
			t.Errorf("FprintValues() for %v wrote %q", p, buf.String())
		}
	}
}

func TestPrintValuesStdout(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	New(2, 3).PrintValues()
	w.Close()
	os.Stdout = orig

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	want := []string{"0", "1", "2", "3"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("PrintValues() lines = %q, want %q", lines, want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestFprintValuesWriteError(t *testing.T) {
	if err := New(1, 2).FprintValues(failWriter{}); err != io.ErrClosedPipe {
		t.Errorf("FprintValues() error = %v, want %v", err, io.ErrClosedPipe)
	}
}

func TestValuesIsCopy(t *testing.T) {
	v := Values()
	v[0] = 42
	if !reflect.DeepEqual(Values(), []int{0, 1, 2, 3}) {
		t.Error("Values() must not expose the internal sequence")
	}
}
