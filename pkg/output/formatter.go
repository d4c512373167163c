// Package output formats command results for the CLI and MCP surfaces.
// It supports four output modes:
//   - Default: human-readable text from a caller-supplied function
//   - JSON: pretty-printed JSON
//   - Minimal: terse text, empty values skipped
//   - Minimal+JSON: single-line JSON with abbreviated keys
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Formatter writes results according to the JSON and Minimal flags.
type Formatter struct {
	JSON    bool
	Minimal bool
	Writer  io.Writer
}

// New creates a Formatter. A nil writer means os.Stdout.
func New(jsonOutput, minimal bool, w io.Writer) *Formatter {
	if w == nil {
		w = os.Stdout
	}
	return &Formatter{
		JSON:    jsonOutput,
		Minimal: minimal,
		Writer:  w,
	}
}

// KeyAbbreviations maps JSON keys to their minimal-JSON form.
var KeyAbbreviations = map[string]string{
	"kind":             "k",
	"sum":              "s",
	"reference":        "ref",
	"expect":           "exp",
	"values":           "v",
	"message":          "msg",
	"name":             "n",
	"file":             "f",
	"line":             "l",
	"column":           "c",
	"healthy":          "ok",
	"identical":        "same",
	"diagnostics":      "diags",
	"placeholder_line": "pl",
	"error":            "err",
	"cases":            "cs",
}

// Print writes data as JSON in JSON mode, otherwise through textFunc. A nil
// textFunc falls back to JSON.
func (f *Formatter) Print(data interface{}, textFunc func(io.Writer, interface{})) error {
	if f.JSON || textFunc == nil {
		return f.printJSON(data)
	}
	textFunc(f.Writer, data)
	return nil
}

func (f *Formatter) printJSON(data interface{}) error {
	if !f.Minimal {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(f.Writer, string(out))
		return nil
	}

	generic, err := toGeneric(data)
	if err != nil {
		return err
	}
	out, err := json.Marshal(abbreviate(generic))
	if err != nil {
		return err
	}
	fmt.Fprintln(f.Writer, string(out))
	return nil
}

// toGeneric round-trips data through JSON so struct tags (including
// omitempty) decide which keys exist.
func toGeneric(data interface{}) (interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func abbreviate(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			if abbrev, ok := KeyAbbreviations[strings.ToLower(k)]; ok {
				k = abbrev
			}
			out[k] = abbreviate(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = abbreviate(val)
		}
		return out
	default:
		return v
	}
}

// PrintLine prints "key: value", skipping empty values in minimal mode.
func (f *Formatter) PrintLine(key string, value interface{}) {
	if f.Minimal && isEmpty(value) {
		return
	}
	fmt.Fprintf(f.Writer, "%s: %v\n", key, value)
}

func isEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case int:
		return t == 0
	case bool:
		return !t
	default:
		return false
	}
}

// hinter is implemented by errors that carry a remediation hint.
type hinter interface {
	error
	FormatWithHint() string
}

// PrintError writes err and returns the process exit code (always 1).
// JSON mode writes to the formatter's writer; text mode writes to stderr
// when the writer is stdout.
func (f *Formatter) PrintError(err error) int {
	if f.JSON {
		result := ErrorResult{Error: true, Message: err.Error()}
		if f.Minimal {
			out, _ := json.Marshal(abbreviate(map[string]interface{}{"error": true, "message": err.Error()}))
			fmt.Fprintln(f.Writer, string(out))
		} else {
			out, _ := json.MarshalIndent(result, "", "  ")
			fmt.Fprintln(f.Writer, string(out))
		}
		return 1
	}

	w := f.Writer
	if w == os.Stdout {
		w = os.Stderr
	}
	if f.Minimal {
		fmt.Fprintln(w, err.Error())
		return 1
	}

	msg := err.Error()
	var h hinter
	if errors.As(err, &h) {
		msg = h.FormatWithHint()
	}
	fmt.Fprintf(w, "Error: %s\n", msg)
	return 1
}

// ErrorResult is the JSON shape of an error.
type ErrorResult struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
