package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PolyhedraZK/BloqCostCollection/resource"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // cost could not be computed
	ExitCommandError = 2 // invalid flags or unreadable input
)

// ExitError is an error with a process exit code
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode returns the exit code carried by err, ExitFailure for other errors
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// GateCost is one line of a report
type GateCost struct {
	Gate   string `json:"gate"`
	Count  string `json:"count"`
	TCount string `json:"t_count"`
}

// Report is the T-count breakdown of a sigma
type Report struct {
	Gates []GateCost `json:"gates"`
	Total string     `json:"total"`
}

// NewReport computes the T count of every entry of sigma and the total
func NewReport(sigma *resource.Sigma) (*Report, error) {
	r := &Report{Gates: []GateCost{}}
	for _, e := range sigma.Entries() {
		t, err := resource.TCountForGate(e.Bloq)
		if err != nil {
			return nil, err
		}
		r.Gates = append(r.Gates, GateCost{
			Gate:   e.Bloq.String(),
			Count:  e.Count.String(),
			TCount: t.String(),
		})
	}
	total, err := resource.TCountsFromSigma(sigma)
	if err != nil {
		return nil, err
	}
	r.Total = total.String()
	return r, nil
}

func (r *Report) String() string {
	var sb strings.Builder
	width := len("gate")
	for _, g := range r.Gates {
		if len(g.Gate) > width {
			width = len(g.Gate)
		}
	}
	fmt.Fprintf(&sb, "%-*s  %s  %s\n", width, "gate", "count", "T")
	for _, g := range r.Gates {
		fmt.Fprintf(&sb, "%-*s  %s  %s\n", width, g.Gate, g.Count, g.TCount)
	}
	fmt.Fprintf(&sb, "total T: %s", r.Total)
	return sb.String()
}

// OutputFormatter writes results as text or JSON
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

type response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(response{Status: "ok", Data: data})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error reports err in the configured format and returns it with an exit code
func (f *OutputFormatter) Error(code int, message string, err error) error {
	exitErr := WrapExitError(code, message, err)
	if f.Format == "json" {
		if encErr := json.NewEncoder(f.Writer).Encode(response{Status: "error", Error: exitErr.Error()}); encErr != nil {
			return encErr
		}
	}
	return exitErr
}
