// Package suite runs an ordered list of checks once each and aggregates
// their outcome into a single pass/fail status.
package suite

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vertti/devcheck/pkg/check"
	"github.com/vertti/devcheck/pkg/logging"
	"github.com/vertti/devcheck/pkg/output"
)

// ErrChecksFailed is returned when at least one check failed.
var ErrChecksFailed = errors.New("some checks failed")

// Entry is a registered check.
type Entry struct {
	Name   string        // registration label, e.g. "Python Version"
	Check  check.Checker // probe to run
	Remedy string        // summary bullet when the check fails (default: result hint)
}

// Suite is an ordered list of checks.
type Suite struct {
	Project   string
	Entries   []Entry
	NextSteps []string        // printed after a fully successful run
	Out       *output.Printer // nil disables text output
	Log       log.FieldLogger // nil discards
}

// Report holds one result per entry, in registration order.
type Report struct {
	Results []check.Result
}

// Passed reports whether every check passed.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}
	return true
}

// ExitCode is 0 when every check passed and 1 otherwise.
func (r Report) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}

// Err returns ErrChecksFailed unless every check passed.
func (r Report) Err() error {
	if r.Passed() {
		return nil
	}
	return ErrChecksFailed
}

// Run executes every entry exactly once, in order, printing each result
// as it completes and the summary at the end.
func (s *Suite) Run() Report {
	logger := s.Log
	if logger == nil {
		logger = logging.Discard()
	}
	if s.Out != nil {
		s.Out.Header(s.Project)
	}

	report := Report{Results: make([]check.Result, 0, len(s.Entries))}
	for i, e := range s.Entries {
		result := runEntry(e)
		logger.WithFields(log.Fields{
			"index":  i,
			"check":  e.Name,
			"status": result.Status,
			"error":  result.Err,
		}).Debug("check finished")

		if s.Out != nil {
			s.Out.PrintResult(result)
		}
		report.Results = append(report.Results, result)
	}

	if s.Out != nil {
		s.Out.PrintSummary(s.summary(report))
	}
	logger.WithField("passed", report.Passed()).Debug("all checks finished")
	return report
}

// runEntry runs one check. A panicking check is recorded as failed so the
// remaining checks still run.
func runEntry(e Entry) (result check.Result) {
	defer func() {
		if v := recover(); v != nil {
			failed := check.Result{Name: e.Name}
			err := fmt.Errorf("check %q panicked: %v", e.Name, v)
			result = failed.Fail(err.Error(), err)
		}
	}()

	result = e.Check.Run()
	if result.Name == "" {
		result.Name = e.Name
	}
	return result
}

func (s *Suite) summary(report Report) output.Summary {
	summary := output.Summary{Passed: report.Passed(), NextSteps: s.NextSteps}
	for i, res := range report.Results {
		if res.OK() {
			continue
		}
		remedy := s.Entries[i].Remedy
		if remedy == "" {
			remedy = res.Hint
		}
		if remedy == "" {
			remedy = "Fix " + s.Entries[i].Name
		}
		summary.Remedies = append(summary.Remedies, remedy)
	}
	return summary
}
