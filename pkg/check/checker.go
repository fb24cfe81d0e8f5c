package check

// Checker is implemented by all check types.
// Each check probes one aspect of the development environment
// and returns a Result indicating success or failure.
//
// Implementations:
//   - runtimecheck.Check: interpreter version against a minimum
//   - cmdcheck.Check: command presence on PATH
//   - daemoncheck.Check: container engine daemon reachability
//   - filecheck.Check: configuration file presence
//   - toolcheck.Check: per-user tool install with PATH fallback
type Checker interface {
	Run() Result
}
