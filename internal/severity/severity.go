// Package severity provides the severity levels of build warnings.
//
// Info < Warning < Error. Errors are only recorded as warnings when strict
// mode is off; in strict mode they abort the build instead.
package severity

import "fmt"

// Severity indicates how serious a build warning is.
type Severity int

const (
	// SeverityInfo marks notices about choices the build made, such as a page
	// excluded by its visibility condition.
	SeverityInfo Severity = iota

	// SeverityWarning marks configurations that work but may not do what the
	// author intended.
	SeverityWarning

	// SeverityError marks configuration errors that were tolerated because
	// strict mode is off.
	SeverityError
)

var names = [...]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(names) {
		return "unknown"
	}
	return names[s]
}

// Parse returns the severity named s, as printed by String.
func Parse(s string) (Severity, error) {
	for i, name := range names {
		if name == s {
			return Severity(i), nil
		}
	}
	return 0, fmt.Errorf("severity: unknown level %q", s)
}

// MarshalText encodes the severity by name so reports read "warning" rather
// than 1.
func (s Severity) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(names) {
		return nil, fmt.Errorf("severity: cannot marshal level %d", int(s))
	}
	return []byte(names[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
