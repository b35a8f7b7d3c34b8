package merrors

import (
	"errors"
	"fmt"
)

// Kind classifies a CliError
type Kind int

const (
	// ConfigMissing means the author configuration file is absent or unreadable
	ConfigMissing Kind = iota + 1
	// ManifestMissing means there is no info.json to work on
	ManifestMissing
	// ManifestCorrupt means info.json is not JSON or not a JSON object
	ManifestCorrupt
	// SchemaViolation means a known key has the wrong shape or the version can not be changed
	SchemaViolation
	// IoFailure means a filesystem operation failed
	IoFailure
	// UsageError means the command line was incomplete or invalid
	UsageError
)

func (k Kind) String() string {
	switch k {
	case ConfigMissing:
		return "config missing"
	case ManifestMissing:
		return "manifest missing"
	case ManifestCorrupt:
		return "manifest corrupt"
	case SchemaViolation:
		return "schema violation"
	case IoFailure:
		return "io failure"
	case UsageError:
		return "usage error"
	default:
		return "unknown error"
	}
}

// ExitCode is the process exit code used for errors of this kind
func (k Kind) ExitCode() int {
	if k == UsageError {
		return 2
	}
	return 1
}

// CliError is a error that might get displayed to the user
type CliError struct {
	Kind Kind
	Err  error
	Help string
}

func (e *CliError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *CliError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of the same kind, so
// errors.Is(err, ErrSchemaViolation) works for every schema violation
func (e *CliError) Is(target error) bool {
	t, ok := target.(*CliError)
	if !ok || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// WithHelp sets the help text shown below the error
func (e *CliError) WithHelp(help string) *CliError {
	e.Help = help
	return e
}

// sentinels for errors.Is
var (
	ErrConfigMissing   = &CliError{Kind: ConfigMissing}
	ErrManifestMissing = &CliError{Kind: ManifestMissing}
	ErrManifestCorrupt = &CliError{Kind: ManifestCorrupt}
	ErrSchemaViolation = &CliError{Kind: SchemaViolation}
	ErrIoFailure       = &CliError{Kind: IoFailure}
	ErrUsage           = &CliError{Kind: UsageError}
)

// New wraps err as a CliError of the given kind.
// An err that already is a CliError keeps its own kind.
func New(kind Kind, err error) *CliError {
	var cliErr *CliError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	return &CliError{Kind: kind, Err: err}
}

// Newf creates a CliError of the given kind from a format string
func Newf(kind Kind, format string, a ...interface{}) *CliError {
	return &CliError{Kind: kind, Err: fmt.Errorf(format, a...)}
}

// KindOf returns the kind of the first CliError in err's chain or 0
func KindOf(err error) Kind {
	var cliErr *CliError
	if errors.As(err, &cliErr) {
		return cliErr.Kind
	}
	return 0
}

// ExitCode returns the exit code for err. Errors without a kind exit with 1
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if kind := KindOf(err); kind != 0 {
		return kind.ExitCode()
	}
	return 1
}
