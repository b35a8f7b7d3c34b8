package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/buger/jsonparser"
)

const (
	ErrorLevelWarn = iota
	ErrorLevelFatal
)

type ValidationError struct {
	message string
	Path    string
	Level   int
}

func (e ValidationError) Error() string {
	return e.Path + " " + e.message
}

func fatal(path string, format string, a ...interface{}) ValidationError {
	return ValidationError{message: fmt.Sprintf(format, a...), Path: path, Level: ErrorLevelFatal}
}

func warn(path string, format string, a ...interface{}) ValidationError {
	return ValidationError{message: fmt.Sprintf(format, a...), Path: path, Level: ErrorLevelWarn}
}

type Problems []ValidationError

// Fatal returns the first fatal error in the list. If there are no fatal errors, it returns nil.
func (p *Problems) Fatal() error {
	for _, problem := range *p {
		if problem.Level == ErrorLevelFatal {
			return problem
		}
	}
	return nil
}

// Warnings returns all non fatal problems
func (p *Problems) Warnings() Problems {
	warnings := Problems{}
	for _, problem := range *p {
		if problem.Level == ErrorLevelWarn {
			warnings = append(warnings, problem)
		}
	}
	return warnings
}

func validateString(key string, v Value) Problems {
	if v.Type != jsonparser.String {
		return Problems{fatal(key, "must be a string, got %s", v.Type)}
	}
	return nil
}

func validateFactorioVersion(v Value) Problems {
	problems := validateString(KeyFactorioVersion, v)
	if len(problems) != 0 {
		return problems
	}

	s, _ := v.AsString()
	if _, err := semver.NewVersion(s); err != nil {
		problems = append(problems, warn(KeyFactorioVersion, "%q is not a valid version", s))
	}
	return problems
}

func validateDependencies(v Value) Problems {
	if v.Type != jsonparser.Array {
		return Problems{fatal(KeyDependencies, "must be an array, got %s", v.Type)}
	}

	problems := Problems{}
	i := 0
	_, err := jsonparser.ArrayEach(v.raw, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		path := fmt.Sprintf("%s[%d]", KeyDependencies, i)
		i++

		if dataType != jsonparser.String {
			problems = append(problems, warn(path, "is a %s and will be ignored", dataType))
			return
		}
		raw, err := jsonparser.ParseString(value)
		if err != nil {
			problems = append(problems, fatal(path, "is not a valid string"))
			return
		}

		dep, err := ParseDependency(raw)
		if err != nil {
			problems = append(problems, fatal(path, "%q: %s", raw, err))
			return
		}
		if _, err := dep.Constraint(); err != nil {
			problems = append(problems, warn(path, "%q has an invalid version requirement", raw))
		}
	})
	if err != nil {
		problems = append(problems, fatal(KeyDependencies, "could not be read: %s", err))
	}

	return problems
}

// Validate checks the shape of every entry in order.
// Unknown keys are only allowed to hold strings.
func (m *Manifest) Validate() Problems {
	problems := Problems{}

	for _, e := range m.entries {
		switch e.key {
		case KeyName, KeyVersion, KeyTitle, KeyAuthor:
			problems = append(problems, validateString(e.key, e.value)...)
		case KeyFactorioVersion:
			problems = append(problems, validateFactorioVersion(e.value)...)
		case KeyDependencies:
			problems = append(problems, validateDependencies(e.value)...)
		default:
			if e.value.Type != jsonparser.String {
				problems = append(problems, fatal(e.key, "is not a known key and must be a string, got %s", e.value.Type))
			}
		}
	}

	return problems
}
