package manifest

import (
	"errors"
	"fmt"
)

// Operation is the kind of change a Mutation makes to the version
type Operation int

const (
	// Normalize only rewrites the version in its normalized form
	Normalize Operation = iota
	// BumpMajor increments the first component
	BumpMajor
	// BumpMiddle increments the second component
	BumpMiddle
	// BumpMinor increments the third component
	BumpMinor
	// SetVersion replaces the version
	SetVersion
)

func (o Operation) String() string {
	switch o {
	case Normalize:
		return "normalize"
	case BumpMajor:
		return "bump-major"
	case BumpMiddle:
		return "bump-middle"
	case BumpMinor:
		return "bump-minor"
	case SetVersion:
		return "set-version"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

var (
	// ErrNoVersion is returned when a version change is requested for a manifest without version
	ErrNoVersion = errors.New("manifest has no version")
	// ErrEmptyVersion is returned when SetVersion is given a version without components
	ErrEmptyVersion = errors.New("new version has no numeric components")
)

// Mutation describes one change to the manifest version
type Mutation struct {
	Op Operation
	// Version is the new version for SetVersion
	Version Vector
}

// NewSetVersion returns a SetVersion mutation for the dotted version s
func NewSetVersion(s string) Mutation {
	return Mutation{Op: SetVersion, Version: ParseVector(s)}
}

func (mu Mutation) apply(v Vector) (Vector, error) {
	var err error
	switch mu.Op {
	case Normalize:
	case BumpMajor:
		v, err = v.Bump(Major)
	case BumpMiddle:
		v, err = v.Bump(Middle)
	case BumpMinor:
		v, err = v.Bump(Minor)
	case SetVersion:
		if len(mu.Version) == 0 {
			return nil, ErrEmptyVersion
		}
		v = mu.Version
	default:
		return nil, fmt.Errorf("unknown operation %s", mu.Op)
	}
	if err != nil {
		return nil, err
	}
	// a shorter vector from SetVersion is kept as is
	return v.Truncate(Components), nil
}

// Apply validates the manifest and then applies mu to its version.
// Non fatal problems are returned as warnings. On error m is left unchanged.
func (m *Manifest) Apply(mu Mutation) (Problems, error) {
	problems := m.Validate()
	if err := problems.Fatal(); err != nil {
		return problems, err
	}
	warnings := problems.Warnings()

	updated := make([]entry, len(m.entries))
	copy(updated, m.entries)

	found := false
	for i, e := range updated {
		if e.key != KeyVersion {
			continue
		}
		found = true
		// validated above
		current, _ := e.value.AsString()
		next, err := mu.apply(ParseVector(current))
		if err != nil {
			return warnings, fmt.Errorf("%s: %w", mu.Op, err)
		}
		updated[i].value = StringValue(next.String())
	}

	if !found && mu.Op != Normalize {
		return warnings, fmt.Errorf("%s: %w", mu.Op, ErrNoVersion)
	}

	m.entries = updated
	return warnings, nil
}
