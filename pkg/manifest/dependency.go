package manifest

import (
	"errors"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Prefix marks the kind of a dependency
type Prefix string

const (
	// PrefixNone is a hard requirement
	PrefixNone Prefix = ""
	// PrefixIncompatible marks a mod that must not be loaded together with this one
	PrefixIncompatible Prefix = "!"
	// PrefixOptional marks an optional dependency
	PrefixOptional Prefix = "?"
	// PrefixHiddenOptional marks an optional dependency that is not shown in the mod browser
	PrefixHiddenOptional Prefix = "(?)"
	// PrefixNoLoadOrder marks a dependency that does not affect load order
	PrefixNoLoadOrder Prefix = "~"
)

var prefixes = []Prefix{PrefixIncompatible, PrefixOptional, PrefixHiddenOptional, PrefixNoLoadOrder}

// ErrNoModName is returned for dependency strings without a mod name
var ErrNoModName = errors.New("dependency has no mod name")

// Dependency is a parsed dependency string like "? some-mod >= 1.2.0"
type Dependency struct {
	Prefix Prefix
	Name   string
	// Op and Version are both empty or both set
	Op      string
	Version string
}

// ParseDependency parses "[<prefix>] <modname> [<op> <version>]".
// Tokens after the version are ignored
func ParseDependency(s string) (*Dependency, error) {
	fields := strings.Fields(s)
	dep := &Dependency{}

	if len(fields) > 0 {
		for _, p := range prefixes {
			if fields[0] == string(p) {
				dep.Prefix = p
				fields = fields[1:]
				break
			}
		}
	}

	if len(fields) == 0 {
		return nil, ErrNoModName
	}
	dep.Name = fields[0]

	if len(fields) >= 3 {
		dep.Op = fields[1]
		dep.Version = fields[2]
	}

	return dep, nil
}

// HasVersion reports whether the dependency restricts the version
func (d *Dependency) HasVersion() bool {
	return d.Op != "" && d.Version != ""
}

// Constraint returns the version requirement as a semver constraint.
// Dependencies without a version match everything
func (d *Dependency) Constraint() (*semver.Constraints, error) {
	if !d.HasVersion() {
		return semver.NewConstraint("*")
	}
	return semver.NewConstraint(d.Op + d.Version)
}

func (d *Dependency) String() string {
	parts := make([]string, 0, 4)
	if d.Prefix != PrefixNone {
		parts = append(parts, string(d.Prefix))
	}
	parts = append(parts, d.Name)
	if d.HasVersion() {
		parts = append(parts, d.Op, d.Version)
	}
	return strings.Join(parts, " ")
}
