package manifest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Components is the number of version components a normalized version has
const Components = 3

// Component indexes into a Vector
const (
	Major  = 0
	Middle = 1
	Minor  = 2
)

var (
	// ErrMissingComponent is returned when a bump targets a component the version does not have
	ErrMissingComponent = errors.New("version has too few components")
	// ErrComponentOverflow is returned when a bump would overflow a component
	ErrComponentOverflow = errors.New("version component overflows")
)

// Vector is a dotted-decimal version split into its numeric components.
// "1.2.3" is Vector{1, 2, 3}
type Vector []uint64

// ParseVector splits s on dots. Components that are not unsigned integers are dropped,
// so "1.x.3" becomes Vector{1, 3}
func ParseVector(s string) Vector {
	parts := strings.Split(s, ".")
	v := make(Vector, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			continue
		}
		v = append(v, n)
	}
	return v
}

func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.FormatUint(n, 10)
	}
	return strings.Join(parts, ".")
}

// Truncate returns at most the first n components
func (v Vector) Truncate(n int) Vector {
	if len(v) <= n {
		return append(Vector(nil), v...)
	}
	return append(Vector(nil), v[:n]...)
}

// Bump returns a copy of v with the given component incremented.
// Other components stay as they are: bumping Middle of 1.2.3 gives 1.3.3
func (v Vector) Bump(component int) (Vector, error) {
	if component < 0 || component >= len(v) {
		return nil, fmt.Errorf("%w: %q has no component %d", ErrMissingComponent, v.String(), component+1)
	}
	if v[component] == math.MaxUint64 {
		return nil, fmt.Errorf("%w: %q", ErrComponentOverflow, v.String())
	}
	bumped := append(Vector(nil), v...)
	bumped[component]++
	return bumped, nil
}
