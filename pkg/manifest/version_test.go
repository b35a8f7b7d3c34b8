package manifest

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseVector(t *testing.T) {
	tests := []struct {
		in   string
		want Vector
	}{
		{"1.2.3", Vector{1, 2, 3}},
		{"0.0.1", Vector{0, 0, 1}},
		{"7.8.9.10", Vector{7, 8, 9, 10}},
		{"1.x.3", Vector{1, 3}},
		{"v1.2", Vector{2}},
		{"", Vector{}},
		{"1..2", Vector{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseVector(tt.in)); diff != "" {
				t.Errorf("ParseVector(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestVectorBump(t *testing.T) {
	tests := []struct {
		name      string
		in        Vector
		component int
		want      Vector
		wantErr   error
	}{
		{"major", Vector{1, 2, 3}, Major, Vector{2, 2, 3}, nil},
		{"middle keeps minor", Vector{1, 2, 3}, Middle, Vector{1, 3, 3}, nil},
		{"minor", Vector{1, 2, 3}, Minor, Vector{1, 2, 4}, nil},
		{"too short", Vector{1, 2}, Minor, nil, ErrMissingComponent},
		{"empty", Vector{}, Major, nil, ErrMissingComponent},
		{"overflow", Vector{1, math.MaxUint64, 0}, Middle, nil, ErrComponentOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Bump(tt.component)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Bump() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Bump() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVectorBumpDoesNotModifyInput(t *testing.T) {
	in := Vector{1, 2, 3}
	if _, err := in.Bump(Minor); err != nil {
		t.Fatal(err)
	}
	if in.String() != "1.2.3" {
		t.Errorf("input changed to %s", in)
	}
}

func TestVectorTruncateAndString(t *testing.T) {
	if got := (Vector{7, 8, 9, 10}).Truncate(Components).String(); got != "7.8.9" {
		t.Errorf("got %q", got)
	}
	if got := (Vector{7}).Truncate(Components).String(); got != "7" {
		t.Errorf("got %q", got)
	}
	if got := (Vector{}).String(); got != "" {
		t.Errorf("got %q", got)
	}
}
