package manifest

import (
	"errors"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		version string
		mu      Mutation
		want    string
		wantErr error
	}{
		{"minor", "1.2.3", Mutation{Op: BumpMinor}, "1.2.4", nil},
		{"middle keeps minor", "1.2.3", Mutation{Op: BumpMiddle}, "1.3.3", nil},
		{"major keeps the rest", "1.2.3", Mutation{Op: BumpMajor}, "2.2.3", nil},
		{"set truncates", "1.2.3", NewSetVersion("7.8.9.10"), "7.8.9", nil},
		{"set short is kept", "1.2.3", NewSetVersion("4.5"), "4.5", nil},
		{"set empty", "1.2.3", NewSetVersion("abc"), "", ErrEmptyVersion},
		{"normalize truncates", "1.2.3.4", Mutation{}, "1.2.3", nil},
		{"normalize drops garbage", "1.x.3", Mutation{}, "1.3", nil},
		{"bump too short", "1.2", Mutation{Op: BumpMinor}, "", ErrMissingComponent},
		{"bump garbage", "1.x.3", Mutation{Op: BumpMinor}, "", ErrMissingComponent},
		{"bump long", "1.2.3.4", Mutation{Op: BumpMinor}, "1.2.4", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			man := New()
			man.SetString(KeyName, "mod")
			man.SetString(KeyVersion, tt.version)

			_, err := man.Apply(tt.mu)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.wantErr)
			}
			got, _ := man.GetString(KeyVersion)
			if err != nil {
				tt.want = tt.version
			}
			if got != tt.want {
				t.Errorf("version = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyThreeComponentsStayThree(t *testing.T) {
	for _, op := range []Operation{Normalize, BumpMajor, BumpMiddle, BumpMinor} {
		for _, v := range []string{"0.0.0", "1.2.3", "10.20.30", "0.18.99"} {
			man := New()
			man.SetString(KeyVersion, v)
			if _, err := man.Apply(Mutation{Op: op}); err != nil {
				t.Fatalf("%s on %s: %v", op, v, err)
			}
			got, _ := man.GetString(KeyVersion)
			if n := len(ParseVector(got)); n != Components {
				t.Errorf("%s on %s gave %q with %d components", op, v, got, n)
			}
		}
	}
}

func TestApplySchemaViolationLeavesManifestUnchanged(t *testing.T) {
	raw := `{"name":"mod","version":"1.2.3","weight":3}`
	man, err := Parse([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	before := man.String()

	if _, err := man.Apply(Mutation{Op: BumpMinor}); err == nil {
		t.Fatal("expected a schema error")
	}
	if man.String() != before {
		t.Errorf("manifest changed:\n%s", man.String())
	}
}

func TestApplyWithoutVersion(t *testing.T) {
	man := New()
	man.SetString(KeyName, "mod")

	if _, err := man.Apply(Mutation{}); err != nil {
		t.Errorf("normalize without version: %v", err)
	}
	if _, err := man.Apply(Mutation{Op: BumpMajor}); !errors.Is(err, ErrNoVersion) {
		t.Errorf("bump without version: got %v, want %v", err, ErrNoVersion)
	}
}

func TestApplyReturnsWarnings(t *testing.T) {
	man, err := Parse([]byte(`{"version":"1.0.0","factorio_version":"someday"}`))
	if err != nil {
		t.Fatal(err)
	}
	warnings, err := man.Apply(Mutation{Op: BumpMinor})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
}
