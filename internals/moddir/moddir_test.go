package moddir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fmc-dev/fmc/internals/merrors"
	"github.com/fmc-dev/fmc/pkg/manifest"
	"github.com/google/go-cmp/cmp"
)

func writeManifest(t *testing.T, dir string, content string) *ModDir {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return New(dir)
}

func readManifest(t *testing.T, d *ModDir) string {
	t.Helper()
	raw, err := os.ReadFile(d.ManifestPath())
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func readVersion(t *testing.T, d *ModDir) string {
	t.Helper()
	man, err := d.LoadManifest()
	if err != nil {
		t.Fatal(err)
	}
	v, _ := man.GetString(manifest.KeyVersion)
	return v
}

func TestUpdateVersions(t *testing.T) {
	tests := []struct {
		name string
		mu   manifest.Mutation
		want string
	}{
		{"minor bump", manifest.Mutation{Op: manifest.BumpMinor}, "1.2.4"},
		{"middle bump does not reset minor", manifest.Mutation{Op: manifest.BumpMiddle}, "1.3.3"},
		{"major bump", manifest.Mutation{Op: manifest.BumpMajor}, "2.2.3"},
		{"set-version truncation", manifest.NewSetVersion("7.8.9.10"), "7.8.9"},
		{"normalize", manifest.Mutation{}, "1.2.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := writeManifest(t, t.TempDir(), `{"name": "foo", "version": "1.2.3"}`)

			res, err := d.Update(tt.mu)
			if err != nil {
				t.Fatal(err)
			}
			if res.Before != "1.2.3" || res.After != tt.want || !res.HasVersion {
				t.Errorf("unexpected result %+v", res)
			}
			if got := readVersion(t, d); got != tt.want {
				t.Errorf("version on disk = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpdateKeepsOrderAndUnknownStrings(t *testing.T) {
	d := writeManifest(t, t.TempDir(), `{"version":"0.1.0","name":"foo","homepage":"https://mods.factorio.com","dependencies":["base >= 1.1","? other"]}`)

	if _, err := d.Update(manifest.Mutation{Op: manifest.BumpMiddle}); err != nil {
		t.Fatal(err)
	}

	want := `{
  "version": "0.2.0",
  "name": "foo",
  "homepage": "https://mods.factorio.com",
  "dependencies": [
    "base >= 1.1",
    "? other"
  ]
}
`
	if diff := cmp.Diff(want, readManifest(t, d)); diff != "" {
		t.Errorf("info.json mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateNormalizeIsIdempotent(t *testing.T) {
	d := writeManifest(t, t.TempDir(), "{\"name\":\"foo\",\n\t\"version\": \"1.2.3.4\", \"title\": \"Foo <3\"}")

	if _, err := d.Update(manifest.Mutation{}); err != nil {
		t.Fatal(err)
	}
	first := readManifest(t, d)
	if _, err := d.Update(manifest.Mutation{}); err != nil {
		t.Fatal(err)
	}
	if second := readManifest(t, d); second != first {
		t.Errorf("second normalize changed the file:\n%s\n---\n%s", first, second)
	}
	if got := readVersion(t, d); got != "1.2.3" {
		t.Errorf("version = %q", got)
	}
}

func TestUpdateFailuresLeaveFileUntouched(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		mu       manifest.Mutation
		wantKind error
	}{
		{"corrupt manifest", "not json", manifest.Mutation{Op: manifest.BumpMinor}, merrors.ErrManifestCorrupt},
		{"array manifest", `["base"]`, manifest.Mutation{}, merrors.ErrManifestCorrupt},
		{"invalid utf-8 key", "{\"k\xff\": \"v\"}", manifest.Mutation{}, merrors.ErrManifestCorrupt},
		{"version is a number", `{"version": 1}`, manifest.Mutation{Op: manifest.BumpMinor}, merrors.ErrSchemaViolation},
		{"dependencies is a string", `{"version": "1.0.0", "dependencies": "base"}`, manifest.Mutation{}, merrors.ErrSchemaViolation},
		{"unknown non string key", `{"version": "1.0.0", "size": 12}`, manifest.Mutation{}, merrors.ErrSchemaViolation},
		{"bump too short", `{"version": "1.0"}`, manifest.Mutation{Op: manifest.BumpMinor}, merrors.ErrSchemaViolation},
		{"bump without version", `{"name": "foo"}`, manifest.Mutation{Op: manifest.BumpMajor}, merrors.ErrSchemaViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := writeManifest(t, t.TempDir(), tt.content)

			_, err := d.Update(tt.mu)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("Update() error = %v, want kind %v", err, tt.wantKind)
			}
			if got := readManifest(t, d); got != tt.content {
				t.Errorf("info.json changed to %q", got)
			}
		})
	}
}

func TestUpdateMissingManifest(t *testing.T) {
	d := New(t.TempDir())
	_, err := d.Update(manifest.Mutation{})
	if !errors.Is(err, merrors.ErrManifestMissing) {
		t.Fatalf("Update() error = %v, want ManifestMissing", err)
	}
	if exists, _ := d.HasManifest(); exists {
		t.Error("Update created an info.json")
	}
}

func TestUpdateReturnsWarnings(t *testing.T) {
	d := writeManifest(t, t.TempDir(), `{"version": "1.0.0", "dependencies": ["base >= whenever"]}`)
	res, err := d.Update(manifest.Mutation{Op: manifest.BumpMinor})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("got warnings %v", res.Warnings)
	}
}

func TestCreateManifestNeverOverwrites(t *testing.T) {
	existing := `{"name":"x","version":"9.9.9"}`
	d := writeManifest(t, t.TempDir(), existing)

	man := manifest.New()
	man.SetString(manifest.KeyName, "other")
	created, err := d.CreateManifest(man)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("CreateManifest reported a new file")
	}
	if got := readManifest(t, d); got != existing {
		t.Errorf("info.json changed to %q", got)
	}
}

func TestCreateData(t *testing.T) {
	d := New(t.TempDir())
	if err := d.CreateData(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(d.DataPath(), []byte("-- mine"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := d.CreateData(); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(d.DataPath())
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "-- mine" {
		t.Errorf("data.lua was overwritten: %q", raw)
	}
}

func TestName(t *testing.T) {
	d := New(filepath.Join("some", "where", "my-mod"))
	if d.Name() != "my-mod" {
		t.Errorf("Name() = %q", d.Name())
	}
}
