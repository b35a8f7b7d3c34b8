package moddir

import (
	"github.com/fmc-dev/fmc/internals/merrors"
	"github.com/fmc-dev/fmc/pkg/manifest"
)

// UpdateResult describes what Update changed
type UpdateResult struct {
	// HasVersion is false if the manifest has no version
	HasVersion bool
	Before     string
	After      string
	// Warnings are non fatal problems found in the manifest
	Warnings manifest.Problems
}

// Update loads info.json, applies mu and writes the manifest back.
// info.json is not touched if anything fails before the final write.
func (d *ModDir) Update(mu manifest.Mutation) (*UpdateResult, error) {
	man, err := d.LoadManifest()
	if err != nil {
		return nil, err
	}

	result := &UpdateResult{}
	result.Before, result.HasVersion = man.GetString(manifest.KeyVersion)

	warnings, err := man.Apply(mu)
	result.Warnings = warnings
	if err != nil {
		return result, merrors.New(merrors.SchemaViolation, err)
	}
	result.After, _ = man.GetString(manifest.KeyVersion)

	if err := d.SaveManifest(man); err != nil {
		return result, err
	}
	return result, nil
}
