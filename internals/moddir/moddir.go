package moddir

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fmc-dev/fmc/internals/merrors"
	"github.com/fmc-dev/fmc/pkg/manifest"
	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
)

const (
	// ManifestFile is the name of the mod manifest
	ManifestFile = "info.json"
	// DataFile is the data stage entry point created by init
	DataFile = "data.lua"
)

// ModDir is a directory containing (or about to contain) a Factorio mod
type ModDir struct {
	Path string
}

// New returns a ModDir for path
func New(path string) *ModDir {
	return &ModDir{Path: path}
}

// NewFromWd returns a ModDir for the current working directory
func NewFromWd() (*ModDir, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, merrors.New(merrors.IoFailure, errors.Wrap(err, "could not get working directory"))
	}
	return New(wd), nil
}

// Name is the directory name, which is also the default mod name
func (d *ModDir) Name() string {
	return filepath.Base(d.Path)
}

// ManifestPath returns the path to info.json
func (d *ModDir) ManifestPath() string {
	return filepath.Join(d.Path, ManifestFile)
}

// DataPath returns the path to data.lua
func (d *ModDir) DataPath() string {
	return filepath.Join(d.Path, DataFile)
}

// HasManifest reports whether info.json exists
func (d *ModDir) HasManifest() (bool, error) {
	_, err := os.Stat(d.ManifestPath())
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, merrors.New(merrors.IoFailure, err)
	}
}

// LoadManifest reads and parses info.json
func (d *ModDir) LoadManifest() (*manifest.Manifest, error) {
	raw, err := os.ReadFile(d.ManifestPath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, merrors.New(merrors.ManifestMissing, errors.Errorf("no %s found in %s", ManifestFile, d.Path)).
			WithHelp("Create a new mod with \"fmc init\" or move into a folder containing an info.json file")
	case err != nil:
		return nil, merrors.New(merrors.IoFailure, errors.Wrapf(err, "could not read %s", ManifestFile))
	}

	man, err := manifest.Parse(raw)
	if err != nil {
		return nil, merrors.New(merrors.ManifestCorrupt, errors.Wrapf(err, "could not parse %s", ManifestFile)).
			WithHelp("Fix the file so it contains a single JSON object")
	}
	return man, nil
}

// SaveManifest replaces info.json with the formatted manifest.
// The file is written to a temporary file first and then renamed, so
// readers never see a half written manifest.
func (d *ModDir) SaveManifest(man *manifest.Manifest) error {
	content, err := man.Format()
	if err != nil {
		return merrors.New(merrors.SchemaViolation, err)
	}
	if err := atomic.WriteFile(d.ManifestPath(), bytes.NewReader(content)); err != nil {
		return merrors.New(merrors.IoFailure, errors.Wrapf(err, "could not write %s", ManifestFile))
	}
	return nil
}

// CreateManifest writes info.json only if it does not exist yet.
// It returns false if there already was a manifest.
func (d *ModDir) CreateManifest(man *manifest.Manifest) (bool, error) {
	content, err := man.Format()
	if err != nil {
		return false, merrors.New(merrors.SchemaViolation, err)
	}

	created, err := createExclusive(d.ManifestPath(), content)
	if err != nil {
		return false, merrors.New(merrors.IoFailure, errors.Wrapf(err, "could not create %s", ManifestFile))
	}
	return created, nil
}

// CreateData creates an empty data.lua if there is none
func (d *ModDir) CreateData() error {
	if _, err := createExclusive(d.DataPath(), nil); err != nil {
		return merrors.New(merrors.IoFailure, errors.Wrapf(err, "could not create %s", DataFile))
	}
	return nil
}

// createExclusive creates path with content unless it exists.
// A failed write removes the file again.
func createExclusive(path string, content []byte) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(path)
		return false, err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return false, err
	}
	return true, nil
}
