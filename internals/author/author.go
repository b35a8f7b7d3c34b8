package author

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fmc-dev/fmc/internals/merrors"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// DefaultPath is where the author is configured unless the authorFile setting says otherwise
const DefaultPath = "~/.config/fmc/config.config"

// Source provides the configured author. The file is read once, on first use.
type Source struct {
	path string
	load func() (string, error)
}

// NewSource returns a Source reading from path. An empty path means DefaultPath
func NewSource(path string) *Source {
	if path == "" {
		path = DefaultPath
	}
	s := &Source{path: path}
	s.load = sync.OnceValues(s.read)
	return s
}

// Path returns the configured (unexpanded) path
func (s *Source) Path() string {
	return s.path
}

// Author returns the author. Later calls return the result of the first one, errors included
func (s *Source) Author() (string, error) {
	return s.load()
}

func (s *Source) read() (string, error) {
	path, err := homedir.Expand(s.path)
	if err != nil {
		return "", s.missing(err)
	}

	// the whole file is the author, except for one line ending added by editors or echo
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", s.missing(err)
	}
	author := strings.TrimSuffix(string(raw), "\n")
	return strings.TrimSuffix(author, "\r"), nil
}

func (s *Source) missing(err error) error {
	return merrors.New(merrors.ConfigMissing, errors.Wrap(err, "could not read author config")).
		WithHelp("Set your author name with \"fmc config set author <name>\" or write it to " + s.path)
}

// Write stores author in the file at path, creating directories as needed
func Write(path string, author string) error {
	if path == "" {
		path = DefaultPath
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return merrors.New(merrors.IoFailure, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return merrors.New(merrors.IoFailure, errors.Wrap(err, "could not create config directory"))
	}
	if err := os.WriteFile(path, []byte(author), 0644); err != nil {
		return merrors.New(merrors.IoFailure, errors.Wrap(err, "could not write author config"))
	}
	return nil
}
