package missions

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/planetary-society/missions/pkg/errors"
)

// File and directory permissions for persisted records.
const (
	filePermissions = 0o644
	dirPermissions  = 0o755
)

// Store persists mission records as one YAML file per mission under a base
// directory. Load and Save are whole-record operations; the store never
// performs partial field updates.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on the
// first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's base directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the record path for a mission short name.
func (s *Store) Path(shortName string) string {
	return filepath.Join(s.dir, Slug(shortName)+".yaml")
}

// Load reads the persisted record for a mission short name. A missing file
// yields a NotFoundError; any other read failure is an IOError. Callers must
// not treat an IOError as "no existing record" — that distinction is what
// protects curated fields from being silently dropped.
func (s *Store) Load(shortName string) (*Mission, error) {
	path := s.Path(shortName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("mission record", shortName)
		}
		return nil, errors.WrapIO("read", path, err)
	}
	return UnmarshalMission(data, path)
}

// Save validates and writes the mission record, creating the directory if
// needed. The write replaces the whole file.
func (s *Store) Save(m *Mission) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, dirPermissions); err != nil {
		return errors.WrapIO("create", s.dir, err)
	}
	path := s.Path(m.CanonicalShortName)
	if err := os.WriteFile(path, []byte(m.FormatYAML()), filePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// List returns the record file names (without extension) present in the
// store, sorted. Only .yaml files count: Path resolves records to
// <slug>.yaml, so any other extension could be listed but never loaded.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name := entry.Name(); strings.HasSuffix(name, ".yaml") {
			names = append(names, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}
