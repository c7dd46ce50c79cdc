package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// ErrUnknownStage is returned when no stage file exists for a name
var ErrUnknownStage = errors.New("unknown stage")

// extensions are probed in order for every config file
var extensions = []string{".json", ".yaml", ".yml"}

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from JSON or YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.{json,yaml,yml}. Missing fields keep their defaults.
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	cfg := DefaultPhysicsConfig()
	if err := l.load("physics", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("physics: %w", err)
	}
	return cfg, nil
}

// LoadEntities loads entities.{json,yaml,yml}. Missing fields keep their defaults.
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	cfg := DefaultEntitiesConfig()
	if err := l.load("entities", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("entities: %w", err)
	}
	return cfg, nil
}

// LoadStage loads stages/<name>.{json,yaml,yml}
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.load("stages/"+name, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStage, name)
		}
		return nil, fmt.Errorf("failed to load stage %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	return &cfg, nil
}

// ListStages returns the names of all stage files, without extension
func (l *Loader) ListStages() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "stages")
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if !knownExtension(ext) {
			continue
		}
		name := e.Name()[:len(e.Name())-len(ext)]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}

// load finds name with the first known extension and decodes it into v
func (l *Loader) load(name string, v interface{}) error {
	for _, ext := range extensions {
		file := name + ext
		data, err := fs.ReadFile(l.fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		if err := decode(file, data, v); err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}
		return nil
	}
	return fmt.Errorf("failed to read %s: %w", name, fs.ErrNotExist)
}

func decode(file string, data []byte, v interface{}) error {
	switch path.Ext(file) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}

func knownExtension(ext string) bool {
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}
