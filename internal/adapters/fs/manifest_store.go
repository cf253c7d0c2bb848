package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// ManifestStore keeps one chain's deployment manifest in a YAML file.
// Every write is a full rewrite of the file. There is no cross-process
// locking: two runs against the same chain race and the last write wins.
type ManifestStore struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewManifestStore creates a store backed by the file at path
func NewManifestStore(path string, log *slog.Logger) *ManifestStore {
	return &ManifestStore{path: path, log: log}
}

// NewManifestStoreAdapter creates the store for the chain selected in the runtime config
func NewManifestStoreAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ManifestStore {
	var path string
	if cfg.Chain != nil {
		path = cfg.Chain.ManifestFile(cfg.DeploymentsDir)
	}
	return NewManifestStore(path, log)
}

// Path returns the manifest file location
func (s *ManifestStore) Path() string {
	return s.path
}

// Load reads and validates the manifest. The boolean is false when the
// file does not exist yet.
func (s *ManifestStore) Load() (*models.DeploymentConfig, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get walks the manifest along keys. A missing file, a missing key or a
// null value all yield false without an error.
func (s *ManifestStore) Get(keys ...string) (models.Node, bool, error) {
	cfg, found, err := s.Load()
	if err != nil || !found {
		return nil, false, err
	}
	node, ok := models.Walk(cfg, keys)
	return node, ok, nil
}

// Save validates cfg and overwrites the manifest with it
func (s *ManifestStore) Save(cfg *models.DeploymentConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg == nil {
		return domain.NewValidationError(nil, "empty document")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return s.write(data)
}

// LoadRaw returns the manifest as a plain mapping, normalised through the
// schema. An absent manifest yields an empty mapping.
func (s *ManifestStore) LoadRaw() (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadRaw()
}

// SaveRaw validates a plain mapping against the schema and persists it
func (s *ManifestStore) SaveRaw(doc map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateAndWrite(doc)
}

// Merge deep-merges partial into the current manifest, validates the
// result and persists it. Keys absent from partial keep their values.
// Nothing is written when the merged document is invalid.
func (s *ManifestStore) Merge(partial map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	base, err := s.loadRaw()
	if err != nil {
		return err
	}
	merged := models.DeepMerge(base, partial)
	if err := s.validateAndWrite(merged); err != nil {
		return err
	}
	s.log.Debug("manifest updated", "path", s.path)
	return nil
}

func (s *ManifestStore) load() (*models.DeploymentConfig, bool, error) {
	if s.path == "" {
		return nil, false, fmt.Errorf("no chain selected: %w", domain.ErrConfiguration)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read manifest %s: %w", s.path, err)
	}
	cfg, err := decodeManifest(data)
	if err != nil {
		return nil, false, fmt.Errorf("manifest %s: %w", s.path, err)
	}
	return cfg, true, nil
}

func (s *ManifestStore) loadRaw() (map[string]any, error) {
	cfg, found, err := s.load()
	if err != nil {
		return nil, err
	}
	if !found {
		return map[string]any{}, nil
	}
	return toRaw(cfg)
}

func (s *ManifestStore) validateAndWrite(doc map[string]any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if _, err := decodeManifest(data); err != nil {
		return err
	}
	return s.write(data)
}

// write replaces the manifest with data in a single rename
func (s *ManifestStore) write(data []byte) error {
	if s.path == "" {
		return fmt.Errorf("no chain selected: %w", domain.ErrConfiguration)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace manifest: %w", err)
	}
	return nil
}

// decodeManifest strictly decodes a YAML document into the schema and
// checks required fields
func decodeManifest(data []byte) (*models.DeploymentConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg models.DeploymentConfig
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError(nil, "empty document")
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, domain.NewValidationError(nil, "%s", typeErr.Error())
		}
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// toRaw converts a typed manifest into a plain mapping
func toRaw(cfg *models.DeploymentConfig) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return raw, nil
}

var _ usecase.ManifestRepository = (*ManifestStore)(nil)
