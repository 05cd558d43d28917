// Package store persists validated entities: JSON documents on disk for the
// game content pipeline, and dialogue graphs in Memgraph for tools that walk
// conversations.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lunarforge/assetforge/internal/core/model"
)

// SavedAsset is the metadata sidecar written next to every asset file.
type SavedAsset struct {
	ID        string     `json:"id"`
	Kind      model.Kind `json:"kind"`
	Name      string     `json:"name"`
	File      string     `json:"file"`
	SHA256    string     `json:"sha256"`
	CreatedAt time.Time  `json:"created_at"`
}

// FileStore writes assets under root, one directory per kind. File names
// carry the entity name, a short id and a timestamp, so repeated generations
// of the same name never collide.
type FileStore struct {
	root string
	log  zerolog.Logger
	now  func() time.Time
}

func NewFileStore(root string, log zerolog.Logger) *FileStore {
	return &FileStore{root: root, log: log, now: time.Now}
}

func (s *FileStore) Save(entity model.Entity) (*SavedAsset, error) {
	data, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", entity.Kind(), err)
	}

	dir := filepath.Join(s.root, string(entity.Kind())+"s")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create asset dir: %w", err)
	}

	id := uuid.NewString()
	ts := s.now().UTC()
	name := fmt.Sprintf("%s_%s_%s.json", safeName(entity.Name()), id[:8], ts.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	// Names embed a fresh id and timestamp so this should never trigger, but
	// an existing file is preserved rather than overwritten.
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+".bak"); err != nil {
			return nil, fmt.Errorf("back up existing asset: %w", err)
		}
		s.log.Warn().Str("file", path).Msg("existing asset moved to .bak")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write asset: %w", err)
	}

	sum := sha256.Sum256(data)
	meta := &SavedAsset{
		ID:        id,
		Kind:      entity.Kind(),
		Name:      entity.Name(),
		File:      path,
		SHA256:    hex.EncodeToString(sum[:]),
		CreatedAt: ts,
	}
	metaData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(path+".meta.json", metaData, 0o644); err != nil {
		return nil, fmt.Errorf("write metadata: %w", err)
	}

	s.log.Info().
		Str("kind", string(entity.Kind())).
		Str("name", entity.Name()).
		Str("file", path).
		Msg("asset saved")
	return meta, nil
}

// Load reads a previously saved asset back as a generic record.
func (s *FileStore) Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse asset %s: %w", path, err)
	}
	return rec, nil
}

// safeName reduces an entity name to a filesystem-safe slug.
func safeName(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		out = "asset"
	}
	if len(out) > 40 {
		out = out[:40]
	}
	return out
}
