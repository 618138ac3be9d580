package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/labfx/internal/scene"
)

const (
	metadataFile = "metadata.json"
	elementsFile = "elements.csv"
)

// Store keeps rendered scenes, one directory per render.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RenderMetadata struct {
	ID        string         `json:"id"`
	Scene     string         `json:"scene"`
	Timestamp time.Time      `json:"timestamp"`
	Seed      int64          `json:"seed"`
	Counts    map[string]int `json:"counts"`
	Artifacts []string       `json:"artifacts"`
}

// Save writes the scene's element table, each artifact under its file
// name, and the metadata describing them.
func (s *Store) Save(sc scene.Scene, seed int64, artifacts map[string][]byte) (string, error) {
	now := time.Now()
	renderID := fmt.Sprintf("%s_%d", sc.Name, now.UnixNano())
	dir := filepath.Join(s.baseDir, renderID)

	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		if name != filepath.Base(name) || name == metadataFile || name == elementsFile {
			return "", fmt.Errorf("invalid artifact name: %q", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), artifacts[name], 0644); err != nil {
			return "", err
		}
	}

	if err := writeElements(filepath.Join(dir, elementsFile), sc.Elements); err != nil {
		return "", err
	}

	counts := make(map[string]int)
	for _, k := range []scene.Kind{
		scene.KindParticle, scene.KindCell, scene.KindOrganelle, scene.KindMembrane,
		scene.KindVesicle, scene.KindProtein, scene.KindLine, scene.KindMarker,
	} {
		if n := sc.Count(k); n > 0 {
			counts[string(k)] = n
		}
	}

	meta := RenderMetadata{
		ID:        renderID,
		Scene:     sc.Name,
		Timestamp: now,
		Seed:      seed,
		Counts:    counts,
		Artifacts: names,
	}

	if err := writeJSON(filepath.Join(dir, metadataFile), meta); err != nil {
		return "", err
	}

	return renderID, nil
}

// writeJSON writes v indented to path. Close errors are reported since
// they can carry the failed write.
func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeElements(path string, els []scene.Element) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"depth", "kind", "class", "x", "y", "width", "height", "unit", "height_unit"}); err != nil {
		return err
	}

	var walk func([]scene.Element, int) error
	walk = func(els []scene.Element, depth int) error {
		for _, e := range els {
			row := []string{
				strconv.Itoa(depth),
				string(e.Kind),
				e.Class,
				strconv.FormatFloat(e.X, 'f', 4, 64),
				strconv.FormatFloat(e.Y, 'f', 4, 64),
				strconv.FormatFloat(e.Width, 'f', 4, 64),
				strconv.FormatFloat(e.Height, 'f', 4, 64),
				string(e.Unit),
				string(e.HUnit()),
			}
			if err := w.Write(row); err != nil {
				return err
			}
			if err := walk(e.Children, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(els, 0); err != nil {
		return err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// List returns every stored render, oldest first. Directories without
// readable metadata are skipped.
func (s *Store) List() ([]RenderMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RenderMetadata{}, nil
		}
		return nil, err
	}

	renders := make([]RenderMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		renders = append(renders, *meta)
	}

	sort.Slice(renders, func(i, j int) bool {
		return renders[i].Timestamp.Before(renders[j].Timestamp)
	})
	return renders, nil
}

func (s *Store) Load(renderID string) (*RenderMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, renderID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RenderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Artifact returns the contents of one stored artifact.
func (s *Store) Artifact(renderID, name string) ([]byte, error) {
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid artifact name: %q", name)
	}
	return os.ReadFile(filepath.Join(s.baseDir, renderID, name))
}

// LoadElements reads back the element table: one row per element,
// children included, without the header.
func (s *Store) LoadElements(renderID string) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.baseDir, renderID, elementsFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return [][]string{}, nil
	}
	return records[1:], nil
}
