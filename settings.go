package galleria

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

const defaultTitle = "Gallery"

// Settings is the persisted site configuration (config.json). The title can
// be overwritten by any request carrying a title query parameter, so all
// access goes through one mutex and every write lands atomically.
type Settings struct {
	mu    sync.Mutex
	path  string
	title string
}

// LoadSettings reads config.json from path. A missing file is not an error:
// the default title is used and the file appears on the first mutation.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{path: path, title: defaultTitle}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("galleria: read settings: %w", err)
	}
	var cfg struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("galleria: parse settings %s: %w", path, err)
	}
	if cfg.Title != "" {
		s.title = cfg.Title
	}
	return s, nil
}

// Title returns the current gallery title.
func (s *Settings) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// SetTitle updates the title and rewrites config.json. The write happens
// under the mutex so concurrent mutations cannot interleave, and it goes
// through a temp file so a failed write leaves the previous config intact.
func (s *Settings) SetTitle(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(struct {
		Title string `json:"title"`
	}{Title: title})
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("galleria: write settings: %w", err)
	}
	s.title = title
	return nil
}
