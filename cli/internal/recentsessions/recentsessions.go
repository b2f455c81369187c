// ABOUTME: Remembers the scenario table session used against each backend
// ABOUTME: Stores recent sessions in the XDG config directory so CLI runs share a table

package recentsessions

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// MaxRecentSessions is the maximum number of backends remembered
const MaxRecentSessions = 5

// Entry is the last session issued by one backend
type Entry struct {
	APIURL    string    `json:"api_url"`
	SessionID string    `json:"session_id"`
	UsedAt    time.Time `json:"used_at"`
}

// RecentSessions manages the list of recently used sessions, most recent first
type RecentSessions struct {
	configDir string
	entries   []Entry
}

type recentData struct {
	Sessions []Entry `json:"sessions"`
}

// New creates a new RecentSessions manager with the given config directory
func New(configDir string) *RecentSessions {
	return &RecentSessions{
		configDir: configDir,
		entries:   nil,
	}
}

// DefaultConfigDir returns the default config directory following XDG conventions
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vdb")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vdb")
}

// configFile returns the path to the sessions JSON
func (rs *RecentSessions) configFile() string {
	return filepath.Join(rs.configDir, "sessions.json")
}

// Load reads the session list from disk
// Entries without a URL or session ID are dropped
func (rs *RecentSessions) Load() ([]Entry, error) {
	data, err := os.ReadFile(rs.configFile())
	if os.IsNotExist(err) {
		rs.entries = []Entry{}
		return rs.entries, nil
	}
	if err != nil {
		return nil, err
	}

	var recent recentData
	if err := json.Unmarshal(data, &recent); err != nil {
		// Invalid JSON, start fresh
		rs.entries = []Entry{}
		return rs.entries, nil
	}

	rs.entries = make([]Entry, 0, len(recent.Sessions))
	for _, e := range recent.Sessions {
		if e.APIURL != "" && e.SessionID != "" {
			rs.entries = append(rs.entries, e)
		}
	}

	return rs.entries, nil
}

// Save writes the session list to disk
func (rs *RecentSessions) Save(entries []Entry) error {
	if err := os.MkdirAll(rs.configDir, 0700); err != nil {
		return err
	}

	if len(entries) > MaxRecentSessions {
		entries = entries[:MaxRecentSessions]
	}

	rs.entries = entries

	data, err := json.MarshalIndent(recentData{Sessions: entries}, "", "  ")
	if err != nil {
		return err
	}

	// Session IDs grant access to a table, keep them private
	return os.WriteFile(rs.configFile(), data, 0600)
}

// Remember records sessionID as the current session for apiURL (moves to front)
func (rs *RecentSessions) Remember(apiURL, sessionID string) error {
	if apiURL == "" || sessionID == "" {
		return nil
	}
	if rs.entries == nil {
		if _, err := rs.Load(); err != nil {
			rs.entries = []Entry{}
		}
	}

	updated := make([]Entry, 0, len(rs.entries)+1)
	updated = append(updated, Entry{APIURL: apiURL, SessionID: sessionID, UsedAt: time.Now().UTC()})
	for _, e := range rs.entries {
		if e.APIURL != apiURL {
			updated = append(updated, e)
		}
	}

	return rs.Save(updated)
}

// Lookup returns the remembered session for apiURL, or ""
func (rs *RecentSessions) Lookup(apiURL string) string {
	for _, e := range rs.List() {
		if e.APIURL == apiURL {
			return e.SessionID
		}
	}
	return ""
}

// Forget drops the session remembered for apiURL
func (rs *RecentSessions) Forget(apiURL string) error {
	current := rs.List()
	kept := make([]Entry, 0, len(current))
	for _, e := range current {
		if e.APIURL != apiURL {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(current) {
		return nil
	}
	return rs.Save(kept)
}

// List returns the current list of sessions
func (rs *RecentSessions) List() []Entry {
	if rs.entries == nil {
		rs.Load()
	}
	return rs.entries
}
