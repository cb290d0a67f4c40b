// Package usercfg reads operator-maintained JSON files: per-user response
// suffixes and the channel whitelist. Files are re-read at most hourly and a
// missing file means "no entries".
package usercfg

import (
	"os"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const reloadInterval = 3600 * time.Second

type userEntry struct {
	Suffix string `json:"suffix"`
}

// Suffixes resolves the decorative suffix appended to a given user's
// responses.
type Suffixes struct {
	path string

	mu     sync.Mutex
	users  map[string]userEntry
	expiry time.Time

	now func() time.Time
}

func NewSuffixes(path string) *Suffixes {
	return &Suffixes{path: path, now: time.Now}
}

func (s *Suffixes) Suffix(user string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.users == nil || !s.expiry.After(s.now()) {
		s.users = make(map[string]userEntry)
		readJSONFile(s.path, &s.users)
		s.expiry = s.now().Add(reloadInterval)
	}

	return s.users[user].Suffix
}

// Channels is the channel whitelist. An empty or missing whitelist file
// leaves the service open to every channel.
type Channels struct {
	path         string
	disableCheck bool

	mu       sync.Mutex
	channels mapset.Set[string]
	expiry   time.Time

	now func() time.Time
}

func NewChannels(path string, disableCheck bool) *Channels {
	return &Channels{path: path, disableCheck: disableCheck, now: time.Now}
}

func (c *Channels) Allowed(channel string) bool {
	if c.disableCheck {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channels == nil || !c.expiry.After(c.now()) {
		var names []string
		readJSONFile(c.path, &names)
		c.channels = mapset.NewSet(names...)
		c.expiry = c.now().Add(reloadInterval)
	}

	if c.channels.Cardinality() == 0 {
		return true
	}

	return c.channels.Contains(channel)
}

func readJSONFile(path string, out any) {
	data, err := os.ReadFile(path)

	if err != nil {
		return
	}

	// A malformed file is treated the same as a missing one.
	_ = json.Unmarshal(data, out)
}
