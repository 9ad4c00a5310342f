package domain

// AdventureLog records the fixed choices one person made during the farm
// adventure sign-up: what they bought, which path they took, their troll
// guess, their three persuasion actions and the slang phrase they set out
// to deliver. Never mutated at runtime.
type AdventureLog struct {
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	Items   []string `json:"items"`
	Path    int      `json:"path"` // 1-based index into AdventureSet.Paths
	Guess   int      `json:"guess"`
	Actions []string `json:"actions"`
	Slang   string   `json:"slang"`
}

// AdventureSet is the full adventure dataset.
type AdventureSet struct {
	Adventures  map[string]AdventureLog `json:"adventures"`
	Paths       []string                `json:"paths"`
	ItemPrices  map[string]float64      `json:"item_prices"`
	Predictions map[string]string       `json:"predictions"`
}

// HasItem reports whether the log's shopping list contains item.
func (a AdventureLog) HasItem(item string) bool {
	for _, it := range a.Items {
		if it == item {
			return true
		}
	}
	return false
}

// Action returns the action recorded for the given persuasion turn (0-2),
// or "" if none was recorded.
func (a AdventureLog) Action(turn int) string {
	if turn < 0 || turn >= len(a.Actions) {
		return ""
	}
	return a.Actions[turn]
}

// PathName resolves the log's 1-based path index against the path list.
func (s *AdventureSet) PathName(log AdventureLog) string {
	if log.Path < 1 || log.Path > len(s.Paths) {
		return ""
	}
	return s.Paths[log.Path-1]
}

// Page is one rendered journal page: a title and an HTML body.
type Page struct {
	Title string `json:"title"`
	Body  string `json:"body_html"`
}

// Dataset bundles both static documents, loaded once at startup.
type Dataset struct {
	Polls      *PollSet
	Adventures *AdventureSet
}
