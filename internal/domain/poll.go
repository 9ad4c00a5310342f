package domain

// Option is a single poll option and the people who voted for it.
type Option struct {
	Name   string   `json:"name"`
	Voters []string `json:"voters"`
}

// Poll is a named question with its options in document order.
// Option order matters: the trendsetter/rebel calculations walk options in
// the order they appear in the source document.
type Poll struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// PollSet is the full poll dataset: the member roster and every poll in
// document order. Immutable after load.
type PollSet struct {
	People   []string `json:"people"`
	Honorary []string `json:"honorary"`
	Polls    []Poll   `json:"polls"`
}

// HasVoter reports whether person voted for this option.
func (o Option) HasVoter(person string) bool {
	for _, v := range o.Voters {
		if v == person {
			return true
		}
	}
	return false
}

// OptionFor returns the name of the option person voted for in this poll,
// or "" if they did not vote. Load-time validation guarantees at most one
// vote per person per poll.
func (p Poll) OptionFor(person string) string {
	for _, opt := range p.Options {
		if opt.HasVoter(person) {
			return opt.Name
		}
	}
	return ""
}

// HasPerson reports whether name is a known member.
func (ps *PollSet) HasPerson(name string) bool {
	for _, p := range ps.People {
		if p == name {
			return true
		}
	}
	return false
}

// IsHonorary reports whether name is an honorary member.
func (ps *PollSet) IsHonorary(name string) bool {
	for _, p := range ps.Honorary {
		if p == name {
			return true
		}
	}
	return false
}

// PollByName returns the poll with the given name, or nil if absent.
func (ps *PollSet) PollByName(name string) *Poll {
	for i := range ps.Polls {
		if ps.Polls[i].Name == name {
			return &ps.Polls[i]
		}
	}
	return nil
}
