package domain

// Podium holds up to three placed winners. Empty strings mean the place
// was not awarded.
type Podium struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Third  string `json:"third"`
}

// Award is one slideshow award: a title, its podium and optional flavor text.
// Some awards are computed from poll data, some are fixed flavor awards;
// both use this shape so the overall winner scoring can walk a single list.
type Award struct {
	Title   string `json:"title"`
	Winners Podium `json:"winners"`
	Extra   string `json:"extra,omitempty"`
	Penalty bool   `json:"penalty,omitempty"`
}

// Names returns the podium in place order.
func (p Podium) Names() [3]string {
	return [3]string{p.First, p.Second, p.Third}
}

// RankedEntry is one row of a ranking: a person and their score. Integer
// scores (vote counts) are stored without loss in the float.
type RankedEntry struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
