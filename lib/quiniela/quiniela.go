// Package quiniela generates random Progol prediction slips. It is pure
// computation over in-memory data, no I/O happens here.
package quiniela

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
)

// MaxMatches is the number of matches on a Progol slip.
const MaxMatches = 14

// Match is a single fixture as resolved from the Progol page.
type Match struct {
	Home      string `json:"local"`
	Away      string `json:"visitante"`
	DateLabel string `json:"fecha"`
}

// Outcome is one of the three possible predictions for a match.
type Outcome int

const (
	Home Outcome = iota
	Draw
	Away
)

var Outcomes = []Outcome{Home, Draw, Away}

// Code returns the short code printed on official slips.
func (o Outcome) Code() string {
	switch o {
	case Home:
		return "1"
	case Draw:
		return "X"
	case Away:
		return "2"
	}
	return "?"
}

func (o Outcome) Glyph() string {
	switch o {
	case Home:
		return "🏠"
	case Draw:
		return "🤝"
	case Away:
		return "✈️"
	}
	return "?"
}

// Label returns the Spanish display name, which is also the form the
// outcome takes when serialized.
func (o Outcome) Label() string {
	switch o {
	case Home:
		return "Local"
	case Draw:
		return "Empate"
	case Away:
		return "Visitante"
	}
	return "Desconocido"
}

func (o Outcome) String() string {
	return o.Label()
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Label())
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	var label string
	err := json.Unmarshal(data, &label)
	if err != nil {
		return err
	}
	for _, candidate := range Outcomes {
		if candidate.Label() == label {
			*o = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", label)
}

// Entry is one predicted match on a slip. The json tags mirror the
// document layout persisted by the slip store.
type Entry struct {
	MatchIndex int     `json:"partido"`
	Home       string  `json:"local"`
	Away       string  `json:"visitante"`
	DateLabel  string  `json:"fecha"`
	Outcome    Outcome `json:"prediccion"`
	Code       string  `json:"codigo"`
	Glyph      string  `json:"simbolo"`
}

// Slip is an ordered set of entries, at most MaxMatches long.
type Slip []Entry

// Bias selects the probability triple used by GenerateBiased.
type Bias string

const (
	BiasLocal       Bias = "local"
	BiasVisitante   Bias = "visitante"
	BiasEmpate      Bias = "empate"
	BiasEquilibrada Bias = "equilibrada"
)

// Weights is a probability triple over the three outcomes. Must sum to 1.
type Weights struct {
	Home float64
	Draw float64
	Away float64
}

// BiasWeights holds the per-bias triples. These are conventional figures,
// not derived from real match statistics.
var BiasWeights = map[Bias]Weights{
	BiasLocal:     {Home: 0.50, Draw: 0.25, Away: 0.25},
	BiasVisitante: {Home: 0.25, Draw: 0.25, Away: 0.50},
	BiasEmpate:    {Home: 0.30, Draw: 0.40, Away: 0.30},
}

type Generator struct {
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return NewGeneratorWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewGeneratorWithRand makes the randomness injectable for tests.
func NewGeneratorWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// GenerateUniform produces `count` independent slips over the first
// MaxMatches matches, drawing every outcome uniformly. An empty match
// list yields an empty result for any count.
func (g *Generator) GenerateUniform(matches []Match, count int) []Slip {
	if len(matches) == 0 {
		return nil
	}

	slips := make([]Slip, 0, count)
	for i := 0; i < count; i++ {
		slips = append(slips, g.generateOne(matches))
	}
	return slips
}

func (g *Generator) generateOne(matches []Match) Slip {
	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}

	slip := make(Slip, 0, len(matches))
	for i, match := range matches {
		outcome := Outcomes[g.rng.IntN(len(Outcomes))]
		slip = append(slip, newEntry(i+1, match, outcome))
	}
	return slip
}

// GenerateBiased produces a single slip whose outcomes follow the
// probability triple registered for `bias`. BiasEquilibrada delegates to
// the uniform path; an unrecognized bias falls back to BiasLocal.
func (g *Generator) GenerateBiased(matches []Match, bias Bias) Slip {
	if len(matches) == 0 {
		return nil
	}
	if bias == BiasEquilibrada {
		return g.generateOne(matches)
	}

	weights, ok := BiasWeights[bias]
	if !ok {
		weights = BiasWeights[BiasLocal]
	}

	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}

	slip := make(Slip, 0, len(matches))
	for i, match := range matches {
		slip = append(slip, newEntry(i+1, match, g.drawWeighted(weights)))
	}
	return slip
}

func (g *Generator) drawWeighted(w Weights) Outcome {
	r := g.rng.Float64()
	if r < w.Home {
		return Home
	}
	if r < w.Home+w.Draw {
		return Draw
	}
	return Away
}

func newEntry(index int, match Match, outcome Outcome) Entry {
	return Entry{
		MatchIndex: index,
		Home:       match.Home,
		Away:       match.Away,
		DateLabel:  match.DateLabel,
		Outcome:    outcome,
		Code:       outcome.Code(),
		Glyph:      outcome.Glyph(),
	}
}
