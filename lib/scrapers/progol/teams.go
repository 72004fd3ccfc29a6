package progol

import (
	"fmt"
	"math/rand/v2"

	"github.com/leonmuri/progol-backend/lib/quiniela"
)

// teams commonly listed on Progol slips, used only when the real
// listing cannot be obtained
var mexicanTeams = []string{
	"América", "Chivas", "Cruz Azul", "Pumas", "Tigres", "Monterrey",
	"Santos", "León", "Atlas", "Necaxa", "Pachuca", "Toluca",
	"Puebla", "Tijuana", "Mazatlán", "Querétaro", "Juárez", "San Luis",
}

var internationalTeams = []string{
	"Barcelona", "Real Madrid", "Manchester United", "Liverpool",
	"Bayern Munich", "PSG", "Juventus", "Inter Milan", "Chelsea",
	"Arsenal", "Manchester City", "Atletico Madrid", "Borussia Dortmund",
	"AC Milan",
}

// SyntheticMatches generates a full 14-match list from the fixed team
// pool, avoiding teams already drawn this session. Once fewer than two
// unused names remain the used set resets and drawing continues from
// the full pool, so this can never loop forever.
func (s *Scraper) SyntheticMatches() []quiniela.Match {
	pool := make([]string, 0, len(mexicanTeams)+len(internationalTeams))
	pool = append(pool, mexicanTeams...)
	pool = append(pool, internationalTeams...)

	matches := make([]quiniela.Match, 0, quiniela.MaxMatches)
	for i := 0; i < quiniela.MaxMatches; i++ {
		available := make([]string, 0, len(pool))
		for _, team := range pool {
			if !s.usedTeams[team] {
				available = append(available, team)
			}
		}
		if len(available) < 2 {
			clear(s.usedTeams)
			available = append(available[:0], pool...)
		}

		homeIdx := rand.IntN(len(available))
		home := available[homeIdx]
		available = append(available[:homeIdx], available[homeIdx+1:]...)
		away := available[rand.IntN(len(available))]

		s.usedTeams[home] = true
		s.usedTeams[away] = true

		matches = append(matches, quiniela.Match{
			Home:      home,
			Away:      away,
			DateLabel: fmt.Sprintf("Jornada %d", i+1),
		})
	}
	return matches
}
