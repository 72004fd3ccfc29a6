package quiniela

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func testGenerator() *Generator {
	return NewGeneratorWithRand(rand.New(rand.NewPCG(1, 2)))
}

func sampleMatches(n int) []Match {
	teams := []string{
		"América", "Chivas", "Cruz Azul", "Pumas", "Tigres", "Monterrey",
		"Santos", "León", "Atlas", "Necaxa", "Pachuca", "Toluca",
		"Puebla", "Tijuana", "Mazatlán", "Querétaro",
	}
	matches := make([]Match, 0, n)
	for i := 0; i < n; i++ {
		matches = append(matches, Match{
			Home:      teams[(2*i)%len(teams)],
			Away:      teams[(2*i+1)%len(teams)],
			DateLabel: "Próxima jornada",
		})
	}
	return matches
}

func TestGenerateUniform(t *testing.T) {
	g := testGenerator()

	slips := g.GenerateUniform(sampleMatches(10), 5)
	require.Len(t, slips, 5)
	for _, slip := range slips {
		require.Len(t, slip, 10)
		for i, entry := range slip {
			require.Equal(t, i+1, entry.MatchIndex)
			require.Contains(t, Outcomes, entry.Outcome)
			require.Equal(t, entry.Outcome.Code(), entry.Code)
			require.Equal(t, entry.Outcome.Glyph(), entry.Glyph)
		}
	}
}

func TestGenerateUniformCapsAtFourteen(t *testing.T) {
	g := testGenerator()

	slips := g.GenerateUniform(sampleMatches(20), 1)
	require.Len(t, slips, 1)
	require.Len(t, slips[0], MaxMatches)
}

func TestGenerateUniformEmptyMatches(t *testing.T) {
	g := testGenerator()

	require.Empty(t, g.GenerateUniform(nil, 0))
	require.Empty(t, g.GenerateUniform(nil, 10))
	require.Empty(t, g.GenerateUniform([]Match{}, 3))
}

func TestGenerateUniformSingleMatch(t *testing.T) {
	g := testGenerator()

	slips := g.GenerateUniform([]Match{
		{Home: "América", Away: "Chivas", DateLabel: "Jornada 1"},
	}, 1)
	require.Len(t, slips, 1)
	require.Len(t, slips[0], 1)

	entry := slips[0][0]
	require.Equal(t, 1, entry.MatchIndex)
	require.Equal(t, "América", entry.Home)
	require.Equal(t, "Chivas", entry.Away)
	require.Contains(t, Outcomes, entry.Outcome)
}

func TestGenerateBiasedDistribution(t *testing.T) {
	g := testGenerator()
	matches := sampleMatches(1)

	cases := []struct {
		bias    Bias
		outcome Outcome
		rate    float64
	}{
		{BiasLocal, Home, 0.50},
		{BiasVisitante, Away, 0.50},
		{BiasEmpate, Draw, 0.40},
		// unknown biases fall back to the local triple
		{Bias("garbage"), Home, 0.50},
	}

	const rounds = 10000
	for _, test := range cases {
		hits := 0
		for i := 0; i < rounds; i++ {
			slip := g.GenerateBiased(matches, test.bias)
			require.Len(t, slip, 1)
			if slip[0].Outcome == test.outcome {
				hits++
			}
		}
		rate := float64(hits) / rounds
		require.InDeltaf(t, test.rate, rate, 0.03,
			"bias %q should favor %s", test.bias, test.outcome)
	}
}

func TestGenerateBiasedEquilibrada(t *testing.T) {
	g := testGenerator()

	slip := g.GenerateBiased(sampleMatches(14), BiasEquilibrada)
	require.Len(t, slip, 14)
	for _, entry := range slip {
		require.Contains(t, Outcomes, entry.Outcome)
	}

	require.Empty(t, g.GenerateBiased(nil, BiasEquilibrada))
}

func TestBiasWeightsSumToOne(t *testing.T) {
	for bias, w := range BiasWeights {
		sum := w.Home + w.Draw + w.Away
		require.InDeltaf(t, 1.0, sum, 1e-9, "weights for %q", bias)
	}
}

func TestComputeStats(t *testing.T) {
	g := testGenerator()
	slip := g.GenerateUniform(sampleMatches(14), 1)[0]

	stats := ComputeStats(slip)
	require.Equal(t, 14, stats.Total)

	total := 0
	for _, count := range stats.Counts {
		total += count
	}
	require.Equal(t, len(slip), total)

	sum := 0.0
	for _, pct := range stats.Percentages {
		sum += pct
	}
	require.True(t, math.Abs(sum-100) < 1e-9)
}

func TestComputeStatsOmitsAbsentOutcomes(t *testing.T) {
	slip := Slip{
		newEntry(1, Match{Home: "Atlas", Away: "Necaxa"}, Home),
		newEntry(2, Match{Home: "Toluca", Away: "Puebla"}, Home),
	}

	stats := ComputeStats(slip)
	require.Equal(t, 2, stats.Total)
	require.Equal(t, map[Outcome]int{Home: 2}, stats.Counts)
	require.NotContains(t, stats.Percentages, Draw)
	require.NotContains(t, stats.Percentages, Away)
	require.InDelta(t, 100, stats.Percentages[Home], 1e-9)
}

func TestEntryJSONRoundTrip(t *testing.T) {
	entry := newEntry(3, Match{Home: "León", Away: "Atlas", DateLabel: "Jornada 9"}, Draw)

	raw, err := json.Marshal(entry)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"prediccion":"Empate"`)

	var decoded Entry
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, entry, decoded)
}
