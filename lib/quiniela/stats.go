package quiniela

// Stats summarizes the outcome distribution of a single slip. Outcomes
// that never appear on the slip are absent from both maps.
type Stats struct {
	Total       int
	Counts      map[Outcome]int
	Percentages map[Outcome]float64
}

func ComputeStats(slip Slip) Stats {
	counts := map[Outcome]int{}
	for _, entry := range slip {
		counts[entry.Outcome]++
	}

	percentages := make(map[Outcome]float64, len(counts))
	for outcome, count := range counts {
		percentages[outcome] = float64(count) / float64(len(slip)) * 100
	}

	return Stats{
		Total:       len(slip),
		Counts:      counts,
		Percentages: percentages,
	}
}
