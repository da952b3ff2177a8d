package model

// StatsSnapshot is a point-in-time read of the service's aggregate counts,
// captured before and after a sync pass for comparison. Read-only once built.
type StatsSnapshot struct {
	PlacesByType  map[string]int
	PlacesByCity  map[string]int
	AverageRating *float64 // nil when the service reports no rating data
}

// TotalPlaces sums the per-type counts.
func (s *StatsSnapshot) TotalPlaces() int {
	var n int
	for _, c := range s.PlacesByType {
		n += c
	}
	return n
}
