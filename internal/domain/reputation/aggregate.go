package reputation

import (
	"math"
	"sort"
)

// Summarize arma un resumen por paseador (incluidos los que no tienen actividad).
//
// Los paseos completados y las calificaciones se agregan en dos pasadas
// independientes, cada una con distinct sobre su propia clave (request_id y
// rating_id), y solo se unen por walker_id al final. Así varias
// calificaciones sobre el mismo pedido nunca multiplican completed_walks.
func Summarize(walkers []Walker, walks []CompletedWalk, ratings []RatingFact) []Summary {
	completed := make(map[int64]map[int64]struct{})
	for _, w := range walks {
		set, ok := completed[w.WalkerID]
		if !ok {
			set = make(map[int64]struct{})
			completed[w.WalkerID] = set
		}
		set[w.RequestID] = struct{}{}
	}

	rated := make(map[int64]map[int64]int)
	for _, r := range ratings {
		set, ok := rated[r.WalkerID]
		if !ok {
			set = make(map[int64]int)
			rated[r.WalkerID] = set
		}
		set[r.RatingID] = r.Value
	}

	seen := make(map[int64]struct{}, len(walkers))
	out := make([]Summary, 0, len(walkers))
	for _, w := range walkers {
		if _, dup := seen[w.ID]; dup {
			continue
		}
		seen[w.ID] = struct{}{}

		sum := 0
		for _, v := range rated[w.ID] {
			sum += v
		}
		count := len(rated[w.ID])

		out = append(out, Summary{
			WalkerUsername: w.Username,
			TotalRatings:   count,
			AverageRating:  Average(sum, count),
			CompletedWalks: len(completed[w.ID]),
		})
	}

	SortByUsername(out)
	return out
}

// Average redondea la media a un decimal (mitades lejos de cero, como ROUND en SQL).
// Devuelve nil si no hay calificaciones.
func Average(sum, count int) *float64 {
	if count <= 0 {
		return nil
	}
	avg := math.Round(float64(sum)*10/float64(count)) / 10
	return &avg
}

func SortByUsername(items []Summary) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].WalkerUsername < items[j].WalkerUsername
	})
}
