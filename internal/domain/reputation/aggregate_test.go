package reputation

import "testing"

func avgOf(t *testing.T, s Summary) float64 {
	t.Helper()
	if s.AverageRating == nil {
		t.Fatalf("expected average for %s, got nil", s.WalkerUsername)
	}
	return *s.AverageRating
}

func TestSummarize_WalkerWithoutActivity(t *testing.T) {
	got := Summarize([]Walker{{ID: 1, Username: "sam36"}}, nil, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}
	s := got[0]
	if s.TotalRatings != 0 || s.CompletedWalks != 0 || s.AverageRating != nil {
		t.Fatalf("expected zeros and nil average, got %+v", s)
	}
}

func TestSummarize_RoundsToOneDecimal(t *testing.T) {
	walkers := []Walker{{ID: 1, Username: "bobwalker"}, {ID: 2, Username: "sam36"}}
	walks := []CompletedWalk{
		{WalkerID: 1, RequestID: 10}, {WalkerID: 1, RequestID: 11}, {WalkerID: 1, RequestID: 12},
		{WalkerID: 2, RequestID: 20}, {WalkerID: 2, RequestID: 21},
	}
	ratings := []RatingFact{
		{WalkerID: 1, RatingID: 1, Value: 5},
		{WalkerID: 1, RatingID: 2, Value: 4},
		{WalkerID: 1, RatingID: 3, Value: 4},
		{WalkerID: 2, RatingID: 4, Value: 5},
		{WalkerID: 2, RatingID: 5, Value: 4},
	}

	got := Summarize(walkers, walks, ratings)
	if got[0].WalkerUsername != "bobwalker" || avgOf(t, got[0]) != 4.3 {
		t.Fatalf("expected bobwalker 4.3, got %+v", got[0])
	}
	if got[1].WalkerUsername != "sam36" || avgOf(t, got[1]) != 4.5 {
		t.Fatalf("expected sam36 4.5, got %+v", got[1])
	}
}

func TestSummarize_FanOutDoesNotInflateCompletedWalks(t *testing.T) {
	// una sola caminata completada con tres calificaciones
	walkers := []Walker{{ID: 1, Username: "bobwalker"}}
	walks := []CompletedWalk{{WalkerID: 1, RequestID: 10}}
	ratings := []RatingFact{
		{WalkerID: 1, RatingID: 1, Value: 5},
		{WalkerID: 1, RatingID: 2, Value: 3},
		{WalkerID: 1, RatingID: 3, Value: 4},
	}

	got := Summarize(walkers, walks, ratings)[0]
	if got.CompletedWalks != 1 {
		t.Fatalf("expected 1 completed walk, got %d", got.CompletedWalks)
	}
	if got.TotalRatings != 3 || avgOf(t, got) != 4.0 {
		t.Fatalf("expected 3 ratings avg 4.0, got %+v", got)
	}
}

func TestSummarize_DuplicateFactsCountOnce(t *testing.T) {
	walkers := []Walker{{ID: 1, Username: "bobwalker"}, {ID: 1, Username: "bobwalker"}}
	walks := []CompletedWalk{{WalkerID: 1, RequestID: 10}, {WalkerID: 1, RequestID: 10}}
	ratings := []RatingFact{
		{WalkerID: 1, RatingID: 7, Value: 2},
		{WalkerID: 1, RatingID: 7, Value: 2},
	}

	got := Summarize(walkers, walks, ratings)
	if len(got) != 1 {
		t.Fatalf("expected walker listed once, got %d", len(got))
	}
	if got[0].CompletedWalks != 1 || got[0].TotalRatings != 1 || avgOf(t, got[0]) != 2.0 {
		t.Fatalf("duplicated facts must be counted once, got %+v", got[0])
	}
}

func TestSummarize_OrderedByUsername(t *testing.T) {
	got := Summarize([]Walker{{ID: 3, Username: "zed"}, {ID: 1, Username: "amy"}, {ID: 2, Username: "mia"}}, nil, nil)
	for i, want := range []string{"amy", "mia", "zed"} {
		if got[i].WalkerUsername != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].WalkerUsername)
		}
	}
}

func TestAverage(t *testing.T) {
	if Average(0, 0) != nil {
		t.Fatalf("expected nil for zero ratings")
	}
	cases := []struct {
		sum, count int
		want       float64
	}{
		{9, 2, 4.5},
		{13, 3, 4.3},
		{14, 3, 4.7},
		{5, 1, 5.0},
		{1, 8, 0.1},
	}
	for _, tc := range cases {
		if got := *Average(tc.sum, tc.count); got != tc.want {
			t.Fatalf("Average(%d, %d) = %v, want %v", tc.sum, tc.count, got, tc.want)
		}
	}
}
