package reputation

// Summary es el resumen por paseador. AverageRating es nil cuando TotalRatings == 0.
type Summary struct {
	WalkerUsername string
	TotalRatings   int
	AverageRating  *float64
	CompletedWalks int
}

type Walker struct {
	ID       int64
	Username string
}

// CompletedWalk: un pedido completed y el paseador de su postulación elegida.
type CompletedWalk struct {
	WalkerID  int64
	RequestID int64
}

// RatingFact: una calificación alcanzada a través de la postulación elegida.
type RatingFact struct {
	WalkerID int64
	RatingID int64
	Value    int
}
