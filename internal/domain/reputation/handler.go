package reputation

import (
	"net/http"

	"dog-walk-service/internal/platform/httpx"
	"dog-walk-service/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/api/walkers/summary", summaryHandler(svc, log))
}

type summaryResponse struct {
	WalkerUsername string   `json:"walker_username"`
	TotalRatings   int      `json:"total_ratings"`
	AverageRating  *float64 `json:"average_rating"`
	CompletedWalks int      `json:"completed_walks"`
}

// summaryHandler godoc
// @Summary Reputación de paseadores
// @Description Una fila por paseador, incluidos los que no tienen actividad (average_rating null).
// @Tags walkers
// @Produce json
// @Success 200 {array} summaryResponse
// @Failure 503 {string} string "service unavailable"
// @Router /api/walkers/summary [get]
func summaryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Summaries(r.Context())
		if err != nil {
			httpx.WriteError(w, log, err)
			return
		}

		out := make([]summaryResponse, 0, len(items))
		for _, s := range items {
			out = append(out, summaryResponse{
				WalkerUsername: s.WalkerUsername,
				TotalRatings:   s.TotalRatings,
				AverageRating:  s.AverageRating,
				CompletedWalks: s.CompletedWalks,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}
