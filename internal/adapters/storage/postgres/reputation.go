package postgres

import (
	"context"

	"dog-walk-service/internal/domain/reputation"
)

// Dos agregaciones independientes (completed y rated), cada una con COUNT DISTINCT
// sobre su propia clave, unidas a users solo por walker_id.
const summarizeWalkersSQL = `
	WITH selected AS (
		SELECT wa.application_id, wa.request_id, wa.walker_id
		FROM walk_applications wa
		JOIN walk_requests wr ON wr.request_id = wa.request_id
		WHERE wr.status = 'completed'
		  AND wa.status IN ('accepted', 'completed')
	),
	completed AS (
		SELECT walker_id, COUNT(DISTINCT request_id) AS completed_walks
		FROM selected
		GROUP BY walker_id
	),
	rated AS (
		SELECT s.walker_id,
		       COUNT(DISTINCT r.rating_id) AS total_ratings,
		       SUM(r.rating) AS rating_sum
		FROM selected s
		JOIN walk_ratings r ON r.application_id = s.application_id
		GROUP BY s.walker_id
	)
	SELECT u.username,
	       COALESCE(rt.total_ratings, 0) AS total_ratings,
	       COALESCE(rt.rating_sum, 0) AS rating_sum,
	       COALESCE(c.completed_walks, 0) AS completed_walks
	FROM users u
	LEFT JOIN completed c ON c.walker_id = u.user_id
	LEFT JOIN rated rt ON rt.walker_id = u.user_id
	WHERE u.role = 'walker'
	ORDER BY u.username ASC
`

// SummarizeWalkers es una sola sentencia; el promedio se redondea con reputation.Average
// para que memoria y Postgres usen la misma regla.
func (s *Store) SummarizeWalkers(ctx context.Context) ([]reputation.Summary, error) {
	rows, err := s.db.QueryContext(ctx, summarizeWalkersSQL)
	if err != nil {
		return nil, classify("summarize walkers", err)
	}
	defer rows.Close()

	out := make([]reputation.Summary, 0)
	for rows.Next() {
		var (
			sum reputation.Summary
			total, ratingSum, completed int64
		)
		if err := rows.Scan(&sum.WalkerUsername, &total, &ratingSum, &completed); err != nil {
			return nil, classify("summarize walkers", err)
		}
		sum.TotalRatings = int(total)
		sum.CompletedWalks = int(completed)
		sum.AverageRating = reputation.Average(int(ratingSum), int(total))
		out = append(out, sum)
	}
	return out, classify("summarize walkers", rows.Err())
}
