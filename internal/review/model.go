package review

import "github.com/cinelog/cinelog/internal/model"

// Review is one user's rating of one movie. A user holds at most one review
// per movie.
type Review struct {
	model.Model

	OwnerID string
	MovieID string
	Rating  float64
	Content string
}
