package models

// Feedback sort keys. Newest keeps stored order, which is newest first.
const (
	FeedbackSortNewest     = "newest"
	FeedbackSortRatingDesc = "rating-desc"
	FeedbackSortRatingAsc  = "rating-asc"
	FeedbackSortNameAsc    = "name-asc"
)

// Feedback is a testimonial. Date is DD/MM/YYYY.
type Feedback struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Feedback string `json:"feedback"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
}

func (f Feedback) ItemID() int64 { return f.ID }

// FeedbackRequest is the testimonial form. Rating defaults to 5.
type FeedbackRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Feedback string `json:"feedback" validate:"required"`
	Rating   *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}
