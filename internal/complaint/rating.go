package complaint

import (
	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"

	"go.uber.org/zap"
)

// SubmitRating records the student's rating and feedback on a resolved
// complaint. Only the original student may rate, only after resolution,
// and only once: the first submission wins and the pair is immutable
// afterwards.
func (s *Service) SubmitRating(id, studentID string, rating int, feedback string) (*models.Complaint, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if c.StudentID != studentID {
		return nil, &PreconditionError{Reason: "only the complaint owner may rate it"}
	}
	if c.Status != models.StatusResolved {
		return nil, &PreconditionError{Reason: "complaint is not resolved yet"}
	}
	if c.Rating != nil {
		return nil, &PreconditionError{Reason: "complaint has already been rated"}
	}
	if rating < config.RatingMin || rating > config.RatingMax {
		return nil, &ValidationError{Field: "rating", Reason: "must be an integer between 1 and 5"}
	}

	c.Rating = &rating
	c.Feedback = feedback
	if err := s.Storage.UpdateComplaint(c); err != nil {
		return nil, err
	}

	s.Log.Info("complaint rated",
		zap.String("complaint_id", c.ID),
		zap.Int("rating", rating))
	return c, nil
}
