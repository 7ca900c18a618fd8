package exercises

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainsmart/internal/envelope"
)

var ErrExerciseNotFound = fmt.Errorf("exercise %w", envelope.ErrNotFound)

var ErrInvalidExercise = errors.New("invalid exercise")

// Exercise is either owned by a user or a shared template (is_template, visible to everyone).
type Exercise struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	Description            *string   `json:"description"`
	IsTimeBased            bool      `json:"isTimeBased"`
	PrimaryMuscleGroupID   int64     `json:"primaryMuscleGroupId"`
	SecondaryMuscleGroupID *int64    `json:"secondaryMuscleGroupId"`
	UserID                 *string   `json:"userId"`
	IsTemplate             bool      `json:"isTemplate"`
	TimeCreated            time.Time `json:"timeCreated"`
}

// OwnedBy reports whether the exercise belongs to the user (templates never do).
func (e Exercise) OwnedBy(userID string) bool {
	return !e.IsTemplate && e.UserID != nil && *e.UserID == userID
}

type NewExercise struct {
	Name                   string
	Description            *string
	IsTimeBased            bool
	PrimaryMuscleGroupID   int64
	SecondaryMuscleGroupID *int64
	UserID                 string
	IsTemplate             bool
}

type ExerciseUpdate struct {
	ID                     int64
	Name                   string
	Description            *string
	IsTimeBased            bool
	PrimaryMuscleGroupID   int64
	SecondaryMuscleGroupID *int64
	IsTemplate             bool
}

func (ne NewExercise) Validate() error {
	if ne.Name == "" {
		return fmt.Errorf("%w: name empty", ErrInvalidExercise)
	}
	if ne.UserID == "" {
		return fmt.Errorf("%w: owner empty", ErrInvalidExercise)
	}
	return nil
}
