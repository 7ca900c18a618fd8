package workouts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/trainsmart/internal/envelope"
)

var ErrWorkoutNotFound = fmt.Errorf("workout %w", envelope.ErrNotFound)

var ErrInvalidWorkout = errors.New("invalid workout")

// Workout is a named session inside a program (program_workouts table).
type Workout struct {
	ID          int64     `json:"id"`
	Name        string    `json:"workoutName"`
	Description *string   `json:"description"`
	ProgramID   int64     `json:"programId"`
	UserID      string    `json:"userId"`
	TimeCreated time.Time `json:"timeCreated"`
}

type NewWorkout struct {
	Name        string
	Description *string
	ProgramID   int64
	UserID      string
}

func (nw NewWorkout) Validate() error {
	if strings.TrimSpace(nw.Name) == "" {
		return fmt.Errorf("%w: name empty", ErrInvalidWorkout)
	}
	if nw.ProgramID <= 0 {
		return fmt.Errorf("%w: program not set", ErrInvalidWorkout)
	}
	if nw.UserID == "" {
		return fmt.Errorf("%w: owner empty", ErrInvalidWorkout)
	}
	return nil
}
