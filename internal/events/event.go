package events

import (
	"time"

	"github.com/google/uuid"
)

// Type can be one of the entity mutation types below
type Type string

const (
	TypeExerciseCreated Type = "exercise.created"
	TypeExerciseUpdated Type = "exercise.updated"
	TypeExerciseDeleted Type = "exercise.deleted"
	TypeProgramCreated  Type = "program.created"
	TypeProgramUpdated  Type = "program.updated"
	TypeProgramDeleted  Type = "program.deleted"
	TypeWorkoutCreated  Type = "workout.created"
	TypeWorkoutDeleted  Type = "workout.deleted"
	TypeProfileUpdated  Type = "profile.updated"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeExerciseCreated, TypeExerciseUpdated, TypeExerciseDeleted,
		TypeProgramCreated, TypeProgramUpdated, TypeProgramDeleted,
		TypeWorkoutCreated, TypeWorkoutDeleted,
		TypeProfileUpdated:
		return true
	default:
		return false
	}
}

type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	UserID     string    `json:"userId"`
	EntityID   int64     `json:"entityId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}

func New(eventType Type, userID string, entityID int64, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
