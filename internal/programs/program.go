package programs

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainsmart/internal/envelope"
)

var (
	ErrProgramNotFound = fmt.Errorf("program %w", envelope.ErrNotFound)
	// ErrProgramNotUpdated means the update statement matched no row, either
	// because the program is gone or because nothing changed.
	ErrProgramNotUpdated = errors.New("program not updated")
)

const (
	MessageProgramNotFound = "Program not found"
	MessageNoChanges       = "No changes were made"
)

type Program struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	UserID      string    `json:"userId"`
	Time        time.Time `json:"time"`
}

type ProgramInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
