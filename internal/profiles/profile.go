package profiles

import (
	"fmt"
	"time"

	"github.com/2beens/trainsmart/internal/envelope"
)

var ErrProfileNotFound = fmt.Errorf("profile %w", envelope.ErrNotFound)

// DateLayout is the wire and storage format of DateOfBirth.
const DateLayout = "2006-01-02"

type UserProfile struct {
	UserID      string   `json:"userId"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Sex         int      `json:"sex"`
	DateOfBirth *string  `json:"dateOfBirth"`
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	// IsImperial selects the unit system of Height and Weight
	IsImperial *bool      `json:"isImperial"`
	Email      *string    `json:"email"`
	Username   *string    `json:"username"`
	CreatedAt  *time.Time `json:"createdAt"`
}
