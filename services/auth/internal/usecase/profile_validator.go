package usecase

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

const UsernameCooldown = 14 * 24 * time.Hour

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

type ProfileEditReason string

const (
	ReasonCooldown        ProfileEditReason = "cooldown"
	ReasonInvalidUsername ProfileEditReason = "invalid_username"
	ReasonTaken           ProfileEditReason = "taken"
)

// ProfileEditError is a rejected profile edit the member can act on.
type ProfileEditError struct {
	Reason        ProfileEditReason `json:"reason"`
	DaysRemaining int               `json:"days_remaining,omitempty"`
}

func (e *ProfileEditError) Error() string {
	switch e.Reason {
	case ReasonCooldown:
		return fmt.Sprintf("username can be changed again in %d day(s)", e.DaysRemaining)
	case ReasonInvalidUsername:
		return "username must be 3-20 characters: letters, numbers or underscores"
	case ReasonTaken:
		return "username is already taken"
	}
	return "invalid profile edit"
}

// ValidateUsername checks length 3..20 and the [a-zA-Z0-9_] alphabet.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return &ProfileEditError{Reason: ReasonInvalidUsername}
	}
	return nil
}

// CooldownDaysRemaining returns how many whole days (rounded up) are left
// before the username may change again, or 0 when it may change now.
func CooldownDaysRemaining(changedAt *time.Time, now time.Time) int {
	if changedAt == nil {
		return 0
	}
	remaining := changedAt.Add(UsernameCooldown).Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}
