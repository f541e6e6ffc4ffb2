package persistent

import (
	"strings"

	"unvaultd/services/notification/internal/model"
)

const unknownActor = "Someone"

// ToActorName prefers the display name, then @username, then the email local part.
func ToActorName(m *model.ActorModel) string {
	if m == nil {
		return unknownActor
	}
	if name := strings.TrimSpace(m.Name); name != "" {
		return name
	}
	if m.Username != nil && *m.Username != "" {
		return "@" + *m.Username
	}
	if local, _, ok := strings.Cut(m.Email, "@"); ok && local != "" {
		return local
	}
	return unknownActor
}
