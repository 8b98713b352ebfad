package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tutorku_backend/internals/constants"
)

// Locals keys, set by the AuthJWT middleware.
const (
	LocUserID = "user_id"
	LocRole   = "role"
)

// Actor is the already-authenticated caller descriptor. Identity and role
// assignment are owned by the auth service; this backend only consumes them.
type Actor struct {
	ID   uuid.UUID
	Role string // constants.Role*
}

func (a Actor) IsAdmin() bool   { return a.Role == constants.RoleAdmin }
func (a Actor) IsTeacher() bool { return a.Role == constants.RoleTeacher }

// GetActor reads the actor descriptor hydrated by AuthJWT. Returns a fiber
// 401 error when locals are missing or malformed.
func GetActor(c *fiber.Ctx) (Actor, error) {
	rawID, _ := c.Locals(LocUserID).(string)
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}

	role, _ := c.Locals(LocRole).(string)
	role = strings.ToLower(strings.TrimSpace(role))
	switch role {
	case constants.RoleAdmin, constants.RoleTeacher, constants.RoleStudent, constants.RoleParent:
	default:
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unknown role in token")
	}

	return Actor{ID: id, Role: role}, nil
}
