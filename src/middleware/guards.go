package middleware

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"

	"Backend-Slotify/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// TeamChecker looks up whether a user holds an accepted membership in a team.
// Wired from routes.InitRoutes; a nil checker rejects every team-gated request.
type TeamChecker interface {
	IsTeamMember(ctx context.Context, userID string, teamID int) (bool, error)
}

var Teams TeamChecker

// AdminRequired ใช้หลัง AuthJWT เท่านั้น
func AdminRequired(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != models.RoleAdmin {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Admin access required",
			"code":  "UNAUTHORIZED",
		})
	}
	return c.Next()
}

// TeamMemberRequired ใช้หลัง AuthJWT เท่านั้น
// teamId is optional input: when absent the request passes through untouched,
// when present it must be a positive integer (string or number accepted) and
// the authenticated user must hold an accepted membership in that team.
func TeamMemberRequired(c *fiber.Ctx) error {
	teamID, present, err := parseTeamID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid teamId",
			"code":  "BAD_REQUEST",
		})
	}
	if !present {
		return c.Next()
	}
	if err := validate.Var(teamID, "min=1"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid teamId",
			"code":  "BAD_REQUEST",
		})
	}

	userID, _ := c.Locals("userId").(string)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not authenticated",
			"code":  "UNAUTHORIZED",
		})
	}

	if Teams == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Team membership required",
			"code":  "UNAUTHORIZED",
		})
	}
	member, err := Teams.IsTeamMember(c.Context(), userID, teamID)
	if err != nil {
		log.Println("⚠️ Team membership lookup failed:", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Team membership required",
			"code":  "UNAUTHORIZED",
		})
	}
	if !member {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Team membership required",
			"code":  "UNAUTHORIZED",
		})
	}

	return c.Next()
}

// parseTeamID อ่าน teamId จาก query หรือ body (string หรือ number)
func parseTeamID(c *fiber.Ctx) (int, bool, error) {
	if q := c.Query("teamId"); q != "" {
		id, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil {
			return 0, true, err
		}
		return id, true, nil
	}

	if len(c.Body()) == 0 {
		return 0, false, nil
	}

	var in struct {
		TeamID interface{} `json:"teamId"`
	}
	if err := c.BodyParser(&in); err != nil {
		return 0, false, err
	}

	switch v := in.TeamID.(type) {
	case nil:
		return 0, false, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, true, strconv.ErrSyntax
		}
		return int(v), true, nil
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, true, err
		}
		return id, true, nil
	default:
		return 0, true, strconv.ErrSyntax
	}
}
