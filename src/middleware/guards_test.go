package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"Backend-Slotify/src/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// asUser จำลองผลของ AuthJWT: ใส่ identity ลง locals แล้วปล่อยผ่าน
func asUser(id, email, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", id)
		c.Locals("email", email)
		c.Locals("role", role)
		return c.Next()
	}
}

func okHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "ok"})
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &body))
	return body
}

type fakeTeams struct {
	members map[int]bool
	err     error
	calls   int
}

func (f *fakeTeams) IsTeamMember(ctx context.Context, userID string, teamID int) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.members[teamID], nil
}

func TestAdminRequired(t *testing.T) {
	app := fiber.New()
	app.Get("/admin-only", asUser("u1", "u1@example.com", models.RoleUser), AdminRequired, okHandler)
	app.Get("/admin-ok", asUser("a1", "a1@example.com", models.RoleAdmin), AdminRequired, okHandler)

	t.Run("NonAdminRejected", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeBody(t, resp)["code"])
	})

	t.Run("AdminPasses", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/admin-ok", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestTeamMemberRequired(t *testing.T) {
	setup := func(teams TeamChecker) *fiber.App {
		Teams = teams
		app := fiber.New()
		app.All("/resource", asUser("u1", "u1@example.com", models.RoleUser), TeamMemberRequired, okHandler)
		app.Get("/anonymous", TeamMemberRequired, okHandler)
		return app
	}
	t.Cleanup(func() { Teams = nil })

	postJSON := func(payload string) *http.Request {
		req := httptest.NewRequest("POST", "/resource", bytes.NewReader([]byte(payload)))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	t.Run("AbsentTeamIdPassesThrough", func(t *testing.T) {
		checker := &fakeTeams{}
		app := setup(checker)

		resp, err := app.Test(httptest.NewRequest("GET", "/resource", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Zero(t, checker.calls)

		resp, err = app.Test(postJSON(`{"title":"no team here"}`))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Zero(t, checker.calls)
	})

	t.Run("MemberPasses", func(t *testing.T) {
		app := setup(&fakeTeams{members: map[int]bool{7: true}})

		resp, err := app.Test(httptest.NewRequest("GET", "/resource?teamId=7", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("BodyNumberAndStringBothWork", func(t *testing.T) {
		app := setup(&fakeTeams{members: map[int]bool{7: true}})

		resp, err := app.Test(postJSON(`{"teamId":7}`))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, err = app.Test(postJSON(`{"teamId":"7"}`))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("MalformedTeamIdIsBadRequest", func(t *testing.T) {
		app := setup(&fakeTeams{members: map[int]bool{7: true}})

		for _, payload := range []string{`{"teamId":"abc"}`, `{"teamId":7.5}`, `{"teamId":true}`} {
			resp, err := app.Test(postJSON(payload))
			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "payload %s", payload)
			assert.Equal(t, "BAD_REQUEST", decodeBody(t, resp)["code"])
		}

		resp, err := app.Test(httptest.NewRequest("GET", "/resource?teamId=abc", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NonPositiveTeamIdIsBadRequest", func(t *testing.T) {
		app := setup(&fakeTeams{})

		resp, err := app.Test(httptest.NewRequest("GET", "/resource?teamId=0", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NonMemberRejected", func(t *testing.T) {
		app := setup(&fakeTeams{members: map[int]bool{7: true}})

		resp, err := app.Test(httptest.NewRequest("GET", "/resource?teamId=8", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeBody(t, resp)["code"])
	})

	t.Run("LookupFailureFailsClosed", func(t *testing.T) {
		app := setup(&fakeTeams{err: errors.New("store down")})

		resp, err := app.Test(httptest.NewRequest("GET", "/resource?teamId=7", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("NoCheckerFailsClosed", func(t *testing.T) {
		app := setup(nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/resource?teamId=7", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("UnauthenticatedUserRejected", func(t *testing.T) {
		app := setup(&fakeTeams{members: map[int]bool{7: true}})

		resp, err := app.Test(httptest.NewRequest("GET", "/anonymous?teamId=7", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
