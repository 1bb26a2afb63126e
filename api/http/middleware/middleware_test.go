package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/rolepanel/pkg/auth"
	"github.com/artem13815/rolepanel/pkg/user"
)

type resolverFunc func(ctx context.Context, token string) (auth.Principal, error)

func (f resolverFunc) Resolve(ctx context.Context, token string) (auth.Principal, error) {
	return f(ctx, token)
}

func whoAmI(c *fiber.Ctx) error {
	p, ok := CurrentPrincipal(c)
	if !ok {
		return c.SendString("anonymous")
	}
	return c.SendString(p.Username + ":" + string(p.Level))
}

func TestSessionMiddleware(t *testing.T) {
	resolver := resolverFunc(func(_ context.Context, token string) (auth.Principal, error) {
		if token == "good" {
			return auth.Principal{Username: "ada", Level: user.LevelAdmin}, nil
		}
		return auth.Principal{}, auth.ErrInvalidSession
	})
	app := fiber.New()
	app.Use(NewSessionMiddleware(resolver, SessionCookie{Name: "session"}))
	app.Get("/", whoAmI)

	get := func(cookie string) (string, *fiber.Cookie) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		if cookie != "" {
			req.Header.Set(fiber.HeaderCookie, "session="+cookie)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		for _, c := range resp.Cookies() {
			if c.Name == "session" {
				return string(body), &fiber.Cookie{Name: c.Name, Value: c.Value}
			}
		}
		return string(body), nil
	}

	body, set := get("")
	assert.Equal(t, "anonymous", body)
	assert.Nil(t, set)

	body, set = get("good")
	assert.Equal(t, "ada:admin", body)
	assert.Nil(t, set)

	body, set = get("stale")
	assert.Equal(t, "anonymous", body)
	require.NotNil(t, set, "a stale cookie is cleared")
	assert.Empty(t, set.Value)
}

func TestSessionMiddleware_ResolverFailure(t *testing.T) {
	app := fiber.New()
	app.Use(NewSessionMiddleware(resolverFunc(func(context.Context, string) (auth.Principal, error) {
		return auth.Principal{}, assert.AnError
	}), SessionCookie{Name: "session"}))
	app.Get("/", whoAmI)

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderCookie, "session=x")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestRequireLevel(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if lvl := c.Get("X-Level"); lvl != "" {
			c.Locals(principalKey, auth.Principal{Username: "u", Level: user.Level(lvl)})
		}
		return c.Next()
	})
	app.Get("/staff", RequireLevel(user.LevelAdmin, user.LevelOperator), whoAmI)
	app.Get("/any", RequireLevel(), whoAmI)

	cases := []struct {
		path, level string
		status      int
	}{
		{"/staff", "", fiber.StatusFound},
		{"/staff", "player", fiber.StatusFound},
		{"/staff", "operator", fiber.StatusOK},
		{"/staff", "admin", fiber.StatusOK},
		{"/any", "", fiber.StatusFound},
		{"/any", "player", fiber.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(fiber.MethodGet, tc.path, nil)
		if tc.level != "" {
			req.Header.Set("X-Level", tc.level)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, "%s as %q", tc.path, tc.level)
		if tc.status == fiber.StatusFound {
			assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
		}
	}
}

func TestErrorLogger(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	app := fiber.New()
	app.Use(NewErrorLogger())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("fine") })
	app.Get("/missing", func(c *fiber.Ctx) error { return c.Status(fiber.StatusNotFound).SendString("User not found") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "upstream down") })

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
		require.NoError(t, err)
	}

	out := buf.String()
	assert.NotContains(t, out, "/ok")
	assert.Contains(t, out, "GET /missing 404 - User not found")
	assert.Contains(t, out, "GET /boom 502 - upstream down")
}

func TestMetrics(t *testing.T) {
	m := NewMetrics("rolepanel")
	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/metrics", m.Expose())
	app.Get("/users/:name", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })

	for _, name := range []string{"a", "b"} {
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/users/"+name, nil), -1)
		require.NoError(t, err)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `rolepanel_http_request_errors_total{method="GET",path="/users/:name",status="404"} 2`)
	assert.Contains(t, text, "rolepanel_http_request_duration_seconds_bucket")
	assert.Contains(t, text, "rolepanel_http_requests_inflight")
}
