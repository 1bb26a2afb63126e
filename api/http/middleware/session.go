package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/rolepanel/pkg/auth"
	"github.com/artem13815/rolepanel/pkg/user"
)

const principalKey = "principal"

// SessionResolver turns a session token into the principal it belongs to.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (auth.Principal, error)
}

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (sc SessionCookie) Read(c *fiber.Ctx) string { return c.Cookies(sc.Name) }

func (sc SessionCookie) Set(c *fiber.Ctx, s auth.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     sc.Name,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		Secure:   sc.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (sc SessionCookie) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   sc.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// NewSessionMiddleware resolves the session cookie, if any, and stores the
// principal in c.Locals. A stale or forged cookie is cleared and the request
// continues anonymously.
func NewSessionMiddleware(resolver SessionResolver, cookie SessionCookie) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := cookie.Read(c); token != "" {
			p, err := resolver.Resolve(c.Context(), token)
			switch {
			case err == nil:
				c.Locals(principalKey, p)
			case errors.Is(err, auth.ErrInvalidSession):
				cookie.Clear(c)
			default:
				return err
			}
		}
		return c.Next()
	}
}

// CurrentPrincipal returns the principal resolved for this request.
func CurrentPrincipal(c *fiber.Ctx) (auth.Principal, bool) {
	p, ok := c.Locals(principalKey).(auth.Principal)
	return p, ok
}

// RequireLevel redirects to the login form unless the request carries a
// session with one of the given levels. With no levels any session passes.
func RequireLevel(levels ...user.Level) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := CurrentPrincipal(c)
		if !ok || (len(levels) > 0 && !p.HasLevel(levels...)) {
			return c.Redirect("/login")
		}
		return c.Next()
	}
}
