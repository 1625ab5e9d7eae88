package user

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/controller/auth"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Profile renders the session user's own profile form
func (u *Controller) Profile(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	user, err := u.repository.FindByUuid(session.Uuid)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	return c.Render("user/profile", fiber.Map{
		"Title":             "Profile",
		"User":              user,
		"MinPasswordLength": u.config.MinPasswordLength,
		"Session":           session,
		"Errors":            map[string]string{},
	}, "layout")
}

// UpdateProfile lets users change their own name, phone and password. The
// session cookie is regenerated so the new data shows up right away.
func (u *Controller) UpdateProfile(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	user, err := u.repository.FindByUuid(session.Uuid)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	user.Name = strings.TrimSpace(c.FormValue("name"))
	user.Phone = strings.TrimSpace(c.FormValue("phone"))

	checked := *user
	checked.Password = c.FormValue("password")
	password := checked.Password != ""
	if !password {
		checked.Password = strings.Repeat("x", u.config.MinPasswordLength)
	}

	errs := checked.Validate(u.config.MinPasswordLength)
	if password {
		if user.Password != model.Hash(c.FormValue("old-password")) {
			errs["oldpassword"] = "The current password is not correct"
		}
		errs = checked.ConfirmPassword(c.FormValue("confirm-password"), u.config.MinPasswordLength, errs)
	}

	if len(errs) > 0 {
		return c.Render("user/profile", fiber.Map{
			"Title":             "Profile",
			"User":              user,
			"MinPasswordLength": u.config.MinPasswordLength,
			"Session":           session,
			"Errors":            errs,
		}, "layout")
	}

	if password {
		user.Password = model.Hash(checked.Password)
	}

	if err := u.repository.Update(user); err != nil {
		return fiber.ErrInternalServerError
	}

	expiration := time.Now().Add(u.config.SessionTimeout)
	signedToken, err := auth.GenerateToken(user, expiration, u.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     "corkboard",
		Value:    signedToken,
		Path:     "/",
		Expires:  expiration,
		Secure:   false,
		HTTPOnly: true,
	})

	return c.Render("user/profile", fiber.Map{
		"Title":             "Profile",
		"User":              user,
		"MinPasswordLength": u.config.MinPasswordLength,
		"Session":           session,
		"Errors":            map[string]string{},
		"Message":           "Profile updated",
	}, "layout")
}
