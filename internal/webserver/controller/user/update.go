package user

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Update gathers information from the edit user form and updates user data
func (u *Controller) Update(c *fiber.Ctx) error {
	user, err := u.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	wasAdmin := user.Role == model.RoleAdmin

	user.Name = strings.TrimSpace(c.FormValue("name"))
	user.Username = strings.ToLower(c.FormValue("username"))
	user.Email = c.FormValue("email")
	user.Phone = strings.TrimSpace(c.FormValue("phone"))
	user.Role, _ = strconv.Atoi(c.FormValue("role"))

	// Validate against a throwaway password so an empty password field means
	// "keep the current one"
	checked := *user
	checked.Password = c.FormValue("password")
	password := checked.Password != ""
	if !password {
		checked.Password = strings.Repeat("x", u.config.MinPasswordLength)
	}

	errs := checked.Validate(u.config.MinPasswordLength)
	if password {
		errs = checked.ConfirmPassword(c.FormValue("confirm-password"), u.config.MinPasswordLength, errs)
	}

	if exist, _ := u.repository.FindByUsername(user.Username); exist != nil && exist.Uuid != user.Uuid {
		errs["username"] = "A user with this username already exists"
	}

	if exist, _ := u.repository.FindByEmail(user.Email); exist != nil && exist.Uuid != user.Uuid {
		errs["email"] = "A user with this email address already exists"
	}

	if wasAdmin && user.Role != model.RoleAdmin && u.repository.Admins() == 1 {
		errs["role"] = "The last admin cannot be demoted"
	}

	if len(errs) > 0 {
		return c.Render("user/edit", fiber.Map{
			"Title":             "Edit user",
			"User":              user,
			"MinPasswordLength": u.config.MinPasswordLength,
			"UsernamePattern":   model.UsernamePattern,
			"Session":           c.Locals("Session").(model.Session),
			"Errors":            errs,
		}, "layout")
	}

	if password {
		user.Password = model.Hash(checked.Password)
	}

	if err := u.repository.Update(user); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/users")
}
