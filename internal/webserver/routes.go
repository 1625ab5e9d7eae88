package webserver

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

func routes(app *fiber.App, controllers Controllers, jwtSecret []byte) {
	app.Use("/css", filesystem.New(filesystem.Config{
		Root:       http.FS(cssFS),
		PathPrefix: "css",
	}))

	app.Get("/login", AllowIfNotLoggedIn(jwtSecret), controllers.Auth.Login)
	app.Post("/login", AllowIfNotLoggedIn(jwtSecret), controllers.Auth.SignIn)

	app.Use(AlwaysRequireAuthentication(jwtSecret))

	app.Get("/logout", controllers.Auth.SignOut)

	teamsGroup := app.Group("/teams")
	teamsGroup.Get("/", controllers.Teams.List)
	teamsGroup.Get("/new", controllers.Teams.New)
	teamsGroup.Post("/new", controllers.Teams.Create)
	teamsGroup.Get("/:uuid<guid>", controllers.Teams.Detail)
	teamsGroup.Get("/:uuid<guid>/edit", controllers.Teams.Edit)
	teamsGroup.Post("/:uuid<guid>/edit", controllers.Teams.Update)
	teamsGroup.Post("/:uuid<guid>/delete", controllers.Teams.Delete)
	teamsGroup.Post("/:uuid<guid>/members/remove", controllers.Teams.RemoveMember)
	teamsGroup.Get("/:uuid<guid>/board", controllers.Tasks.Board)
	teamsGroup.Get("/:uuid<guid>/invitations/new", controllers.Invitations.New)
	teamsGroup.Post("/:uuid<guid>/invitations", controllers.Invitations.Send)

	app.Get("/invitations", controllers.Invitations.List)
	app.Get("/invitations/:uuid<guid>", controllers.Invitations.Detail)
	app.Post("/invitations/:uuid<guid>/accept", controllers.Invitations.Accept)
	app.Post("/invitations/:uuid<guid>/decline", controllers.Invitations.Decline)

	app.Get("/board", controllers.Tasks.PersonalBoard)

	tasksGroup := app.Group("/tasks")
	tasksGroup.Get("/new", controllers.Tasks.New)
	tasksGroup.Post("/new", controllers.Tasks.Create)
	tasksGroup.Get("/:uuid<guid>/edit", controllers.Tasks.Edit)
	tasksGroup.Post("/:uuid<guid>/edit", controllers.Tasks.Update)
	tasksGroup.Post("/:uuid<guid>/move", controllers.Tasks.Move)
	tasksGroup.Post("/:uuid<guid>/delete", controllers.Tasks.Delete)
	tasksGroup.Post("/:uuid<guid>/remind", controllers.Tasks.Remind)
	tasksGroup.Post("/:uuid<guid>/attachments", controllers.Tasks.UploadAttachment)

	app.Get("/attachments/:uuid<guid>", controllers.Tasks.DownloadAttachment)
	app.Post("/attachments/:uuid<guid>/delete", controllers.Tasks.DeleteAttachment)

	app.Get("/profile", controllers.Users.Profile)
	app.Post("/profile", controllers.Users.UpdateProfile)

	usersGroup := app.Group("/users", RequireAdmin)
	usersGroup.Get("/", controllers.Users.List)
	usersGroup.Get("/new", controllers.Users.New)
	usersGroup.Post("/new", controllers.Users.Create)
	usersGroup.Get("/:uuid<guid>/edit", controllers.Users.Edit)
	usersGroup.Post("/:uuid<guid>/edit", controllers.Users.Update)
	usersGroup.Post("/delete", controllers.Users.Delete)

	app.Get("/admin", RequireAdmin, controllers.Dashboard.Index)

	app.Get("/", controllers.Home.Index)
}
