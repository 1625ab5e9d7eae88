package webserver_test

import (
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/svera/corkboard/internal/webserver/infrastructure"
	"github.com/svera/corkboard/internal/webserver/model"
)

func TestTaskReminder(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	smtpMock := &infrastructure.SenderMock{}
	whatsappMock := &infrastructure.WhatsAppMock{}
	app := bootstrapApp(db, smtpMock, whatsappMock, afero.NewMemMapFs())

	adminCookie, err := login(app, "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	team := mustCreateTeam(app, db, adminCookie, "Support", t)

	phoned := mustCreateUser(db, "Phoned", "phoned", "phoned@example.com", "secret", "+34600111222", t)
	emailed := mustCreateUser(db, "Emailed", "emailed", "emailed@example.com", "secret", "", t)
	for _, user := range []model.User{phoned, emailed} {
		if err := db.Create(&model.TeamMember{
			TeamID:   team.ID,
			UserID:   user.ID,
			Role:     model.TeamRoleMember,
			JoinedAt: time.Now().UTC(),
		}).Error; err != nil {
			t.Fatal(err)
		}
	}

	t.Run("Assignees with a phone number are reminded through WhatsApp", func(t *testing.T) {
		data := url.Values{
			"team":     {team.Uuid},
			"title":    {"Call the customer back"},
			"assignee": {phoned.Uuid},
			"due-date": {"2026-09-15"},
		}
		response, err := postRequest(data, adminCookie, app, "/tasks/new")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, fmt.Sprintf("/teams/%s/board", team.Uuid), t)

		task := model.Task{}
		db.Where("title = ?", "Call the customer back").First(&task)

		response, err = postRequest(url.Values{}, adminCookie, app, fmt.Sprintf("/tasks/%s/remind", task.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, fmt.Sprintf("/teams/%s/board", team.Uuid), t)

		if !whatsappMock.CalledSend() {
			t.Error("Expected a WhatsApp reminder to be sent")
		}
		if whatsappMock.LastPhone() != "+34600111222" {
			t.Errorf("Expected the reminder to go to the assignee's phone, got %s", whatsappMock.LastPhone())
		}
		if smtpMock.CalledSend() {
			t.Error("Expected no email reminder for an assignee with a phone")
		}
	})

	t.Run("Assignees without a phone number are reminded by email", func(t *testing.T) {
		data := url.Values{
			"team":     {team.Uuid},
			"title":    {"Update the FAQ"},
			"assignee": {emailed.Uuid},
		}
		response, err := postRequest(data, adminCookie, app, "/tasks/new")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, fmt.Sprintf("/teams/%s/board", team.Uuid), t)

		task := model.Task{}
		db.Where("title = ?", "Update the FAQ").First(&task)

		smtpMock.Wg.Add(1)
		response, err = postRequest(url.Values{}, adminCookie, app, fmt.Sprintf("/tasks/%s/remind", task.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, fmt.Sprintf("/teams/%s/board", team.Uuid), t)
		smtpMock.Wg.Wait()

		if !smtpMock.CalledSend() {
			t.Error("Expected an email reminder to be sent")
		}
		if smtpMock.LastTo() != "emailed@example.com" {
			t.Errorf("Expected the reminder to go to the assignee's email, got %s", smtpMock.LastTo())
		}
		if smtpMock.LastFrom() != smtpMock.From() {
			t.Errorf("Expected the reminder to come from the system address, got %s", smtpMock.LastFrom())
		}
		if !strings.Contains(smtpMock.LastBody(), "Update the FAQ") {
			t.Error("Expected the reminder email to mention the task")
		}
	})

	t.Run("Tasks without an assignee cannot be reminded", func(t *testing.T) {
		mustCreateTask(app, adminCookie, team.Uuid, "Tidy the backlog", t)

		task := model.Task{}
		db.Where("title = ?", "Tidy the backlog").First(&task)

		response, err := postRequest(url.Values{}, adminCookie, app, fmt.Sprintf("/tasks/%s/remind", task.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusBadRequest, t)
	})
}
