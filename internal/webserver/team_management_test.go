package webserver_test

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/svera/corkboard/internal/webserver/infrastructure"
	"github.com/svera/corkboard/internal/webserver/model"
)

func TestTeamManagement(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{}, &infrastructure.WhatsAppMock{}, afero.NewMemMapFs())

	adminCookie, err := login(app, "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	admin := model.User{}
	db.Where("email = ?", "admin@example.com").First(&admin)

	team := mustCreateTeam(app, db, adminCookie, "Platform", t)

	t.Run("Creating a team makes its creator a team admin", func(t *testing.T) {
		member := model.TeamMember{}
		if err := db.Where("team_id = ? AND user_id = ?", team.ID, admin.ID).First(&member).Error; err != nil {
			t.Fatal("Expected the creator to be a member of the team")
		}
		if member.Role != model.TeamRoleAdmin {
			t.Errorf("Expected the creator to be a team admin, got %s", member.Role)
		}
	})

	t.Run("Team creation validates its fields", func(t *testing.T) {
		data := url.Values{
			"name": {""},
		}
		response, err := postRequest(data, adminCookie, app, "/teams/new")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		expectedErrorMessages := []string{
			"Name cannot be empty",
		}
		messages := errorMessages(response, t)
		if len(messages) != 1 || messages[0] != expectedErrorMessages[0] {
			t.Errorf("Expected %v error messages, got %v", expectedErrorMessages, messages)
		}
	})

	regular := mustCreateUser(db, "Regular", "regular", "regular@example.com", "secret", "", t)
	regularCookie, err := login(app, "regular@example.com", "secret")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	t.Run("Non members cannot see a team", func(t *testing.T) {
		response, err := getRequest(regularCookie, app, "/teams/"+team.Uuid)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusForbidden, t)
	})

	if err := db.Create(&model.TeamMember{
		TeamID:   team.ID,
		UserID:   regular.ID,
		Role:     model.TeamRoleMember,
		JoinedAt: time.Now().UTC(),
	}).Error; err != nil {
		t.Fatal(err)
	}

	t.Run("Members see the team page with all its members listed", func(t *testing.T) {
		response, err := getRequest(regularCookie, app, "/teams/"+team.Uuid)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		doc, err := goquery.NewDocumentFromReader(response.Body)
		if err != nil {
			t.Fatal(err)
		}
		if names := doc.Find(".member-name").Length(); names != 2 {
			t.Errorf("Expected 2 members listed, got %d", names)
		}
	})

	t.Run("Members cannot edit the team", func(t *testing.T) {
		data := url.Values{
			"name": {"Renamed"},
		}
		response, err := postRequest(data, regularCookie, app, fmt.Sprintf("/teams/%s/edit", team.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusForbidden, t)
	})

	t.Run("Members cannot delete the team", func(t *testing.T) {
		response, err := postRequest(url.Values{}, regularCookie, app, fmt.Sprintf("/teams/%s/delete", team.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusForbidden, t)
	})

	t.Run("Members cannot remove other members", func(t *testing.T) {
		data := url.Values{
			"uuid": {admin.Uuid},
		}
		response, err := postRequest(data, regularCookie, app, fmt.Sprintf("/teams/%s/members/remove", team.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusForbidden, t)
	})

	t.Run("Team admins can update the team", func(t *testing.T) {
		data := url.Values{
			"name":        {"Platform Engineering"},
			"description": {"Keeps the lights on"},
		}
		response, err := postRequest(data, adminCookie, app, fmt.Sprintf("/teams/%s/edit", team.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, "/teams/"+team.Uuid, t)

		updated := model.Team{}
		db.Where("uuid = ?", team.Uuid).First(&updated)
		if updated.Name != "Platform Engineering" {
			t.Errorf("Expected the team name to be updated, got %s", updated.Name)
		}
	})

	t.Run("The last team admin cannot be removed", func(t *testing.T) {
		data := url.Values{
			"uuid": {admin.Uuid},
		}
		response, err := postRequest(data, adminCookie, app, fmt.Sprintf("/teams/%s/members/remove", team.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusForbidden, t)
	})

	t.Run("Team admins can remove a member", func(t *testing.T) {
		data := url.Values{
			"uuid": {regular.Uuid},
		}
		response, err := postRequest(data, adminCookie, app, fmt.Sprintf("/teams/%s/members/remove", team.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, "/teams/"+team.Uuid, t)

		var memberships int64
		db.Model(&model.TeamMember{}).Where("team_id = ? AND user_id = ?", team.ID, regular.ID).Count(&memberships)
		if memberships != 0 {
			t.Errorf("Expected the membership to be removed, got %d rows", memberships)
		}
	})

	t.Run("Team admins can delete the team", func(t *testing.T) {
		response, err := postRequest(url.Values{}, adminCookie, app, fmt.Sprintf("/teams/%s/delete", team.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, "/teams", t)

		var teams int64
		db.Model(&model.Team{}).Where("uuid = ?", team.Uuid).Count(&teams)
		if teams != 0 {
			t.Error("Expected the team to be gone")
		}

		var memberships int64
		db.Model(&model.TeamMember{}).Where("team_id = ?", team.ID).Count(&memberships)
		if memberships != 0 {
			t.Errorf("Expected the team memberships to be gone, got %d rows", memberships)
		}
	})
}
