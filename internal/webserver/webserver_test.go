package webserver_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/svera/corkboard/internal/webserver"
	"github.com/svera/corkboard/internal/webserver/infrastructure"
	"github.com/svera/corkboard/internal/webserver/model"
	"gorm.io/gorm"
)

func TestGET(t *testing.T) {
	var cases = []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{"Redirect to login if the user tries to access to the root URL without a session", "/", http.StatusFound},
		{"Page loads successfully if the user tries to access the login page", "/login", http.StatusOK},
		{"Server returns not found if the user tries to access a non-existent URL", "/nowhere", http.StatusFound},
	}

	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{}, &infrastructure.WhatsAppMock{}, afero.NewMemMapFs())

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, tcase.url, nil)

			response, err := app.Test(req)
			if err != nil {
				t.Errorf("Unexpected error: %v", err.Error())
			}
			if response.StatusCode != tcase.expectedStatus {
				t.Errorf("Wrong status code received, expected %d, got %d", tcase.expectedStatus, response.StatusCode)
			}
		})
	}
}

func bootstrapApp(db *gorm.DB, sender webserver.Sender, messenger webserver.Messenger, appFs afero.Fs) *fiber.App {
	webserverConfig := webserver.Config{
		FQDN:                    "localhost",
		JwtSecret:               []byte("secret"),
		SessionTimeout:          24 * time.Hour,
		InvitationTimeout:       7 * 24 * time.Hour,
		MinPasswordLength:       5,
		AttachmentsPath:         "attachments",
		UploadAttachmentMaxSize: 1,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, sender, messenger, appFs)
	return webserver.New(webserverConfig, controllers)
}

func login(app *fiber.App, email, password string) (*http.Cookie, error) {
	data := url.Values{
		"email":    {email},
		"password": {password},
	}

	response, err := postRequest(data, &http.Cookie{}, app, "/login")
	if err != nil {
		return nil, err
	}

	if len(response.Cookies()) == 0 {
		return nil, fmt.Errorf("Cookie not set up")
	}
	return response.Cookies()[0], nil
}

func getRequest(cookie *http.Cookie, app *fiber.App, url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(cookie)

	return app.Test(req)
}

func postRequest(data url.Values, cookie *http.Cookie, app *fiber.App, url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)

	return app.Test(req)
}

func mustRedirectToLogin(response *http.Response, t *testing.T) {
	t.Helper()

	if response.StatusCode != http.StatusFound {
		t.Errorf("Expected status %d, received %d", http.StatusFound, response.StatusCode)
		return
	}
	url, err := response.Location()
	if err != nil {
		t.Error("No location header present")
		return
	}
	if url.Path != "/login" {
		t.Errorf("Expected location %s, received %s", "/login", url.Path)
	}
}

func mustRedirectTo(response *http.Response, path string, t *testing.T) {
	t.Helper()

	if response.StatusCode != http.StatusFound {
		t.Fatalf("Expected status %d, received %d", http.StatusFound, response.StatusCode)
	}
	url, err := response.Location()
	if err != nil {
		t.Fatal("No location header present")
	}
	if url.Path != path {
		t.Errorf("Expected location %s, received %s", path, url.Path)
	}
}

func mustReturnStatus(response *http.Response, expectedStatus int, t *testing.T) {
	t.Helper()

	if response.StatusCode != expectedStatus {
		t.Errorf("Expected status %d, received %d", expectedStatus, response.StatusCode)
	}
}

func errorMessages(response *http.Response, t *testing.T) []string {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		t.Fatal(err)
	}
	messages := []string{}
	doc.Find(".invalid-feedback").Each(func(i int, s *goquery.Selection) {
		messages = append(messages, strings.TrimSpace(s.Text()))
	})
	return messages
}

func mustCreateUser(db *gorm.DB, name, username, email, password, phone string, t *testing.T) model.User {
	t.Helper()

	user := model.User{
		Uuid:     uuid.NewString(),
		Name:     name,
		Username: username,
		Email:    email,
		Phone:    phone,
		Password: model.Hash(password),
		Role:     model.RoleRegular,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	return user
}

func mustCreateTeam(app *fiber.App, db *gorm.DB, cookie *http.Cookie, name string, t *testing.T) model.Team {
	t.Helper()

	data := url.Values{
		"name": {name},
	}
	response, err := postRequest(data, cookie, app, "/teams/new")
	if err != nil {
		t.Fatal(err)
	}
	mustRedirectTo(response, "/teams", t)

	team := model.Team{}
	if err := db.Where("name = ?", name).First(&team).Error; err != nil {
		t.Fatal(err)
	}
	return team
}
