package webserver_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/svera/corkboard/internal/webserver/infrastructure"
	"github.com/svera/corkboard/internal/webserver/model"
)

func TestTaskBoard(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	appFs := afero.NewMemMapFs()
	app := bootstrapApp(db, &infrastructure.NoEmail{}, &infrastructure.WhatsAppMock{}, appFs)

	adminCookie, err := login(app, "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	team := mustCreateTeam(app, db, adminCookie, "Mobile", t)

	t.Run("A new task lands at the end of the to do column", func(t *testing.T) {
		data := url.Values{
			"team":     {team.Uuid},
			"title":    {"Set up CI"},
			"priority": {model.TaskPriorityHigh},
		}
		response, err := postRequest(data, adminCookie, app, "/tasks/new")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, fmt.Sprintf("/teams/%s/board", team.Uuid), t)

		task := model.Task{}
		if err := db.Where("title = ?", "Set up CI").First(&task).Error; err != nil {
			t.Fatal("Expected the task to be stored")
		}
		if task.Status != model.TaskStatusTodo {
			t.Errorf("Expected the task to be in the to do column, got %s", task.Status)
		}
		if task.Position != 1 {
			t.Errorf("Expected the task at position 1, got %d", task.Position)
		}
		if task.Priority != model.TaskPriorityHigh {
			t.Errorf("Expected a high priority task, got %s", task.Priority)
		}
	})

	t.Run("Task titles cannot be empty", func(t *testing.T) {
		data := url.Values{
			"team":  {team.Uuid},
			"title": {""},
		}
		response, err := postRequest(data, adminCookie, app, "/tasks/new")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		expectedErrorMessages := []string{
			"Title cannot be empty",
		}
		messages := errorMessages(response, t)
		if len(messages) != 1 || messages[0] != expectedErrorMessages[0] {
			t.Errorf("Expected %v error messages, got %v", expectedErrorMessages, messages)
		}
	})

	mustCreateTask(app, adminCookie, team.Uuid, "Write docs", t)

	task := model.Task{}
	db.Where("title = ?", "Set up CI").First(&task)

	t.Run("The board groups tasks by status", func(t *testing.T) {
		response, err := getRequest(adminCookie, app, fmt.Sprintf("/teams/%s/board", team.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		doc, err := goquery.NewDocumentFromReader(response.Body)
		if err != nil {
			t.Fatal(err)
		}
		if cards := doc.Find(`.column[data-status="todo"] .card`).Length(); cards != 2 {
			t.Errorf("Expected 2 cards in the to do column, got %d", cards)
		}
		if cards := doc.Find(`.column[data-status="in-progress"] .card`).Length(); cards != 0 {
			t.Errorf("Expected an empty in progress column, got %d cards", cards)
		}
	})

	t.Run("Moving a task puts it in the requested column and position", func(t *testing.T) {
		data := url.Values{
			"status":   {model.TaskStatusInProgress},
			"position": {"1"},
		}
		response, err := postRequest(data, adminCookie, app, fmt.Sprintf("/tasks/%s/move", task.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusNoContent, t)

		moved := model.Task{}
		db.Where("uuid = ?", task.Uuid).First(&moved)
		if moved.Status != model.TaskStatusInProgress {
			t.Errorf("Expected the task in the in progress column, got %s", moved.Status)
		}
		if moved.Position != 1 {
			t.Errorf("Expected the task at position 1, got %d", moved.Position)
		}
	})

	t.Run("Moving a task to an unknown column fails", func(t *testing.T) {
		data := url.Values{
			"status":   {"blocked"},
			"position": {"1"},
		}
		response, err := postRequest(data, adminCookie, app, fmt.Sprintf("/tasks/%s/move", task.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusBadRequest, t)
	})

	t.Run("The board filter narrows the listed tasks", func(t *testing.T) {
		response, err := getRequest(adminCookie, app, fmt.Sprintf("/teams/%s/board?filter=docs", team.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		doc, err := goquery.NewDocumentFromReader(response.Body)
		if err != nil {
			t.Fatal(err)
		}
		if cards := doc.Find(".card").Length(); cards != 1 {
			t.Errorf("Expected 1 card matching the filter, got %d", cards)
		}
	})

	outsider := mustCreateUser(db, "Outsider", "outsider", "outsider@example.com", "secret", "", t)
	outsiderCookie, err := login(app, "outsider@example.com", "secret")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	t.Run("Non members cannot see the team board", func(t *testing.T) {
		response, err := getRequest(outsiderCookie, app, fmt.Sprintf("/teams/%s/board", team.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusForbidden, t)
	})

	t.Run("Non members cannot touch a team task", func(t *testing.T) {
		response, err := getRequest(outsiderCookie, app, fmt.Sprintf("/tasks/%s/edit", task.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusForbidden, t)
	})

	t.Run("Teamless tasks go to the personal board of their creator", func(t *testing.T) {
		data := url.Values{
			"title": {"Buy groceries"},
		}
		response, err := postRequest(data, outsiderCookie, app, "/tasks/new")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, "/board", t)

		personal := model.Task{}
		if err := db.Where("title = ?", "Buy groceries").First(&personal).Error; err != nil {
			t.Fatal("Expected the task to be stored")
		}
		if personal.TeamID != nil {
			t.Error("Expected a teamless task")
		}
		if personal.CreatedByID != outsider.ID {
			t.Error("Expected the task to belong to its creator")
		}
	})

	t.Run("Personal tasks cannot have an assignee", func(t *testing.T) {
		data := url.Values{
			"title":    {"Water the plants"},
			"assignee": {outsider.Uuid},
		}
		response, err := postRequest(data, outsiderCookie, app, "/tasks/new")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		expectedErrorMessages := []string{
			"Personal tasks cannot have an assignee",
		}
		messages := errorMessages(response, t)
		if len(messages) != 1 || messages[0] != expectedErrorMessages[0] {
			t.Errorf("Expected %v error messages, got %v", expectedErrorMessages, messages)
		}
	})

	t.Run("Uploading an attachment stores the file under a collision-proof name", func(t *testing.T) {
		content := []byte("meeting notes")
		response, err := postMultipartRequest(content, "Notes.txt", adminCookie, app, fmt.Sprintf("/tasks/%s/attachments", task.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, fmt.Sprintf("/tasks/%s/edit", task.Uuid), t)

		attachment := model.Attachment{}
		if err := db.Where("task_id = ?", task.ID).First(&attachment).Error; err != nil {
			t.Fatal("Expected the attachment to be stored")
		}
		if attachment.Name != "notes.txt" {
			t.Errorf("Expected a slugified attachment name, got %s", attachment.Name)
		}

		stored, err := afero.ReadFile(appFs, filepath.Join("attachments", attachment.StoredName))
		if err != nil {
			t.Fatal("Expected the attachment file to exist")
		}
		if !bytes.Equal(stored, content) {
			t.Error("Expected the stored file to match the uploaded content")
		}
	})

	t.Run("Attachments over the size limit are rejected", func(t *testing.T) {
		content := bytes.Repeat([]byte("x"), 2*1024*1024)
		response, err := postMultipartRequest(content, "big.bin", adminCookie, app, fmt.Sprintf("/tasks/%s/attachments", task.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusRequestEntityTooLarge, t)
	})

	attachment := model.Attachment{}
	db.Where("task_id = ?", task.ID).First(&attachment)

	t.Run("Downloading an attachment returns its content under its original name", func(t *testing.T) {
		response, err := getRequest(adminCookie, app, "/attachments/"+attachment.Uuid)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		body, err := io.ReadAll(response.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "meeting notes" {
			t.Errorf("Expected the uploaded content back, got %q", string(body))
		}
		if disposition := response.Header.Get(fiber.HeaderContentDisposition); disposition != `attachment; filename="notes.txt"` {
			t.Errorf("Wrong content disposition, got %s", disposition)
		}
	})

	t.Run("Deleting a task removes its attachments and their files", func(t *testing.T) {
		response, err := postRequest(url.Values{}, adminCookie, app, fmt.Sprintf("/tasks/%s/delete", task.Uuid))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, fmt.Sprintf("/teams/%s/board", team.Uuid), t)

		var tasks int64
		db.Model(&model.Task{}).Where("uuid = ?", task.Uuid).Count(&tasks)
		if tasks != 0 {
			t.Error("Expected the task to be gone")
		}

		var attachments int64
		db.Model(&model.Attachment{}).Where("task_id = ?", task.ID).Count(&attachments)
		if attachments != 0 {
			t.Error("Expected the attachment rows to be gone")
		}

		if exists, _ := afero.Exists(appFs, filepath.Join("attachments", attachment.StoredName)); exists {
			t.Error("Expected the attachment file to be removed")
		}
	})
}

func mustCreateTask(app *fiber.App, cookie *http.Cookie, teamUuid, title string, t *testing.T) {
	t.Helper()

	data := url.Values{
		"team":  {teamUuid},
		"title": {title},
	}
	response, err := postRequest(data, cookie, app, "/tasks/new")
	if err != nil {
		t.Fatal(err)
	}
	mustRedirectTo(response, "/teams/"+teamUuid+"/board", t)
}

func postMultipartRequest(content []byte, filename string, cookie *http.Cookie, app *fiber.App, url string) (*http.Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("attachment", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", writer.FormDataContentType())
	req.AddCookie(cookie)

	return app.Test(req)
}
