package task

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/svera/corkboard/internal/webserver/model"
)

// UploadAttachment stores an uploaded file and attaches it to the task. The
// stored name is uuid-prefixed so colliding uploads never overwrite each other.
func (t *Controller) UploadAttachment(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	task, err := t.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if task == nil {
		return fiber.ErrNotFound
	}

	if !t.canAccess(task, session) {
		return fiber.ErrForbidden
	}

	fileHeader, err := c.FormFile("attachment")
	if err != nil {
		return fiber.ErrBadRequest
	}

	if fileHeader.Size > int64(t.config.UploadAttachmentMaxSize)*1024*1024 {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("Attachments cannot be bigger than %d megabytes", t.config.UploadAttachmentMaxSize))
	}

	ext := filepath.Ext(fileHeader.Filename)
	name := slug.Make(strings.TrimSuffix(fileHeader.Filename, ext)) + ext

	attachment := model.Attachment{
		Uuid:         uuid.NewString(),
		TaskID:       task.ID,
		Name:         name,
		Size:         fileHeader.Size,
		UploadedByID: session.ID,
	}
	attachment.StoredName = attachment.Uuid + "-" + name

	source, err := fileHeader.Open()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	defer source.Close()

	if err := t.appFs.MkdirAll(t.config.AttachmentsPath, 0755); err != nil {
		return fiber.ErrInternalServerError
	}

	destination, err := t.appFs.Create(filepath.Join(t.config.AttachmentsPath, attachment.StoredName))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return fiber.ErrInternalServerError
	}

	if err := t.attachmentsRepository.Create(&attachment); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/tasks/" + task.Uuid + "/edit")
}

// DownloadAttachment streams an attachment back under its original name
func (t *Controller) DownloadAttachment(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	attachment, task, err := t.findAttachment(c.Params("uuid"))
	if err != nil {
		return err
	}

	if !t.canAccess(task, session) {
		return fiber.ErrForbidden
	}

	file, err := t.appFs.Open(filepath.Join(t.config.AttachmentsPath, attachment.StoredName))
	if err != nil {
		log.Printf("error opening attachment file: %v\n", err)
		return fiber.ErrNotFound
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", attachment.Name))
	return c.SendStream(file, int(attachment.Size))
}

// DeleteAttachment removes an attachment and its stored file
func (t *Controller) DeleteAttachment(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	attachment, task, err := t.findAttachment(c.Params("uuid"))
	if err != nil {
		return err
	}

	if !t.canAccess(task, session) {
		return fiber.ErrForbidden
	}

	if err := t.appFs.Remove(filepath.Join(t.config.AttachmentsPath, attachment.StoredName)); err != nil {
		log.Printf("error removing attachment file: %v\n", err)
	}

	if err := t.attachmentsRepository.Delete(attachment.Uuid); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/tasks/" + task.Uuid + "/edit")
}

func (t *Controller) findAttachment(uuid string) (*model.Attachment, *model.Task, error) {
	attachment, err := t.attachmentsRepository.FindByUuid(uuid)
	if err != nil {
		return nil, nil, fiber.ErrInternalServerError
	}
	if attachment == nil {
		return nil, nil, fiber.ErrNotFound
	}

	task, err := t.repository.FindByID(attachment.TaskID)
	if err != nil {
		return nil, nil, fiber.ErrInternalServerError
	}
	if task == nil {
		return nil, nil, fiber.ErrNotFound
	}

	return attachment, task, nil
}
