package handler

import (
	"github.com/gofiber/fiber/v2"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/middleware"
	"lide-archiv/internal/service/media"
)

type MediaHandler struct {
	mediaService media.Service
}

func NewMediaHandler(mediaService media.Service) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

func (h *MediaHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateMediaInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	media, err := h.mediaService.Create(c.Context(), input)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(media)
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	if file.Size > 50*1024*1024 {
		return middleware.BadRequest("File size must be less than 50MB")
	}

	mediaType := c.FormValue("media_type")
	if mediaType == "" {
		return middleware.BadRequest("media_type is required")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	media, err := h.mediaService.Upload(c.Context(), mediaType, file.Filename, mimeType, file.Size, fileReader)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(media)
}

func (h *MediaHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var mediaType *string
	if t := c.Query("media_type"); t != "" {
		mediaType = &t
	}

	result, err := h.mediaService.List(c.Context(), mediaType, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *MediaHandler) Get(c *fiber.Ctx) error {
	mediaID, err := parseIDParam(c, "mediaId")
	if err != nil {
		return err
	}

	media, err := h.mediaService.GetByID(c.Context(), mediaID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(media)
}

func (h *MediaHandler) Update(c *fiber.Ctx) error {
	mediaID, err := parseIDParam(c, "mediaId")
	if err != nil {
		return err
	}

	var input domain.UpdateMediaInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	media, err := h.mediaService.Update(c.Context(), mediaID, input)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(media)
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	mediaID, err := parseIDParam(c, "mediaId")
	if err != nil {
		return err
	}

	if err := h.mediaService.Delete(c.Context(), mediaID); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
