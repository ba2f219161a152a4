package handler

import (
	"github.com/gofiber/fiber/v2"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/middleware"
	"lide-archiv/internal/service/tag"
)

type TagHandler struct {
	tagService tag.Service
}

func NewTagHandler(tagService tag.Service) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

func (h *TagHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateTagInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	tag, err := h.tagService.Create(c.Context(), input)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(tag)
}

func (h *TagHandler) List(c *fiber.Ctx) error {
	tags, err := h.tagService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tags)
}

func (h *TagHandler) Get(c *fiber.Ctx) error {
	tagID, err := parseIDParam(c, "tagId")
	if err != nil {
		return err
	}

	tag, err := h.tagService.GetByID(c.Context(), tagID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(tag)
}

func (h *TagHandler) Update(c *fiber.Ctx) error {
	tagID, err := parseIDParam(c, "tagId")
	if err != nil {
		return err
	}

	var input domain.UpdateTagInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	tag, err := h.tagService.Update(c.Context(), tagID, input)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(tag)
}

func (h *TagHandler) Delete(c *fiber.Ctx) error {
	tagID, err := parseIDParam(c, "tagId")
	if err != nil {
		return err
	}

	if err := h.tagService.Delete(c.Context(), tagID); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
