package handler

import (
	"github.com/gofiber/fiber/v2"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/middleware"
	"lide-archiv/internal/service/detail"
	"lide-archiv/internal/service/entry"
)

type EntryHandler struct {
	entryService  entry.Service
	detailService detail.Service
}

func NewEntryHandler(entryService entry.Service, detailService detail.Service) *EntryHandler {
	return &EntryHandler{
		entryService:  entryService,
		detailService: detailService,
	}
}

func (h *EntryHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateEntryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	entry, err := h.entryService.Create(c.Context(), input)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *EntryHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var entryType *string
	if t := c.Query("type"); t != "" {
		entryType = &t
	}

	result, err := h.entryService.List(c.Context(), entryType, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *EntryHandler) Get(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}

	entry, err := h.entryService.GetByID(c.Context(), entryID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(entry)
}

func (h *EntryHandler) GetDetail(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}

	view, err := h.detailService.EntryDetail(c.Context(), entryID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

func (h *EntryHandler) Update(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}

	var input domain.UpdateEntryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	entry, err := h.entryService.Update(c.Context(), entryID, input)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(entry)
}

func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}

	if err := h.entryService.Delete(c.Context(), entryID); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
