package handler

import (
	"github.com/gofiber/fiber/v2"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/middleware"
	"lide-archiv/internal/service/relation"
)

type MediaEntryHandler struct {
	relationService relation.Service
}

func NewMediaEntryHandler(relationService relation.Service) *MediaEntryHandler {
	return &MediaEntryHandler{
		relationService: relationService,
	}
}

func (h *MediaEntryHandler) Add(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}
	mediaID, err := parseIDParam(c, "mediaId")
	if err != nil {
		return err
	}

	var attrs domain.MediaLinkAttrs
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&attrs); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
	}

	if err := h.relationService.AddMediaEntry(c.Context(), mediaID, entryID, attrs); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MediaEntryHandler) Update(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}
	mediaID, err := parseIDParam(c, "mediaId")
	if err != nil {
		return err
	}

	var attrs domain.MediaLinkAttrs
	if err := c.BodyParser(&attrs); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.relationService.UpdateMediaEntry(c.Context(), mediaID, entryID, attrs); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MediaEntryHandler) Remove(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}
	mediaID, err := parseIDParam(c, "mediaId")
	if err != nil {
		return err
	}

	if err := h.relationService.RemoveMediaEntry(c.Context(), mediaID, entryID); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MediaEntryHandler) ListByEntry(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}

	media, err := h.relationService.ListEntryMedia(c.Context(), entryID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(media)
}

func (h *MediaEntryHandler) ListByMedia(c *fiber.Ctx) error {
	mediaID, err := parseIDParam(c, "mediaId")
	if err != nil {
		return err
	}

	entries, err := h.relationService.ListMediaEntries(c.Context(), mediaID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}
