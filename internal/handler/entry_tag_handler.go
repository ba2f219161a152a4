package handler

import (
	"github.com/gofiber/fiber/v2"

	"lide-archiv/internal/middleware"
	"lide-archiv/internal/service/relation"
)

type EntryTagHandler struct {
	relationService relation.Service
}

func NewEntryTagHandler(relationService relation.Service) *EntryTagHandler {
	return &EntryTagHandler{
		relationService: relationService,
	}
}

func (h *EntryTagHandler) Add(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}
	tagID, err := parseIDParam(c, "tagId")
	if err != nil {
		return err
	}

	if err := h.relationService.AddEntryTag(c.Context(), entryID, tagID); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EntryTagHandler) Remove(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}
	tagID, err := parseIDParam(c, "tagId")
	if err != nil {
		return err
	}

	if err := h.relationService.RemoveEntryTag(c.Context(), entryID, tagID); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EntryTagHandler) ListByEntry(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}

	tags, err := h.relationService.ListEntryTags(c.Context(), entryID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(tags)
}

func (h *EntryTagHandler) ListByTag(c *fiber.Ctx) error {
	tagID, err := parseIDParam(c, "tagId")
	if err != nil {
		return err
	}

	entries, err := h.relationService.ListTagEntries(c.Context(), tagID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}
