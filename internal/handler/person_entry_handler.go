package handler

import (
	"github.com/gofiber/fiber/v2"

	"lide-archiv/internal/middleware"
	"lide-archiv/internal/service/relation"
)

type PersonEntryHandler struct {
	relationService relation.Service
}

func NewPersonEntryHandler(relationService relation.Service) *PersonEntryHandler {
	return &PersonEntryHandler{
		relationService: relationService,
	}
}

func (h *PersonEntryHandler) Add(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}

	if err := h.relationService.AddPersonEntry(c.Context(), personID, entryID, c.Query("role")); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PersonEntryHandler) Remove(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}

	if err := h.relationService.RemovePersonEntry(c.Context(), personID, entryID, c.Query("role")); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PersonEntryHandler) ListByPerson(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}

	entries, err := h.relationService.ListPersonEntries(c.Context(), personID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}

func (h *PersonEntryHandler) ListByEntry(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "entryId")
	if err != nil {
		return err
	}

	persons, err := h.relationService.ListEntryPersons(c.Context(), entryID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(persons)
}
