package handler

import (
	"github.com/gofiber/fiber/v2"

	"lide-archiv/internal/middleware"
	"lide-archiv/internal/service/relation"
)

type PersonTagHandler struct {
	relationService relation.Service
}

func NewPersonTagHandler(relationService relation.Service) *PersonTagHandler {
	return &PersonTagHandler{
		relationService: relationService,
	}
}

func (h *PersonTagHandler) Add(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}
	tagID, err := parseIDParam(c, "tagId")
	if err != nil {
		return err
	}

	if err := h.relationService.AddPersonTag(c.Context(), personID, tagID); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PersonTagHandler) Remove(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}
	tagID, err := parseIDParam(c, "tagId")
	if err != nil {
		return err
	}

	if err := h.relationService.RemovePersonTag(c.Context(), personID, tagID); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PersonTagHandler) ListByPerson(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}

	tags, err := h.relationService.ListPersonTags(c.Context(), personID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(tags)
}

func (h *PersonTagHandler) ListByTag(c *fiber.Ctx) error {
	tagID, err := parseIDParam(c, "tagId")
	if err != nil {
		return err
	}

	persons, err := h.relationService.ListTagPersons(c.Context(), tagID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(persons)
}
