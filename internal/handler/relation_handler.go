package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/middleware"
	"lide-archiv/internal/service/relation"
)

type RelationHandler struct {
	relationService relation.Service
}

func NewRelationHandler(relationService relation.Service) *RelationHandler {
	return &RelationHandler{
		relationService: relationService,
	}
}

func (h *RelationHandler) Add(c *fiber.Ctx) error {
	var input domain.CreateRelationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.FromPersonID == uuid.Nil || input.ToPersonID == uuid.Nil {
		return middleware.BadRequest("from_person_id and to_person_id are required")
	}

	if err := h.relationService.AddRelation(c.Context(), input); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RelationHandler) Update(c *fiber.Ctx) error {
	var input domain.CreateRelationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.FromPersonID == uuid.Nil || input.ToPersonID == uuid.Nil {
		return middleware.BadRequest("from_person_id and to_person_id are required")
	}

	attrs := domain.RelationAttrs{
		Note:      input.Note,
		ValidFrom: input.ValidFrom,
		ValidTo:   input.ValidTo,
	}
	if err := h.relationService.UpdateRelation(c.Context(), input.FromPersonID, input.ToPersonID, input.Type, attrs); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RelationHandler) Remove(c *fiber.Ctx) error {
	fromID, err := uuid.Parse(c.Query("from_person_id"))
	if err != nil {
		return middleware.BadRequest("Invalid from_person_id")
	}
	toID, err := uuid.Parse(c.Query("to_person_id"))
	if err != nil {
		return middleware.BadRequest("Invalid to_person_id")
	}

	if err := h.relationService.RemoveRelation(c.Context(), fromID, toID, c.Query("type")); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RelationHandler) ListFrom(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}

	views, err := h.relationService.ListRelationsFrom(c.Context(), personID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(views)
}

func (h *RelationHandler) ListTo(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}

	views, err := h.relationService.ListRelationsTo(c.Context(), personID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(views)
}
