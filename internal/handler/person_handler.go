package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/middleware"
	"lide-archiv/internal/service/detail"
	"lide-archiv/internal/service/person"
)

type PersonHandler struct {
	personService person.Service
	detailService detail.Service
}

func NewPersonHandler(personService person.Service, detailService detail.Service) *PersonHandler {
	return &PersonHandler{
		personService: personService,
		detailService: detailService,
	}
}

func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var input domain.CreatePersonInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	person, err := h.personService.Create(c.Context(), input)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(person)
}

func (h *PersonHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.personService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PersonHandler) Get(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}

	person, err := h.personService.GetByID(c.Context(), personID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(person)
}

func (h *PersonHandler) GetDetail(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}

	view, err := h.detailService.PersonDetail(c.Context(), personID)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

func (h *PersonHandler) Update(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}

	var input domain.UpdatePersonInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	person, err := h.personService.Update(c.Context(), personID, input)
	if err != nil {
		return middleware.FromDomainError(err)
	}

	return c.Status(fiber.StatusOK).JSON(person)
}

func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}

	if err := h.personService.Delete(c.Context(), personID); err != nil {
		return middleware.FromDomainError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Shared helpers for all handlers.

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid " + name)
	}
	return id, nil
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
