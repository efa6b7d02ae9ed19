package handlers

import (
	"Recipe-Radar-Backend/domain"
	"Recipe-Radar-Backend/internal/api/presenters"
	"Recipe-Radar-Backend/pkg/match"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecommendHandler interface {
		Recommend(c *fiber.Ctx) error
	}

	recommendHandler struct {
		matchService match.MatchService
		validator    *validator.Validate
	}
)

func NewRecommendHandler(matchService match.MatchService, validator *validator.Validate) RecommendHandler {
	return &recommendHandler{
		matchService: matchService,
		validator:    validator,
	}
}

func (h *recommendHandler) Recommend(c *fiber.Ctx) error {
	req := new(domain.RecommendationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	res, err := h.matchService.Recommend(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}
