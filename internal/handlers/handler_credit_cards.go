package handlers

import (
	"net/http"

	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// CreditCardHandler handles credit card CRUD requests.
type CreditCardHandler struct {
	cardService portssvc.CreditCardSvcFacade
}

// NewCreditCardHandler creates a new CreditCardHandler.
func NewCreditCardHandler(cs portssvc.CreditCardSvcFacade) *CreditCardHandler {
	return &CreditCardHandler{cardService: cs}
}

func registerCreditCardRoutes(rg *gin.RouterGroup, cs portssvc.CreditCardSvcFacade) {
	h := NewCreditCardHandler(cs)
	cards := rg.Group("/credit_cards")
	{
		cards.POST("", h.CreateCreditCard)
		cards.GET("", h.ListCreditCards)
		cards.GET("/:id", h.GetCreditCard)
		cards.PUT("/:id", h.UpdateCreditCard)
		cards.DELETE("/:id", h.DeleteCreditCard)
	}
}

// CreateCreditCard godoc
// @Summary Add credit card
// @Tags credit_cards
// @Accept json
// @Produce json
// @Param card body dto.CreateCreditCardRequest true "Credit Card"
// @Success 201 {object} dto.CreditCardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/credit_cards [post]
func (h *CreditCardHandler) CreateCreditCard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	card, err := h.cardService.CreateCreditCard(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create credit card")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCreditCardResponse(card))
}

// ListCreditCards godoc
// @Summary List credit cards
// @Description Lists the user's cards with per-currency expense totals.
// @Tags credit_cards
// @Produce json
// @Success 200 {array} dto.CreditCardResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/credit_cards [get]
func (h *CreditCardHandler) ListCreditCards(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	cards, err := h.cardService.ListCreditCards(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list credit cards")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCreditCardResponse(cards))
}

// GetCreditCard godoc
// @Summary Get credit card
// @Tags credit_cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} dto.CreditCardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/credit_cards/{id} [get]
func (h *CreditCardHandler) GetCreditCard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	card, err := h.cardService.GetCreditCardByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to load credit card")
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditCardResponse(card))
}

// UpdateCreditCard godoc
// @Summary Update credit card
// @Tags credit_cards
// @Accept json
// @Produce json
// @Param id path string true "Card ID"
// @Param card body dto.UpdateCreditCardRequest true "Fields to update"
// @Success 200 {object} dto.CreditCardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/credit_cards/{id} [put]
func (h *CreditCardHandler) UpdateCreditCard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	card, err := h.cardService.UpdateCreditCard(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update credit card")
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditCardResponse(card))
}

// DeleteCreditCard godoc
// @Summary Delete credit card
// @Tags credit_cards
// @Param id path string true "Card ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/credit_cards/{id} [delete]
func (h *CreditCardHandler) DeleteCreditCard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCreditCard(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete credit card")
		return
	}
	c.Status(http.StatusNoContent)
}
