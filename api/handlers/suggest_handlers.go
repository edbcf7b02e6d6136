package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"giftwise/api/dto"
	"giftwise/auth"
	"giftwise/suggest"
)

// SuggestHandler godoc
// @Summary      Generate gift suggestions
// @Description  Run the multi-pass suggestion engine for one recipient and persist the result as a run
// @Tags         suggestions
// @Accept       json
// @Param        request  body  dto.SuggestRequestDTO  true  "Suggestion request"
// @Produce      json
// @Success      200  {object}  dto.SuggestResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /suggestions [post]
func SuggestHandler(engine *suggest.Engine, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := requireUser(c, jwtManager)
		if !ok {
			return
		}

		var req dto.SuggestRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
			return
		}

		recipientID, err := primitive.ObjectIDFromHex(req.RecipientID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_recipient_id"})
			return
		}

		result, err := engine.Suggest(c.Request.Context(), suggest.Request{
			UserID:              claims.UserID,
			RecipientID:         recipientID,
			Occasion:            req.Occasion,
			BudgetMin:           req.BudgetMin,
			BudgetMax:           req.BudgetMax,
			NumSuggestions:      req.NumSuggestions,
			PreviousSuggestions: req.PreviousSuggestions,
		})
		if err != nil {
			switch {
			case errors.Is(err, suggest.ErrRecipientNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "recipient_not_found"})
			case errors.Is(err, suggest.ErrProviderUnavailable):
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "suggestions_unavailable"})
			case errors.Is(err, suggest.ErrNothingGenerated):
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no_suggestions_generated"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			}
			return
		}

		c.JSON(http.StatusOK, dto.MapSuggestResult(result))
	}
}
