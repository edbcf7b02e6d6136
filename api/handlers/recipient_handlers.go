package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"giftwise/api/dto"
	"giftwise/auth"
	"giftwise/repositories"
)

// CreateRecipientHandler godoc
// @Summary      Create recipient
// @Description  Create a recipient profile owned by the caller
// @Tags         recipients
// @Accept       json
// @Param        request  body  dto.CreateRecipientRequestDTO  true  "Recipient"
// @Produce      json
// @Success      201  {object}  dto.RecipientDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /recipients [post]
func CreateRecipientHandler(store *repositories.Store, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := requireUser(c, jwtManager)
		if !ok {
			return
		}

		var req dto.CreateRecipientRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
			return
		}

		rec, err := store.Recipients.Insert(c.Request.Context(), req.ToModel(claims.UserID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}

		c.JSON(http.StatusCreated, dto.MapRecipient(*rec))
	}
}

// ListRecipientsHandler godoc
// @Summary      List recipients
// @Description  List the caller's recipients, newest first
// @Tags         recipients
// @Produce      json
// @Success      200  {array}  dto.RecipientDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /recipients [get]
func ListRecipientsHandler(store *repositories.Store, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := requireUser(c, jwtManager)
		if !ok {
			return
		}

		recipients, err := store.Recipients.ListByUser(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}

		out := make([]dto.RecipientDTO, 0, len(recipients))
		for _, r := range recipients {
			out = append(out, dto.MapRecipient(r))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetRecipientHandler godoc
// @Summary      Get recipient
// @Description  Get one of the caller's recipients by id
// @Tags         recipients
// @Param        id  path  string  true  "Recipient ObjectID"
// @Produce      json
// @Success      200  {object}  dto.RecipientDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /recipients/{id} [get]
func GetRecipientHandler(store *repositories.Store, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := requireUser(c, jwtManager)
		if !ok {
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_recipient_id"})
			return
		}

		rec, err := store.Recipients.FindByIDAndUser(c.Request.Context(), id, claims.UserID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipient_not_found"})
			return
		}

		c.JSON(http.StatusOK, dto.MapRecipient(*rec))
	}
}
