package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"giftwise/api/dto"
	"giftwise/auth"
	"giftwise/repositories"
)

// ListSavedIdeasHandler godoc
// @Summary      List saved ideas
// @Description  List the caller's saved ideas for one recipient, newest first
// @Tags         saved-ideas
// @Param        recipient_id  query  string  true  "Recipient ObjectID"
// @Produce      json
// @Success      200  {array}  dto.SavedIdeaDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /saved-ideas [get]
func ListSavedIdeasHandler(store *repositories.Store, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := requireUser(c, jwtManager)
		if !ok {
			return
		}

		recipientID, err := primitive.ObjectIDFromHex(c.Query("recipient_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_recipient_id"})
			return
		}

		ideas, err := store.SavedIdeas.ListByRecipient(c.Request.Context(), claims.UserID, recipientID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}

		out := make([]dto.SavedIdeaDTO, 0, len(ideas))
		for _, s := range ideas {
			out = append(out, dto.MapSavedIdea(s))
		}
		c.JSON(http.StatusOK, out)
	}
}

// DeleteSavedIdeaHandler godoc
// @Summary      Delete saved idea
// @Description  Delete one of the caller's saved ideas
// @Tags         saved-ideas
// @Param        id  path  string  true  "Saved idea ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /saved-ideas/{id} [delete]
func DeleteSavedIdeaHandler(store *repositories.Store, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := requireUser(c, jwtManager)
		if !ok {
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_saved_idea_id"})
			return
		}

		if err := store.SavedIdeas.DeleteByIDAndUser(c.Request.Context(), id, claims.UserID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "saved_idea_not_found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "saved idea deleted"})
	}
}
