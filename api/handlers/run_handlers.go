package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"giftwise/api/dto"
	"giftwise/auth"
	"giftwise/models"
	"giftwise/repositories"
)

// ListRunsHandler godoc
// @Summary      List suggestion runs
// @Description  List the caller's suggestion runs for one recipient, newest first
// @Tags         runs
// @Param        recipient_id  query  string  true   "Recipient ObjectID"
// @Param        limit         query  int     false  "Max runs (<=100)"
// @Produce      json
// @Success      200  {array}  dto.SuggestionRunDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /runs [get]
func ListRunsHandler(store *repositories.Store, jwtManager *auth.JWTManager) gin.HandlerFunc {
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

		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
		if limit <= 0 || limit > 100 {
			limit = 20
		}

		runs, err := store.Runs.ListByRecipient(c.Request.Context(), claims.UserID, recipientID, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}

		out := make([]dto.SuggestionRunDTO, 0, len(runs))
		for i := range runs {
			out = append(out, dto.MapSuggestionRun(&runs[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetRunHandler godoc
// @Summary      Get suggestion run
// @Description  Get one of the caller's suggestion runs by id
// @Tags         runs
// @Param        id  path  string  true  "Run ObjectID"
// @Produce      json
// @Success      200  {object}  dto.SuggestionRunDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /runs/{id} [get]
func GetRunHandler(store *repositories.Store, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := requireUser(c, jwtManager)
		if !ok {
			return
		}

		run, ok := findOwnedRun(c, store, claims.UserID)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, dto.MapSuggestionRun(run))
	}
}

// SaveIdeaHandler godoc
// @Summary      Save an idea from a run
// @Description  Copy one idea of a run into the caller's saved ideas
// @Tags         runs
// @Param        id     path  string  true  "Run ObjectID"
// @Param        index  path  int     true  "Idea index within the run"
// @Produce      json
// @Success      200  {object}  dto.SavedIdeaDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /runs/{id}/ideas/{index}/save [post]
func SaveIdeaHandler(store *repositories.Store, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := requireUser(c, jwtManager)
		if !ok {
			return
		}

		run, ok := findOwnedRun(c, store, claims.UserID)
		if !ok {
			return
		}

		index, ok := ideaIndexParam(c, run)
		if !ok {
			return
		}

		idea := run.Ideas[index]
		saved := &models.SavedIdea{
			UserID:           claims.UserID,
			RecipientID:      run.RecipientID,
			Title:            idea.Title,
			ShortDescription: idea.ShortDescription,
			Tier:             idea.Tier,
			PriceHint:        idea.PriceHint,
			WhyItFits:        idea.WhyItFits,
			SuggestedURL:     idea.SuggestedURL,
			ImageURL:         idea.ImageURL,
			Product:          idea.Product,
			RunID:            &run.ID,
			IdeaIndex:        &index,
		}

		saved, err := store.SavedIdeas.Insert(c.Request.Context(), saved)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}

		c.JSON(http.StatusOK, dto.MapSavedIdea(*saved))
	}
}

// IdeaFeedbackHandler godoc
// @Summary      Record idea feedback
// @Description  Record a like or dislike on one idea of a run, replacing any earlier preference
// @Tags         runs
// @Param        id       path  string                      true  "Run ObjectID"
// @Param        index    path  int                         true  "Idea index within the run"
// @Param        request  body  dto.IdeaFeedbackRequestDTO  true  "Preference"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /runs/{id}/ideas/{index}/feedback [post]
func IdeaFeedbackHandler(store *repositories.Store, jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := requireUser(c, jwtManager)
		if !ok {
			return
		}

		var req dto.IdeaFeedbackRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
			return
		}
		if req.Preference != models.PreferenceLiked && req.Preference != models.PreferenceDisliked {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_preference"})
			return
		}

		run, ok := findOwnedRun(c, store, claims.UserID)
		if !ok {
			return
		}

		index, ok := ideaIndexParam(c, run)
		if !ok {
			return
		}

		feedback := &models.IdeaFeedback{
			UserID:      claims.UserID,
			RecipientID: run.RecipientID,
			RunID:       run.ID,
			IdeaIndex:   index,
			IdeaTitle:   run.Ideas[index].Title,
			Preference:  req.Preference,
		}
		if err := store.Feedback.Upsert(c.Request.Context(), feedback); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "feedback recorded"})
	}
}

func findOwnedRun(c *gin.Context, store *repositories.Store, userID string) (*models.SuggestionRun, bool) {
	runID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_run_id"})
		return nil, false
	}

	run, err := store.Runs.FindByIDAndUser(c.Request.Context(), runID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run_not_found"})
		return nil, false
	}
	return run, true
}

func ideaIndexParam(c *gin.Context, run *models.SuggestionRun) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(run.Ideas) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_idea_index"})
		return 0, false
	}
	return index, true
}
