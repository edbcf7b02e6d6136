package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"giftwise/repositories"
)

// ListAILogsHandler godoc
// @Summary      List AI call logs
// @Description  List recent generation-pass logs, newest first (admin only)
// @Tags         admin
// @Param        limit  query  int  false  "Max logs (<=200)"
// @Produce      json
// @Success      200  {array}  models.AILog
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Security     BearerAuth
// @Router       /admin/ai-logs [get]
func ListAILogsHandler(store *repositories.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
		if limit <= 0 || limit > 200 {
			limit = 50
		}

		logs, err := store.AILogs.ListRecent(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}

		c.JSON(http.StatusOK, logs)
	}
}
