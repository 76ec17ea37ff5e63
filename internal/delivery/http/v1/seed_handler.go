package v1

import (
	"net/http"

	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	seedUC domain.SeedUsecase
}

func NewSeedHandler(public *gin.RouterGroup, seedUC domain.SeedUsecase) {
	handler := &SeedHandler{seedUC: seedUC}

	public.POST("/seed", handler.Seed)
}

// Seed godoc
// @Summary      Load the demo reference dataset
// @Description  Intended for fresh environments; inserts companies, skills, courses, tests, mentors and chatbot entries.
// @Tags         seed
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /seed [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	if err := h.seedUC.Seed(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Data seeded successfully", nil)
}
