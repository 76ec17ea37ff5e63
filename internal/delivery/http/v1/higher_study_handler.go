package v1

import (
	"net/http"

	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type HigherStudyHandler struct {
	studyUC domain.HigherStudyUsecase
}

func NewHigherStudyHandler(public *gin.RouterGroup, studyUC domain.HigherStudyUsecase) {
	handler := &HigherStudyHandler{studyUC: studyUC}

	studies := public.Group("/higher-studies")
	{
		studies.GET("", handler.Fetch)
		studies.GET("/:id", handler.GetByID)
	}
}

// Fetch godoc
// @Summary      List higher-study programs
// @Tags         higher-studies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.HigherStudy}
// @Router       /higher-studies [get]
func (h *HigherStudyHandler) Fetch(c *gin.Context) {
	studies, err := h.studyUC.Fetch(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Higher studies", studies)
}

// GetByID godoc
// @Summary      Get a higher-study program
// @Tags         higher-studies
// @Produce      json
// @Param        id   path      string  true  "Program ID"
// @Success      200  {object}  response.Response{data=domain.HigherStudy}
// @Failure      404  {object}  response.Response
// @Router       /higher-studies/{id} [get]
func (h *HigherStudyHandler) GetByID(c *gin.Context) {
	study, err := h.studyUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Higher study", study)
}
