package v1

import (
	"net/http"

	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := public.Group("/skills")
	{
		skills.GET("", handler.Fetch)
		skills.GET("/:category", handler.FetchByCategory)
	}
}

// Fetch godoc
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Router       /skills [get]
func (h *SkillHandler) Fetch(c *gin.Context) {
	skills, err := h.skillUC.Fetch(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills", skills)
}

// FetchByCategory godoc
// @Summary      List skills in a category
// @Tags         skills
// @Produce      json
// @Param        category  path      string  true  "technical | communication | soft"
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Failure      400  {object}  response.Response
// @Router       /skills/{category} [get]
func (h *SkillHandler) FetchByCategory(c *gin.Context) {
	skills, err := h.skillUC.FetchByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills", skills)
}
