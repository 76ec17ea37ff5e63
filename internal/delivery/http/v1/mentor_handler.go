package v1

import (
	"net/http"

	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MentorHandler struct {
	mentorUC domain.MentorUsecase
}

func NewMentorHandler(public *gin.RouterGroup, mentorUC domain.MentorUsecase) {
	handler := &MentorHandler{mentorUC: mentorUC}

	public.GET("/mentors", handler.Fetch)
}

// Fetch godoc
// @Summary      List mentors
// @Tags         mentors
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Mentor}
// @Router       /mentors [get]
func (h *MentorHandler) Fetch(c *gin.Context) {
	mentors, err := h.mentorUC.Fetch(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Mentors", mentors)
}
