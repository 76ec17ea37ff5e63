package v1

import (
	"io"
	"net/http"

	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC  domain.ResumeUsecase
	maxUpload int64
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase, maxUpload int64) {
	handler := &ResumeHandler{resumeUC: resumeUC, maxUpload: maxUpload}

	protected.POST("/resume-analyze", handler.Analyze)
}

// Analyze godoc
// @Summary      Analyze an uploaded resume
// @Description  Validates and stores the file, runs the analysis, and replaces the stored result.
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume file (pdf, doc, docx, txt)"
// @Success      200     {object}  response.Response{data=domain.AnalysisResult}
// @Failure      400     {object}  response.Response
// @Router       /resume-analyze [post]
// @Security     BearerAuth
func (h *ResumeHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("resume file is required"))
		return
	}
	if fileHeader.Size > h.maxUpload {
		c.Error(apperror.BadRequest("resume file too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUpload))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	analysis, err := h.resumeUC.Analyze(c, fileHeader.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume analyzed", analysis)
}
