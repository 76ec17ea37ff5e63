package v1

import (
	"net/http"

	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TestHandler struct {
	testUC domain.TestUsecase
}

func NewTestHandler(protected *gin.RouterGroup, testUC domain.TestUsecase) {
	handler := &TestHandler{testUC: testUC}

	tests := protected.Group("/tests")
	{
		tests.GET("", handler.Fetch)
		tests.GET("/:id", handler.GetByID)
		tests.POST("/:id/submit", handler.Submit)
	}
}

type SubmitTestRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

// Fetch godoc
// @Summary      List available tests
// @Tags         tests
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Test}
// @Router       /tests [get]
// @Security     BearerAuth
func (h *TestHandler) Fetch(c *gin.Context) {
	tests, err := h.testUC.Fetch(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Tests", tests)
}

// GetByID godoc
// @Summary      Get a test
// @Tags         tests
// @Produce      json
// @Param        id   path      string  true  "Test ID"
// @Success      200  {object}  response.Response{data=domain.Test}
// @Failure      404  {object}  response.Response
// @Router       /tests/{id} [get]
// @Security     BearerAuth
func (h *TestHandler) GetByID(c *gin.Context) {
	test, err := h.testUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Test", test)
}

// Submit godoc
// @Summary      Submit test answers
// @Description  Scores the answers and appends the attempt to the caller's history.
// @Tags         tests
// @Accept       json
// @Produce      json
// @Param        id      path      string             true  "Test ID"
// @Param        submit  body      SubmitTestRequest  true  "Answers"
// @Success      200     {object}  response.Response{data=domain.AttemptResult}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /tests/{id}/submit [post]
// @Security     BearerAuth
func (h *TestHandler) Submit(c *gin.Context) {
	var req SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// Pass gin's context: it carries the identity set by the auth gate
	attempt, err := h.testUC.Submit(c, c.Param("id"), req.Answers)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Test submitted", attempt.Result)
}
