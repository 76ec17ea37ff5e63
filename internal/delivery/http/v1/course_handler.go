package v1

import (
	"net/http"

	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC domain.CourseUsecase
}

func NewCourseHandler(public *gin.RouterGroup, courseUC domain.CourseUsecase) {
	handler := &CourseHandler{courseUC: courseUC}

	courses := public.Group("/courses")
	{
		courses.GET("", handler.Fetch)
		courses.GET("/:id", handler.GetByID)
	}
}

// Fetch godoc
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Course}
// @Router       /courses [get]
func (h *CourseHandler) Fetch(c *gin.Context) {
	courses, err := h.courseUC.Fetch(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Courses", courses)
}

// GetByID godoc
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  response.Response{data=domain.Course}
// @Failure      404  {object}  response.Response
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetByID(c *gin.Context) {
	course, err := h.courseUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course", course)
}
