package v1

import (
	"fmt"
	"net/http"
	"time"

	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	user := protected.Group("/user")
	{
		user.GET("/profile", handler.GetProfile)
		user.GET("/test-history", handler.GetTestHistory)
		user.GET("/test-history/export", handler.ExportTestHistory)
	}
}

// GetProfile godoc
// @Summary      Get own profile
// @Description  Profile of the authenticated user. Password material is never included.
// @Tags         user
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /user/profile [get]
// @Security     BearerAuth
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userUC.GetProfile(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile", user)
}

// GetTestHistory godoc
// @Summary      Get own test history
// @Tags         user
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.TestAttempt}
// @Failure      401  {object}  response.Response
// @Router       /user/test-history [get]
// @Security     BearerAuth
func (h *UserHandler) GetTestHistory(c *gin.Context) {
	history, err := h.userUC.GetTestHistory(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Test history", history)
}

// ExportTestHistory godoc
// @Summary      Export own test history as xlsx
// @Tags         user
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      401  {object}  response.Response
// @Router       /user/test-history/export [get]
// @Security     BearerAuth
func (h *UserHandler) ExportTestHistory(c *gin.Context) {
	data, err := h.userUC.ExportTestHistory(c)
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("test-history-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
