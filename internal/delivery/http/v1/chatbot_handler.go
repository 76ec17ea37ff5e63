package v1

import (
	"net/http"

	"go-futurehire-backend/internal/delivery/http/response"
	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ChatbotHandler struct {
	chatbotUC domain.ChatbotUsecase
}

func NewChatbotHandler(public *gin.RouterGroup, chatbotUC domain.ChatbotUsecase) {
	handler := &ChatbotHandler{chatbotUC: chatbotUC}

	public.POST("/chatbot", handler.Ask)
}

type ChatbotRequest struct {
	Message string `json:"message" binding:"required"`
}

// Ask godoc
// @Summary      Ask the guidance chatbot
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Param        question  body      ChatbotRequest  true  "Question"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /chatbot [post]
func (h *ChatbotHandler) Ask(c *gin.Context) {
	var req ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	reply, err := h.chatbotUC.Reply(c.Request.Context(), req.Message)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Chatbot reply", gin.H{"response": reply})
}
