package handlers

import (
	"context"
	"time"

	"github.com/careerfolio/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint speaks: success flag, optional
// human-readable message, optional payload.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

const requestTimeout = 5 * time.Second

func requestCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

func writeOK(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func writeMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Success: true, Message: msg})
}

// writeError converts any error into the envelope. Only the AppError safe
// message crosses the boundary; wrapped driver text stays inside.
func writeError(c *gin.Context, err error) {
	c.JSON(utils.HTTPStatus(err), Response{Success: false, Message: utils.Message(err)})
}
