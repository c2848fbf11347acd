package api

import (
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h ApiHandler) register(c *gin.Context) {
	var requestBody registerRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	_, err := h.UserAccountService.Register(c.Request.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		returnBusinessError(err, c)
		return
	}

	c.JSON(200, map[string]string{
		"message": "ok",
	})
}
