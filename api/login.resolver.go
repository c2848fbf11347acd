package api

import (
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h ApiHandler) login(c *gin.Context) {
	var requestBody loginRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	userAccount, err := h.UserAccountService.Authenticate(c.Request.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		returnBusinessError(err, c)
		return
	}

	accessToken, err := issueAccessToken(h.JwtSecret, *userAccount)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, loginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}
