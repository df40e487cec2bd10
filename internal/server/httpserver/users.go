package httpserver

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/server/services"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	RegisterInfos *services.RegisterInput `json:"registerInfos"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("%w: %v", common.ErrInvalidInput, err))
		return
	}
	if req.RegisterInfos == nil {
		s.abortWithError(c, fmt.Errorf("%w: registerInfos", common.ErrMissingField))
		return
	}

	res, err := s.svc.Users.Register(c.Request.Context(), *req.RegisterInfos)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "userType", res.UserType)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "User registered successfully",
		"token":    res.Token,
		"userType": res.UserType,
	})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, fmt.Errorf("%w: %v", common.ErrInvalidInput, err))
		return
	}

	res, err := s.svc.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   res.Token,
		"user":    res.User,
	})
}
