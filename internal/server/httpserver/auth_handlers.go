package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"custdesk/internal/common"
	"custdesk/internal/server/users"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

type signupRequest struct {
	Email        string `json:"email"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Password     string `json:"password" binding:"required"`
}

func toUserResponse(u *users.User) userResponse {
	return userResponse{
		ID:           u.ID,
		EmployeeID:   u.EmployeeID,
		EmployeeName: u.EmployeeName,
	}
}

func loginHandler(svc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid request body")
			return
		}

		token, user, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, common.ErrorUnauthorized) {
				errorJSON(c, http.StatusUnauthorized, "invalid credentials")
				return
			}
			errorJSON(c, http.StatusInternalServerError, "internal error")
			return
		}

		c.JSON(http.StatusOK, loginResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        toUserResponse(user),
		})
	}
}

func signupHandler(svc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid request body")
			return
		}

		// email-based clients sign up without a separate employee id
		employeeID := req.EmployeeID
		if employeeID == "" {
			employeeID = req.Email
		}
		if employeeID == "" {
			errorJSON(c, http.StatusBadRequest, "employee_id is required")
			return
		}

		user, err := svc.Register(c.Request.Context(), employeeID, req.EmployeeName, req.Password)
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				errorJSON(c, http.StatusConflict, "employee already exists")
				return
			}
			errorJSON(c, http.StatusInternalServerError, "internal error")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": user.ID})
	}
}
