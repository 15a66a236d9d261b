package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/application/usecase/user"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user profile endpoints.
type UserController struct {
	getProfileUseCase *user.GetProfileUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(getProfileUseCase *user.GetProfileUseCase) *UserController {
	return &UserController{
		getProfileUseCase: getProfileUseCase,
	}
}

// Me handles GET /users/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := user.GetProfileInput{
		UserID: userID,
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) && authErr.Code == domainerror.ErrCodeUserNotFound {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: authErr.Message,
				Code:  string(authErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
