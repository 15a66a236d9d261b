package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/backend/internal/application/usecase/dashboard"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard and insights endpoints.
type DashboardController struct {
	getDashboardUseCase *dashboard.GetDashboardUseCase
	getInsightsUseCase  *dashboard.GetInsightsUseCase
	getCalendarUseCase  *dashboard.GetCalendarUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getDashboardUseCase *dashboard.GetDashboardUseCase,
	getInsightsUseCase *dashboard.GetInsightsUseCase,
	getCalendarUseCase *dashboard.GetCalendarUseCase,
) *DashboardController {
	return &DashboardController{
		getDashboardUseCase: getDashboardUseCase,
		getInsightsUseCase:  getInsightsUseCase,
		getCalendarUseCase:  getCalendarUseCase,
	}
}

// GetDashboard handles GET /dashboard requests.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetDashboardInput{
		UserID: userID,
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetInsights handles GET /dashboard/insights requests.
func (c *DashboardController) GetInsights(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetInsightsInput{
		UserID: userID,
	}

	output, err := c.getInsightsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output))
}

// GetCalendar handles GET /dashboard/calendar requests.
func (c *DashboardController) GetCalendar(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetCalendarInput{
		UserID: userID,
	}

	output, err := c.getCalendarUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(output))
}
