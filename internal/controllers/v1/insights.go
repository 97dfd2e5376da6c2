package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studentfinance/backend/internal/httputil"
	"github.com/studentfinance/backend/internal/insight"
	"github.com/studentfinance/backend/internal/models"
)

func RegisterInsightRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsInsights)
	r.GET("", GetInsights)
}

type InsightListResponse struct {
	Error *string           `json:"error" example:"there is no expense matching your query"` // The error, if any occurred
	Data  []insight.Insight `json:"data"`                                                    // List of resources
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Router			/v1/insights [options]
func OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get insights
// @Description	Returns advisory messages derived from the current expenses, goals and profile
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	InsightListResponse
// @Failure		500	{object}	InsightListResponse
// @Router			/v1/insights [get]
func GetInsights(c *gin.Context) {
	expenses, err := models.Expenses(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InsightListResponse{
			Error: &e,
		})
		return
	}

	goals, err := models.Goals(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InsightListResponse{
			Error: &e,
		})
		return
	}

	profile, err := models.Profile()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InsightListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, InsightListResponse{
		Data: insight.Generate(expenses, goals, profile, time.Now().In(time.UTC)),
	})
}
