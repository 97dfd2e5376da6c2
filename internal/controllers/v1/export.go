package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studentfinance/backend/internal/httputil"
	"github.com/studentfinance/backend/internal/models"
)

func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// ExportDocument is the save document of the browser app. A file
// exported here can be loaded both by the app and the import endpoint.
type ExportDocument struct {
	Expenses    json.RawMessage `json:"expenses"`    // All expenses
	Goals       json.RawMessage `json:"goals"`       // All goals
	CurrentUser json.RawMessage `json:"currentUser"` // The user profile
	Timestamp   time.Time       `json:"timestamp"`   // Time the export was created
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all data as the save document of the browser app
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportDocument
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	// Ensure the profile exists so that the document always has one
	_, err := models.Profile()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	expenses, err := models.Expense{}.Export()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	goals, err := models.Goal{}.Export()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	profile, err := models.UserProfile{}.Export()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ExportDocument{
		Expenses:    expenses,
		Goals:       goals,
		CurrentUser: profile,
		Timestamp:   time.Now().In(time.UTC),
	})
}
