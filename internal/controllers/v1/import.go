package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentfinance/backend/internal/httputil"
	"github.com/studentfinance/backend/internal/importer"
	"github.com/studentfinance/backend/internal/importer/parser/savefile"
	"github.com/studentfinance/backend/internal/models"
)

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", ImportSaveFile)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

type ImportResponse struct {
	Error *string `json:"error" example:"not a valid save document"` // The error, if any occurred
	Data  *Import `json:"data"`                                      // Counts of the imported resources
}

type Import struct {
	Expenses int `json:"expenses" example:"100"` // Number of imported expenses
	Goals    int `json:"goals" example:"3"`      // Number of imported goals
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import a save document
// @Description	Imports a save document of the browser app. Expenses and goals are added to the existing data, the profile is overwritten.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import [post]
func ImportSaveFile(c *gin.Context) {
	f, err := getUploadedFile(c, ".json")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	document, err := savefile.Parse(f)
	if err != nil {
		// savefile.Parse returns a usable error already
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	err = importer.Create(models.DB, document)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{
		Data: &Import{
			Expenses: len(document.Expenses),
			Goals:    len(document.Goals),
		},
	})
}
