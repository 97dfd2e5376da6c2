package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentfinance/backend/internal/category"
	"github.com/studentfinance/backend/internal/httputil"
)

func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategories)
		r.GET("", GetCategories)
	}
	{
		r.OPTIONS("/suggest", OptionsCategorySuggest)
		r.GET("/suggest", GetCategorySuggestion)
	}
}

type Category struct {
	Name     string   `json:"name" example:"food"`                         // Name of the category
	Keywords []string `json:"keywords" example:"lunch,dinner,restaurant"`  // Keywords that suggest this category
	Default  bool     `json:"default" example:"false"`                     // Whether this is the fallback category
}

type CategoryListResponse struct {
	Data []Category `json:"data"` // List of resources
}

type CategorySuggestion struct {
	Description string `json:"description" example:"lunch at the canteen"` // The description the suggestion is for
	Category    string `json:"category" example:"food"`                    // The suggested category
}

type CategorySuggestionResponse struct {
	Error *string             `json:"error" example:"the description query parameter must be set"` // The error, if any occurred
	Data  *CategorySuggestion `json:"data"`                                                        // The resource
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/suggest [options]
func OptionsCategorySuggest(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the fixed list of expense categories with their keywords
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	data := make([]Category, 0, len(category.All))
	for _, name := range category.All {
		data = append(data, Category{
			Name:     string(name),
			Keywords: category.Keywords(name),
			Default:  name == category.Default,
		})
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Suggest a category
// @Description	Suggests a category for an expense description. Descriptions that match no category get the default category.
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	CategorySuggestionResponse
// @Failure		400			{object}	CategorySuggestionResponse
// @Param			description	query		string	true	"The expense description to classify"
// @Router			/v1/categories/suggest [get]
func GetCategorySuggestion(c *gin.Context) {
	if !c.Request.URL.Query().Has("description") {
		s := errDescriptionNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, CategorySuggestionResponse{
			Error: &s,
		})
		return
	}

	description := c.Query("description")

	c.JSON(http.StatusOK, CategorySuggestionResponse{
		Data: &CategorySuggestion{
			Description: description,
			Category:    string(category.Suggest(description)),
		},
	})
}
