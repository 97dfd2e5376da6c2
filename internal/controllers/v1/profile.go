package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentfinance/backend/internal/httputil"
	"github.com/studentfinance/backend/internal/models"
)

func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.PATCH("", UpdateProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get profile
// @Description	Returns the user profile. It is created with default values on first use.
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	UserProfileResponse
// @Failure		500	{object}	UserProfileResponse
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	profile, err := models.Profile()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &e,
		})
		return
	}

	apiResource := newUserProfile(c, profile)
	c.JSON(http.StatusOK, UserProfileResponse{Data: &apiResource})
}

// @Summary		Update profile
// @Description	Updates the user profile. Only values to be updated need to be specified.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserProfileResponse
// @Failure		400		{object}	UserProfileResponse
// @Failure		500		{object}	UserProfileResponse
// @Param			profile	body		UserProfileEditable	true	"Profile"
// @Router			/v1/profile [patch]
func UpdateProfile(c *gin.Context) {
	profile, err := models.Profile()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, UserProfileEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data UserProfileEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&profile).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &e,
		})
		return
	}

	apiResource := newUserProfile(c, profile)
	c.JSON(http.StatusOK, UserProfileResponse{Data: &apiResource})
}
