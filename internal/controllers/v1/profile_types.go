package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/studentfinance/backend/internal/models"
)

type UserProfileEditable struct {
	Balance       decimal.Decimal `json:"balance" example:"12450" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`       // Current account balance
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" example:"15000" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Income per month
	MonthlyBudget decimal.Decimal `json:"monthlyBudget" example:"10000" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Spending budget per month
}

// model returns the database resource for the API representation of the editable fields
func (editable UserProfileEditable) model() models.UserProfile {
	return models.UserProfile{
		Balance:       editable.Balance,
		MonthlyIncome: editable.MonthlyIncome,
		MonthlyBudget: editable.MonthlyBudget,
	}
}

type UserProfileLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/profile"` // The profile itself
}

type UserProfile struct {
	models.DefaultModel
	UserProfileEditable
	Links UserProfileLinks `json:"links"`
}

// newUserProfile returns the API v1 representation of the resource
func newUserProfile(c *gin.Context, model models.UserProfile) UserProfile {
	url := c.GetString(string(models.DBContextURL))

	return UserProfile{
		DefaultModel: model.DefaultModel,
		UserProfileEditable: UserProfileEditable{
			Balance:       model.Balance,
			MonthlyIncome: model.MonthlyIncome,
			MonthlyBudget: model.MonthlyBudget,
		},
		Links: UserProfileLinks{
			Self: url + "/v1/profile",
		},
	}
}

type UserProfileResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *UserProfile `json:"data"`                                                          // The resource
}
