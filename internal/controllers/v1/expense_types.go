package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/studentfinance/backend/internal/models"
)

type ExpenseEditable struct {
	Description string          `json:"description" example:"Lunch at the campus canteen" default:""`                                                // Description of the expense
	Amount      decimal.Decimal `json:"amount" example:"120" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount spent
	Category    string          `json:"category" example:"food" default:""`                                                                          // Category of the expense. Defaults to the suggested category when empty
	Date        time.Time       `json:"date" example:"2024-01-15T00:00:00Z"`                                                                         // Date of the expense. Defaults to the current date
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Description: editable.Description,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Date:        editable.Date,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The expense itself
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	SuggestedCategory string       `json:"suggestedCategory" example:"food"` // The category the classifier suggests for the description
	Links             ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Description: model.Description,
			Amount:      model.Amount,
			Category:    model.Category,
			Date:        model.Date,
		},
		SuggestedCategory: model.SuggestedCategory,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created resources
}

func (t *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The resource
}

type ExpenseQueryFilter struct {
	Description       string          `form:"description" filterField:"false"`       // By description
	Category          string          `form:"category" filterField:"false"`          // By category
	Search            string          `form:"search" filterField:"false"`            // By string in description or category
	SuggestedCategory string          `form:"suggestedCategory"`                     // By the category the classifier suggested
	Month             string          `form:"month" filterField:"false"`             // Expenses in this month. Ignores exact time, matches on the month of the RFC3339 timestamp provided.
	Amount            decimal.Decimal `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first expense returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of expenses to return. Defaults to 50.
}

// This does not set the string fields since they are
// handled in the controller function
func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		SuggestedCategory: f.SuggestedCategory,
		Amount:            f.Amount,
	}
}
