package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/studentfinance/backend/internal/models"
)

type GoalEditable struct {
	Name          string          `json:"name" example:"New Laptop" default:""`                                                                               // Name of the goal
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"50000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // How much money should be saved for this goal?
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"15000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`        // How much money is already saved up
	Deadline      time.Time       `json:"deadline" example:"2024-06-01T00:00:00Z"`                                                                            // The date the goal should be reached
	Category      string          `json:"category" example:"education" default:""`                                                                            // Free-form tag to group goals
	Archived      bool            `json:"archived" example:"true" default:"false"`                                                                            // If this goal is still in use or not
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:          editable.Name,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		Deadline:      editable.Deadline,
		Category:      editable.Category,
		Archived:      editable.Archived,
	}
}

type GoalLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`            // The goal itself
	Balance string `json:"balance" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/balance"` // Endpoint to add money to the goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:          model.Name,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			Deadline:      model.Deadline,
			Category:      model.Category,
			Archived:      model.Archived,
		},
		Links: GoalLinks{
			Self:    fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Balance: fmt.Sprintf("%s/v1/goals/%s/balance", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

// GoalBalanceRequest is the body for adding money to a goal.
type GoalBalanceRequest struct {
	Amount decimal.Decimal `json:"amount" example:"500" minimum:"0.00000001" multipleOf:"0.00000001"` // The amount to add to the goal
}

type GoalQueryFilter struct {
	Name                    string          `form:"name" filterField:"false"`                    // By name
	Category                string          `form:"category" filterField:"false"`                // By category
	Search                  string          `form:"search" filterField:"false"`                  // By string in name or category
	Archived                bool            `form:"archived"`                                    // Is the goal archived?
	DeadlineBefore          string          `form:"deadlineBefore" filterField:"false"`          // Goals with a deadline before this date
	DeadlineAfter           string          `form:"deadlineAfter" filterField:"false"`           // Goals with a deadline after this date
	TargetAmount            decimal.Decimal `form:"targetAmount"`                                // Exact target amount
	TargetAmountLessOrEqual decimal.Decimal `form:"targetAmountLessOrEqual" filterField:"false"` // Target amount less than or equal to this
	TargetAmountMoreOrEqual decimal.Decimal `form:"targetAmountMoreOrEqual" filterField:"false"` // Target amount more than or equal to this
	Offset                  uint            `form:"offset" filterField:"false"`                  // The offset of the first goal returned. Defaults to 0.
	Limit                   int             `form:"limit" filterField:"false"`                   // Maximum number of goals to return. Defaults to 50.
}

// This does not set the string fields since they are
// handled in the controller function
func (f GoalQueryFilter) model() models.Goal {
	return models.Goal{
		TargetAmount: f.TargetAmount,
		Archived:     f.Archived,
	}
}
