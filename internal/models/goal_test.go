package models_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentfinance/backend/internal/models"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestGoalAfterSave() {
	tests := []struct {
		target  decimal.Decimal
		current decimal.Decimal
		err     error
	}{
		{decimal.NewFromFloat(-10), decimal.NewFromFloat(0), models.ErrGoalTargetNotPositive},
		{decimal.NewFromFloat(0), decimal.NewFromFloat(0), models.ErrGoalTargetNotPositive},
		{decimal.NewFromFloat(100), decimal.NewFromFloat(-5), models.ErrGoalBalanceNegative},
		{decimal.NewFromFloat(750), decimal.NewFromFloat(750), nil},
	}

	for _, tt := range tests {
		g := models.Goal{
			TargetAmount:  tt.target,
			CurrentAmount: tt.current,
		}

		err := g.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestGoalTrimWhitespace() {
	name := "  New Laptop  \t"
	category := " travel    "

	goal := suite.createTestGoal(models.Goal{
		Name:         name,
		Category:     category,
		TargetAmount: decimal.NewFromFloat(50000),
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), goal.Name)
	assert.Equal(suite.T(), strings.TrimSpace(category), goal.Category)
}

func (suite *TestSuiteStandard) TestGoalDeadlineUTC() {
	// A zero deadline is set to the current time
	goal := suite.createTestGoal(models.Goal{TargetAmount: decimal.NewFromFloat(100)})
	assert.WithinDuration(suite.T(), time.Now(), goal.Deadline, time.Minute)
	assert.Equal(suite.T(), time.UTC, goal.Deadline.Location())

	// An explicit deadline is converted to UTC
	deadline := time.Date(2024, 6, 1, 0, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	goal = suite.createTestGoal(models.Goal{TargetAmount: decimal.NewFromFloat(100), Deadline: deadline})
	assert.True(suite.T(), deadline.Equal(goal.Deadline))
	assert.Equal(suite.T(), time.UTC, goal.Deadline.Location())
}

func (suite *TestSuiteStandard) TestGoalDeposit() {
	goal := suite.createTestGoal(models.Goal{
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromFloat(5000),
		CurrentAmount: decimal.NewFromFloat(50),
	})

	err := goal.Deposit(models.DB, decimal.NewFromFloat(25))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), goal.CurrentAmount.Equal(decimal.NewFromFloat(75)), "CurrentAmount is %s", goal.CurrentAmount)

	// The deposit is persisted
	var reloaded models.Goal
	err = models.DB.First(&reloaded, goal.ID).Error
	require.Nil(suite.T(), err)
	assert.True(suite.T(), reloaded.CurrentAmount.Equal(decimal.NewFromFloat(75)))

	// Non-positive deposits are rejected
	for _, amount := range []decimal.Decimal{decimal.NewFromFloat(0), decimal.NewFromFloat(-10)} {
		err = goal.Deposit(models.DB, amount)
		assert.ErrorIs(suite.T(), err, models.ErrGoalDepositNotPositive)
	}
}

func (suite *TestSuiteStandard) TestGoals() {
	for i, name := range []string{"first", "second", "third"} {
		_ = suite.createTestGoal(models.Goal{
			DefaultModel: models.DefaultModel{
				Timestamps: models.Timestamps{
					CreatedAt: time.Date(2024, 1, 1, 12, 0, i, 0, time.UTC),
				},
			},
			Name:         name,
			TargetAmount: decimal.NewFromFloat(100),
		})
	}

	goals, err := models.Goals(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), goals, 3)

	// Creation order
	assert.Equal(suite.T(), "first", goals[0].Name)
	assert.Equal(suite.T(), "second", goals[1].Name)
	assert.Equal(suite.T(), "third", goals[2].Name)
}

func (suite *TestSuiteStandard) TestGoalExport() {
	t := suite.T()

	for i := range 2 {
		_ = suite.createTestGoal(models.Goal{Name: fmt.Sprint(i), TargetAmount: decimal.NewFromFloat(17)})
	}

	raw, err := models.Goal{}.Export()
	if err != nil {
		require.Fail(t, "goal export failed", err)
	}

	var goals []models.Goal
	err = json.Unmarshal(raw, &goals)
	if err != nil {
		require.Fail(t, "JSON could not be unmarshaled", err)
	}

	require.Len(t, goals, 2, "Number of goals in export is wrong")
}
