package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal represents a savings goal of the user.
type Goal struct {
	DefaultModel
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)"`
	// CurrentAmount is the amount saved up for the goal so far. It only
	// grows through deposits and may exceed the target, over-saving is
	// not clamped.
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,8)"`
	Deadline      time.Time       `json:"deadline"`
	// Category is a free-form tag like "emergency" or "travel". It is
	// not restricted to the expense categories.
	Category string `json:"category"`
	Archived bool   `json:"archived"`
}

var (
	ErrGoalTargetNotPositive  = errors.New("goal target amounts must be larger than zero")
	ErrGoalBalanceNegative    = errors.New("the saved amount of a goal cannot be negative")
	ErrGoalDepositNotPositive = errors.New("deposits must be larger than zero")
)

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Category = strings.TrimSpace(g.Category)

	if g.Deadline.IsZero() {
		g.Deadline = time.Now().In(time.UTC)
	} else {
		g.Deadline = g.Deadline.In(time.UTC)
	}

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.TargetAmount) {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalBalanceNegative
	}

	return nil
}

// AfterFind updates the deadline to use UTC as timezone, not +0000.
func (g *Goal) AfterFind(_ *gorm.DB) error {
	g.Deadline = g.Deadline.In(time.UTC)
	return nil
}

// Deposit adds a positive amount to the saved amount of the goal.
func (g *Goal) Deposit(db *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrGoalDepositNotPositive
	}

	return db.Model(g).Update("current_amount", g.CurrentAmount.Add(amount)).Error
}

// Goals returns all goals in creation order.
func Goals(db *gorm.DB) ([]Goal, error) {
	var goals []Goal
	err := db.Order("datetime(created_at) ASC").Find(&goals).Error
	return goals, err
}

// Returns all goals on this instance for export
func (Goal) Export() (json.RawMessage, error) {
	var goals []Goal
	err := DB.Unscoped().Where(&Goal{}).Find(&goals).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&goals)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
