package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/studentfinance/backend/internal/category"
	"gorm.io/gorm"
)

// Expense represents a single expense of the user.
type Expense struct {
	DefaultModel
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	// Category the expense is booked under. Usually one of the fixed
	// categories, but imports may carry labels outside of the fixed set.
	Category string `json:"category"`
	// SuggestedCategory is the category the classifier suggests for the
	// description. It is stamped on every save.
	SuggestedCategory string    `json:"suggestedCategory"`
	Date              time.Time `json:"date"`
}

var ErrExpenseAmountNotPositive = errors.New("expense amounts must be larger than zero")

// BeforeSave trims whitespace, stamps the suggested category and
// defaults the category to the suggestion when the user chose none.
// The date is normalized to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)

	e.SuggestedCategory = string(category.Suggest(e.Description))
	if e.Category == "" {
		e.Category = e.SuggestedCategory
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(e.Amount) {
		return ErrExpenseAmountNotPositive
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (e *Expense) AfterFind(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// Expenses returns all expenses, most recently added first. This is the
// order the dashboard shows and the order the spending projection
// samples from.
func Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense
	err := db.Order("datetime(created_at) DESC").Find(&expenses).Error
	return expenses, err
}

// Returns all expenses on this instance for export
func (Expense) Export() (json.RawMessage, error) {
	var expenses []Expense
	err := DB.Unscoped().Where(&Expense{}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&expenses)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
