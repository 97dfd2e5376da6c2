// Package savefile parses the save documents of the browser app, the
// same format the export endpoint produces.
package savefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/studentfinance/backend/internal/importer"
	"github.com/studentfinance/backend/internal/models"
)

var ErrNoUserProfile = errors.New("the save document does not contain a user profile")

// date is a point in time in a save document. Older app versions wrote
// plain calendar dates, newer ones write RFC3339 timestamps. Both
// variants are accepted.
type date time.Time

func (d *date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*d = date(time.Time{})
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", s)
	}
	if err != nil {
		return fmt.Errorf("could not parse date %q", s)
	}

	*d = date(parsed.In(time.UTC))
	return nil
}

// These have been derived from the documents the browser app writes to
// localStorage. Unknown fields, e.g. the IDs the app generates from
// Date.now(), are ignored.
type document struct {
	Expenses    []expense `json:"expenses"`
	Goals       []goal    `json:"goals"`
	CurrentUser *profile  `json:"currentUser"`
	Timestamp   date      `json:"timestamp"`
}

type expense struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        date            `json:"date"`
}

type goal struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      date            `json:"deadline"`
	Category      string          `json:"category"`
	Archived      bool            `json:"archived"`
}

type profile struct {
	Balance       decimal.Decimal `json:"balance"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
}

// Parse parses a save document.
func Parse(f io.Reader) (importer.Document, error) {
	content, err := io.ReadAll(f)
	if err != nil {
		return importer.Document{}, fmt.Errorf("could not read data from file: %w", err)
	}

	var doc document
	err = json.Unmarshal(content, &doc)
	if err != nil {
		return importer.Document{}, fmt.Errorf("not a valid save document: %w", err)
	}

	if doc.CurrentUser == nil {
		return importer.Document{}, ErrNoUserProfile
	}

	expenses := make([]models.Expense, 0, len(doc.Expenses))
	for _, e := range doc.Expenses {
		expenses = append(expenses, models.Expense{
			Description: strings.TrimSpace(e.Description),
			Amount:      e.Amount,
			Category:    e.Category,
			Date:        time.Time(e.Date),
		})
	}

	goals := make([]models.Goal, 0, len(doc.Goals))
	for _, g := range doc.Goals {
		goals = append(goals, models.Goal{
			Name:          strings.TrimSpace(g.Name),
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Deadline:      time.Time(g.Deadline),
			Category:      g.Category,
			Archived:      g.Archived,
		})
	}

	return importer.Document{
		Expenses: expenses,
		Goals:    goals,
		CurrentUser: models.UserProfile{
			Balance:       doc.CurrentUser.Balance,
			MonthlyIncome: doc.CurrentUser.MonthlyIncome,
			MonthlyBudget: doc.CurrentUser.MonthlyBudget,
		},
		Timestamp: time.Time(doc.Timestamp),
	}, nil
}
