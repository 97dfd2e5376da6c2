package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/studentfinance/backend/internal/controllers/v1"
	"github.com/studentfinance/backend/internal/models"
	"github.com/studentfinance/backend/test"
)

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

// TestExportGet verifies that the export contains all data.
func (suite *TestSuiteStandard) TestExportGet() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Lunch at the cafe", Amount: decimal.NewFromFloat(120)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Bus ticket", Amount: decimal.NewFromFloat(30)})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Emergency fund", TargetAmount: decimal.NewFromFloat(5000)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var document v1.ExportDocument
	test.DecodeResponse(suite.T(), &r, &document)

	var expenses []models.Expense
	require.Nil(suite.T(), json.Unmarshal(document.Expenses, &expenses))
	assert.Len(suite.T(), expenses, 2)

	var goals []models.Goal
	require.Nil(suite.T(), json.Unmarshal(document.Goals, &goals))
	assert.Len(suite.T(), goals, 1)

	// The profile is created by the export when it does not exist yet
	var profile models.UserProfile
	require.Nil(suite.T(), json.Unmarshal(document.CurrentUser, &profile))
	assert.True(suite.T(), profile.Balance.Equal(decimal.NewFromInt(12450)))

	assert.WithinDuration(suite.T(), time.Now(), document.Timestamp, time.Minute)
}

// TestExportImportRoundTrip verifies that an exported document can be
// imported again.
func (suite *TestSuiteStandard) TestExportImportRoundTrip() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Lunch at the cafe", Amount: decimal.NewFromFloat(120)})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Emergency fund", TargetAmount: decimal.NewFromFloat(5000)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	body, headers := test.FormFile(suite.T(), "export.json", bytes.NewReader(r.Body.Bytes()))
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), 1, response.Data.Expenses)
	assert.Equal(suite.T(), 1, response.Data.Goals)

	// Imports add to the existing data
	var expenses v1.ExpenseListResponse
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &expenses)
	assert.Len(suite.T(), expenses.Data, 2)

	var goals v1.GoalListResponse
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &goals)
	assert.Len(suite.T(), goals.Data, 2)
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
