package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/studentfinance/backend/internal/controllers/v1"
	"github.com/studentfinance/backend/internal/models"
	"github.com/studentfinance/backend/test"
)

// TestGoalsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestGoalsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestGoal(t, v1.GoalEditable{Name: "Laptop"}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/goals", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.GoalListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestGoalsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestGoalsOptions() {
	tests := []struct {
		name   string
		id     string // path at the goals endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Goal with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Goal exists", createTestGoal(suite.T(), v1.GoalEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/goals", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsOptionsBalance() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Goal with this ID", uuid.New().String(), http.StatusNotFound},
		{"Goal exists", goal.Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/goals/%s/balance", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, POST", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsCreate() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		Name:          "New Laptop",
		TargetAmount:  decimal.NewFromFloat(50000),
		CurrentAmount: decimal.NewFromFloat(15000),
		Category:      "education",
	})

	assert.Equal(suite.T(), "New Laptop", goal.Data.Name)
	assert.True(suite.T(), goal.Data.CurrentAmount.Equal(decimal.NewFromFloat(15000)))
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/goals/%s", goal.Data.ID), goal.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/goals/%s/balance", goal.Data.ID), goal.Data.Links.Balance)
}

func (suite *TestSuiteStandard) TestGoalsCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                         // expected HTTP status
		testFunc func(t *testing.T, g v1.GoalCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "name": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, g v1.GoalCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field GoalEditable.name of type string", *g.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, g v1.GoalCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *g.Error)
			},
		},
		{
			"Non-positive target",
			`[{ "name": "Laptop", "targetAmount": 0 }]`,
			http.StatusBadRequest,
			func(t *testing.T, g v1.GoalCreateResponse) {
				assert.Equal(t, "goal target amounts must be larger than zero", *g.Data[0].Error)
			},
		},
		{
			"Negative saved amount",
			`[{ "name": "Laptop", "targetAmount": 100, "currentAmount": -5 }]`,
			http.StatusBadRequest,
			func(t *testing.T, g v1.GoalCreateResponse) {
				assert.Equal(t, "the saved amount of a goal cannot be negative", *g.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var g v1.GoalCreateResponse
			test.DecodeResponse(t, &r, &g)

			if tt.testFunc != nil {
				tt.testFunc(t, g)
			}
		})
	}
}

func mustParseTime(t *testing.T, value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	require.Nil(t, err)

	return parsed
}

func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	_ = createTestGoal(suite.T(), v1.GoalEditable{
		Name:         "Emergency fund",
		Category:     "emergency",
		TargetAmount: decimal.NewFromFloat(5000),
		Deadline:     mustParseTime(suite.T(), "2024-06-01T00:00:00Z"),
	})

	_ = createTestGoal(suite.T(), v1.GoalEditable{
		Name:         "Goa trip",
		Category:     "travel",
		TargetAmount: decimal.NewFromFloat(15000),
		Deadline:     mustParseTime(suite.T(), "2025-01-01T00:00:00Z"),
		Archived:     true,
	})

	_ = createTestGoal(suite.T(), v1.GoalEditable{
		Name:         "New phone",
		Category:     "shopping",
		TargetAmount: decimal.NewFromFloat(15000),
		Deadline:     mustParseTime(suite.T(), "2025-03-01T00:00:00Z"),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name", "name=fund", 1},
		{"Empty name", "name=", 0},
		{"Category", "category=travel", 1},
		{"Search name", "search=goa", 1},
		{"Search category", "search=emergency", 1},
		{"Not archived", "archived=false", 2},
		{"Archived", "archived=true", 1},
		{"Deadline before", "deadlineBefore=2024-12-31T00:00:00Z", 1},
		{"Deadline after", "deadlineAfter=2024-12-31T00:00:00Z", 2},
		{"Target amount", "targetAmount=15000", 2},
		{"Target amount less or equal", "targetAmountLessOrEqual=5000", 1},
		{"Target amount more or equal", "targetAmountMoreOrEqual=10000", 2},
		{"Offset 2", "offset=2", 1},
		{"Limit 1", "limit=1", 1},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.GoalListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetInvalidDeadline() {
	for _, query := range []string{"deadlineBefore=yesterday", "deadlineAfter=tomorrow"} {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", query), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGoalsBalance() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromFloat(5000),
		CurrentAmount: decimal.NewFromFloat(100),
	})

	r := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Balance, map[string]any{"amount": 500})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.CurrentAmount.Equal(decimal.NewFromFloat(600)), "CurrentAmount is %s", response.Data.CurrentAmount)

	// The deposit is persisted
	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.CurrentAmount.Equal(decimal.NewFromFloat(600)))
}

func (suite *TestSuiteStandard) TestGoalsBalanceFails() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		id     string
		body   any
		status int
		err    string
	}{
		{"Zero deposit", goal.Data.ID.String(), map[string]any{"amount": 0}, http.StatusBadRequest, "deposits must be larger than zero"},
		{"Negative deposit", goal.Data.ID.String(), map[string]any{"amount": -10}, http.StatusBadRequest, "deposits must be larger than zero"},
		{"No body", goal.Data.ID.String(), "", http.StatusBadRequest, "the request body must not be empty"},
		{"Non-existing Goal", uuid.New().String(), map[string]any{"amount": 10}, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/goals/%s/balance", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				var response v1.GoalResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.err, *response.Error)
			}
		})
	}
}

// Verify that updating goals works as desired
func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "Name of the goal"})

	tests := []struct {
		name     string
		goal     map[string]any                        // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, g v1.GoalResponse) // tests to perform against the updated goal resource
	}{
		{
			"Name, Category",
			map[string]any{
				"name":     "Another name",
				"category": "travel",
			},
			func(t *testing.T, g v1.GoalResponse) {
				assert.Equal(t, "Another name", g.Data.Name)
				assert.Equal(t, "travel", g.Data.Category)
			},
		},
		{
			"Archived",
			map[string]any{
				"archived": true,
			},
			func(t *testing.T, g v1.GoalResponse) {
				assert.True(t, g.Data.Archived)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, goal.Data.Links.Self, tt.goal)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var g v1.GoalResponse
			test.DecodeResponse(t, &r, &g)

			if tt.testFunc != nil {
				tt.testFunc(t, g)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Goal", uuid.New().String(), `{"name": "Some"}`, http.StatusNotFound},
		{"Non-positive target", "", `{"targetAmount": -1}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				goal := createTestGoal(suite.T(), v1.GoalEditable{
					Name: "Auto-created for test",
				})

				tt.id = goal.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestGoalsDelete verifies all cases for goal deletions.
func (suite *TestSuiteStandard) TestGoalsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Goal", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				g := createTestGoal(t, v1.GoalEditable{})
				tt.id = g.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
