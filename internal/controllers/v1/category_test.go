package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/studentfinance/backend/internal/controllers/v1"
	"github.com/studentfinance/backend/test"
)

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	for _, path := range []string{"/v1/categories", "/v1/categories/suggest"} {
		r := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com%s", path), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
	}
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 6, "Category list has wrong length")

	assert.Equal(suite.T(), "food", response.Data[0].Name)
	assert.Contains(suite.T(), response.Data[0].Keywords, "lunch")

	// Exactly one category is the default
	var defaults []string
	for _, c := range response.Data {
		if c.Default {
			defaults = append(defaults, c.Name)
		}
	}
	assert.Equal(suite.T(), []string{"shopping"}, defaults)
}

func (suite *TestSuiteStandard) TestCategoriesSuggest() {
	tests := []struct {
		description string
		category    string
	}{
		{"Lunch at the cafe", "food"},
		{"uber to the airport", "transport"},
		{"netflix subscription", "entertainment"},
		{"exam fee", "education"},
		{"new shoes from amazon", "shopping"},
		{"electricity bill", "utilities"},
		{"qwertzuiop", "shopping"},
		{"", "shopping"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.description, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/suggest?description=%s", url.QueryEscape(tt.description)), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategorySuggestionResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.description, response.Data.Description)
			assert.Equal(t, tt.category, response.Data.Category)
		})
	}
}

// TestCategoriesSuggestFails verifies that a missing description query
// parameter is an error while an empty one is not.
func (suite *TestSuiteStandard) TestCategoriesSuggestFails() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/suggest", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategorySuggestionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the description query parameter must be set", *response.Error)
}
