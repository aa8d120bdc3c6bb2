package vsapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/virtstack-io/vsapi-client/pkg/vsapi"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *vsapi.QueryParams
		expected map[string]string
	}{
		{
			name:     "empty params",
			params:   vsapi.NewQueryParams(),
			expected: map[string]string{},
		},
		{
			name:   "pagination",
			params: vsapi.NewQueryParams().WithPage(2).WithPerPage(25),
			expected: map[string]string{
				"page":     "2",
				"per_page": "25",
			},
		},
		{
			name:   "ordering descending",
			params: vsapi.NewQueryParams().WithOrderBy("-created_at"),
			expected: map[string]string{
				"order_by": "-created_at",
			},
		},
		{
			name:   "names joined with commas",
			params: vsapi.NewQueryParams().WithNames("web-1", "web-2"),
			expected: map[string]string{
				"names": "web-1,web-2",
			},
		},
		{
			name:   "resource-specific filter",
			params: vsapi.NewQueryParams().WithFilter("node", "compute-01").WithFilter("node", "compute-02"),
			expected: map[string]string{
				"node": "compute-01,compute-02",
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			values := testCase.params.ToValues()
			assert.Len(t, values, len(testCase.expected))

			for key, expected := range testCase.expected {
				assert.Equal(t, expected, values.Get(key))
			}
		})
	}
}

func TestQueryParams_BuildersChain(t *testing.T) {
	t.Parallel()

	params := vsapi.NewQueryParams().
		WithPage(1).
		WithPerPage(50).
		WithOrderBy("name").
		WithNames("db-1").
		WithFilter("group", "admins")

	values := params.ToValues()
	assert.Equal(t, "1", values.Get("page"))
	assert.Equal(t, "50", values.Get("per_page"))
	assert.Equal(t, "name", values.Get("order_by"))
	assert.Equal(t, "db-1", values.Get("names"))
	assert.Equal(t, "admins", values.Get("group"))
}
