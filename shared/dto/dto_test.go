package dto_test

import (
	"testing"

	"infopage/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expected     string
		expectedArgs map[string]any
	}{
		{
			name:         "equal",
			filter:       dto.Filter{Field: "room", Value: 3, Operator: dto.FilterOperatorEq},
			expected:     "room = :room",
			expectedArgs: map[string]any{"room": 3},
		},
		{
			name:         "table qualified with arg name",
			filter:       dto.Filter{ArgName: "now", Table: "events", Field: "begins", Value: "x", Operator: dto.FilterOperatorGreaterEq},
			expected:     "events.begins >= :now",
			expectedArgs: map[string]any{"now": "x"},
		},
		{
			name:         "less or equal",
			filter:       dto.Filter{Field: "begins", Value: 1, Operator: dto.FilterOperatorLessEq},
			expected:     "begins <= :begins",
			expectedArgs: map[string]any{"begins": 1},
		},
		{
			name:         "is not null",
			filter:       dto.Filter{Table: "slides", Field: "sequence_no", Operator: dto.FilterIsNotNull},
			expected:     "slides.sequence_no IS NOT NULL",
			expectedArgs: map[string]any{},
		},
		{
			name:         "unknown operator",
			filter:       dto.Filter{Field: "room", Operator: "between"},
			expected:     "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expected, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		group        dto.FilterGroup
		expected     string
		expectedArgs map[string]any
	}{
		{
			name: "joined with and by default",
			group: dto.FilterGroup{
				Filters: []dto.Filter{
					{Table: "events", Field: "room", Value: 1, Operator: dto.FilterOperatorEq},
					{ArgName: "from", Table: "events", Field: "begins", Value: 5, Operator: dto.FilterOperatorGreaterEq},
				},
			},
			expected:     "(events.room = :room AND events.begins >= :from)",
			expectedArgs: map[string]any{"room": 1, "from": 5},
		},
		{
			name: "unknown operator is left out",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []dto.Filter{
					{Field: "room", Value: 1, Operator: "between"},
					{Field: "ends", Operator: dto.FilterIsNotNull},
				},
			},
			expected:     "(ends IS NOT NULL)",
			expectedArgs: map[string]any{},
		},
		{
			name:         "empty",
			group:        dto.FilterGroup{},
			expected:     "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.expected, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}
