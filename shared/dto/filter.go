package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
)

const FilterGroupOperatorAnd = "AND"

// Filter is one named-parameter condition. ArgName defaults to Field and must
// be unique within a group.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq less_eq greater_eq is_not_null"`
	Table    string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = f.Table + "." + f.Field
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	var comparison string

	switch f.Operator {
	case FilterOperatorEq:
		comparison = "="
	case FilterOperatorLessEq:
		comparison = "<="
	case FilterOperatorGreaterEq:
		comparison = ">="
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	default:
		return "", args
	}

	args[argName] = f.Value

	return fmt.Sprintf("%s %s :%s", column, comparison, argName), args
}

// FilterGroup joins its filters with Operator, AND when empty.
type FilterGroup struct {
	Filters  []Filter
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		where, arg := filter.GetWhereClause()
		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)
		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+operator+" ")), args
}
