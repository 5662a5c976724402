package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq       = "eq"
	FilterGroupOperatorAnd = "AND"
)

// Filter renders one named-parameter predicate for sqlx.
type Filter struct {
	Field    string
	Value    any
	Operator string
}

func (f Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	switch f.Operator {
	case FilterOperatorEq:
		args[f.Field] = f.Value

		return fmt.Sprintf("%s = :%s", f.Field, f.Field), args
	default:
		return "", args
	}
}

// FilterGroup joins filters with a single operator.
type FilterGroup struct {
	Filters  []Filter
	Operator string
}

func (f FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

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

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+operator+" ")), args
}

// Eq is shorthand for an equality filter on field.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value, Operator: FilterOperatorEq}
}

// And groups the given filters with AND.
func And(filters ...Filter) FilterGroup {
	return FilterGroup{Filters: filters, Operator: FilterGroupOperatorAnd}
}
