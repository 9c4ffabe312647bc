package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Op is a filter comparison operator.
type Op string

const (
	OpEq  Op = "="
	OpNe  Op = "<>"
	OpLt  Op = "<"
	OpLte Op = "<="
	OpGt  Op = ">"
	OpGte Op = ">="
)

// Filter constrains one document field. Time values are encoded the same way
// they are stored, so date-range filters compare correctly.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Query is an owner-scoped constraint set: filters, one order field, a limit.
type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int
}

// filterExpression renders the filters into a DynamoDB filter expression plus
// its attribute name/value maps.
func filterExpression(filters []Filter) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(filters) == 0 {
		return "", nil, nil, nil
	}
	parts := make([]string, 0, len(filters))
	names := make(map[string]string, len(filters))
	values := make(map[string]types.AttributeValue, len(filters))
	for i, f := range filters {
		av, err := attributevalue.MarshalWithOptions(f.Value, encoderOptions)
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshaling filter value for %q: %w", f.Field, err)
		}
		n := fmt.Sprintf("#f%d", i)
		v := fmt.Sprintf(":f%d", i)
		names[n] = f.Field
		values[v] = av
		parts = append(parts, fmt.Sprintf("%s %s %s", n, f.Op, v))
	}
	return strings.Join(parts, " AND "), names, values, nil
}

// sortItems orders raw documents by one attribute. DynamoDB cannot order a
// query by an arbitrary non-key attribute, so ordering happens in memory over
// the already owner-scoped result set.
func sortItems(items []map[string]types.AttributeValue, field string, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		less := lessAttr(items[i][field], items[j][field])
		if desc {
			return lessAttr(items[j][field], items[i][field])
		}
		return less
	})
}

func lessAttr(a, b types.AttributeValue) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		if bv, ok := b.(*types.AttributeValueMemberS); ok {
			return av.Value < bv.Value
		}
	case *types.AttributeValueMemberN:
		if bv, ok := b.(*types.AttributeValueMemberN); ok {
			af, aerr := strconv.ParseFloat(av.Value, 64)
			bf, berr := strconv.ParseFloat(bv.Value, 64)
			if aerr == nil && berr == nil {
				return af < bf
			}
		}
	case *types.AttributeValueMemberBOOL:
		if bv, ok := b.(*types.AttributeValueMemberBOOL); ok {
			return !av.Value && bv.Value
		}
	}
	return false
}
