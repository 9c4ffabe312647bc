// Package storetest provides an in-memory DynamoDB stand-in implementing the
// store.DynamoAPI seam. It understands exactly the expression shapes the
// gateway produces (equality key conditions, AND-joined comparison filters
// and condition clauses, plain and arithmetic SET update expressions,
// attribute_exists/attribute_not_exists conditions), which keeps tests
// hermetic without a local DynamoDB.
package storetest

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type Client struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
}

func NewClient() *Client {
	return &Client{tables: make(map[string]map[string]map[string]types.AttributeValue)}
}

// Seed stores a raw item directly, bypassing the gateway. Tests use it to
// plant legacy or malformed documents.
func (c *Client) Seed(table, id string, item map[string]types.AttributeValue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table(table)[id] = copyItem(item)
}

// Raw returns the stored raw item, or nil.
func (c *Client) Raw(table, id string) map[string]types.AttributeValue {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.table(table)[id]
	if !ok {
		return nil
	}
	return copyItem(item)
}

func (c *Client) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := c.tables[name]
	if !ok {
		t = make(map[string]map[string]types.AttributeValue)
		c.tables[name] = t
	}
	return t
}

func (c *Client) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := c.table(aws.ToString(params.TableName))
	id := stringAttr(params.Item["id"])
	if id == "" {
		return nil, fmt.Errorf("memdynamo: put without id")
	}

	existing, exists := table[id]
	ok, err := evalCondition(aws.ToString(params.ConditionExpression), existing, exists, params.ExpressionAttributeNames, params.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}
	}

	table[id] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (c *Client) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := c.table(aws.ToString(params.TableName))
	item, ok := table[stringAttr(params.Key["id"])]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (c *Client) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keyClause, err := parseClauses(aws.ToString(params.KeyConditionExpression))
	if err != nil {
		return nil, err
	}
	filterClauses, err := parseClauses(aws.ToString(params.FilterExpression))
	if err != nil {
		return nil, err
	}

	var out []map[string]types.AttributeValue
	for _, item := range c.table(aws.ToString(params.TableName)) {
		if !matches(item, keyClause, params.ExpressionAttributeNames, params.ExpressionAttributeValues) {
			continue
		}
		if !matches(item, filterClauses, params.ExpressionAttributeNames, params.ExpressionAttributeValues) {
			continue
		}
		out = append(out, copyItem(item))
	}
	return &dynamodb.QueryOutput{Items: out, Count: int32(len(out))}, nil
}

func (c *Client) UpdateItem(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := c.table(aws.ToString(params.TableName))
	id := stringAttr(params.Key["id"])
	item, exists := table[id]

	ok, err := evalCondition(aws.ToString(params.ConditionExpression), item, exists, params.ExpressionAttributeNames, params.ExpressionAttributeValues)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("condition failed")}
	}
	if !exists {
		item = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
	}

	expr := strings.TrimSpace(aws.ToString(params.UpdateExpression))
	if !strings.HasPrefix(expr, "SET ") {
		return nil, fmt.Errorf("memdynamo: unsupported update expression %q", expr)
	}
	setExpr := strings.TrimPrefix(expr, "SET ")
	if before, removeExpr, found := strings.Cut(setExpr, " REMOVE "); found {
		setExpr = before
		for _, name := range strings.Split(removeExpr, ", ") {
			field, ok := params.ExpressionAttributeNames[name]
			if !ok {
				return nil, fmt.Errorf("memdynamo: unresolved name %q", name)
			}
			delete(item, field)
		}
	}
	for _, assign := range strings.Split(setExpr, ", ") {
		sides := strings.SplitN(assign, " = ", 2)
		if len(sides) != 2 {
			return nil, fmt.Errorf("memdynamo: bad assignment %q", assign)
		}
		field, ok := params.ExpressionAttributeNames[sides[0]]
		if !ok {
			return nil, fmt.Errorf("memdynamo: unresolved name %q", sides[0])
		}
		if operand, delta, found := strings.Cut(sides[1], " + "); found {
			// Arithmetic assignment: #fld = #fld + :delta.
			srcField, ok := params.ExpressionAttributeNames[operand]
			if !ok {
				return nil, fmt.Errorf("memdynamo: unresolved name %q", operand)
			}
			cur, ok := numberAttr(item[srcField])
			if !ok {
				return nil, fmt.Errorf("memdynamo: attribute %q is not a number", srcField)
			}
			d, ok := numberAttr(params.ExpressionAttributeValues[delta])
			if !ok {
				return nil, fmt.Errorf("memdynamo: unresolved value %q", delta)
			}
			item[field] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(cur+d, 'f', -1, 64)}
			continue
		}
		value, ok := params.ExpressionAttributeValues[sides[1]]
		if !ok {
			return nil, fmt.Errorf("memdynamo: unresolved value %q", sides[1])
		}
		item[field] = value
	}
	table[id] = item

	if params.ReturnValues == types.ReturnValueAllNew {
		return &dynamodb.UpdateItemOutput{Attributes: copyItem(item)}, nil
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (c *Client) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.table(aws.ToString(params.TableName)), stringAttr(params.Key["id"]))
	return &dynamodb.DeleteItemOutput{}, nil
}

// evalCondition evaluates a condition expression against one item: AND-joined
// attribute_exists / attribute_not_exists functions and three-token comparison
// clauses, the shapes the gateway emits. A comparison against a missing item
// or attribute fails the condition, as in DynamoDB.
func evalCondition(cond string, item map[string]types.AttributeValue, exists bool, names map[string]string, values map[string]types.AttributeValue) (bool, error) {
	cond = strings.TrimSpace(cond)
	if cond == "" {
		return true, nil
	}
	for _, part := range strings.Split(cond, " AND ") {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "attribute_not_exists("):
			if exists {
				return false, nil
			}
		case strings.HasPrefix(part, "attribute_exists("):
			inner := strings.TrimSuffix(strings.TrimPrefix(part, "attribute_exists("), ")")
			field, ok := names[inner]
			if !ok {
				return false, fmt.Errorf("memdynamo: unresolved name %q", inner)
			}
			if !exists {
				return false, nil
			}
			if _, ok := item[field]; !ok {
				return false, nil
			}
		default:
			clauses, err := parseClauses(part)
			if err != nil {
				return false, err
			}
			if !exists || !matches(item, clauses, names, values) {
				return false, nil
			}
		}
	}
	return true, nil
}

func numberAttr(av types.AttributeValue) (float64, bool) {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(n.Value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

type clause struct {
	name  string
	op    string
	value string
}

func parseClauses(expr string) ([]clause, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	var out []clause
	for _, part := range strings.Split(expr, " AND ") {
		fields := strings.Fields(part)
		if len(fields) != 3 {
			return nil, fmt.Errorf("memdynamo: unsupported clause %q", part)
		}
		out = append(out, clause{name: fields[0], op: fields[1], value: fields[2]})
	}
	return out, nil
}

func matches(item map[string]types.AttributeValue, clauses []clause, names map[string]string, values map[string]types.AttributeValue) bool {
	for _, cl := range clauses {
		field, ok := names[cl.name]
		if !ok {
			return false
		}
		want, ok := values[cl.value]
		if !ok {
			return false
		}
		got, ok := item[field]
		if !ok {
			return false
		}
		cmp, comparable := compareAttr(got, want)
		if !comparable {
			return false
		}
		switch cl.op {
		case "=":
			if cmp != 0 {
				return false
			}
		case "<>":
			if cmp == 0 {
				return false
			}
		case "<":
			if cmp >= 0 {
				return false
			}
		case "<=":
			if cmp > 0 {
				return false
			}
		case ">":
			if cmp <= 0 {
				return false
			}
		case ">=":
			if cmp < 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func compareAttr(a, b types.AttributeValue) (int, bool) {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		if !ok {
			return 0, false
		}
		return strings.Compare(av.Value, bv.Value), true
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		if !ok {
			return 0, false
		}
		af, aerr := strconv.ParseFloat(av.Value, 64)
		bf, berr := strconv.ParseFloat(bv.Value, 64)
		if aerr != nil || berr != nil {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		if !ok {
			return 0, false
		}
		switch {
		case av.Value == bv.Value:
			return 0, true
		case !av.Value:
			return -1, true
		default:
			return 1, true
		}
	}
	return 0, false
}

func stringAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
