package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"atelie_gestor/internal/domain/schema"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// Collection is the generic gateway for one entity type. E is the full stored
// shape (embedding entities.Base), C the create-input shape, U the all-optional
// update-input shape.
//
// Every read path re-validates the full shape; a document that fails it is
// treated as corruption and surfaced, never silently dropped.
type Collection[E any, C any, U any] struct {
	store *Store
	name  string
	table string

	normalizeCreate func(*C)
	normalizeUpdate func(*U)
}

func NewCollection[E any, C any, U any](s *Store, name string) *Collection[E, C, U] {
	return &Collection[E, C, U]{store: s, name: name, table: s.tableFor(name)}
}

// WithNormalizeCreate installs an entity-specific normalize-before-persist
// hook for the create path (e.g. defaulting type-dependent fields). The hook
// runs before validation.
func (c *Collection[E, C, U]) WithNormalizeCreate(fn func(*C)) *Collection[E, C, U] {
	c.normalizeCreate = fn
	return c
}

// WithNormalizeUpdate installs the equivalent hook for the update path.
func (c *Collection[E, C, U]) WithNormalizeUpdate(fn func(*U)) *Collection[E, C, U] {
	c.normalizeUpdate = fn
	return c
}

// Name returns the collection name.
func (c *Collection[E, C, U]) Name() string { return c.name }

// Create validates input against the create shape, stamps the base fields and
// persists a new document. The returned entity is re-assembled in memory and
// validated against the full shape before being handed back.
func (c *Collection[E, C, U]) Create(ctx context.Context, ownerID string, input C) (E, error) {
	var zero E

	if strings.TrimSpace(ownerID) == "" {
		return zero, wrapStore("create", c.name, errors.New("empty owner id"))
	}
	if c.normalizeCreate != nil {
		c.normalizeCreate(&input)
	}
	if err := schema.Validate(input); err != nil {
		return zero, err
	}

	item, err := marshalItem(input)
	if err != nil {
		return zero, wrapStore("create", c.name, err)
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	item[fieldID] = &types.AttributeValueMemberS{Value: id}
	item[fieldUserID] = &types.AttributeValueMemberS{Value: ownerID}
	item[fieldCreatedAt] = timeAttr(now)
	item[fieldUpdatedAt] = timeAttr(now)

	_, err = c.store.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(c.table),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": fieldID},
	})
	if err != nil {
		return zero, wrapStore("create", c.name, err)
	}

	var out E
	if err := unmarshalItem(item, &out); err != nil {
		return zero, wrapStore("create", c.name, err)
	}
	// Defense in depth: a full-shape failure here means the create schema and
	// the full schema disagree, and should surface immediately.
	if err := schema.Validate(out); err != nil {
		return zero, fmt.Errorf("full-shape check after create on %s/%s: %w", c.name, id, err)
	}

	c.store.log.Debug().Str("collection", c.name).Str("id", id).Str("owner", ownerID).Msg("document created")
	return out, nil
}

// GetByID reads one document. Absence is a nil return, not an error. A stored
// document that fails full-shape validation signals corruption and fails
// loudly, distinguishable from the not-found case.
func (c *Collection[E, C, U]) GetByID(ctx context.Context, id string) (*E, error) {
	out, err := c.store.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.table),
		Key: map[string]types.AttributeValue{
			fieldID: &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, wrapStore("get", c.name, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	e, err := c.decode(out.Item, id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListByOwner returns every document owned by ownerID, optionally ordered by
// one field. If any document in the result set fails validation the whole
// call fails: a partial list would hide data loss, and callers that can
// tolerate missing data wrap reads in a fail-soft fallback instead.
func (c *Collection[E, C, U]) ListByOwner(ctx context.Context, ownerID, orderBy string, desc bool) ([]E, error) {
	return c.QueryByOwner(ctx, ownerID, Query{OrderBy: orderBy, Desc: desc})
}

// QueryByOwner generalizes ListByOwner for arbitrary owner-scoped constraint
// sets. Same decode, validation and fail-fast contract.
func (c *Collection[E, C, U]) QueryByOwner(ctx context.Context, ownerID string, q Query) ([]E, error) {
	filterExpr, filterNames, filterValues, err := filterExpression(q.Filters)
	if err != nil {
		return nil, wrapStore("query", c.name, err)
	}

	names := map[string]string{"#userId": fieldUserID}
	values := map[string]types.AttributeValue{
		":uid": &types.AttributeValueMemberS{Value: ownerID},
	}
	for k, v := range filterNames {
		names[k] = v
	}
	for k, v := range filterValues {
		values[k] = v
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(c.table),
		IndexName:                 aws.String(ownerIndex),
		KeyConditionExpression:    aws.String("#userId = :uid"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	if filterExpr != "" {
		in.FilterExpression = aws.String(filterExpr)
	}

	out, err := c.store.api.Query(ctx, in)
	if err != nil {
		return nil, wrapStore("query", c.name, err)
	}

	items := out.Items
	if q.OrderBy != "" {
		sortItems(items, q.OrderBy, q.Desc)
	}
	if q.Limit > 0 && len(items) > q.Limit {
		items = items[:q.Limit]
	}

	results := make([]E, 0, len(items))
	for _, raw := range items {
		e, err := c.decode(raw, attrString(raw[fieldID]))
		if err != nil {
			return nil, err
		}
		results = append(results, *e)
	}
	return results, nil
}

// Update validates the partial input and applies a merge write: fields absent
// from the input are untouched. An empty validated input is a legal no-op and
// short-circuits to a plain read, without bumping updatedAt.
func (c *Collection[E, C, U]) Update(ctx context.Context, id string, input U) (E, error) {
	var zero E

	if c.normalizeUpdate != nil {
		c.normalizeUpdate(&input)
	}
	if err := schema.Validate(input); err != nil {
		return zero, err
	}

	item, err := marshalItem(input)
	if err != nil {
		return zero, wrapStore("update", c.name, err)
	}

	if len(item) == 0 {
		current, err := c.GetByID(ctx, id)
		if err != nil {
			return zero, err
		}
		if current == nil {
			return zero, wrapStore("update", c.name, fmt.Errorf("%w: %s", ErrNotFound, id))
		}
		return *current, nil
	}

	item[fieldUpdatedAt] = timeAttr(time.Now().UTC())

	keys := make([]string, 0, len(item))
	for k := range item {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := map[string]string{"#id": fieldID}
	values := make(map[string]types.AttributeValue, len(item))
	parts := make([]string, 0, len(item))
	for i, k := range keys {
		n := fmt.Sprintf("#u%d", i)
		v := fmt.Sprintf(":u%d", i)
		names[n] = k
		values[v] = item[k]
		parts = append(parts, n+" = "+v)
	}

	out, err := c.store.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(c.table),
		Key: map[string]types.AttributeValue{
			fieldID: &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(parts, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, wrapStore("update", c.name, fmt.Errorf("%w: %s", ErrNotFoundAfterUpdate, id))
		}
		return zero, wrapStore("update", c.name, err)
	}
	if len(out.Attributes) == 0 {
		return zero, wrapStore("update", c.name, fmt.Errorf("%w: %s", ErrNotFoundAfterUpdate, id))
	}

	e, err := c.decode(out.Attributes, id)
	if err != nil {
		return zero, err
	}

	c.store.log.Debug().Str("collection", c.name).Str("id", id).Msg("document updated")
	return *e, nil
}

// RemoveFields deletes the named attributes from a document and stamps a
// fresh updatedAt, returning the re-validated result. Services use it to null
// type-dependent fields when an entity changes kind; merge writes alone
// cannot remove an attribute.
func (c *Collection[E, C, U]) RemoveFields(ctx context.Context, id string, fields ...string) (E, error) {
	var zero E

	if len(fields) == 0 {
		return zero, wrapStore("remove", c.name, errors.New("no fields given"))
	}

	names := map[string]string{"#id": fieldID, "#ua": fieldUpdatedAt}
	parts := make([]string, 0, len(fields))
	for i, f := range fields {
		n := fmt.Sprintf("#r%d", i)
		names[n] = f
		parts = append(parts, n)
	}

	out, err := c.store.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(c.table),
		Key: map[string]types.AttributeValue{
			fieldID: &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		UpdateExpression:         aws.String("SET #ua = :ua REMOVE " + strings.Join(parts, ", ")),
		ExpressionAttributeNames: names,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ua": timeAttr(time.Now().UTC()),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, wrapStore("remove", c.name, fmt.Errorf("%w: %s", ErrNotFoundAfterUpdate, id))
		}
		return zero, wrapStore("remove", c.name, err)
	}

	e, err := c.decode(out.Attributes, id)
	if err != nil {
		return zero, err
	}
	return *e, nil
}

// AddToField atomically adds delta to a numeric attribute and stamps a fresh
// updatedAt. The arithmetic runs server-side in a single conditional write,
// guarded so the result never drops below zero: concurrent adjustments
// serialize in the store instead of racing through read-modify-write. A
// failed guard surfaces as ErrConditionFailed, which also covers the document
// or the attribute being gone.
func (c *Collection[E, C, U]) AddToField(ctx context.Context, id, field string, delta float64) (E, error) {
	var zero E

	out, err := c.store.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(c.table),
		Key: map[string]types.AttributeValue{
			fieldID: &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #fld >= :floor"),
		UpdateExpression:    aws.String("SET #ua = :ua, #fld = #fld + :delta"),
		ExpressionAttributeNames: map[string]string{
			"#id":  fieldID,
			"#ua":  fieldUpdatedAt,
			"#fld": field,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ua":    timeAttr(time.Now().UTC()),
			":delta": numAttr(delta),
			":floor": numAttr(-delta),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, wrapStore("add", c.name, fmt.Errorf("%w: %s.%s", ErrConditionFailed, id, field))
		}
		return zero, wrapStore("add", c.name, err)
	}

	e, err := c.decode(out.Attributes, id)
	if err != nil {
		return zero, err
	}

	c.store.log.Debug().Str("collection", c.name).Str("id", id).Str("field", field).Float64("delta", delta).Msg("document field adjusted")
	return *e, nil
}

// Delete removes a document unconditionally. Deleting a nonexistent id is not
// an error at this layer, and nothing cascades: cross-entity cleanup is the
// caller's explicit responsibility.
func (c *Collection[E, C, U]) Delete(ctx context.Context, id string) error {
	_, err := c.store.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(c.table),
		Key: map[string]types.AttributeValue{
			fieldID: &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return wrapStore("delete", c.name, err)
	}
	c.store.log.Debug().Str("collection", c.name).Str("id", id).Msg("document deleted")
	return nil
}

// decode normalizes timestamps, unmarshals and validates one raw document.
func (c *Collection[E, C, U]) decode(item map[string]types.AttributeValue, id string) (*E, error) {
	c.store.ensureBaseTimestamps(item, c.name, id)

	var e E
	if err := unmarshalItem(item, &e); err != nil {
		return nil, wrapStore("decode", c.name, err)
	}
	if err := schema.Validate(e); err != nil {
		return nil, fmt.Errorf("corrupt document %s/%s: %w", c.name, id, err)
	}
	return &e, nil
}

func attrString(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func numAttr(f float64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatFloat(f, 'f', -1, 64)}
}
