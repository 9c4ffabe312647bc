// Package store is the single chokepoint through which every entity is
// persisted. It exposes a generic, schema-validated gateway over DynamoDB
// collections; one Collection per entity, all sharing the same contract:
// validate, persist, re-validate on the way back.
package store

import (
	"context"
	"strings"

	"atelie_gestor/pkg/env"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
)

// DynamoAPI is the subset of *dynamodb.Client the gateway needs. The handle is
// injected at construction so tests can substitute an in-memory store.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Base document field names. These are stable wire identifiers; renaming any
// of them is a data migration.
const (
	fieldID        = "id"
	fieldUserID    = "userId"
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
)

// ownerIndex is the GSI every collection table carries (PK: userId).
const ownerIndex = "userId-index"

// Store holds the shared document store handle. It is constructed once at
// startup and shared read-only by every collection.
type Store struct {
	api         DynamoAPI
	log         zerolog.Logger
	tablePrefix string
}

func New(api DynamoAPI, log zerolog.Logger, tablePrefix string) *Store {
	return &Store{api: api, log: log, tablePrefix: tablePrefix}
}

// tableFor resolves a collection's table name. Each collection can be
// redirected via <COLLECTION>_TABLE, mirroring the per-table env overrides
// used in deployment.
func (s *Store) tableFor(collection string) string {
	return env.Get(strings.ToUpper(collection)+"_TABLE", s.tablePrefix+collection)
}
