package entities

import "time"

// Base carries the fields shared by every stored document.
//
// Storage model (DynamoDB):
//   - PK: id (string, assigned by the store layer on creation)
//   - GSI1 (userId-index): userId
//
// Every document is exclusively owned by the userId that created it; list and
// query operations are always scoped to one owner. createdAt is written once;
// updatedAt is rewritten on every update.
type Base struct {
	ID        string    `json:"id" dynamodbav:"id" validate:"required"`
	UserID    string    `json:"userId" dynamodbav:"userId" validate:"required"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}
