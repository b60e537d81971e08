package repository

import (
	"fmt"
	"health_data_api/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDToString converts a store identifier to its canonical string form. All
// identifiers leaving this package go through it.
func IDToString(id primitive.ObjectID) string {
	return id.Hex()
}

// ParseID is the inverse of IDToString. Malformed input yields
// common.ErrInvalidID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%q: %w", id, common.ErrInvalidID)
	}
	return oid, nil
}
