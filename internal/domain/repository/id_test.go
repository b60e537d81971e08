package repository

import (
	"errors"
	"health_data_api/internal/common"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIDRoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()

	s := IDToString(oid)
	assert.Len(t, s, 24)

	parsed, err := ParseID(s)
	require.NoError(t, err)
	assert.Equal(t, oid, parsed)
}

func TestParseID_Invalid(t *testing.T) {
	for _, id := range []string{"", "not-an-id", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseID(id)
		assert.True(t, errors.Is(err, common.ErrInvalidID), "id %q", id)
	}
}
