package repository

import (
	"context"
	"errors"
	"health_data_api/internal/common"
	"health_data_api/internal/domain/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryUserRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryUserRepository(NewMemoryStore())
	ctx := context.Background()

	user := model.User{
		Name:        "Ada",
		Role:        model.RoleCustomer,
		State:       "CA",
		DOB:         time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Credentials: model.Credentials{Username: "ada", Password: "hash"},
	}
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	_, err = ParseID(id)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.UserID)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "hash", got.Credentials.Password)
}

func TestMemoryUserRepository_DuplicateUsernamesAccepted(t *testing.T) {
	repo := NewMemoryUserRepository(NewMemoryStore())
	ctx := context.Background()
	user := model.User{Name: "A", Role: model.RoleProvider, Credentials: model.Credentials{Username: "same"}}

	first, err := repo.Create(ctx, user)
	require.NoError(t, err)
	second, err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestMemoryUserRepository_FindErrors(t *testing.T) {
	repo := NewMemoryUserRepository(NewMemoryStore())
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "not-an-id")
	assert.True(t, errors.Is(err, common.ErrInvalidID))
	assert.False(t, errors.Is(err, common.ErrNotFound))

	_, err = repo.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMemoryHealthDataRepository_CreateIgnoresCallerID(t *testing.T) {
	repo := NewMemoryHealthDataRepository(NewMemoryStore())
	ctx := context.Background()

	id, err := repo.Create(ctx, model.HealthData{ID: "caller-chosen", UserID: "u1", Weight: 70.5})
	require.NoError(t, err)
	assert.NotEqual(t, "caller-chosen", id)

	records, err := repo.ListByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
}

func TestMemoryHealthDataRepository_ListEmpty(t *testing.T) {
	repo := NewMemoryHealthDataRepository(NewMemoryStore())

	records, err := repo.ListByUserID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestMemoryHealthDataRepository_ListCapped(t *testing.T) {
	repo := NewMemoryHealthDataRepository(NewMemoryStore())
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		_, err := repo.Create(ctx, model.HealthData{UserID: "u1", Weight: float64(i + 1)})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, model.HealthData{UserID: "u2", Weight: 1})
	require.NoError(t, err)

	records, err := repo.ListByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, records, MaxHealthDataResults)
	assert.Equal(t, 1.0, records[0].Weight) // insertion order
	for _, r := range records {
		assert.Equal(t, "u1", r.UserID)
	}
}
