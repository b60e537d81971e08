package repository

import (
	"context"
	"health_data_api/internal/common"
	"health_data_api/internal/domain/model"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps both collections in process. Identifiers are ObjectIDs
// so they look exactly like the ones MongoDB hands out.
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[primitive.ObjectID]model.User
	healthData []model.HealthData // insertion order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[primitive.ObjectID]model.User)}
}

type memoryUserRepository struct {
	store *MemoryStore
}

func NewMemoryUserRepository(store *MemoryStore) UserRepository {
	return &memoryUserRepository{store: store}
}

func (r *memoryUserRepository) Create(_ context.Context, user model.User) (string, error) {
	oid := primitive.NewObjectID()
	user.UserID = IDToString(oid)

	r.store.mu.Lock()
	r.store.users[oid] = user
	r.store.mu.Unlock()
	return user.UserID, nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	user, ok := r.store.users[oid]
	r.store.mu.RUnlock()
	if !ok {
		return nil, common.ErrNotFound
	}
	return &user, nil
}

type memoryHealthDataRepository struct {
	store *MemoryStore
}

func NewMemoryHealthDataRepository(store *MemoryStore) HealthDataRepository {
	return &memoryHealthDataRepository{store: store}
}

func (r *memoryHealthDataRepository) Create(_ context.Context, record model.HealthData) (string, error) {
	record.ID = IDToString(primitive.NewObjectID())

	r.store.mu.Lock()
	r.store.healthData = append(r.store.healthData, record)
	r.store.mu.Unlock()
	return record.ID, nil
}

func (r *memoryHealthDataRepository) ListByUserID(_ context.Context, userID string) ([]model.HealthData, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]model.HealthData, 0)
	for _, h := range r.store.healthData {
		if h.UserID != userID {
			continue
		}
		records = append(records, h)
		if len(records) == MaxHealthDataResults {
			break
		}
	}
	return records, nil
}
