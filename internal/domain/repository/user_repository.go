package repository

import (
	"context"
	"errors"
	"fmt"
	"health_data_api/internal/common"
	"health_data_api/internal/domain/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const UsersCollection = "users"

type UserRepository interface {
	// Create stores the user and returns the identifier assigned by the store.
	Create(ctx context.Context, user model.User) (string, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type credentialsDocument struct {
	Username string `bson:"username"`
	Password string `bson:"password"`
}

type userDocument struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Name        string              `bson:"name"`
	Role        string              `bson:"role"`
	State       string              `bson:"state"`
	DOB         time.Time           `bson:"dob"`
	Credentials credentialsDocument `bson:"credentials"`
}

func newUserDocument(u model.User) userDocument {
	return userDocument{
		Name:  u.Name,
		Role:  u.Role,
		State: u.State,
		DOB:   u.DOB,
		Credentials: credentialsDocument{
			Username: u.Credentials.Username,
			Password: u.Credentials.Password,
		},
	}
}

func (d userDocument) toModel() *model.User {
	return &model.User{
		UserID: IDToString(d.ID),
		Name:   d.Name,
		Role:   d.Role,
		State:  d.State,
		DOB:    d.DOB,
		Credentials: model.Credentials{
			Username: d.Credentials.Username,
			Password: d.Credentials.Password,
		},
	}
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(UsersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user model.User) (string, error) {
	res, err := r.coll.InsertOne(ctx, newUserDocument(user))
	if err != nil {
		return "", common.NewStoreError(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", common.NewStoreError(fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}
	return IDToString(oid), nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var doc userDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, common.NewStoreError(err)
	}
	return doc.toModel(), nil
}
