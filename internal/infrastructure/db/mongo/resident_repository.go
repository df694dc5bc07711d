package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

const collectionResidents = "residents"

type ResidentRepository struct {
	col *mongo.Collection
}

func NewResidentRepository(db *mongo.Database) *ResidentRepository {
	return &ResidentRepository{col: db.Collection(collectionResidents)}
}

func (r *ResidentRepository) List(ctx context.Context) ([]*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	residents := []*domain.Resident{}
	if err := cur.All(ctx, &residents); err != nil {
		return nil, err
	}
	return residents, nil
}

func (r *ResidentRepository) FindByID(ctx context.Context, id string) (*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var res domain.Resident
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResidentNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *ResidentRepository) FindByName(ctx context.Context, name string) (*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var res domain.Resident
	err := r.col.FindOne(ctx, bson.M{"name": caseInsensitiveExact(name)}).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResidentNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *ResidentRepository) Insert(ctx context.Context, resident *domain.Resident) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, resident)
	return err
}

func (r *ResidentRepository) SetBlocked(ctx context.Context, id string, blocked bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"blocked": blocked}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrResidentNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes for the residents collection.
func (r *ResidentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
