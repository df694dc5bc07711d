package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

const collectionMachines = "machines"

type MachineRepository struct {
	col *mongo.Collection
}

func NewMachineRepository(db *mongo.Database) *MachineRepository {
	return &MachineRepository{col: db.Collection(collectionMachines)}
}

func (r *MachineRepository) List(ctx context.Context) ([]*domain.Machine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	machines := []*domain.Machine{}
	if err := cur.All(ctx, &machines); err != nil {
		return nil, err
	}
	return machines, nil
}

func (r *MachineRepository) FindByName(ctx context.Context, name string) (*domain.Machine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Machine
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMachineNotFound
		}
		return nil, err
	}
	return &m, nil
}

// UpdateStatus sets the status and bumps the usage counter in one document
// update, so readers never see the two fields out of step.
func (r *MachineRepository) UpdateStatus(ctx context.Context, name string, status domain.MachineStatus, usageDelta int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{"status": string(status)},
		"$inc": bson.M{"usage": usageDelta},
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"name": name}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMachineNotFound
	}
	return nil
}

// EnsureIndexes creates the name index for the machines collection.
func (r *MachineRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	})
	return err
}
