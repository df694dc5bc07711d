package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// Seed fills any empty collection with its starter data: the demo machines,
// residents, and bookings, the default settings, and one admin account with
// the configured credentials. Non-empty collections are left alone, so
// running it on every startup is safe.
func Seed(ctx context.Context, db *mongo.Database, adminUser, adminPassword string, log zerolog.Logger) error {
	if err := seedMachines(ctx, db); err != nil {
		return fmt.Errorf("seed machines: %w", err)
	}
	if err := seedResidents(ctx, db); err != nil {
		return fmt.Errorf("seed residents: %w", err)
	}
	if err := seedBookings(ctx, db); err != nil {
		return fmt.Errorf("seed bookings: %w", err)
	}
	if err := seedSettings(ctx, db); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if err := seedAdmin(ctx, db, adminUser, adminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info().Msg("database seeded")
	return nil
}

func isEmpty(ctx context.Context, db *mongo.Database, collection string) (bool, error) {
	n, err := db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func seedMachines(ctx context.Context, db *mongo.Database) error {
	empty, err := isEmpty(ctx, db, collectionMachines)
	if err != nil || !empty {
		return err
	}

	machines := []interface{}{
		domain.Machine{Name: "Washer 1", Status: domain.MachineBusy, Usage: 2},
		domain.Machine{Name: "Washer 2", Status: domain.MachineFree, Usage: 0},
		domain.Machine{Name: "Dryer 1", Status: domain.MachineFree, Usage: 0},
		domain.Machine{Name: "Dryer 2", Status: domain.MachineBusy, Usage: 1},
	}
	_, err = db.Collection(collectionMachines).InsertMany(ctx, machines)
	return err
}

func seedResidents(ctx context.Context, db *mongo.Database) error {
	empty, err := isEmpty(ctx, db, collectionResidents)
	if err != nil || !empty {
		return err
	}

	residents := []interface{}{
		domain.Resident{ID: uuid.NewString(), Name: "Bob", Email: "bob@email.com", Room: "101"},
		domain.Resident{ID: uuid.NewString(), Name: "Alice", Email: "alice@email.com", Room: "102"},
	}
	_, err = db.Collection(collectionResidents).InsertMany(ctx, residents)
	return err
}

// seedBookings matches the statuses seeded for the machines: the two busy
// machines each carry one regular booking.
func seedBookings(ctx context.Context, db *mongo.Database) error {
	empty, err := isEmpty(ctx, db, collectionBookings)
	if err != nil || !empty {
		return err
	}

	bookings := []interface{}{
		domain.Booking{ID: uuid.NewString(), Machine: "Washer 1", Time: "10:00", User: "Bob"},
		domain.Booking{ID: uuid.NewString(), Machine: "Dryer 2", Time: "11:00", User: "Alice"},
	}
	_, err = db.Collection(collectionBookings).InsertMany(ctx, bookings)
	return err
}

func seedSettings(ctx context.Context, db *mongo.Database) error {
	empty, err := isEmpty(ctx, db, collectionSettings)
	if err != nil || !empty {
		return err
	}

	_, err = db.Collection(collectionSettings).InsertOne(ctx, domain.DefaultSettings())
	return err
}

func seedAdmin(ctx context.Context, db *mongo.Database, username, password string) error {
	empty, err := isEmpty(ctx, db, collectionUsers)
	if err != nil || !empty {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Collection(collectionUsers).InsertOne(ctx, mongoUser{
		Username:     username,
		PasswordHash: string(hash),
	})
	return err
}
