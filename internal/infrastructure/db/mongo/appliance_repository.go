package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wattline/energy-tracker/internal/core/domain"
)

const collectionAppliances = "appliances"

type ApplianceRepository struct {
	col *mongo.Collection
}

func NewApplianceRepository(db *mongo.Database) *ApplianceRepository {
	return &ApplianceRepository{col: db.Collection(collectionAppliances)}
}

// Create inserts a new appliance document.
func (r *ApplianceRepository) Create(ctx context.Context, a *domain.Appliance) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *ApplianceRepository) FindByID(ctx context.Context, id string) (*domain.Appliance, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Appliance
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplianceNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListByOwner returns all appliances owned by ownerID, newest first.
func (r *ApplianceRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Appliance, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []*domain.Appliance
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the stored document. The owner_id in the filter is not
// needed for correctness (the service has already checked ownership) but
// keeps a stale actor from ever touching a foreign record.
func (r *ApplianceRepository) Update(ctx context.Context, a *domain.Appliance) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.ID, "owner_id": a.OwnerID}, a)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplianceNotFound
	}
	return nil
}

func (r *ApplianceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrApplianceNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the appliances collection.
func (r *ApplianceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
