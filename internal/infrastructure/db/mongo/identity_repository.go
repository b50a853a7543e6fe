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

const collectionIdentities = "identities"

type IdentityRepository struct {
	col *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *IdentityRepository {
	return &IdentityRepository{col: db.Collection(collectionIdentities)}
}

// UpsertOTP stores the armed passcode keyed by email. An existing identity
// keeps its id and created_at; name, otp and expiry are overwritten, which
// silently invalidates any previously pending code.
func (r *IdentityRepository) UpsertOTP(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"email": identity.Email}
	update := bson.M{
		"$set": bson.M{
			"name":           identity.Name,
			"otp":            identity.OTP,
			"otp_expires_at": identity.OTPExpiresAt,
			"updated_at":     identity.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        identity.ID,
			"created_at": identity.CreatedAt,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored domain.Identity
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var identity domain.Identity
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&identity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}
	return &identity, nil
}

// ConsumeOTP clears the OTP fields in a single conditional update: the
// filter matches only while the stored code equals otp and has not expired,
// so of two racing verifications exactly one finds a document to modify.
func (r *IdentityRepository) ConsumeOTP(ctx context.Context, email, otp string, now time.Time) (*domain.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"email":          email,
		"otp":            otp,
		"otp_expires_at": bson.M{"$gte": now},
	}
	update := bson.M{
		"$unset": bson.M{"otp": "", "otp_expires_at": ""},
		"$set":   bson.M{"updated_at": now},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var identity domain.Identity
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&identity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidOTP
		}
		return nil, err
	}
	return &identity, nil
}

// EnsureIndexes creates necessary indexes on the identities collection.
func (r *IdentityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
