package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rentalhub/rental-api/internal/core/domain"
)

const preferenceCollection = "tenant_preferences"

// MongoPreferenceRepository persists the single search-preference record
// each tenant may have.
type MongoPreferenceRepository struct {
	coll *mongo.Collection
	seq  *sequence
}

func NewPreferenceRepository(db *mongo.Database) *MongoPreferenceRepository {
	return &MongoPreferenceRepository{coll: db.Collection(preferenceCollection), seq: newSequence(db)}
}

type mongoPreference struct {
	ID          int64     `bson:"_id"`
	UserID      int64     `bson:"user_id"`
	Budget      int       `bson:"budget,omitempty"`
	City        string    `bson:"city,omitempty"`
	Region      string    `bson:"region,omitempty"`
	Bedrooms    int       `bson:"bedrooms,omitempty"`
	Bathrooms   int       `bson:"bathrooms,omitempty"`
	MinArea     float64   `bson:"min_area,omitempty"`
	MaxArea     float64   `bson:"max_area,omitempty"`
	MinFloors   int       `bson:"min_floors,omitempty"`
	MaxFloors   int       `bson:"max_floors,omitempty"`
	Orientation string    `bson:"orientation,omitempty"`
	Decoration  string    `bson:"decoration,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func ensurePreferenceIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(preferenceCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("user_unique"),
	})
	if err != nil {
		return fmt.Errorf("preference indexes: %w", err)
	}
	return nil
}

func (r *MongoPreferenceRepository) FindByUser(ctx context.Context, userID int64) (*domain.Preference, error) {
	var mp mongoPreference
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("find preference: %w", err)
	}
	return fromMongoPreference(mp), nil
}

// Upsert replaces the user's record, creating it with a fresh id on first
// save. The unique index on user_id guarantees at most one record per user.
func (r *MongoPreferenceRepository) Upsert(ctx context.Context, pref *domain.Preference) (*domain.Preference, error) {
	existing, err := r.FindByUser(ctx, pref.UserID)
	switch {
	case err == nil:
		pref.ID = existing.ID
		pref.CreatedAt = existing.CreatedAt
	case err == domain.ErrPreferenceNotFound:
		id, seqErr := r.seq.Next(ctx, preferenceCollection)
		if seqErr != nil {
			return nil, seqErr
		}
		pref.ID = id
		pref.CreatedAt = pref.UpdatedAt
	default:
		return nil, err
	}

	doc := toMongoPreference(pref)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"user_id": pref.UserID}, doc,
		options.Replace().SetUpsert(true)); err != nil {
		return nil, fmt.Errorf("upsert preference: %w", err)
	}
	return pref, nil
}

func toMongoPreference(p *domain.Preference) mongoPreference {
	return mongoPreference{
		ID:          p.ID,
		UserID:      p.UserID,
		Budget:      p.Budget,
		City:        p.City,
		Region:      p.Region,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		MinArea:     p.MinArea,
		MaxArea:     p.MaxArea,
		MinFloors:   p.MinFloors,
		MaxFloors:   p.MaxFloors,
		Orientation: p.Orientation,
		Decoration:  p.Decoration,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func fromMongoPreference(mp mongoPreference) *domain.Preference {
	return &domain.Preference{
		ID:          mp.ID,
		UserID:      mp.UserID,
		Budget:      mp.Budget,
		City:        mp.City,
		Region:      mp.Region,
		Bedrooms:    mp.Bedrooms,
		Bathrooms:   mp.Bathrooms,
		MinArea:     mp.MinArea,
		MaxArea:     mp.MaxArea,
		MinFloors:   mp.MinFloors,
		MaxFloors:   mp.MaxFloors,
		Orientation: mp.Orientation,
		Decoration:  mp.Decoration,
		CreatedAt:   mp.CreatedAt.UTC(),
		UpdatedAt:   mp.UpdatedAt.UTC(),
	}
}
