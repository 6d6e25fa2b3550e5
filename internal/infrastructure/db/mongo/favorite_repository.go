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

const favoriteCollection = "favorites"

// MongoFavoriteRepository persists saved listings. A unique compound index
// on (user_id, listing_id) keeps favorites idempotent under races.
type MongoFavoriteRepository struct {
	coll *mongo.Collection
	seq  *sequence
}

func NewFavoriteRepository(db *mongo.Database) *MongoFavoriteRepository {
	return &MongoFavoriteRepository{coll: db.Collection(favoriteCollection), seq: newSequence(db)}
}

type mongoFavorite struct {
	ID        int64     `bson:"_id"`
	UserID    int64     `bson:"user_id"`
	ListingID int64     `bson:"listing_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func ensureFavoriteIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(favoriteCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "listing_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("user_listing_unique"),
	})
	if err != nil {
		return fmt.Errorf("favorite indexes: %w", err)
	}
	return nil
}

func (r *MongoFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) (*domain.Favorite, error) {
	id, err := r.seq.Next(ctx, favoriteCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoFavorite{
		ID:        id,
		UserID:    favorite.UserID,
		ListingID: favorite.ListingID,
		CreatedAt: favorite.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost a race with an identical add; favoriting is idempotent.
			return favorite, nil
		}
		return nil, fmt.Errorf("insert favorite: %w", err)
	}

	created := *favorite
	created.ID = id
	return &created, nil
}

func (r *MongoFavoriteRepository) Delete(ctx context.Context, userID, listingID int64) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "listing_id": listingID}); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

func (r *MongoFavoriteRepository) Exists(ctx context.Context, userID, listingID int64) (bool, error) {
	n, err := r.coll.CountDocuments(ctx,
		bson.M{"user_id": userID, "listing_id": listingID},
		options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count favorites: %w", err)
	}
	return n > 0, nil
}

func (r *MongoFavoriteRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find favorites: %w", err)
	}
	defer cur.Close(ctx)

	var favorites []domain.Favorite
	for cur.Next(ctx) {
		var mf mongoFavorite
		if err := cur.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode favorite: %w", err)
		}
		favorites = append(favorites, domain.Favorite{
			ID:        mf.ID,
			UserID:    mf.UserID,
			ListingID: mf.ListingID,
			CreatedAt: mf.CreatedAt.UTC(),
		})
	}
	return favorites, cur.Err()
}
