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

const listingCollection = "listings"

// MongoListingRepository persists rental listings.
type MongoListingRepository struct {
	coll *mongo.Collection
	seq  *sequence
}

func NewListingRepository(db *mongo.Database) *MongoListingRepository {
	return &MongoListingRepository{coll: db.Collection(listingCollection), seq: newSequence(db)}
}

type mongoListing struct {
	ID          int64     `bson:"_id"`
	LandlordID  int64     `bson:"landlord_id"`
	Title       string    `bson:"title"`
	City        string    `bson:"city"`
	Region      string    `bson:"region"`
	Bedrooms    int       `bson:"bedrooms"`
	Bathrooms   float64   `bson:"bathrooms"`
	AreaSqm     float64   `bson:"area_sqm"`
	Price       float64   `bson:"price"`
	TotalFloors int       `bson:"total_floors,omitempty"`
	Orientation string    `bson:"orientation,omitempty"`
	Decoration  string    `bson:"decoration,omitempty"`
	Description string    `bson:"description,omitempty"`
	Status      string    `bson:"status"`
	ViewCount   int64     `bson:"view_count"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func ensureListingIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(listingCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "landlord_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "city", Value: 1}, {Key: "price", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("listing indexes: %w", err)
	}
	return nil
}

func (r *MongoListingRepository) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	id, err := r.seq.Next(ctx, listingCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoListing(listing)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert listing: %w", err)
	}

	created := *listing
	created.ID = id
	return &created, nil
}

func (r *MongoListingRepository) FindByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var ml mongoListing
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ml); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	return fromMongoListing(ml), nil
}

func (r *MongoListingRepository) FindByFilter(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.Region != "" {
		query["region"] = filter.Region
	}
	if filter.Bedrooms > 0 {
		query["bedrooms"] = filter.Bedrooms
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		price := bson.M{}
		if filter.MinPrice > 0 {
			price["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			price["$lte"] = filter.MaxPrice
		}
		query["price"] = price
	}
	if filter.Keyword != "" {
		query["title"] = bson.M{"$regex": filter.Keyword, "$options": "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	return r.findMany(ctx, query, opts)
}

func (r *MongoListingRepository) FindByLandlord(ctx context.Context, landlordID int64) ([]domain.Listing, error) {
	return r.findMany(ctx, bson.M{"landlord_id": landlordID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *MongoListingRepository) Update(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	doc := toMongoListing(listing)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": listing.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrListingNotFound
	}
	return listing, nil
}

func (r *MongoListingRepository) UpdateStatus(ctx context.Context, id int64, status domain.ListingStatus) (*domain.Listing, error) {
	var ml mongoListing
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ml)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("update listing status: %w", err)
	}
	return fromMongoListing(ml), nil
}

func (r *MongoListingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// IncrementViews adds delta to the persistent view counter. Missing
// listings are ignored: the view may race a delete.
func (r *MongoListingRepository) IncrementViews(ctx context.Context, id int64, delta int64) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"view_count": delta}})
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

func (r *MongoListingRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}

func (r *MongoListingRepository) CountByStatus(ctx context.Context, status domain.ListingStatus) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"status": string(status)})
	if err != nil {
		return 0, fmt.Errorf("count listings by status: %w", err)
	}
	return n, nil
}

func (r *MongoListingRepository) findMany(ctx context.Context, query bson.M, opts *options.FindOptions) ([]domain.Listing, error) {
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	defer cur.Close(ctx)

	var listings []domain.Listing
	for cur.Next(ctx) {
		var ml mongoListing
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode listing: %w", err)
		}
		listings = append(listings, *fromMongoListing(ml))
	}
	return listings, cur.Err()
}

func toMongoListing(l *domain.Listing) mongoListing {
	return mongoListing{
		ID:          l.ID,
		LandlordID:  l.LandlordID,
		Title:       l.Title,
		City:        l.City,
		Region:      l.Region,
		Bedrooms:    l.Bedrooms,
		Bathrooms:   l.Bathrooms,
		AreaSqm:     l.AreaSqm,
		Price:       l.Price,
		TotalFloors: l.TotalFloors,
		Orientation: l.Orientation,
		Decoration:  l.Decoration,
		Description: l.Description,
		Status:      string(l.Status),
		ViewCount:   l.ViewCount,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func fromMongoListing(ml mongoListing) *domain.Listing {
	return &domain.Listing{
		ID:          ml.ID,
		LandlordID:  ml.LandlordID,
		Title:       ml.Title,
		City:        ml.City,
		Region:      ml.Region,
		Bedrooms:    ml.Bedrooms,
		Bathrooms:   ml.Bathrooms,
		AreaSqm:     ml.AreaSqm,
		Price:       ml.Price,
		TotalFloors: ml.TotalFloors,
		Orientation: ml.Orientation,
		Decoration:  ml.Decoration,
		Description: ml.Description,
		Status:      domain.ListingStatus(ml.Status),
		ViewCount:   ml.ViewCount,
		CreatedAt:   ml.CreatedAt.UTC(),
		UpdatedAt:   ml.UpdatedAt.UTC(),
	}
}
