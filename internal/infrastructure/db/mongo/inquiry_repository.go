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

const inquiryCollection = "inquiries"

// MongoInquiryRepository persists tenant inquiries.
type MongoInquiryRepository struct {
	coll *mongo.Collection
	seq  *sequence
}

func NewInquiryRepository(db *mongo.Database) *MongoInquiryRepository {
	return &MongoInquiryRepository{coll: db.Collection(inquiryCollection), seq: newSequence(db)}
}

type mongoInquiry struct {
	ID         int64     `bson:"_id"`
	ListingID  int64     `bson:"listing_id"`
	TenantID   int64     `bson:"tenant_id"`
	LandlordID int64     `bson:"landlord_id"`
	Message    string    `bson:"message"`
	Reply      string    `bson:"reply,omitempty"`
	Status     string    `bson:"status"`
	CreatedAt  time.Time `bson:"created_at"`
	RepliedAt  time.Time `bson:"replied_at,omitempty"`
}

func ensureInquiryIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(inquiryCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "tenant_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "landlord_id", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("inquiry indexes: %w", err)
	}
	return nil
}

func (r *MongoInquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error) {
	id, err := r.seq.Next(ctx, inquiryCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoInquiry(inquiry)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}

	created := *inquiry
	created.ID = id
	return &created, nil
}

func (r *MongoInquiryRepository) FindByID(ctx context.Context, id int64) (*domain.Inquiry, error) {
	var mi mongoInquiry
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("find inquiry: %w", err)
	}
	return fromMongoInquiry(mi), nil
}

func (r *MongoInquiryRepository) FindByTenant(ctx context.Context, tenantID int64) ([]domain.Inquiry, error) {
	return r.findMany(ctx, bson.M{"tenant_id": tenantID})
}

func (r *MongoInquiryRepository) FindByLandlord(ctx context.Context, landlordID int64, status domain.InquiryStatus) ([]domain.Inquiry, error) {
	query := bson.M{"landlord_id": landlordID}
	if status != "" {
		query["status"] = string(status)
	}
	return r.findMany(ctx, query)
}

func (r *MongoInquiryRepository) Update(ctx context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error) {
	doc := toMongoInquiry(inquiry)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": inquiry.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update inquiry: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrInquiryNotFound
	}
	return inquiry, nil
}

func (r *MongoInquiryRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
	if err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}
	return n, nil
}

func (r *MongoInquiryRepository) findMany(ctx context.Context, query bson.M) ([]domain.Inquiry, error) {
	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find inquiries: %w", err)
	}
	defer cur.Close(ctx)

	var inquiries []domain.Inquiry
	for cur.Next(ctx) {
		var mi mongoInquiry
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode inquiry: %w", err)
		}
		inquiries = append(inquiries, *fromMongoInquiry(mi))
	}
	return inquiries, cur.Err()
}

func toMongoInquiry(i *domain.Inquiry) mongoInquiry {
	return mongoInquiry{
		ID:         i.ID,
		ListingID:  i.ListingID,
		TenantID:   i.TenantID,
		LandlordID: i.LandlordID,
		Message:    i.Message,
		Reply:      i.Reply,
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt,
		RepliedAt:  i.RepliedAt,
	}
}

func fromMongoInquiry(mi mongoInquiry) *domain.Inquiry {
	return &domain.Inquiry{
		ID:         mi.ID,
		ListingID:  mi.ListingID,
		TenantID:   mi.TenantID,
		LandlordID: mi.LandlordID,
		Message:    mi.Message,
		Reply:      mi.Reply,
		Status:     domain.InquiryStatus(mi.Status),
		CreatedAt:  mi.CreatedAt.UTC(),
		RepliedAt:  mi.RepliedAt.UTC(),
	}
}
