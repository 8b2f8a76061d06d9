package repository

import (
	"context"
	"fmt"
	"time"

	"opsdeck/database"
	"opsdeck/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo persists bookings in MongoDB. Insertion order is the
// natural _id order, which All preserves.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{
		coll: database.MongoClient.Database("opsdeck").Collection("bookings"),
	}
}

type bookingDoc struct {
	ID         string               `bson:"id"`
	ResourceID string               `bson:"resource_id"`
	TenantID   string               `bson:"tenant_id"`
	StartTime  time.Time            `bson:"start_time"`
	EndTime    time.Time            `bson:"end_time"`
	Cost       primitive.Decimal128 `bson:"cost"`
}

func (r *MongoBookingRepo) Insert(ctx context.Context, booking models.Booking) error {
	doc, err := toBookingDoc(booking)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) All(ctx context.Context) ([]models.Booking, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Booking
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		b, err := fromBookingDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}

// Seed inserts the seed bookings if the collection is empty.
func (r *MongoBookingRepo) Seed(ctx context.Context, seed []models.Booking) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}
	if n > 0 || len(seed) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(seed))
	for _, b := range seed {
		doc, err := toBookingDoc(b)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed bookings: %w", err)
	}
	return nil
}

func toBookingDoc(b models.Booking) (bookingDoc, error) {
	cost, err := toDecimal128(b.Cost)
	if err != nil {
		return bookingDoc{}, err
	}
	return bookingDoc{
		ID:         b.ID,
		ResourceID: b.ResourceID,
		TenantID:   b.TenantID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Cost:       cost,
	}, nil
}

func fromBookingDoc(doc bookingDoc) (models.Booking, error) {
	cost, err := fromDecimal128(doc.Cost)
	if err != nil {
		return models.Booking{}, err
	}
	return models.Booking{
		ID:         doc.ID,
		ResourceID: doc.ResourceID,
		TenantID:   doc.TenantID,
		StartTime:  doc.StartTime,
		EndTime:    doc.EndTime,
		Cost:       cost,
	}, nil
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	d128, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("convert amount: %w", err)
	}
	return d128, nil
}

func fromDecimal128(d128 primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(d128.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse stored amount: %w", err)
	}
	return d, nil
}
