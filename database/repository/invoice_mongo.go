package repository

import (
	"context"
	"errors"
	"fmt"

	"opsdeck/database"
	"opsdeck/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInvoiceRepo persists invoices in MongoDB. The reconciliation write is
// a single FindOneAndUpdate ($push + $inc), so the total always matches the
// line items even with concurrent writers.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

func NewMongoInvoiceRepo() *MongoInvoiceRepo {
	return &MongoInvoiceRepo{
		coll: database.MongoClient.Database("opsdeck").Collection("invoices"),
	}
}

type invoiceDoc struct {
	ID          string               `bson:"id"`
	TenantID    string               `bson:"tenant_id"`
	IssueDate   string               `bson:"issue_date"`
	DueDate     string               `bson:"due_date"`
	TotalAmount primitive.Decimal128 `bson:"total_amount"`
	Status      string               `bson:"status"`
	LineItems   []lineItemDoc        `bson:"line_items"`
}

type lineItemDoc struct {
	ID          string               `bson:"id"`
	Description string               `bson:"description"`
	Amount      primitive.Decimal128 `bson:"amount"`
}

func (r *MongoInvoiceRepo) Insert(ctx context.Context, invoice models.Invoice) error {
	doc, err := toInvoiceDoc(invoice)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *MongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var doc invoiceDoc
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv, err := fromInvoiceDoc(doc)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *MongoInvoiceRepo) All(ctx context.Context) ([]models.Invoice, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Invoice
	for cur.Next(ctx) {
		var doc invoiceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode invoice: %w", err)
		}
		inv, err := fromInvoiceDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, cur.Err()
}

func (r *MongoInvoiceRepo) AppendToFirstOpen(ctx context.Context, tenantID string, item models.InvoiceLineItem) (*models.Invoice, error) {
	amount, err := toDecimal128(item.Amount)
	if err != nil {
		return nil, err
	}
	itemDoc := lineItemDoc{ID: item.ID, Description: item.Description, Amount: amount}

	filter := bson.M{"tenant_id": tenantID, "status": bson.M{"$ne": string(models.StatusPaid)}}
	update := bson.M{
		"$push": bson.M{"line_items": itemDoc},
		"$inc":  bson.M{"total_amount": amount},
	}
	opts := options.FindOneAndUpdate().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetReturnDocument(options.After)

	var doc invoiceDoc
	err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoActiveInvoice
	}
	if err != nil {
		return nil, fmt.Errorf("append line item: %w", err)
	}
	inv, err := fromInvoiceDoc(doc)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *MongoInvoiceRepo) UpdateStatus(ctx context.Context, id string, status models.InvoiceStatus) (*models.Invoice, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc invoiceDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": string(status)}}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}
	inv, err := fromInvoiceDoc(doc)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Seed inserts the seed invoices if the collection is empty.
func (r *MongoInvoiceRepo) Seed(ctx context.Context, seed []models.Invoice) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count invoices: %w", err)
	}
	if n > 0 || len(seed) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(seed))
	for _, inv := range seed {
		doc, err := toInvoiceDoc(inv)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed invoices: %w", err)
	}
	return nil
}

func toInvoiceDoc(inv models.Invoice) (invoiceDoc, error) {
	total, err := toDecimal128(inv.TotalAmount)
	if err != nil {
		return invoiceDoc{}, err
	}
	doc := invoiceDoc{
		ID:          inv.ID,
		TenantID:    inv.TenantID,
		IssueDate:   inv.IssueDate,
		DueDate:     inv.DueDate,
		TotalAmount: total,
		Status:      string(inv.Status),
	}
	for _, li := range inv.LineItems {
		amount, err := toDecimal128(li.Amount)
		if err != nil {
			return invoiceDoc{}, err
		}
		doc.LineItems = append(doc.LineItems, lineItemDoc{ID: li.ID, Description: li.Description, Amount: amount})
	}
	return doc, nil
}

func fromInvoiceDoc(doc invoiceDoc) (models.Invoice, error) {
	total, err := fromDecimal128(doc.TotalAmount)
	if err != nil {
		return models.Invoice{}, err
	}
	inv := models.Invoice{
		ID:          doc.ID,
		TenantID:    doc.TenantID,
		IssueDate:   doc.IssueDate,
		DueDate:     doc.DueDate,
		TotalAmount: total,
		Status:      models.InvoiceStatus(doc.Status),
	}
	for _, li := range doc.LineItems {
		amount, err := fromDecimal128(li.Amount)
		if err != nil {
			return models.Invoice{}, err
		}
		inv.LineItems = append(inv.LineItems, models.InvoiceLineItem{ID: li.ID, Description: li.Description, Amount: amount})
	}
	return inv, nil
}
