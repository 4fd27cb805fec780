package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pacifictrucking/models"
)

type MongoInvoiceRepo struct {
	DB *mongo.Client
}

func NewMongoInvoiceRepo(db *mongo.Client) *MongoInvoiceRepo {
	return &MongoInvoiceRepo{DB: db}
}

func (r *MongoInvoiceRepo) db() *mongo.Database {
	return r.DB.Database(mongoDatabase)
}

func (r *MongoInvoiceRepo) CreateForBooking(inv *models.Invoice) (bool, error) {
	if inv.ID == "" {
		inv.ID = newDocID()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = nowUTC()
	}

	created := false
	err := inTransaction(r.DB, func(ctx mongo.SessionContext) error {
		// Check-then-create keyed by booking so a re-fired delivered
		// transition cannot produce a duplicate.
		err := r.db().Collection("invoice").
			FindOne(ctx, bson.M{"booking_id": inv.BookingID}).Err()
		if err == nil {
			return nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		if _, err := r.db().Collection("invoice").InsertOne(ctx, inv); err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

func (r *MongoInvoiceRepo) GetInvoices(filters map[string]interface{}) ([]*models.Invoice, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.db().Collection("invoice").Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Invoice
	for cur.Next(ctx) {
		var inv models.Invoice
		if err := cur.Decode(&inv); err != nil {
			return nil, err
		}
		out = append(out, &inv)
	}
	return out, cur.Err()
}

func (r *MongoInvoiceRepo) GetInvoiceByID(id string) (*models.Invoice, error) {
	ctx := context.Background()

	var inv models.Invoice
	err := r.db().Collection("invoice").FindOne(ctx, bson.M{"_id": id}).Decode(&inv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *MongoInvoiceRepo) UpdateStatus(id string, status models.InvoiceStatus, paidAt *time.Time) error {
	ctx := context.Background()

	set := bson.M{"status": status}
	if paidAt != nil {
		set["paid_at"] = *paidAt
	}
	res, err := r.db().Collection("invoice").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}

func (r *MongoInvoiceRepo) UpdatePDF(id string, url string, at time.Time) error {
	ctx := context.Background()

	res, err := r.db().Collection("invoice").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"pdf_url": url, "pdf_created_at": at}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("invoice not found")
	}
	return nil
}
