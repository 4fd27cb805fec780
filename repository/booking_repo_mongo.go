package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pacifictrucking/finance"
	"pacifictrucking/models"
)

type MongoBookingRepo struct {
	DB *mongo.Client
}

func NewMongoBookingRepo(db *mongo.Client) *MongoBookingRepo {
	return &MongoBookingRepo{DB: db}
}

func (r *MongoBookingRepo) db() *mongo.Database {
	return r.DB.Database(mongoDatabase)
}

// insertRoutedCosts writes each routed mobilization cost as its own document.
func (r *MongoBookingRepo) insertRoutedCosts(ctx context.Context, costs []finance.RoutedCost) error {
	db := r.db()
	for _, c := range costs {
		switch {
		case c.Expense != nil:
			if c.Expense.ID == "" {
				c.Expense.ID = newDocID()
			}
			if c.Expense.CreatedAt.IsZero() {
				c.Expense.CreatedAt = nowUTC()
			}
			if _, err := db.Collection("expense").InsertOne(ctx, c.Expense); err != nil {
				return err
			}
		case c.Reimbursement != nil:
			if c.Reimbursement.ID == "" {
				c.Reimbursement.ID = newDocID()
			}
			if c.Reimbursement.CreatedAt.IsZero() {
				c.Reimbursement.CreatedAt = nowUTC()
			}
			if _, err := db.Collection("reimbursement").InsertOne(ctx, c.Reimbursement); err != nil {
				return err
			}
		}
	}
	return nil
}

// deleteMobilizationCosts removes the booking's auto-logged cost documents
// ahead of regeneration. Manually entered costs linked to the booking keep
// their non-mobilization categories and survive.
func (r *MongoBookingRepo) deleteMobilizationCosts(ctx context.Context, bookingID string) error {
	db := r.db()
	filter := bson.M{
		"booking_id": bookingID,
		"category":   bson.M{"$in": mobilizationCategories},
	}
	if _, err := db.Collection("expense").DeleteMany(ctx, filter); err != nil {
		return err
	}
	_, err := db.Collection("reimbursement").DeleteMany(ctx, filter)
	return err
}

func (r *MongoBookingRepo) CreateBooking(b *models.Booking, costs []finance.RoutedCost) error {
	if b.ID == "" {
		b.ID = newDocID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = nowUTC()
	}
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	for _, c := range costs {
		if c.Expense != nil {
			c.Expense.BookingID = b.ID
		}
		if c.Reimbursement != nil {
			c.Reimbursement.BookingID = b.ID
		}
	}

	return inTransaction(r.DB, func(ctx mongo.SessionContext) error {
		if _, err := r.db().Collection("booking").InsertOne(ctx, b); err != nil {
			return err
		}
		return r.insertRoutedCosts(ctx, costs)
	})
}

func (r *MongoBookingRepo) UpdateBooking(b *models.Booking, costs []finance.RoutedCost) error {
	now := nowUTC()
	b.UpdatedAt = &now

	return inTransaction(r.DB, func(ctx mongo.SessionContext) error {
		res, err := r.db().Collection("booking").ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return errors.New("booking not found")
		}
		if err := r.deleteMobilizationCosts(ctx, b.ID); err != nil {
			return err
		}
		return r.insertRoutedCosts(ctx, costs)
	})
}

func (r *MongoBookingRepo) GetBookings(filters map[string]interface{}) ([]*models.Booking, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "booking_date", Value: -1}})
	cur, err := r.db().Collection("booking").Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Booking
	for cur.Next(ctx) {
		var b models.Booking
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, cur.Err()
}

func (r *MongoBookingRepo) GetBookingByID(id string) (*models.Booking, error) {
	ctx := context.Background()

	var b models.Booking
	err := r.db().Collection("booking").FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *MongoBookingRepo) UpdateStatus(id string, status models.BookingStatus, completion *time.Time) error {
	ctx := context.Background()

	set := bson.M{"status": status, "updated_at": nowUTC()}
	if completion != nil {
		set["completion_date"] = *completion
	}
	res, err := r.db().Collection("booking").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}

func (r *MongoBookingRepo) DeleteBooking(id string) error {
	return inTransaction(r.DB, func(ctx mongo.SessionContext) error {
		db := r.db()
		res, err := db.Collection("booking").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return errors.New("booking not found")
		}
		if _, err := db.Collection("expense").DeleteMany(ctx, bson.M{"booking_id": id}); err != nil {
			return err
		}
		_, err = db.Collection("reimbursement").DeleteMany(ctx, bson.M{"booking_id": id})
		return err
	})
}
