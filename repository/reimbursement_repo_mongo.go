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

var (
	ErrReimbursementNotFound   = errors.New("reimbursement not found")
	ErrReimbursementNotPending = errors.New("reimbursement is not pending")
)

type MongoReimbursementRepo struct {
	DB *mongo.Client
}

func NewMongoReimbursementRepo(db *mongo.Client) *MongoReimbursementRepo {
	return &MongoReimbursementRepo{DB: db}
}

func (r *MongoReimbursementRepo) db() *mongo.Database {
	return r.DB.Database(mongoDatabase)
}

func (r *MongoReimbursementRepo) CreateReimbursement(rb *models.Reimbursement) error {
	if rb.ID == "" {
		rb.ID = newDocID()
	}
	if rb.CreatedAt.IsZero() {
		rb.CreatedAt = nowUTC()
	}
	_, err := r.db().Collection("reimbursement").InsertOne(context.Background(), rb)
	return err
}

func (r *MongoReimbursementRepo) GetReimbursements(filters map[string]interface{}) ([]*models.Reimbursement, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.db().Collection("reimbursement").Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Reimbursement
	for cur.Next(ctx) {
		var rb models.Reimbursement
		if err := cur.Decode(&rb); err != nil {
			return nil, err
		}
		out = append(out, &rb)
	}
	return out, cur.Err()
}

func (r *MongoReimbursementRepo) Liquidate(id string, liquidatedBy string, now time.Time) (*models.Reimbursement, error) {
	var rb models.Reimbursement

	err := inTransaction(r.DB, func(ctx mongo.SessionContext) error {
		db := r.db()

		err := db.Collection("reimbursement").FindOne(ctx, bson.M{"_id": id}).Decode(&rb)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrReimbursementNotFound
			}
			return err
		}
		if rb.Status != models.ReimbursementPending {
			return ErrReimbursementNotPending
		}

		out := finance.Liquidate(&rb, liquidatedBy, now)
		switch {
		case out.CashAdvance != nil:
			out.CashAdvance.ID = newDocID()
			out.CashAdvance.CreatedAt = now
			if _, err := db.Collection("cash_advance").InsertOne(ctx, out.CashAdvance); err != nil {
				return err
			}
		case out.Expense != nil:
			out.Expense.ID = newDocID()
			out.Expense.CreatedAt = now
			if _, err := db.Collection("expense").InsertOne(ctx, out.Expense); err != nil {
				return err
			}
		}

		_, err = db.Collection("reimbursement").UpdateOne(ctx,
			bson.M{"_id": rb.ID},
			bson.M{"$set": bson.M{
				"status":        rb.Status,
				"liquidated_by": rb.LiquidatedBy,
				"liquidated_at": rb.LiquidatedAt,
			}},
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &rb, nil
}
