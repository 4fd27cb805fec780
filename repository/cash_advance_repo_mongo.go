package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pacifictrucking/models"
)

type MongoCashAdvanceRepo struct {
	DB *mongo.Client
}

func NewMongoCashAdvanceRepo(db *mongo.Client) *MongoCashAdvanceRepo {
	return &MongoCashAdvanceRepo{DB: db}
}

func (r *MongoCashAdvanceRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("cash_advance")
}

func (r *MongoCashAdvanceRepo) CreateCashAdvance(a *models.CashAdvance) error {
	if a.ID == "" {
		a.ID = newDocID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = nowUTC()
	}
	_, err := r.collection().InsertOne(context.Background(), a)
	return err
}

func (r *MongoCashAdvanceRepo) GetCashAdvances(filters map[string]interface{}) ([]*models.CashAdvance, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.collection().Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.CashAdvance
	for cur.Next(ctx) {
		var a models.CashAdvance
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, cur.Err()
}
