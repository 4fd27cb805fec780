package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pacifictrucking/models"
)

type MongoExpenseRepo struct {
	DB *mongo.Client
}

func NewMongoExpenseRepo(db *mongo.Client) *MongoExpenseRepo {
	return &MongoExpenseRepo{DB: db}
}

func (r *MongoExpenseRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("expense")
}

func (r *MongoExpenseRepo) CreateExpense(e *models.Expense) error {
	if e.ID == "" {
		e.ID = newDocID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = nowUTC()
	}
	_, err := r.collection().InsertOne(context.Background(), e)
	return err
}

func (r *MongoExpenseRepo) GetExpenses(filters map[string]interface{}) ([]*models.Expense, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.collection().Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Expense
	for cur.Next(ctx) {
		var e models.Expense
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, cur.Err()
}

func (r *MongoExpenseRepo) DeleteExpense(id string) error {
	res, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("expense not found")
	}
	return nil
}
