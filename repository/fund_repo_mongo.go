package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pacifictrucking/models"
)

type MongoFundRepo struct {
	DB *mongo.Client
}

func NewMongoFundRepo(db *mongo.Client) *MongoFundRepo {
	return &MongoFundRepo{DB: db}
}

func (r *MongoFundRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("revolving_fund")
}

func (r *MongoFundRepo) CreateContribution(c *models.RevolvingFundContribution) error {
	if c.ID == "" {
		c.ID = newDocID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = nowUTC()
	}
	_, err := r.collection().InsertOne(context.Background(), c)
	return err
}

func (r *MongoFundRepo) GetContributions(filters map[string]interface{}) ([]*models.RevolvingFundContribution, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.collection().Find(ctx, toBSONFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.RevolvingFundContribution
	for cur.Next(ctx) {
		var c models.RevolvingFundContribution
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, cur.Err()
}
