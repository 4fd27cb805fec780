package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pacifictrucking/models"
)

const mongoDatabase = "pacifictrucking"

var mobilizationCategories = []models.ExpenseCategory{
	models.CategoryDriverRate,
	models.CategoryTollFee,
	models.CategoryFuel,
	models.CategoryClientRepresentation,
}

func newDocID() string {
	return uuid.NewString()
}

func toBSONFilter(filters map[string]interface{}) bson.M {
	out := bson.M{}
	for k, v := range filters {
		out[k] = v
	}
	return out
}

// inTransaction runs fn inside a Mongo session transaction so multi-write
// sequences (cascade deletes, liquidation, mobilization regeneration) either
// fully apply or not at all.
func inTransaction(client *mongo.Client, fn func(ctx mongo.SessionContext) error) error {
	ctx := context.Background()
	sess, err := client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
