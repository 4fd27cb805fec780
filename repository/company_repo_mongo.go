package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pacifictrucking/models"
)

type MongoCompanyRepo struct {
	DB *mongo.Client
}

func NewMongoCompanyRepo(db *mongo.Client) *MongoCompanyRepo {
	return &MongoCompanyRepo{DB: db}
}

func (r *MongoCompanyRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("company_profile")
}

// SaveProfile upserts the single company record.
func (r *MongoCompanyRepo) SaveProfile(profile *models.CompanyProfile) error {
	if profile.ID == "" {
		profile.ID = newDocID()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = nowUTC()
	}

	_, err := r.collection().ReplaceOne(
		context.Background(),
		bson.M{"_id": profile.ID},
		profile,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoCompanyRepo) GetProfile() (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.collection().FindOne(context.Background(), bson.M{}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
