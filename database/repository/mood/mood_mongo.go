package moodRepo

import (
	"context"
	"fmt"
	"time"

	"soulsync/database"
	"soulsync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoMoodRepo struct {
	coll *mongo.Collection
}

// NewMongoMoodRepo creates a MoodRepository backed by the "mood_entries" collection.
func NewMongoMoodRepo() MoodRepository {
	repo := &MongoMoodRepo{coll: database.Collection("mood_entries")}
	ctx, cancel := database.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		fmt.Printf("failed to create mood entry indexes: %v\n", err)
	}
	return repo
}

func (r *MongoMoodRepo) Create(ctx context.Context, entry *models.MoodEntry) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create mood entry: %w", err)
	}
	return nil
}

func (r *MongoMoodRepo) ListRecent(ctx context.Context, limit int64) ([]models.MoodEntry, error) {
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.MoodEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode mood entries: %w", err)
	}
	return entries, nil
}
