package taskRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"soulsync/database"
	"soulsync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTaskRepo struct {
	coll *mongo.Collection
}

// NewMongoTaskRepo creates a TaskRepository backed by the "tasks" collection.
func NewMongoTaskRepo() TaskRepository {
	repo := &MongoTaskRepo{coll: database.Collection("tasks")}
	ctx, cancel := database.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	if err != nil {
		fmt.Printf("failed to create task indexes: %v\n", err)
	}
	return repo
}

func (r *MongoTaskRepo) Create(ctx context.Context, task *models.Task) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, task); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// CreateMany inserts tasks with a single ordered InsertMany. If the batch
// fails part way, the documents that did land are removed again.
func (r *MongoTaskRepo) CreateMany(ctx context.Context, tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(tasks))
	ids := make([]string, 0, len(tasks))
	for i := range tasks {
		docs = append(docs, tasks[i])
		ids = append(ids, tasks[i].ID)
	}

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		if _, cleanupErr := r.coll.DeleteMany(ctx, bson.M{"id": bson.M{"$in": ids}}); cleanupErr != nil {
			return fmt.Errorf("failed to create tasks: %w (cleanup failed: %v)", err, cleanupErr)
		}
		return fmt.Errorf("failed to create tasks: %w", err)
	}
	return nil
}

func (r *MongoTaskRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var task models.Task
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch task with id %s: %w", id, err)
	}
	return &task, nil
}

func (r *MongoTaskRepo) List(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := database.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *MongoTaskRepo) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"completed": true, "completed_at": at}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to complete task with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (r *MongoTaskRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete task with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return database.ErrNotFound
	}
	return nil
}
