package repository

import (
	"bondhu/internal/model"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssessmentRepo handles MongoDB operations for scored personality assessments
type AssessmentRepo interface {
	Create(ctx context.Context, record *model.AssessmentRecord) (string, error)
	GetByID(ctx context.Context, id string) (*model.AssessmentRecord, error)
	GetLatestByUserID(ctx context.Context, userID string) (*model.AssessmentRecord, error)
	ListByUserID(ctx context.Context, userID string, limit int) ([]*model.AssessmentRecord, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("personality_assessments"),
	}
}

// EnsureIndexes creates the per-user history index
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("personality_assessments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (r *assessmentRepo) Create(ctx context.Context, record *model.AssessmentRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.AssessmentRecord, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *assessmentRepo) GetLatestByUserID(ctx context.Context, userID string) (*model.AssessmentRecord, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findOne(ctx, bson.M{"userId": userID}, opts)
}

func (r *assessmentRepo) ListByUserID(ctx context.Context, userID string, limit int) ([]*model.AssessmentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []*model.AssessmentRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *assessmentRepo) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*model.AssessmentRecord, error) {
	var record model.AssessmentRecord
	err := r.collection.FindOne(ctx, filter, opts...).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
