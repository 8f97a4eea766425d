package surveys

import (
	"context"
	"surveygate-service/internal/app/models"
	"surveygate-service/internal/pkg/constvars"
	"surveygate-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubmissionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSubmissionMongoRepository(db *mongo.Client, dbName string) SubmissionRepository {
	return &SubmissionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSubmissions),
	}
}

func (repo *SubmissionMongoRepository) CreateSubmission(ctx context.Context, submission *models.SurveySubmission) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, submission)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *SubmissionMongoRepository) FindRecentSubmissions(ctx context.Context, limit int64) ([]models.SurveySubmission, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	submissions := make([]models.SurveySubmission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return submissions, nil
}
