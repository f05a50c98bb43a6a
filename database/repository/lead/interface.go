package leadRepo

import (
	"context"

	"leadform/database"
	"leadform/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// LeadRepository stores the local audit copy of accepted consultation records.
type LeadRepository interface {
	Create(ctx context.Context, lead models.Lead) (string, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	List(ctx context.Context, page string) ([]models.Lead, error)
	MarkFollowedUp(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo returns a new LeadRepository instance using MongoDB.
func NewMongoLeadRepo() LeadRepository {
	db := database.MongoClient.Database("leadform")
	return &mongoLeadRepo{
		coll: db.Collection("leads"),
	}
}
