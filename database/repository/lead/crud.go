package leadRepo

import (
	"context"
	"errors"
	"time"

	"leadform/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new lead and returns its ID.
func (r *mongoLeadRepo) Create(ctx context.Context, lead models.Lead) (string, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	lead.CreatedAt = time.Now()
	lead.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, lead)
	if err != nil {
		return "", err
	}
	return lead.ID, nil
}

// GetByID returns a lead by its ID.
func (r *mongoLeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List fetches all leads, optionally filtered to one page slug.
func (r *mongoLeadRepo) List(ctx context.Context, page string) ([]models.Lead, error) {
	filter := bson.M{}
	if page != "" {
		filter["record.page"] = page
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// MarkFollowedUp flags a lead once its follow-up task has run.
func (r *mongoLeadRepo) MarkFollowedUp(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{"followedUp": true, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("lead not found")
	}
	return nil
}

// DeleteByID removes a lead by ID.
func (r *mongoLeadRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("lead not found")
	}
	return nil
}
