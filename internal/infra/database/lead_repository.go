package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

// LeadRepository is the durable lead store. Single-document writes are
// atomic, so no in-process locking is needed.
type LeadRepository struct {
	Collection *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{Collection: db.Collection(CollectionLeads)}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	_, err := r.Collection.InsertOne(ctx, lead)
	if mongo.IsDuplicateKeyError(err) {
		return entity.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("leads: insert failed: %w", err)
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leads: select failed: %w", err)
	}
	return &lead, nil
}

func (r *LeadRepository) FindPage(ctx context.Context, filter usecase.LeadFilter, page, limit int) (*usecase.LeadPage, error) {
	page, limit = usecase.NormalizePageLimit(page, limit)

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("leads: count failed: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("leads: find failed: %w", err)
	}
	defer cursor.Close(ctx)

	items := []entity.Lead{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("leads: cursor failed: %w", err)
	}

	return &usecase.LeadPage{
		Items:      items,
		TotalItems: int(total),
		TotalPages: (int(total) + limit - 1) / limit,
		Page:       page,
		Limit:      limit,
	}, nil
}

func (r *LeadRepository) Update(ctx context.Context, id string, input usecase.UpdateLeadInput) (*entity.Lead, error) {
	set := bson.M{"updated_at": entity.Now()}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var lead entity.Lead
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrLeadNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, entity.ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("leads: update failed: %w", err)
	}
	return &lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("leads: delete failed: %w", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}
