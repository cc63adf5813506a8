package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

const collectionApprovals = "agency_approvals_data"

// ApprovalRepository persists approval requests in the agency_approvals_data
// collection.
type ApprovalRepository struct {
	col *mongo.Collection
}

func NewApprovalRepository(db *mongo.Database) *ApprovalRepository {
	return &ApprovalRepository{col: db.Collection(collectionApprovals)}
}

func (r *ApprovalRepository) Create(ctx context.Context, a *domain.Approval) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *ApprovalRepository) FindByID(ctx context.Context, id string, clientID string) (*domain.Approval, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if clientID != "" {
		filter["client_id"] = clientID
	}

	var a domain.Approval
	if err := r.col.FindOne(ctx, filter).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApprovalNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ApprovalRepository) List(ctx context.Context, filter ports.ListApprovalsFilter) ([]*domain.Approval, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domain.Approval
	for cur.Next(ctx) {
		var a domain.Approval
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, cur.Err()
}

func (r *ApprovalRepository) Update(ctx context.Context, a *domain.Approval) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrApprovalNotFound
	}
	return nil
}

func (r *ApprovalRepository) CountPending(ctx context.Context, clientID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"status": string(domain.ApprovalPending)}
	if clientID != "" {
		query["client_id"] = clientID
	}
	return r.col.CountDocuments(ctx, query)
}

// EnsureIndexes creates necessary indexes on the approvals collection.
func (r *ApprovalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
