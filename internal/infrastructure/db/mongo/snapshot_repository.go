package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

const snapshotsCollection = "portfolio_snapshots"

// SnapshotRepository persists the append-only snapshot ledger. Snapshots are
// never updated or deleted.
type SnapshotRepository struct {
	coll *mongo.Collection
}

func NewSnapshotRepository(db *mongo.Database) *SnapshotRepository {
	return &SnapshotRepository{coll: db.Collection(snapshotsCollection)}
}

type mongoSnapshot struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	TotalValueEUR float64            `bson:"total_value_eur"`
	CapturedAt    time.Time          `bson:"captured_at"`
}

func (r *SnapshotRepository) Insert(ctx context.Context, snapshot *domain.PortfolioSnapshot) (*domain.PortfolioSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSnapshot{
		UserID:        snapshot.UserID,
		TotalValueEUR: snapshot.TotalValueEUR,
		CapturedAt:    snapshot.CapturedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert snapshot: unexpected id type %T", res.InsertedID)
	}

	created := *snapshot
	created.ID = oid.Hex()
	return &created, nil
}

func (r *SnapshotRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.PortfolioSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := bson.D{{Key: "captured_at", Value: -1}, {Key: "_id", Value: -1}}
	opts := options.Find().SetSort(sort).SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer cur.Close(ctx)

	snapshots := []domain.PortfolioSnapshot{}
	for cur.Next(ctx) {
		var ms mongoSnapshot
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		snapshots = append(snapshots, domain.PortfolioSnapshot{
			ID:            ms.ID.Hex(),
			UserID:        ms.UserID,
			TotalValueEUR: ms.TotalValueEUR,
			CapturedAt:    ms.CapturedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snapshots, nil
}

// EnsureIndexes creates the owner-scoped recency index.
func (r *SnapshotRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "captured_at", Value: -1}},
	})
	return err
}
