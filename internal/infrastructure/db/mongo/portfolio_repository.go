package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

const assetsCollection = "portfolio_assets"

// PortfolioRepository persists holdings. Every query filters on user_id;
// an asset owned by another user is indistinguishable from one that does
// not exist.
type PortfolioRepository struct {
	coll *mongo.Collection
}

func NewPortfolioRepository(db *mongo.Database) *PortfolioRepository {
	return &PortfolioRepository{coll: db.Collection(assetsCollection)}
}

type mongoAsset struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Symbol    string             `bson:"symbol"`
	Quantity  float64            `bson:"quantity"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m mongoAsset) toDomain() domain.PortfolioAsset {
	return domain.PortfolioAsset{
		ID:        m.ID.Hex(),
		UserID:    m.UserID,
		Symbol:    m.Symbol,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
	}
}

func (r *PortfolioRepository) ListByUser(ctx context.Context, userID string) ([]domain.PortfolioAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// _id as a secondary sort keeps ordering stable for equal timestamps.
	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer cur.Close(ctx)

	assets := []domain.PortfolioAsset{}
	for cur.Next(ctx) {
		var ma mongoAsset
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode asset: %w", err)
		}
		assets = append(assets, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

func (r *PortfolioRepository) Create(ctx context.Context, asset *domain.PortfolioAsset) (*domain.PortfolioAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAsset{
		UserID:    asset.UserID,
		Symbol:    asset.Symbol,
		Quantity:  asset.Quantity,
		CreatedAt: asset.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert asset: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert asset: unexpected id type %T", res.InsertedID)
	}

	created := *asset
	created.ID = oid.Hex()
	return &created, nil
}

func (r *PortfolioRepository) UpdateQuantity(ctx context.Context, userID, assetID string, quantity float64) (*domain.PortfolioAsset, error) {
	oid, err := primitive.ObjectIDFromHex(assetID)
	if err != nil {
		return nil, domain.Invalid("invalid id")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAsset
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": bson.M{"quantity": quantity}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("update asset: %w", err)
	}

	updated := ma.toDomain()
	return &updated, nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, userID, assetID string) error {
	oid, err := primitive.ObjectIDFromHex(assetID)
	if err != nil {
		return domain.Invalid("invalid id")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// EnsureIndexes creates the owner-scoped listing index.
func (r *PortfolioRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
