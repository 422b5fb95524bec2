package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cryptofolio/portfolio-api/internal/core/domain"
)

const pricesCollection = "asset_prices"

// PriceRepository persists the shared symbol → price table.
type PriceRepository struct {
	coll *mongo.Collection
}

func NewPriceRepository(db *mongo.Database) *PriceRepository {
	return &PriceRepository{coll: db.Collection(pricesCollection)}
}

type mongoPrice struct {
	Symbol    string    `bson:"symbol"`
	PriceEUR  float64   `bson:"price_eur"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (r *PriceRepository) List(ctx context.Context) ([]domain.AssetPrice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "symbol", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer cur.Close(ctx)

	prices := []domain.AssetPrice{}
	for cur.Next(ctx) {
		var mp mongoPrice
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode price: %w", err)
		}
		prices = append(prices, domain.AssetPrice{
			Symbol:    mp.Symbol,
			PriceEUR:  mp.PriceEUR,
			UpdatedAt: mp.UpdatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	return prices, nil
}

// Upsert inserts or overwrites the price for a symbol. The unique symbol
// index guarantees repeated upserts never create a second row.
func (r *PriceRepository) Upsert(ctx context.Context, symbol string, priceEUR float64, updatedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"symbol": symbol},
		bson.M{"$set": bson.M{"price_eur": priceEUR, "updated_at": updatedAt}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert price: %w", err)
	}
	return nil
}

func (r *PriceRepository) FindBySymbols(ctx context.Context, symbols []string) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if len(symbols) == 0 {
		return map[string]float64{}, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"symbol": bson.M{"$in": symbols}})
	if err != nil {
		return nil, fmt.Errorf("find prices: %w", err)
	}
	defer cur.Close(ctx)

	priceBySymbol := make(map[string]float64, len(symbols))
	for cur.Next(ctx) {
		var mp mongoPrice
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode price: %w", err)
		}
		priceBySymbol[mp.Symbol] = mp.PriceEUR
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find prices: %w", err)
	}
	return priceBySymbol, nil
}

// EnsureIndexes creates the unique symbol index.
func (r *PriceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "symbol", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
