package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) CartRepository {
	return &mongoCartRepository{
		collection: db.Collection("carts"),
	}
}

// EnsureCart creates an empty cart with the given id unless one exists and
// returns the stored document. Safe to call any number of times.
func (m *mongoCartRepository) EnsureCart(ctx context.Context, id domain.CartID) (*domain.Cart, error) {
	now := time.Now().UTC()

	filter := bson.M{"_id": id}
	update := bson.M{
		"$setOnInsert": bson.M{
			"items":      bson.A{},
			"created_at": now,
			"updated_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cart domain.Cart
	if err := m.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart); err != nil {
		return nil, fmt.Errorf("failed to ensure cart: %w", err)
	}

	normalize(&cart)
	return &cart, nil
}

func (m *mongoCartRepository) GetCart(ctx context.Context, id domain.CartID) (*domain.Cart, error) {
	var cart domain.Cart

	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	normalize(&cart)
	return &cart, nil
}

func (m *mongoCartRepository) SaveCart(ctx context.Context, cart *domain.Cart) error {
	now := time.Now().UTC()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	normalize(cart)

	filter := bson.M{"_id": cart.ID}
	update := bson.M{
		"$set": bson.M{
			"items":      cart.Items,
			"updated_at": cart.UpdatedAt,
		},
		"$setOnInsert": bson.M{"created_at": cart.CreatedAt},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (m *mongoCartRepository) ClearCart(ctx context.Context, id domain.CartID) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"items":      bson.A{},
			"updated_at": time.Now().UTC(),
		},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrCartNotFound
	}
	return nil
}

// normalize keeps Items non-nil so an empty cart encodes as [] rather than null.
func normalize(cart *domain.Cart) {
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
}
