package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type productDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Price float64            `bson:"price"`
}

func (d productDocument) toDomain() domain.Product {
	return domain.Product{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Price: d.Price,
	}
}

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection("products"),
	}
}

func (m *mongoProductRepository) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	cursor, err := m.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]domain.Product, len(docs))
	for i, d := range docs {
		products[i] = d.toDomain()
	}
	return products, nil
}

func (m *mongoProductRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// a malformed id cannot match any product
		return nil, ErrProductNotFound
	}

	var doc productDocument
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	p := doc.toDomain()
	return &p, nil
}

func (m *mongoProductRepository) CountProducts(ctx context.Context) (int64, error) {
	n, err := m.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

func (m *mongoProductRepository) InsertProducts(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = productDocument{Name: p.Name, Price: p.Price}
	}

	if _, err := m.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}
	return nil
}
