package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/luckkalpna/Vibe-Commerce-Cart/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteProductRepository is the relational catalog backend. Its migrations
// create and seed the products table.
type SQLiteProductRepository struct {
	db *sql.DB
}

func NewSQLiteProductRepository(dbPath string) (*SQLiteProductRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// every connection to ":memory:" would get its own database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteProductRepository{db: db}, nil
}

func (r *SQLiteProductRepository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *SQLiteProductRepository) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (r *SQLiteProductRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	rowID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, ErrProductNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT id, name, price FROM products WHERE id = ?`, rowID)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProductRepository) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

func (r *SQLiteProductRepository) InsertProducts(ctx context.Context, products []domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range products {
		if _, err := tx.ExecContext(ctx, `INSERT INTO products (name, price) VALUES (?, ?)`, p.Name, p.Price); err != nil {
			return fmt.Errorf("failed to insert product %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit products: %w", err)
	}
	return nil
}

func (r *SQLiteProductRepository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (domain.Product, error) {
	var (
		id int64
		p  domain.Product
	)
	if err := s.Scan(&id, &p.Name, &p.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}
	p.ID = strconv.FormatInt(id, 10)
	return p, nil
}
