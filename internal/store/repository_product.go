package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/schema"
	"github.com/MKhiriev/storefront-api/models"
)

// ProductPageSize is the number of products per page of the paginated
// listing.
const ProductPageSize = 10

var productColumns = []string{
	"id", "title", "price", "description", "category", "image",
	"rating_rate", "rating_count", "created_at", "updated_at",
}

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Static statements live in sql_queries.go; dynamic
// ones (search, partial update, paging) are built with squirrel.
type productRepository struct {
	logger *logger.Logger
	db     *DB
	sb     sq.StatementBuilderType
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *productRepository) Create(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProduct,
		product.Title, product.Price, product.Description, product.Category,
		product.Image, product.Rating.Rate, product.Rating.Count)

	if err := row.Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*productRepository.Create").Msg("error: product insert failed")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

// InsertMany persists all products inside one transaction. Validation has
// already accepted every element, so any failure here rolls the whole
// batch back.
func (r *productRepository) InsertMany(ctx context.Context, products []models.Product) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := make([]models.Product, 0, len(products))
	for _, product := range products {
		row := tx.QueryRowContext(ctx, createProduct,
			product.Title, product.Price, product.Description, product.Category,
			product.Image, product.Rating.Rate, product.Rating.Count)

		if err := row.Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*productRepository.InsertMany").Msg("error: bulk product insert failed")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		inserted = append(inserted, product)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return inserted, nil
}

func (r *productRepository) List(ctx context.Context) ([]models.Product, error) {
	query, args, err := r.sb.Select(productColumns...).
		From("products").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL query: %w", err)
	}

	return r.queryProducts(ctx, query, args...)
}

// Page returns the page with the given 1-based number, ProductPageSize
// products per page.
func (r *productRepository) Page(ctx context.Context, number int) ([]models.Product, error) {
	if number < 1 {
		number = 1
	}

	query, args, err := r.sb.Select(productColumns...).
		From("products").
		OrderBy("id").
		Offset(uint64((number - 1) * ProductPageSize)).
		Limit(ProductPageSize).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL query: %w", err)
	}

	return r.queryProducts(ctx, query, args...)
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	row := r.db.QueryRowContext(ctx, findProductByID, id)

	err := row.Scan(&product.ID, &product.Title, &product.Price, &product.Description,
		&product.Category, &product.Image, &product.Rating.Rate, &product.Rating.Count,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

// Update applies a partial modification: only non-nil fields of update are
// written, everything else is left untouched. The updated document is
// returned; a missing id yields ErrNotFound.
func (r *productRepository) Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	builder := r.sb.Update("products").Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Image != nil {
		builder = builder.Set("image", *update.Image)
	}
	if update.Rating != nil {
		builder = builder.
			Set("rating_rate", update.Rating.Rate).
			Set("rating_count", update.Rating.Count)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(productColumns)).
		ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("error building SQL query: %w", err)
	}

	var product models.Product
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&product.ID, &product.Title, &product.Price, &product.Description,
		&product.Category, &product.Image, &product.Rating.Rate, &product.Rating.Count,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, deleteProduct, id)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Search executes a resolved search query: a case-insensitive contains
// match over one or more text columns, or an exact numeric match. Pattern
// escaping has already been handled by the resolver, so ILIKE
// metacharacters in the original term match literally.
func (r *productRepository) Search(ctx context.Context, search schema.SearchQuery) ([]models.Product, error) {
	builder := r.sb.Select(productColumns...).From("products").OrderBy("id")

	if search.Numeric {
		builder = builder.Where(sq.Eq{search.Field: search.Value})
	} else {
		or := make(sq.Or, 0, len(search.Fields))
		for _, field := range search.Fields {
			or = append(or, sq.ILike{field: search.Pattern})
		}
		builder = builder.Where(or)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL query: %w", err)
	}

	return r.queryProducts(ctx, query, args...)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.queryProducts").Msg("error: product query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var product models.Product
		err := rows.Scan(&product.ID, &product.Title, &product.Price, &product.Description,
			&product.Category, &product.Image, &product.Rating.Rate, &product.Rating.Count,
			&product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning rows: %w", err)
	}

	return products, nil
}
