package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/internal/schema"
	"github.com/MKhiriev/storefront-api/models"
)

func newTestProductRepo(t *testing.T) (*productRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &productRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	return repo, mock, db
}

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "price", "description", "category", "image",
		"rating_rate", "rating_count", "created_at", "updated_at",
	})
}

func TestProductCreate_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	product := models.Product{
		Title:       "Wireless Mouse",
		Price:       24.99,
		Description: "A compact wireless mouse",
		Category:    models.CategoryElectronics,
		Image:       "https://example.com/mouse.png",
		Rating:      models.Rating{Rate: 4.2, Count: 120},
	}

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(product.Title, product.Price, product.Description,
			string(product.Category), product.Image, product.Rating.Rate, product.Rating.Count).
		WillReturnRows(rows)

	created, err := repo.Create(ctx, product)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected ID=7, got %d", created.ID)
	}
}

func TestProductInsertMany_CommitsOnce(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	products := []models.Product{
		{Title: "One", Price: 1, Category: models.CategoryJewelery},
		{Title: "Two", Price: 2, Category: models.CategoryJewelery},
	}

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO products").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))
	mock.ExpectQuery("INSERT INTO products").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(2, now, now))
	mock.ExpectCommit()

	inserted, err := repo.InsertMany(ctx, products)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inserted) != 2 {
		t.Fatalf("expected 2 inserted products, got %d", len(inserted))
	}
	if inserted[1].ID != 2 {
		t.Errorf("expected second ID=2, got %d", inserted[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProductInsertMany_RollsBackOnFailure(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	products := []models.Product{
		{Title: "One", Price: 1},
		{Title: "Two", Price: 2},
	}

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO products").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))
	mock.ExpectQuery("INSERT INTO products").
		WillReturnError(errors.New("db failure"))
	mock.ExpectRollback()

	_, err := repo.InsertMany(ctx, products)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProductPage_AppliesOffsetAndLimit(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	// page 3 of 10 per page starts at offset 20
	mock.ExpectQuery("SELECT id, title, price(.+)LIMIT 10 OFFSET 20").
		WillReturnRows(productRows())

	_, err := repo.Page(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProductFindByID_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title, price").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(ctx, 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductUpdate_OnlyProvidedFields(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	price := 19.99

	now := time.Now()
	rows := productRows().
		AddRow(7, "Wireless Mouse", price, "A compact wireless mouse",
			"electronics", "https://example.com/mouse.png", 4.2, 120, now, now)

	// only updated_at, price and the id predicate appear in the statement
	mock.ExpectQuery(`UPDATE products SET updated_at = NOW\(\), price = \$1 WHERE id = \$2`).
		WithArgs(price, int64(7)).
		WillReturnRows(rows)

	updated, err := repo.Update(ctx, 7, models.ProductUpdate{Price: &price})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Price != price {
		t.Errorf("expected price %v, got %v", price, updated.Price)
	}
	if updated.Title != "Wireless Mouse" {
		t.Errorf("expected untouched title, got %q", updated.Title)
	}
}

func TestProductUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	title := "Renamed"

	mock.ExpectQuery("UPDATE products").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(ctx, 404, models.ProductUpdate{Title: &title})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM products").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductSearch_TextBranchMatchesAllFields(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	query, err := schema.ResolveSearch(models.SearchRequest{Term: "a.b"})
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}

	mock.ExpectQuery("SELECT id, title, price(.+)ILIKE(.+)ILIKE(.+)ILIKE").
		WithArgs("%a.b%", "%a.b%", "%a.b%").
		WillReturnRows(productRows())

	if _, err := repo.Search(ctx, query); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProductSearch_EscapesWildcards(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	query, err := schema.ResolveSearch(models.SearchRequest{Term: "100%", Type: "title"})
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}

	mock.ExpectQuery("SELECT id, title, price(.+)title ILIKE").
		WithArgs(`%100\%%`).
		WillReturnRows(productRows())

	if _, err := repo.Search(ctx, query); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProductSearch_NumericBranch(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	query, err := schema.ResolveSearch(models.SearchRequest{Term: "4.5", Type: "rating"})
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}

	mock.ExpectQuery("SELECT id, title, price(.+)rating_rate = ").
		WithArgs(4.5).
		WillReturnRows(productRows())

	if _, err := repo.Search(ctx, query); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
