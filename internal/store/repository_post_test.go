package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/models"
	"github.com/jackc/pgerrcode"
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &postRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	return repo, mock, db
}

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_id", "title", "body"})
}

func TestPostCreate_Success(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()
	post := models.Post{CustomerID: 3, Title: "qui est esse", Body: "est rerum tempore"}

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(post.CustomerID, post.Title, post.Body).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	created, err := repo.Create(ctx, post)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 11 {
		t.Errorf("expected ID=11, got %d", created.ID)
	}
}

func TestPostCreate_MissingCustomer(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO posts").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.Create(ctx, models.Post{CustomerID: 404, Title: "t", Body: "b"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostPage_AppliesOffsetAndLimit(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	// page 2 of 10 per page starts at offset 10
	mock.ExpectQuery("SELECT id, customer_id, title, body(.+)LIMIT 10 OFFSET 10").
		WillReturnRows(postRows())

	_, err := repo.Page(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostPage_ClampsToFirstPage(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, customer_id, title, body(.+)LIMIT 10 OFFSET 0").
		WillReturnRows(postRows())

	_, err := repo.Page(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostListByCustomer_FiltersByCustomerID(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := postRows().
		AddRow(1, 5, "first", "a").
		AddRow(2, 5, "second", "b")

	mock.ExpectQuery("SELECT id, customer_id, title, body FROM posts WHERE customer_id = (.+)").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	posts, err := repo.ListByCustomer(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].CustomerID != 5 || posts[1].CustomerID != 5 {
		t.Errorf("expected all posts to belong to customer 5, got %+v", posts)
	}
}

func TestPostListByCustomer_NoPostsIsEmpty(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, customer_id, title, body FROM posts WHERE customer_id = (.+)").
		WithArgs(int64(404)).
		WillReturnRows(postRows())

	posts, err := repo.ListByCustomer(ctx, 404)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Errorf("expected an empty non-nil slice, got %#v", posts)
	}
}

func TestPostDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestPostRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM posts").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(ctx, 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
