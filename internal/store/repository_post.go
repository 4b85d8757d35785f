package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/models"
	"github.com/jackc/pgerrcode"
)

// PostPageSize is the number of posts per page of the paginated listing.
const PostPageSize = 10

var postColumns = []string{"id", "customer_id", "title", "body"}

type postRepository struct {
	logger *logger.Logger
	db     *DB
	sb     sq.StatementBuilderType
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPost, post.CustomerID, post.Title, post.Body)
	if err := row.Scan(&post.ID); err != nil {
		log.Err(err).Str("func", "*postRepository.Create").Msg("error: post insert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Post{}, ErrNotFound
		default:
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return post, nil
}

// InsertMany persists all posts inside one transaction; any failure rolls
// the whole batch back.
func (r *postRepository) InsertMany(ctx context.Context, posts []models.Post) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		row := tx.QueryRowContext(ctx, createPost, post.CustomerID, post.Title, post.Body)
		if err := row.Scan(&post.ID); err != nil {
			log.Err(err).Str("func", "*postRepository.InsertMany").Msg("error: bulk post insert failed")

			switch postgresError(err) {
			case pgerrcode.ForeignKeyViolation:
				return nil, ErrNotFound
			default:
				return nil, fmt.Errorf("unexpected DB error: %w", err)
			}
		}
		inserted = append(inserted, post)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return inserted, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	query, args, err := r.sb.Select(postColumns...).
		From("posts").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL query: %w", err)
	}

	return r.queryPosts(ctx, query, args...)
}

// Page returns the page with the given 1-based number, PostPageSize posts
// per page.
func (r *postRepository) Page(ctx context.Context, number int) ([]models.Post, error) {
	if number < 1 {
		number = 1
	}

	query, args, err := r.sb.Select(postColumns...).
		From("posts").
		OrderBy("id").
		Offset(uint64((number - 1) * PostPageSize)).
		Limit(PostPageSize).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL query: %w", err)
	}

	return r.queryPosts(ctx, query, args...)
}

// ListByCustomer returns all posts authored by one customer, oldest first.
func (r *postRepository) ListByCustomer(ctx context.Context, customerID int64) ([]models.Post, error) {
	query, args, err := r.sb.Select(postColumns...).
		From("posts").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL query: %w", err)
	}

	return r.queryPosts(ctx, query, args...)
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post

	row := r.db.QueryRowContext(ctx, findPostByID, id)
	err := row.Scan(&post.ID, &post.CustomerID, &post.Title, &post.Body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

func (r *postRepository) Update(ctx context.Context, id int64, update models.PostUpdate) (models.Post, error) {
	builder := r.sb.Update("posts")

	hasChanges := false
	if update.CustomerID != nil {
		builder = builder.Set("customer_id", *update.CustomerID)
		hasChanges = true
	}
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		hasChanges = true
	}
	if update.Body != nil {
		builder = builder.Set("body", *update.Body)
		hasChanges = true
	}

	if !hasChanges {
		return r.FindByID(ctx, id)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(postColumns)).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("error building SQL query: %w", err)
	}

	var post models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&post.ID, &post.CustomerID, &post.Title, &post.Body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrNotFound
		}

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Post{}, ErrNotFound
		default:
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return post, nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, deletePost, id)
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

func (r *postRepository) queryPosts(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.queryPosts").Msg("error: post query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.CustomerID, &post.Title, &post.Body); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning rows: %w", err)
	}

	return posts, nil
}
