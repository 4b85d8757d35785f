package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/storefront-api/internal/logger"
	"github.com/MKhiriev/storefront-api/models"
	"github.com/jackc/pgerrcode"
)

// CustomerPageSize is the number of customers per page of the paginated
// listing.
const CustomerPageSize = 7

var customerColumns = []string{
	"id", "name", "username", "email", "address", "phone", "website", "company",
}

// customerRepository is the PostgreSQL-backed implementation of
// [CustomerRepository]. Address and company are structured sub-documents
// stored as JSONB columns.
type customerRepository struct {
	logger *logger.Logger
	db     *DB
	sb     sq.StatementBuilderType
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	address, company, err := marshalSubDocuments(customer)
	if err != nil {
		return models.Customer{}, err
	}

	row := r.db.QueryRowContext(ctx, createCustomer,
		customer.Name, customer.Username, customer.Email, address,
		customer.Phone, customer.Website, company)

	if err := row.Scan(&customer.ID); err != nil {
		log.Err(err).Str("func", "*customerRepository.Create").Msg("error: customer insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Customer{}, newDuplicateError(constraintField(err, customer.TableName()))
		default:
			return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return customer, nil
}

// InsertMany persists all customers inside one transaction; any failure,
// including a duplicate username or email, rolls the whole batch back.
func (r *customerRepository) InsertMany(ctx context.Context, customers []models.Customer) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := make([]models.Customer, 0, len(customers))
	for _, customer := range customers {
		address, company, err := marshalSubDocuments(customer)
		if err != nil {
			return nil, err
		}

		row := tx.QueryRowContext(ctx, createCustomer,
			customer.Name, customer.Username, customer.Email, address,
			customer.Phone, customer.Website, company)

		if err := row.Scan(&customer.ID); err != nil {
			log.Err(err).Str("func", "*customerRepository.InsertMany").Msg("error: bulk customer insert failed")

			switch postgresError(err) {
			case pgerrcode.UniqueViolation:
				return nil, newDuplicateError(constraintField(err, customer.TableName()))
			default:
				return nil, fmt.Errorf("unexpected DB error: %w", err)
			}
		}
		inserted = append(inserted, customer)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return inserted, nil
}

func (r *customerRepository) List(ctx context.Context) ([]models.Customer, error) {
	query, args, err := r.sb.Select(customerColumns...).
		From("customers").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL query: %w", err)
	}

	return r.queryCustomers(ctx, query, args...)
}

// Page returns the page with the given 1-based number, CustomerPageSize
// customers per page.
func (r *customerRepository) Page(ctx context.Context, number int) ([]models.Customer, error) {
	if number < 1 {
		number = 1
	}

	query, args, err := r.sb.Select(customerColumns...).
		From("customers").
		OrderBy("id").
		Offset(uint64((number - 1) * CustomerPageSize)).
		Limit(CustomerPageSize).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL query: %w", err)
	}

	return r.queryCustomers(ctx, query, args...)
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (models.Customer, error) {
	row := r.db.QueryRowContext(ctx, findCustomerByID, id)

	customer, err := scanCustomer(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrNotFound
		}
		return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return customer, nil
}

// Update applies a partial modification: only non-nil fields of update
// are written. Duplicate username or email surfaces as a DuplicateError.
func (r *customerRepository) Update(ctx context.Context, id int64, update models.CustomerUpdate) (models.Customer, error) {
	builder := r.sb.Update("customers")

	hasChanges := false
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
		hasChanges = true
	}
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
		hasChanges = true
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
		hasChanges = true
	}
	if update.Address != nil {
		address, err := json.Marshal(update.Address)
		if err != nil {
			return models.Customer{}, fmt.Errorf("error marshaling address: %w", err)
		}
		builder = builder.Set("address", address)
		hasChanges = true
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
		hasChanges = true
	}
	if update.Website != nil {
		builder = builder.Set("website", *update.Website)
		hasChanges = true
	}
	if update.Company != nil {
		company, err := json.Marshal(update.Company)
		if err != nil {
			return models.Customer{}, fmt.Errorf("error marshaling company: %w", err)
		}
		builder = builder.Set("company", company)
		hasChanges = true
	}

	// Nothing to write: the update degenerates to a lookup.
	if !hasChanges {
		return r.FindByID(ctx, id)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(customerColumns)).
		ToSql()
	if err != nil {
		return models.Customer{}, fmt.Errorf("error building SQL query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	customer, err := scanCustomer(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrNotFound
		}

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Customer{}, newDuplicateError(constraintField(err, customer.TableName()))
		default:
			return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return customer, nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, deleteCustomer, id)
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

func (r *customerRepository) queryCustomers(ctx context.Context, query string, args ...any) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.queryCustomers").Msg("error: customer query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning rows: %w", err)
	}

	return customers, nil
}

// scanCustomer reads one customer row, decoding the JSONB sub-documents.
func scanCustomer(scan func(dest ...any) error) (models.Customer, error) {
	var customer models.Customer
	var address, company []byte

	err := scan(&customer.ID, &customer.Name, &customer.Username, &customer.Email,
		&address, &customer.Phone, &customer.Website, &company)
	if err != nil {
		return models.Customer{}, err
	}

	if err := json.Unmarshal(address, &customer.Address); err != nil {
		return models.Customer{}, fmt.Errorf("error decoding address: %w", err)
	}
	if err := json.Unmarshal(company, &customer.Company); err != nil {
		return models.Customer{}, fmt.Errorf("error decoding company: %w", err)
	}

	return customer, nil
}

func marshalSubDocuments(customer models.Customer) ([]byte, []byte, error) {
	address, err := json.Marshal(customer.Address)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling address: %w", err)
	}

	company, err := json.Marshal(customer.Company)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling company: %w", err)
	}

	return address, company, nil
}
