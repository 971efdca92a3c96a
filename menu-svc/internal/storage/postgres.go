package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"desi-beats/menu-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		seq BIGSERIAL,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT,
		image TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		seq BIGSERIAL,
		category_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(10, 2) NOT NULL,
		image TEXT,
		available BOOLEAN NOT NULL DEFAULT TRUE,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		seq BIGSERIAL,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		customer_address TEXT,
		delivery_type TEXT NOT NULL,
		total_amount NUMERIC(10, 2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		items TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS menu_items_category_idx ON menu_items (category_id)`,
}

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

const categoryColumns = `id, name, slug, COALESCE(description, ''), COALESCE(image, ''), sort_order`

func scanCategory(row interface{ Scan(...interface{}) error }) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.Order)
	return c, err
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY sort_order, seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	c, err := scanCategory(r.DB.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *PostgresRepository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	c, err := scanCategory(r.DB.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug))
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	c.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO categories (id, name, slug, description, image, sort_order) VALUES ($1, $2, $3, $4, $5, $6)",
		c.ID, c.Name, c.Slug, c.Description, c.Image, c.Order)
	return translate(err)
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE categories SET name=$1, slug=$2, description=$3, image=$4, sort_order=$5 WHERE id=$6",
		c.Name, c.Slug, c.Description, c.Image, c.Order, c.ID)
	return affected(result, err)
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, nil
	}
	result, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const menuItemColumns = `id, category_id, name, COALESCE(description, ''), price, COALESCE(image, ''), available, featured, sort_order`

func scanMenuItem(row interface{ Scan(...interface{}) error }) (domain.MenuItem, error) {
	var m domain.MenuItem
	err := row.Scan(&m.ID, &m.CategoryID, &m.Name, &m.Description, &m.Price, &m.Image, &m.Available, &m.Featured, &m.Order)
	return m, err
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items`
	var args []interface{}
	switch {
	case filter.CategoryID != "":
		query += ` WHERE category_id = $1`
		args = append(args, filter.CategoryID)
	case filter.FeaturedOnly:
		query += ` WHERE featured = TRUE`
	}
	query += ` ORDER BY sort_order, seq`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	m, err := scanMenuItem(r.DB.QueryRowContext(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	item.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_items (id, category_id, name, description, price, image, available, featured, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.CategoryID, item.Name, item.Description, item.Price, item.Image, item.Available, item.Featured, item.Order)
	return translate(err)
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET category_id=$1, name=$2, description=$3, price=$4, image=$5, available=$6, featured=$7, sort_order=$8
		WHERE id=$9`,
		item.CategoryID, item.Name, item.Description, item.Price, item.Image, item.Available, item.Featured, item.Order, item.ID)
	return affected(result, err)
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, nil
	}
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const orderColumns = `id, customer_name, customer_phone, COALESCE(customer_address, ''), delivery_type, total_amount, status, items, created_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.CustomerAddress, &o.DeliveryType,
		&o.TotalAmount, &o.Status, &o.Items, &o.CreatedAt)
	return o, err
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO orders (id, customer_name, customer_phone, customer_address, delivery_type, total_amount, status, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		order.ID, order.CustomerName, order.CustomerPhone, order.CustomerAddress, order.DeliveryType,
		order.TotalAmount, order.Status, order.Items, order.CreatedAt)
	return translate(err)
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	o, err := scanOrder(r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	o, err := scanOrder(r.DB.QueryRowContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2 RETURNING `+orderColumns, status, id))
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *PostgresRepository) DeleteOrder(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, nil
	}
	result, err := r.DB.ExecContext(ctx, "DELETE FROM orders WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// translate maps driver errors onto the domain sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%s: %w", pqErr.Constraint, domain.ErrConflict)
	}
	return err
}

func affected(result sql.Result, err error) error {
	if err != nil {
		return translate(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
