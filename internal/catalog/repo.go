package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("ingredient not found")

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) List(ctx context.Context) ([]Ingredient, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, price, category, stock, created_at, updated_at
                                FROM ingredients ORDER BY category, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Ingredient
	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Price, &ing.Category, &ing.Stock, &ing.CreatedAt, &ing.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id string) (Ingredient, error) {
	var ing Ingredient
	err := r.DB.QueryRow(ctx, `SELECT id, name, price, category, stock, created_at, updated_at
                             FROM ingredients WHERE id=$1`, id).
		Scan(&ing.ID, &ing.Name, &ing.Price, &ing.Category, &ing.Stock, &ing.CreatedAt, &ing.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Ingredient{}, ErrNotFound
	}
	if err != nil {
		return Ingredient{}, err
	}
	return ing, nil
}

// SetStock overwrites the stock counter with an absolute value. Last writer
// wins; this is the admin correction path, not the consumption path.
func (r *Repo) SetStock(ctx context.Context, id string, stock int) (Ingredient, error) {
	var ing Ingredient
	err := r.DB.QueryRow(ctx, `
		UPDATE ingredients SET stock=$2, updated_at=now()
		WHERE id=$1
		RETURNING id, name, price, category, stock, created_at, updated_at`,
		id, stock).
		Scan(&ing.ID, &ing.Name, &ing.Price, &ing.Category, &ing.Stock, &ing.CreatedAt, &ing.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Ingredient{}, ErrNotFound
	}
	if err != nil {
		return Ingredient{}, err
	}
	return ing, nil
}

// ConsumeOne atomically decrements stock by one, refusing to go below zero.
// All order-driven consumption routes through here so concurrent orders
// cannot lose a decrement. Returns ErrNotFound when the id is unknown or
// the counter is already at zero.
func ConsumeOne(ctx context.Context, tx pgx.Tx, id string) (remaining int, err error) {
	err = tx.QueryRow(ctx, `
		UPDATE ingredients SET stock = stock - 1, updated_at = now()
		WHERE id=$1 AND stock > 0
		RETURNING stock`, id).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return remaining, err
}

func (r *Repo) Insert(ctx context.Context, ing Ingredient) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO ingredients(id, name, price, category, stock)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO NOTHING`,
		ing.ID, ing.Name, ing.Price, ing.Category, ing.Stock)
	return err
}
