package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pizzacraft/backend/internal/catalog"
)

var ErrNotFound = errors.New("order not found")

type Repo struct{ DB *pgxpool.Pool }

const orderColumns = `id, user_id, user_email, items, total, status, payment_ref, created_at, updated_at`

// CreateOrder resolves the selection against the catalog, persists the order
// and decrements stock for every consumed ingredient, all in one transaction.
// An unknown ingredient id leaves its slot empty and consumes nothing; a slot
// whose stock is already exhausted is skipped rather than failing the order.
// Returned ingredients carry their post-deduction stock levels.
func (r *Repo) CreateOrder(ctx context.Context, userID, userEmail string, in SelectionInput, paymentRef string) (Order, []catalog.Ingredient, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Order{}, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sel, err := resolveSelection(ctx, tx, in)
	if err != nil {
		return Order{}, nil, err
	}

	o := Order{
		ID:         NewID(),
		UserID:     userID,
		UserEmail:  userEmail,
		Items:      sel,
		Total:      sel.Total(),
		Status:     StatusReceived,
		PaymentRef: paymentRef,
	}

	items, err := json.Marshal(sel)
	if err != nil {
		return Order{}, nil, err
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO orders(id, user_id, user_email, items, total, status, payment_ref)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		o.ID, o.UserID, o.UserEmail, items, o.Total, o.Status, o.PaymentRef).
		Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return Order{}, nil, err
	}

	var levels []catalog.Ingredient
	for _, ing := range sel.Consumed() {
		remaining, err := catalog.ConsumeOne(ctx, tx, ing.ID)
		if errors.Is(err, catalog.ErrNotFound) {
			log.Printf("order %s: no stock left for %s, skipping deduction", o.ID, ing.ID)
			continue
		}
		if err != nil {
			return Order{}, nil, err
		}
		ing.Stock = remaining
		levels = append(levels, ing)
	}

	if err := tx.Commit(ctx); err != nil {
		return Order{}, nil, err
	}
	return o, levels, nil
}

// resolveSelection snapshots the referenced catalog rows. Unknown ids are
// tolerated: the slot simply stays empty.
func resolveSelection(ctx context.Context, tx pgx.Tx, in SelectionInput) (Selection, error) {
	ids := make([]string, 0, 3+len(in.Veggies))
	for _, id := range []string{in.Base, in.Sauce, in.Cheese} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	ids = append(ids, in.Veggies...)
	if len(ids) == 0 {
		return Selection{}, nil
	}

	rows, err := tx.Query(ctx, `SELECT id, name, price, category, stock FROM ingredients WHERE id = ANY($1)`, ids)
	if err != nil {
		return Selection{}, err
	}
	defer rows.Close()

	byID := make(map[string]catalog.Ingredient, len(ids))
	for rows.Next() {
		var ing catalog.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Price, &ing.Category, &ing.Stock); err != nil {
			return Selection{}, err
		}
		byID[ing.ID] = ing
	}
	if err := rows.Err(); err != nil {
		return Selection{}, err
	}

	var sel Selection
	if ing, ok := byID[in.Base]; ok {
		sel.Base = &ing
	}
	if ing, ok := byID[in.Sauce]; ok {
		sel.Sauce = &ing
	}
	if ing, ok := byID[in.Cheese]; ok {
		sel.Cheese = &ing
	}
	for _, id := range in.Veggies {
		if ing, ok := byID[id]; ok {
			sel.Veggies = append(sel.Veggies, ing)
		}
	}
	return sel, nil
}

// List returns orders newest first, optionally filtered by user.
func (r *Repo) List(ctx context.Context, userID string) ([]Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	args := []any{}
	if userID != "" {
		q = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
		args = append(args, userID)
	}
	rows, err := r.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id string) (Order, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *Repo) UpdateStatus(ctx context.Context, id string, status Status) (Order, error) {
	row := r.DB.QueryRow(ctx, `
		UPDATE orders SET status=$2, updated_at=now()
		WHERE id=$1
		RETURNING `+orderColumns, id, status)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	var items []byte
	if err := row.Scan(&o.ID, &o.UserID, &o.UserEmail, &items, &o.Total, &o.Status, &o.PaymentRef, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return Order{}, err
	}
	return o, nil
}
