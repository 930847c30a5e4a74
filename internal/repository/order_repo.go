package repository

import (
	"context"
	"errors"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder persists the order and its line items in one transaction.
// The insert is conditional on checkoutsessionid: when an order for the
// same payment session already exists (duplicate webhook delivery) the
// call writes nothing and returns false.
func (r *OrderRepository) CreateOrder(ctx context.Context, o *model.Order) (bool, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders
			(ordernumber, checkoutsessionid, paymentintentid, customername,
			 customeremail, buyerid, currency, amountdiscount, totalprice,
			 orderstatus, confirmationsent, orderdate)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (checkoutsessionid) DO NOTHING
		RETURNING orderid
	`
	err = tx.QueryRow(ctx, query,
		o.OrderNumber, o.CheckoutSessionID, o.PaymentIntentID, o.CustomerName,
		o.CustomerEmail, o.BuyerID, o.Currency, o.AmountDiscount, o.TotalPrice,
		o.Status, o.ConfirmationSent, o.OrderDate,
	).Scan(&o.OrderID)
	if errors.Is(err, pgx.ErrNoRows) {
		// session already finalized
		return false, nil
	}
	if err != nil {
		return false, err
	}

	itemQuery := `
		INSERT INTO orderitems (orderid, productid, name, imageurl, quantity, unitprice)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING orderitemid
	`
	for i := range o.LineItems {
		it := &o.LineItems[i]
		if err := tx.QueryRow(ctx, itemQuery,
			o.OrderID, it.ProductID, it.Name, it.ImageURL, it.Quantity, it.UnitPrice,
		).Scan(&it.OrderItemID); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// GetByCheckoutSessionID returns the order for a payment session, line
// items included, or nil when the session was never finalized.
func (r *OrderRepository) GetByCheckoutSessionID(ctx context.Context, sessionID string) (*model.Order, error) {
	query := `
		SELECT orderid, ordernumber, checkoutsessionid, paymentintentid,
		       customername, customeremail, buyerid, currency, amountdiscount,
		       totalprice, orderstatus, confirmationsent, orderdate
		FROM orders WHERE checkoutsessionid=$1
	`
	o, err := r.scanOrder(r.DB.QueryRow(ctx, query, sessionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if o.LineItems, err = r.getLineItems(ctx, o.OrderID); err != nil {
		return nil, err
	}
	return o, nil
}

// ListByBuyer returns the buyer's orders, newest first, line items
// included.
func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	query := `
		SELECT orderid, ordernumber, checkoutsessionid, paymentintentid,
		       customername, customeremail, buyerid, currency, amountdiscount,
		       totalprice, orderstatus, confirmationsent, orderdate
		FROM orders WHERE buyerid=$1 ORDER BY orderdate DESC
	`
	rows, err := r.DB.Query(ctx, query, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Order{}
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if out[i].LineItems, err = r.getLineItems(ctx, out[i].OrderID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MarkConfirmationSent records that the confirmation email went out, so
// redelivered webhooks do not send it again.
func (r *OrderRepository) MarkConfirmationSent(ctx context.Context, orderID int64) error {
	_, err := r.DB.Exec(ctx, `UPDATE orders SET confirmationsent=true WHERE orderid=$1`, orderID)
	return err
}

func (r *OrderRepository) scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var paymentIntentID *string
	if err := row.Scan(
		&o.OrderID, &o.OrderNumber, &o.CheckoutSessionID, &paymentIntentID,
		&o.CustomerName, &o.CustomerEmail, &o.BuyerID, &o.Currency,
		&o.AmountDiscount, &o.TotalPrice, &o.Status, &o.ConfirmationSent,
		&o.OrderDate,
	); err != nil {
		return nil, err
	}
	if paymentIntentID != nil {
		o.PaymentIntentID = *paymentIntentID
	}
	return &o, nil
}

func (r *OrderRepository) getLineItems(ctx context.Context, orderID int64) ([]model.OrderLineItem, error) {
	query := `
		SELECT orderitemid, productid, name, imageurl, quantity, unitprice
		FROM orderitems WHERE orderid=$1 ORDER BY orderitemid
	`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.OrderLineItem{}
	for rows.Next() {
		var it model.OrderLineItem
		var image *string
		if err := rows.Scan(&it.OrderItemID, &it.ProductID, &it.Name, &image, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, err
		}
		if image != nil {
			it.ImageURL = *image
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
