package queries

import (
	"context"
	"time"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads non-terminal orders straight from the
// orders table. Soft-deleted rows never show up.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results come oldest first so the longest
// waiting orders top the list.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			vendor_id,
			courier_id,
			status,
			street,
			city,
			delivery_fee,
			created_at
		FROM orders
		WHERE deleted_at IS NULL
		  AND status NOT IN (?, ?)
	`
	args := []any{order.Delivered.String(), order.Cancelled.String()}

	if query.VendorID() != nil {
		stmt += " AND vendor_id = ?"
		args = append(args, query.VendorID().String())
	}
	if query.CourierID() != nil {
		stmt += " AND courier_id = ?"
		args = append(args, query.CourierID().String())
	}
	stmt += " ORDER BY created_at"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			vendorID  uuid.UUID
			courierID uuid.NullUUID
			status    string
			street    string
			city      string
			fee       decimal.Decimal
			createdAt time.Time
		)

		if err = rows.Scan(&id, &vendorID, &courierID, &status, &street,
			&city, &fee, &createdAt); err != nil {
			return nil, err
		}

		resp := GetActiveOrdersQueryResponse{
			Status:    status,
			Street:    street,
			City:      city,
			CreatedAt: createdAt,
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}
		if courierID.Valid {
			cid, cidErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if cidErr != nil {
				return nil, cidErr
			}
			resp.CourierID = &cid
		}
		if resp.DeliveryFee, err = kernel.NewMoney(fee); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
