package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllClientsQueryHandler retrieves all client read models from the database.
type GetAllClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllClientsQueryHandler creates a handler for client listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllClientsQueryHandler(db *gorm.DB) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{db: db}
}

// Handle executes the query to retrieve all clients in registration order.
func (h GetAllClientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllClientsQuery,
) ([]ClientReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	clients := make([]ClientReadModel, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			email
		FROM clients
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var clientModel ClientReadModel
		if err = rows.Scan(
			&clientModel.ID,
			&clientModel.Name,
			&clientModel.Phone,
			&clientModel.Email,
		); err != nil {
			return nil, err
		}
		clients = append(clients, clientModel)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
