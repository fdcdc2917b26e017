package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateLead registers a new lead and returns its ID.
func (db *DB) CreateLead(ctx context.Context, name, email, phone string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO leads (name, email, phone)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		name, email, phone,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return id, nil
}

// GetLead retrieves a lead by ID, or nil when not found.
func (db *DB) GetLead(ctx context.Context, id uuid.UUID) (*Lead, error) {
	var lead Lead
	var phone *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, created_at FROM leads WHERE id = $1`,
		id,
	).Scan(&lead.ID, &lead.Name, &lead.Email, &phone, &lead.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	if phone != nil {
		lead.Phone = *phone
	}
	return &lead, nil
}

// ListLeads retrieves recent leads, newest first.
func (db *DB) ListLeads(ctx context.Context, limit int) ([]Lead, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(phone, ''), created_at
		 FROM leads ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// CreateConsultation records a consultation request for a lead.
func (db *DB) CreateConsultation(ctx context.Context, leadID uuid.UUID, topic string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO consultations (lead_id, topic, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		leadID, topic, ConsultationStatusRequested,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create consultation: %w", err)
	}
	return id, nil
}

// ListConsultations retrieves recent consultations, newest first.
func (db *DB) ListConsultations(ctx context.Context, limit int) ([]Consultation, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, lead_id, topic, status, created_at
		 FROM consultations ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	defer rows.Close()

	var consultations []Consultation
	for rows.Next() {
		var c Consultation
		if err := rows.Scan(&c.ID, &c.LeadID, &c.Topic, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan consultation: %w", err)
		}
		consultations = append(consultations, c)
	}
	return consultations, nil
}
