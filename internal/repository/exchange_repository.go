package repository

import (
	"fmt"

	"gorm.io/gorm"

	"resume-analyzer/internal/model"
)

type ExchangeRepository struct {
	db *gorm.DB
}

func NewExchangeRepository(db *gorm.DB) *ExchangeRepository {
	return &ExchangeRepository{db: db}
}

func (r *ExchangeRepository) Create(exchange *model.ChatExchange) error {
	if err := r.db.Create(exchange).Error; err != nil {
		return fmt.Errorf("create chat exchange failed: %w", err)
	}
	return nil
}

func (r *ExchangeRepository) ListBySessionID(sessionID string, limit int) ([]model.ChatExchange, error) {
	q := r.db.Where("session_id = ?", sessionID).Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var exchanges []model.ChatExchange
	if err := q.Find(&exchanges).Error; err != nil {
		return nil, fmt.Errorf("list chat exchanges failed: %w", err)
	}
	return exchanges, nil
}
