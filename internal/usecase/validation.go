package usecase

import (
	"strings"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
	"github.com/polkiloo/encomendas/internal/domain/model"
)

// StatusAll disables the status filter.
const StatusAll = "todos"

// NormalizeUsername trims and lower-cases username and appends domain when it carries no "@".
func NormalizeUsername(username, domain string) string {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || strings.Contains(username, "@") {
		return username
	}
	return username + domain
}

// ParseStatusFilter accepts an order status, "todos" or an empty string.
// The last two disable the filter and yield nil.
func ParseStatusFilter(raw string) (*model.OrderStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == StatusAll {
		return nil, nil
	}
	status := model.OrderStatus(raw)
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	return &status, nil
}

// ParseDateFilter parses an optional ISO day. An empty string yields the zero Date.
func ParseDateFilter(raw string) (model.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Date{}, nil
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return model.Date{}, domainErrors.ErrInvalidOrder
	}
	return d, nil
}
