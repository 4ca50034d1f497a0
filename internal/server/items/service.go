package items

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/secureapi/internal/common"
	"github.com/dmitrijs2005/secureapi/internal/escapex"
)

// Service exposes the item operations, scoped to a single owner. Text
// fields are stored raw and entity-encoded exactly once, here at egress,
// so responses are safe to embed in markup no matter where sanitization
// was skipped upstream.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func escaped(item *Item) *Item {
	return &Item{
		ID:      item.ID,
		Title:   escapex.String(item.Title),
		Content: escapex.String(item.Content),
		UserID:  item.UserID,
	}
}

// List returns the items owned by userID with all string fields escaped.
// No cross-user read is possible: the repository query is bound to userID.
func (s *Service) List(ctx context.Context, userID int64) ([]*Item, error) {
	stored, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	result := make([]*Item, 0, len(stored))
	for _, item := range stored {
		result = append(result, escaped(item))
	}

	return result, nil
}

// Add persists a new item owned by userID and returns an escaped copy of
// the created record, including its generated id.
func (s *Service) Add(ctx context.Context, userID int64, title string, content string) (*Item, error) {
	item, err := s.repo.Create(ctx, &Item{Title: title, Content: content, UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	return escaped(item), nil
}
