package audit

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

type Filter struct {
	Action string
	Entity string
	Page   int
	Limit  int
}

// Normalized applies the paging defaults: page 1 and 20 entries, at most 100.
// Page is capped so the offset of the page always fits in an int.
func (f Filter) Normalized() Filter {
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if maxPage := math.MaxInt / f.Limit; f.Page > maxPage {
		f.Page = maxPage
	}
	return f
}

type Store interface {
	Save(ctx context.Context, entry models.AuditLog) (*models.AuditLog, error)
	// List returns one page, newest first, and the total matching count.
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

// ======================================================
// MEMORY
// ======================================================

type MemoryStore struct {
	mu      sync.RWMutex
	entries []models.AuditLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(ctx context.Context, entry models.AuditLog) (*models.AuditLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uint(len(s.entries) + 1)
	s.entries = append(s.entries, entry)
	return &entry, nil
}

func (s *MemoryStore) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f = f.Normalized()

	s.mu.RLock()
	matched := make([]models.AuditLog, 0)
	for _, e := range s.entries {
		if f.Action != "" && e.Action != f.Action {
			continue
		}
		if f.Entity != "" && e.Entity != f.Entity {
			continue
		}
		matched = append(matched, e)
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	from := (f.Page - 1) * f.Limit
	if from >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	to := min(from+f.Limit, len(matched))
	return matched[from:to], total, nil
}

// ======================================================
// GORM
// ======================================================

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Save(ctx context.Context, entry models.AuditLog) (*models.AuditLog, error) {
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("save audit log: %w", err)
	}
	return &entry, nil
}

func (s *GormStore) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f = f.Normalized()

	query := s.db.WithContext(ctx).Model(&models.AuditLog{})
	if f.Action != "" {
		query = query.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		query = query.Where("entity = ?", f.Entity)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	var logs []models.AuditLog
	if err := query.
		Order("id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, total, nil
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*GormStore)(nil)
)
