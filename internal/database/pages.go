package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"CollectKeeper/internal/database/models"
	core "CollectKeeper/pkg/models"
)

func createPage(tx *gorm.DB, draft core.PageDraft) (*models.GeneralPage, error) {
	page := models.GeneralPage{
		Title:  draft.Title,
		Icon:   draft.Icon,
		Color:  draft.Color,
		Pinned: draft.Pinned,
	}
	if err := tx.Create(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func touchPage(tx *gorm.DB, pageID uint, ts time.Time) error {
	result := tx.Model(&models.GeneralPage{}).
		Where("id = ?", pageID).
		Update("updated_at", ts)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TouchModified bumps the page's last-modified timestamp. Item writes
// do this inside their own transaction; this entry point exists for the
// page collaborator contract.
func (s *Store) TouchModified(ctx context.Context, pageID uint, ts time.Time) error {
	return touchPage(s.db.WithContext(ctx), pageID, ts)
}

func (s *Store) SetPageArchived(ctx context.Context, pageID uint, archived bool) error {
	return s.setPageFlag(ctx, pageID, "archived", archived)
}

func (s *Store) SetPagePinned(ctx context.Context, pageID uint, pinned bool) error {
	return s.setPageFlag(ctx, pageID, "pinned", pinned)
}

func (s *Store) setPageFlag(ctx context.Context, pageID uint, column string, value bool) error {
	result := s.db.WithContext(ctx).Model(&models.GeneralPage{}).
		Where("id = ?", pageID).
		Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
