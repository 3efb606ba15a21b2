package archive

import (
	"context"
	"fmt"

	"roster-manager/core/reconcile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists computed lifecycles to the archive database.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on an established connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the archive table schema.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&LifecycleRecord{}); err != nil {
		return fmt.Errorf("failed to migrate archive schema: %w", err)
	}
	return nil
}

// SaveRoster upserts one lifecycle row per student of a cumulative roster,
// keyed on (section, student). Returns the number of rows written.
func (s *Store) SaveRoster(ctx context.Context, result *reconcile.RosterResult) (int, error) {
	saved := 0
	for _, row := range result.Rows {
		rec := LifecycleRecord{
			Section:      result.Section,
			StudentID:    row.ID,
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			Email:        row.Email,
			Status:       row.Status,
			EnrolledDate: row.EnrolledDate,
			DroppedDate:  row.DroppedDate,
		}

		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "section"}, {Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_name", "last_name", "email", "status",
				"enrolled_date", "dropped_date", "updated_at",
			}),
		}).Create(&rec).Error
		if err != nil {
			return saved, fmt.Errorf("failed to upsert lifecycle for student %s: %w", row.ID, err)
		}
		saved++
	}
	return saved, nil
}
