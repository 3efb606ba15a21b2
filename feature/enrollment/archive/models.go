package archive

import "time"

// LifecycleRecord is the 'enrollment_lifecycles' table: one row per
// (section, student) holding the latest computed lifecycle. Rows are
// upserted on every archive run; the table is write-only output and is
// never read back by the reconciliation engine.
type LifecycleRecord struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Section      string    `gorm:"column:section;size:128;uniqueIndex:idx_section_student"`
	StudentID    string    `gorm:"column:student_id;size:64;uniqueIndex:idx_section_student"`
	FirstName    string    `gorm:"column:first_name;size:128"`
	LastName     string    `gorm:"column:last_name;size:128"`
	Email        string    `gorm:"column:email;size:255"`
	Status       string    `gorm:"column:status;size:64"`
	EnrolledDate string    `gorm:"column:enrolled_date;size:10"`
	DroppedDate  string    `gorm:"column:dropped_date;size:10"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (LifecycleRecord) TableName() string {
	return "enrollment_lifecycles"
}
