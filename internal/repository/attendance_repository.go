package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

// ListQuery narrows and pages an attendance listing. Zero values mean
// "no filter"; Limit <= 0 disables paging.
type ListQuery struct {
	From   string
	To     string
	Status model.AttendanceStatus
	Offset int
	Limit  int
}

type AttendanceRepository interface {
	Create(att *model.Attendance) error
	GetByUserAndDate(userID uint, date string) (*model.Attendance, error)
	Update(att *model.Attendance) error
	ListByUser(userID uint, q ListQuery) ([]model.Attendance, error)
	CountByUser(userID uint, q ListQuery) (int64, error)
	CountByUserAndStatus(userID uint, status model.AttendanceStatus) (int64, error)
	ListByDate(date string) ([]model.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create inserts a new record. The (user_id, date) unique index rejects a
// second row for the same day; callers see that as ErrDuplicate. This is
// the insert-if-absent write that closes the concurrent check-in race.
func (r *attendanceRepository) Create(att *model.Attendance) error {
	return translate(r.db.Create(att).Error)
}

func (r *attendanceRepository) GetByUserAndDate(userID uint, date string) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&att).Error
	if err != nil {
		return nil, translate(err)
	}
	return &att, nil
}

func (r *attendanceRepository) Update(att *model.Attendance) error {
	return translate(r.db.Save(att).Error)
}

func (r *attendanceRepository) filtered(userID uint, q ListQuery) *gorm.DB {
	tx := r.db.Model(&model.Attendance{}).Where("user_id = ?", userID)
	if q.From != "" {
		tx = tx.Where("date >= ?", q.From)
	}
	if q.To != "" {
		tx = tx.Where("date <= ?", q.To)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	return tx
}

func (r *attendanceRepository) ListByUser(userID uint, q ListQuery) ([]model.Attendance, error) {
	var list []model.Attendance
	tx := r.filtered(userID, q).Order("date asc")
	if q.Limit > 0 {
		tx = tx.Offset(q.Offset).Limit(q.Limit)
	}
	err := tx.Find(&list).Error
	return list, translate(err)
}

func (r *attendanceRepository) CountByUser(userID uint, q ListQuery) (int64, error) {
	var count int64
	err := r.filtered(userID, q).Count(&count).Error
	return count, translate(err)
}

func (r *attendanceRepository) CountByUserAndStatus(userID uint, status model.AttendanceStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attendance{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, translate(err)
}

func (r *attendanceRepository) ListByDate(date string) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.Where("date = ?", date).Order("user_id asc").Find(&list).Error
	return list, translate(err)
}
