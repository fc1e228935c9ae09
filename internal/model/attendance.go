package model

import "time"

// DateLayout is the calendar-date format stored in the date column.
const DateLayout = "2006-01-02"

type AttendanceStatus string

const (
	// No row for (user, date) means ABSENT; only these two are persisted.
	StatusCheckedIn  AttendanceStatus = "CHECKED_IN"
	StatusCheckedOut AttendanceStatus = "CHECKED_OUT"
)

// Attendance is one user's record for one calendar day. The composite
// unique index on (user_id, date) is what makes concurrent check-ins safe.
type Attendance struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	UserID       uint             `gorm:"not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	Date         string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	CheckInTime  *time.Time       `json:"check_in_time"`
	CheckOutTime *time.Time       `json:"check_out_time"`
	Status       AttendanceStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
