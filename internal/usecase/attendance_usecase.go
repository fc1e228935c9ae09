package usecase

import (
	"errors"
	"time"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
)

var (
	ErrAlreadyCheckedIn    = errors.New("already checked in today")
	ErrNotCheckedIn        = errors.New("not checked in today")
	ErrAlreadyCheckedOut   = errors.New("already checked out today")
	ErrInvalidTimeOrdering = errors.New("check-out before check-in")
	ErrForbidden           = errors.New("forbidden")
)

type AttendanceUsecase struct {
	repo repository.AttendanceRepository
}

func NewAttendanceUsecase(repo repository.AttendanceRepository) *AttendanceUsecase {
	return &AttendanceUsecase{repo: repo}
}

// CheckIn records the first check-in of the day for userID. The pre-check
// only produces a friendlier error; two racing check-ins are decided by the
// (user_id, date) unique index, so exactly one insert wins.
func (u *AttendanceUsecase) CheckIn(userID uint, at time.Time) (*model.Attendance, error) {
	date := at.Format(model.DateLayout)

	if _, err := u.repo.GetByUserAndDate(userID, date); err == nil {
		return nil, ErrAlreadyCheckedIn
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	att := &model.Attendance{
		UserID:      userID,
		Date:        date,
		CheckInTime: &at,
		Status:      model.StatusCheckedIn,
	}
	if err := u.repo.Create(att); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}
	return att, nil
}

// CheckOut closes today's record for userID.
func (u *AttendanceUsecase) CheckOut(userID uint, at time.Time) (*model.Attendance, error) {
	date := at.Format(model.DateLayout)

	att, err := u.repo.GetByUserAndDate(userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotCheckedIn
		}
		return nil, err
	}

	if att.CheckOutTime != nil {
		return nil, ErrAlreadyCheckedOut
	}
	if att.CheckInTime != nil && at.Before(*att.CheckInTime) {
		return nil, ErrInvalidTimeOrdering
	}

	att.CheckOutTime = &at
	att.Status = model.StatusCheckedOut
	if err := u.repo.Update(att); err != nil {
		return nil, err
	}
	return att, nil
}

type ListParams struct {
	TargetUserID uint // zero means the caller themselves
	From, To     string
	Status       model.AttendanceStatus
	Page, Limit  int
}

type ListResult struct {
	Items           []model.Attendance
	Total           int64
	Page            int
	Limit           int
	TotalPages      int
	TodayCheckedIn  bool
	TodayCheckedOut bool
}

// ListForUser returns attendance in ascending date order. Reading another
// user's records requires a privileged caller role.
func (u *AttendanceUsecase) ListForUser(callerID uint, callerRole model.Role, p ListParams) (*ListResult, error) {
	target := p.TargetUserID
	if target == 0 {
		target = callerID
	}
	if target != callerID && !callerRole.Privileged() {
		return nil, ErrForbidden
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}

	q := repository.ListQuery{
		From:   p.From,
		To:     p.To,
		Status: p.Status,
		Offset: (p.Page - 1) * p.Limit,
		Limit:  p.Limit,
	}

	total, err := u.repo.CountByUser(target, q)
	if err != nil {
		return nil, err
	}
	items, err := u.repo.ListByUser(target, q)
	if err != nil {
		return nil, err
	}

	res := &ListResult{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: int((total + int64(p.Limit) - 1) / int64(p.Limit)),
	}

	today := time.Now().Format(model.DateLayout)
	if rec, err := u.repo.GetByUserAndDate(target, today); err == nil {
		res.TodayCheckedIn = true
		res.TodayCheckedOut = rec.CheckOutTime != nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return res, nil
}

// Stats counts the caller's records per status.
func (u *AttendanceUsecase) Stats(userID uint) (map[string]int64, error) {
	stats := make(map[string]int64, 2)
	for _, status := range []model.AttendanceStatus{model.StatusCheckedIn, model.StatusCheckedOut} {
		count, err := u.repo.CountByUserAndStatus(userID, status)
		if err != nil {
			return nil, err
		}
		stats[string(status)] = count
	}
	return stats, nil
}

// DailyOverview returns every user's record for one date, for the
// privileged dashboards.
func (u *AttendanceUsecase) DailyOverview(date string) ([]model.Attendance, error) {
	return u.repo.ListByDate(date)
}
