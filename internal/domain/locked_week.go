package domain

import "time"

// LockedWeek bloqueia alterações de escala na semana iniciada em
// WeekStartDate (sempre uma segunda-feira).
type LockedWeek struct {
	CompanyID     string    `json:"companyId"`
	WeekStartDate string    `json:"weekStartDate"`
	LockedBy      *int      `json:"lockedBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

type LockWeekRequest struct {
	WeekStartDate string `json:"weekStartDate"`
}

type WeekLockStatus struct {
	CompanyID     string `json:"companyId"`
	WeekStartDate string `json:"weekStartDate"`
	IsLocked      bool   `json:"isLocked"`
}
