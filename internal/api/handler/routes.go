package handler

import (
	"net/http"

	"github.com/vfg2006/shift-scheduler-api/internal/api/handler/router"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/authenticating"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/exporting"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/forecasting"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/locking"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/shifting"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/staffing"
	"github.com/vfg2006/shift-scheduler-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Companies(service staffing.StaffService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies",
			Method:      http.MethodGet,
			Handler:     ListCompanies(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies",
			Method:      http.MethodPost,
			Handler:     CreateCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Employees(service staffing.StaffService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/employees",
			Method:      http.MethodGet,
			Handler:     ListEmployees(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/employees",
			Method:      http.MethodPost,
			Handler:     CreateEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/employees/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/employees/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Shifts(service shifting.Shifter, staff staffing.StaffService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/shifts",
			Method:      http.MethodGet,
			Handler:     ListShifts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/shifts",
			Method:      http.MethodPost,
			Handler:     CreateShift(service, staff),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/shifts/bulk",
			Method:      http.MethodPost,
			Handler:     CreateShiftsBulk(service, staff),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/shifts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateShift(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/shifts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteShift(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/grid/slots",
			Method:      http.MethodGet,
			Handler:     GridSlots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func DailySales(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/daily-sales",
			Method:      http.MethodGet,
			Handler:     ListDailySales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/daily-sales",
			Method:      http.MethodPost,
			Handler:     UpsertDailySales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func LockedWeeks(service locking.WeekLocker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/locked-weeks/check",
			Method:      http.MethodGet,
			Handler:     CheckWeekLock(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/locked-weeks",
			Method:      http.MethodGet,
			Handler:     ListLockedWeeks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/locked-weeks",
			Method:      http.MethodPost,
			Handler:     LockWeek(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/companies/:id/locked-weeks/:weekStartDate",
			Method:      http.MethodDelete,
			Handler:     UnlockWeek(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Exports(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/schedules/export",
			Method:      http.MethodGet,
			Handler:     ExportSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
