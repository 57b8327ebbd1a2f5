package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/authenticating"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
)

// GetUser retorna informações do usuário por ID. Usuários comuns só veem o
// próprio perfil.
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}

		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}
		if claims.UserID != id && claims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para ver este usuário", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// CreateUser cria um novo usuário
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var user domain.User
		if !decodeJSON(w, r, &user) {
			return
		}

		createUser(w, r, service, &user)
	}
}

func createUser(w http.ResponseWriter, r *http.Request, service authenticating.Authenticator, user *domain.User) {
	if user.Name == "" || user.Email == "" || user.PasswordHash == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)
		return
	}

	created, err := service.CreateUser(r.Context(), user)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListUsers lista todos os usuários
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao buscar usuários")
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// UpdateUser atualiza informações do usuário
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateUser")

		id, ok := userIDParam(w, r)
		if !ok {
			return
		}

		// o usuário edita apenas o próprio perfil, a menos que seja admin
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}
		isAdmin := claims.UserRoleID == domain.RoleAdmin
		if claims.UserID != id && !isAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para editar este usuário", nil)
			return
		}

		var updateReq domain.UpdateUserRequest
		if !decodeJSON(w, r, &updateReq) {
			return
		}
		updateReq.ID = id

		if !isAdmin && (updateReq.RoleID != nil || updateReq.CompanyID != nil) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem alterar perfil e empresa do usuário", nil)
			return
		}

		if err := service.UpdateUser(r.Context(), &updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
