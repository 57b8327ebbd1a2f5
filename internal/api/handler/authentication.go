package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/authenticating"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
	"github.com/vfg2006/shift-scheduler-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warnf("Falha no login de %s", req.Email)
			if authenticating.IsCredentialsError(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Email ou senha inválidos", nil)
				return
			}
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// Register cria um usuário pela rota pública, sempre com perfil de funcionário.
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Register")

		var user domain.User
		if !decodeJSON(w, r, &user) {
			return
		}

		user.RoleID = domain.RoleEmployee
		createUser(w, r, service, &user)
	}
}

// ChangePassword permite que o usuário altere a própria senha.
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChangePassword")

		targetUserID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if claims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar a senha de outro usuário", nil)
			return
		}

		if err := service.ChangePassword(r.Context(), targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao alterar senha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GeneratePassword gera uma senha forte para um usuário. Apenas administradores.
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GeneratePassword")

		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		targetUserID, ok := userIDParam(w, r)
		if !ok {
			return
		}

		newPassword, err := service.GenerateStrongPassword(r.Context(), claims.UserID, targetUserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer, "Erro ao gerar senha")
			return
		}

		writeJSON(w, http.StatusOK, GeneratePasswordResponse{
			Password: newPassword,
		})
	}
}

func userIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
		return 0, false
	}
	return id, true
}
