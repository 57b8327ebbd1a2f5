package handler

import (
	"net/http"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/shift-scheduler-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	t.Run("retorna token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().LoginUser(gomock.Any(), "ana@loja.com", "Senha@123").Return("token-jwt", nil)

		rec := serve(Login(auth), newRequest(t, http.MethodPost, "/v1/login", LoginRequest{Email: "ana@loja.com", Password: "Senha@123"}, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "token-jwt", decodeBody[map[string]string](t, rec)["token"])
	})

	t.Run("credenciais inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))

		rec := serve(Login(auth), newRequest(t, http.MethodPost, "/v1/login", LoginRequest{Email: "ana@loja.com", Password: "errada"}, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, errorCode(t, rec))
	})

	t.Run("email inexistente responde como credencial inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", authenticating.NewAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, "x@loja.com"))

		rec := serve(Login(auth), newRequest(t, http.MethodPost, "/v1/login", LoginRequest{Email: "x@loja.com", Password: "Senha@123"}, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, errorCode(t, rec))
	})

	t.Run("usuário desativado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", authenticating.NewAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, ""))

		rec := serve(Login(auth), newRequest(t, http.MethodPost, "/v1/login", LoginRequest{Email: "ana@loja.com", Password: "Senha@123"}, nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().CreateUser(gomock.Any(), gomock.Cond(func(user *domain.User) bool {
		return user.RoleID == domain.RoleEmployee
	})).DoAndReturn(func(_ any, user *domain.User) (*domain.User, error) {
		user.ID = 10
		user.PasswordHash = ""
		return user, nil
	})

	body := map[string]any{"name": "Ana", "email": "ana@loja.com", "password": "Senha@123", "roleId": domain.RoleAdmin}
	rec := serve(Register(auth), newRequest(t, http.MethodPost, "/v1/register", body, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.RoleEmployee, decodeBody[domain.User](t, rec).RoleID)
}

func TestChangePassword(t *testing.T) {
	param := httprouter.Param{Key: "id", Value: "2"}
	body := ChangePasswordRequest{CurrentPassword: "Antiga@123", NewPassword: "Nova@12345"}

	t.Run("altera a própria senha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().ChangePassword(gomock.Any(), 2, "Antiga@123", "Nova@12345").Return(nil)

		rec := serve(ChangePassword(auth), newRequest(t, http.MethodPost, "/v1/users/2/change-password", body, managerClaims("c1"), param))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("não altera senha de outro usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		rec := serve(ChangePassword(auth), newRequest(t, http.MethodPost, "/v1/users/2/change-password", body, adminClaims(), param))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, errorCode(t, rec))
	})

	t.Run("id inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		rec := serve(ChangePassword(auth), newRequest(t, http.MethodPost, "/v1/users/x/change-password", body,
			managerClaims("c1"), httprouter.Param{Key: "id", Value: "x"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetMe(t *testing.T) {
	t.Run("retorna perfil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().GetUserProfile(gomock.Any(), 2).Return(&domain.User{ID: 2, Name: "Ana"}, nil)

		rec := serve(GetMe(auth), newRequest(t, http.MethodGet, "/v1/me", nil, managerClaims("c1")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Ana", decodeBody[domain.User](t, rec).Name)
	})

	t.Run("sem claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		rec := serve(GetMe(auth), newRequest(t, http.MethodGet, "/v1/me", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpdateUser(t *testing.T) {
	param := httprouter.Param{Key: "id", Value: "2"}

	t.Run("gerente não altera o próprio perfil de acesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		rec := serve(UpdateUser(auth), newRequest(t, http.MethodPut, "/v1/users/2", map[string]any{"roleId": domain.RoleAdmin},
			managerClaims("c1"), param))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin altera empresa do usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().UpdateUser(gomock.Any(), &domain.UpdateUserRequest{ID: 2, CompanyID: strPtr("c9")}).Return(nil)

		rec := serve(UpdateUser(auth), newRequest(t, http.MethodPut, "/v1/users/2", map[string]any{"companyId": "c9"},
			adminClaims(), param))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestGetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	rec := serve(GetUser(auth), newRequest(t, http.MethodGet, "/v1/users/5", nil, managerClaims("c1"), httprouter.Param{Key: "id", Value: "5"}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
