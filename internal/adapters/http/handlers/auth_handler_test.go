package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/domain/admin"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
	"github.com/jsamuelsen11/restaurant-api/mocks"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	h := handlers.NewAuthHandler(svc)

	a := &admin.Admin{Meta: testMeta(1), Email: "owner@example.com", Role: admin.RoleOwner, PasswordHash: "$2a$hash"}
	svc.EXPECT().Login(mock.Anything, "owner@example.com", "hunter2").Return(&ports.Session{
		Admin: a,
		Token: ports.Token{Value: "signed", ExpiresAt: testTime.Add(time.Hour)},
	}, nil)

	body := jsonBody(t, dto.LoginRequest{Email: "owner@example.com", Password: "hunter2"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body))

	requireStatus(t, rec, http.StatusOK)
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}
	resp := decodeJSON[dto.LoginResponse](t, rec)
	if resp.Token != "signed" || resp.TokenType != "Bearer" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	h := handlers.NewAuthHandler(svc)

	svc.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorized)

	body := jsonBody(t, dto.LoginRequest{Email: "owner@example.com", Password: "wrong"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body))

	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestLogin_MissingPassword(t *testing.T) {
	t.Parallel()

	h := handlers.NewAuthHandler(mocks.NewMockAuthService(t))

	body := jsonBody(t, dto.LoginRequest{Email: "owner@example.com"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestMe(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	h := handlers.NewAuthHandler(svc)

	a := &admin.Admin{Meta: testMeta(1), Email: "owner@example.com", Name: "Owner", Role: admin.RoleOwner}
	svc.EXPECT().Me(mock.Anything, mock.MatchedBy(func(p *ports.Principal) bool { return p != nil && p.AdminID == 1 })).
		Return(a, nil)

	rec := httptest.NewRecorder()
	h.Me(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.AdminResponse](t, rec)
	if resp.Email != "owner@example.com" || resp.Name != "Owner" {
		t.Errorf("resp = %+v", resp)
	}
}
