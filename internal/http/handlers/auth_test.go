package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivanisurendran/hostelparcel-management/internal/apperr"
	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
	"github.com/shivanisurendran/hostelparcel-management/internal/service/auth"
)

type stubAuthUsecase struct {
	matronFn  func(ctx context.Context, email, password string) (auth.Session, error)
	studentFn func(ctx context.Context, phone, password string) (auth.Session, error)
}

func (s *stubAuthUsecase) LoginMatron(ctx context.Context, email, password string) (auth.Session, error) {
	if s.matronFn == nil {
		panic("LoginMatron not expected in this test")
	}
	return s.matronFn(ctx, email, password)
}

func (s *stubAuthUsecase) LoginStudent(ctx context.Context, phone, password string) (auth.Session, error) {
	if s.studentFn == nil {
		panic("LoginStudent not expected in this test")
	}
	return s.studentFn(ctx, phone, password)
}

func postLogin(h *AuthHandler, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Login(rr, httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(body)))
	return rr
}

func TestAuthHandler_Matron(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(nil, &stubAuthUsecase{
		matronFn: func(_ context.Context, email, password string) (auth.Session, error) {
			if email == "matron@hostel.com" && password == "matron123" {
				return auth.Session{Token: "tok", User: domain.User{Role: domain.RoleMatron, Name: "Hostel Matron"}}, nil
			}
			return auth.Session{}, apperr.ErrUnauthorized
		},
	})

	rr := postLogin(h, `{"role":"matron","email":"matron@hostel.com","password":"matron123"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"token":"tok","user":{"role":"matron","name":"Hostel Matron"}}`, rr.Body.String())

	rr = postLogin(h, `{"role":"matron","email":"matron@hostel.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid email or password."}`, rr.Body.String())
}

func TestAuthHandler_Student(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(nil, &stubAuthUsecase{
		studentFn: func(_ context.Context, phone, password string) (auth.Session, error) {
			switch {
			case phone == "" || password == "":
				return auth.Session{}, apperr.ErrInvalid
			case phone == "9876543210" && password == "student123":
				return auth.Session{Token: "tok", User: domain.User{
					Role: domain.RoleStudent, Name: "Aarav Sharma", RoomNumber: "201", PhoneNumber: "9876543210",
				}}, nil
			default:
				return auth.Session{}, apperr.ErrUnauthorized
			}
		},
	})

	rr := postLogin(h, `{"role":"student","phoneNumber":"9876543210","password":"student123"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"token":"tok","user":{"role":"student","name":"Aarav Sharma",
		"roomNumber":"201","phoneNumber":"9876543210"}}`, rr.Body.String())

	rr = postLogin(h, `{"role":"student","phoneNumber":"9876543210"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Phone number and password are required."}`, rr.Body.String())

	rr = postLogin(h, `{"role":"student","phoneNumber":"0000000000","password":"student123"}`)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid phone number or password."}`, rr.Body.String())
}

func TestAuthHandler_InvalidRole(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(nil, &stubAuthUsecase{})
	for _, body := range []string{`{"role":"warden"}`, `{}`} {
		rr := postLogin(h, body)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid role."}`, rr.Body.String())
	}
}

func TestAuthHandler_InternalError(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(nil, &stubAuthUsecase{
		studentFn: func(context.Context, string, string) (auth.Session, error) {
			return auth.Session{}, errors.New("roster down")
		},
	})

	rr := postLogin(h, `{"role":"student","phoneNumber":"9876543210","password":"x"}`)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rr.Body.String())
}
