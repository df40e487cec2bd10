package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authBody struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserType string `json:"userType"`
	Error    string `json:"error"`
	User     struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		UserType string `json:"userType"`
	} `json:"user"`
}

func registerCustomer(t *testing.T, e *testEnv, email, username string) authBody {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/registration", map[string]any{
		"registerInfos": map[string]any{
			"userType": "customer", "email": email, "username": username, "password": "pw",
		},
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[authBody](t, w)
}

func TestRegisterAndLogin(t *testing.T) {
	e := newTestEnv(t)

	reg := registerCustomer(t, e, "a@x.io", "alice")
	assert.Equal(t, "User registered successfully", reg.Message)
	assert.Equal(t, "customer", reg.UserType)
	assert.NotEmpty(t, reg.Token)

	w := e.do(t, http.MethodPost, "/login", map[string]string{"email": "a@x.io", "password": "pw"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[authBody](t, w)
	assert.Equal(t, "Login successful", got.Message)
	assert.NotEmpty(t, got.Token)
	assert.Equal(t, "a@x.io", got.User.Email)
	assert.NotEmpty(t, got.User.ID)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegister_Errors(t *testing.T) {
	e := newTestEnv(t)
	registerCustomer(t, e, "a@x.io", "alice")

	tests := []struct {
		name string
		body any
		want int
	}{
		{name: "duplicate email", body: map[string]any{"registerInfos": map[string]any{
			"userType": "customer", "email": "a@x.io", "username": "other", "password": "pw",
		}}, want: http.StatusConflict},
		{name: "no user type", body: map[string]any{"registerInfos": map[string]any{
			"email": "b@x.io", "password": "pw",
		}}, want: http.StatusBadRequest},
		{name: "vendor missing shop", body: map[string]any{"registerInfos": map[string]any{
			"userType": "vendor", "email": "b@x.io", "password": "pw",
		}}, want: http.StatusBadRequest},
		{name: "password too long", body: map[string]any{"registerInfos": map[string]any{
			"userType": "customer", "email": "c@x.io", "username": "carol", "password": strings.Repeat("p", 80),
		}}, want: http.StatusBadRequest},
		{name: "no envelope", body: map[string]any{"userType": "customer"}, want: http.StatusBadRequest},
		{name: "no body", body: nil, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := e.do(t, http.MethodPost, "/api/registration", tt.body, nil)
			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, decode[authBody](t, w).Error)
		})
	}
}

func TestLogin_Errors(t *testing.T) {
	e := newTestEnv(t)
	registerCustomer(t, e, "a@x.io", "alice")

	w := e.do(t, http.MethodPost, "/login", map[string]string{"email": "a@x.io"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	wrong := e.do(t, http.MethodPost, "/login", map[string]string{"email": "a@x.io", "password": "bad"}, nil)
	unknown := e.do(t, http.MethodPost, "/login", map[string]string{"email": "z@x.io", "password": "pw"}, nil)

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}
