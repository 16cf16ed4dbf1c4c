package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JayatheerthP/OraBank/internal/logging"
	"github.com/JayatheerthP/OraBank/internal/server/auth"
	"github.com/JayatheerthP/OraBank/internal/server/password"
	"github.com/JayatheerthP/OraBank/internal/server/users"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type nopNotifier struct{}

func (nopNotifier) NotifySignup(context.Context, string, string) {}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	repo := users.NewInMemoryRepository()

	tokens, err := auth.NewTokenService(testSecret, 3600, logger)
	require.NoError(t, err)

	svc := users.NewService(repo, users.NewLockoutGuard(repo, logger),
		password.NewBcryptHasher(), tokens, nopNotifier{}, logger)

	return NewRouter(svc, tokens, logger, false), tokens
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validSignup() SignUpReq {
	return SignUpReq{
		Email:       "a@x.com",
		Password:    "longenough1",
		PhoneNumber: "+1 (555) 123-4567",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: "1990-12-10",
		Address:     "12 Example Street",
	}
}

func TestSignUpEndpoint_Created(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/users/signup", validSignup(), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp SignUpResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a@x.com", resp.Email)
	assert.True(t, resp.IsActive)
	assert.False(t, resp.IsLocked)
}

func TestSignUpEndpoint_DuplicateEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/users/signup", validSignup(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/users/signup", validSignup(), nil)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestSignUpEndpoint_ValidationFailure(t *testing.T) {
	router, _ := newTestRouter(t)

	req := validSignup()
	req.Password = "short"
	req.Email = "nope"

	w := doJSON(t, router, http.MethodPost, "/api/v1/users/signup", req, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestSignInEndpoint_FlowAndStatuses(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/users/signup", validSignup(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// unknown email
	w = doJSON(t, router, http.MethodPost, "/api/v1/users/signin",
		SignInReq{Email: "ghost@x.com", Password: "longenough1"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// wrong password
	w = doJSON(t, router, http.MethodPost, "/api/v1/users/signin",
		SignInReq{Email: "a@x.com", Password: "wrongpassword"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// correct credentials
	w = doJSON(t, router, http.MethodPost, "/api/v1/users/signin",
		SignInReq{Email: "a@x.com", Password: "longenough1"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp SignInResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestSignInEndpoint_LockedAccount(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/users/signup", validSignup(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	for i := 0; i < 4; i++ {
		w = doJSON(t, router, http.MethodPost, "/api/v1/users/signin",
			SignInReq{Email: "a@x.com", Password: "wrongpassword"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	// fifth failure locks
	w = doJSON(t, router, http.MethodPost, "/api/v1/users/signin",
		SignInReq{Email: "a@x.com", Password: "wrongpassword"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// correct password after lock is still forbidden
	w = doJSON(t, router, http.MethodPost, "/api/v1/users/signin",
		SignInReq{Email: "a@x.com", Password: "longenough1"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProtectedEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/users/signup", validSignup(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created SignUpResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPost, "/api/v1/users/signin",
		SignInReq{Email: "a@x.com", Password: "longenough1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var signin SignInResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signin))
	bearer := map[string]string{"Authorization": "Bearer " + signin.Token}

	// without a token both endpoints reject
	w = doJSON(t, router, http.MethodGet, "/api/v1/users/user/"+created.UserID.String(), nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/users/"+created.UserID.String()+"/status", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage token also proceeds unauthenticated and gets rejected downstream
	w = doJSON(t, router, http.MethodGet, "/api/v1/users/user/"+created.UserID.String(), nil,
		map[string]string{"Authorization": "Bearer not.a.jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// with a valid token the profile comes back
	w = doJSON(t, router, http.MethodGet, "/api/v1/users/user/"+created.UserID.String(), nil, bearer)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile UserResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, "1990-12-10", profile.DateOfBirth)

	// and so does the status projection
	w = doJSON(t, router, http.MethodGet, "/api/v1/users/"+created.UserID.String()+"/status", nil, bearer)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var status UserStatusResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.IsActive)
	assert.False(t, status.IsLocked)
	assert.Equal(t, 0, status.FailedLoginAttempts)
}

func TestGetUser_UnknownID(t *testing.T) {
	router, tokens := newTestRouter(t)

	tok, err := tokens.Generate(mustUUID(t), "a@x.com", "Ada")
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/api/v1/users/user/"+mustUUID(t).String(), nil,
		map[string]string{"Authorization": "Bearer " + tok})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/users/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
