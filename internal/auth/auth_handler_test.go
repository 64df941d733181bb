package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/auth"
	autherrors "github.com/nawamdisilvaaltitude1-collab/hris-project/internal/auth/errors"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

type apiError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeAuthService struct {
	registerFn func(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error)
	loginFn    func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error)
	getMeFn    func(ctx context.Context, userID string) (*auth.AuthResponse, error)
	approveFn  func(ctx context.Context, actorID, userID string) (auth.AuthResponse, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	return f.registerFn(ctx, req)
}
func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
	return f.loginFn(ctx, email, password)
}
func (f *fakeAuthService) GetMe(ctx context.Context, userID string) (*auth.AuthResponse, error) {
	return f.getMeFn(ctx, userID)
}
func (f *fakeAuthService) Approve(ctx context.Context, actorID, userID string) (auth.AuthResponse, error) {
	return f.approveFn(ctx, actorID, userID)
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			registerFn: func(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
				assert.Equal(t, "dinuka@altitude1.com", req.Email)
				return auth.RegisterResponse{Message: "Registration submitted for approval."}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"name":"Dinuka Perera","email":"dinuka@altitude1.com","password":"supersecret1","password_confirmation":"supersecret1"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), "submitted for approval")
	})

	t.Run("negative missing fields", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("negative domain mismatch", func(t *testing.T) {
		svc := &fakeAuthService{
			registerFn: func(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
				return auth.RegisterResponse{}, autherrors.ErrEmailDomainNotAllowed
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"name":"Dinuka Perera","email":"dinuka@gmail.com","password":"supersecret1","password_confirmation":"supersecret1"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "DOMAIN_MISMATCH", env.Error.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success sets cookies and returns tokens", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
				return "access-token", "refresh-token", auth.AuthResponse{
					ID:     userID,
					Email:  email,
					Role:   "employee",
					Status: auth.StatusApproved,
				}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"email":"dinuka@altitude1.com","password":"supersecret1"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), "access-token")

		cookies := w.Result().Cookies()
		names := make([]string, 0, len(cookies))
		for _, ck := range cookies {
			names = append(names, ck.Name)
		}
		assert.Contains(t, names, "access_token")
		assert.Contains(t, names, "refresh_token")
	})

	t.Run("negative wrong credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
				return "", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"email":"dinuka@altitude1.com","password":"wrong"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})

	t.Run("negative pending account gets forbidden", func(t *testing.T) {
		svc := &fakeAuthService{
			loginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
				return "", "", auth.AuthResponse{}, autherrors.ErrAccountNotApproved
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"email":"dinuka@altitude1.com","password":"supersecret1"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthHandler_Approve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		actorID := uuid.New().String()
		targetID := uuid.New().String()

		svc := &fakeAuthService{
			approveFn: func(ctx context.Context, aid, uid string) (auth.AuthResponse, error) {
				assert.Equal(t, actorID, aid)
				assert.Equal(t, targetID, uid)
				return auth.AuthResponse{ID: uid, Status: auth.StatusApproved}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/auth/users/"+targetID+"/approve", nil)
		c.Params = gin.Params{{Key: "id", Value: targetID}}
		c.Set("user_id_validated", actorID)

		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative already approved conflicts", func(t *testing.T) {
		svc := &fakeAuthService{
			approveFn: func(ctx context.Context, aid, uid string) (auth.AuthResponse, error) {
				return auth.AuthResponse{}, autherrors.ErrUserNotPending
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		targetID := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPut, "/auth/users/"+targetID+"/approve", nil)
		c.Params = gin.Params{{Key: "id", Value: targetID}}
		c.Set("user_id_validated", uuid.New().String())

		h.Approve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})
}
