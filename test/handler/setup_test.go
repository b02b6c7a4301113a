package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/xxxsen/todod/internal/handler"
	"github.com/xxxsen/todod/internal/middleware"
	"github.com/xxxsen/todod/internal/service"
	"github.com/xxxsen/todod/test/testutil"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(testutil.NewMemUserStore(), []byte("test-secret"))
	todoService := service.NewTodoService(testutil.NewMemTodoStore())

	deps := handler.RouterDeps{
		Users: handler.NewUserHandler(authService),
		Todos: handler.NewTodoHandler(todoService),
		Auth:  authService,
	}

	engine, err := webapi.NewEngine(
		"/",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)
	return engine
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthHeader, token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// registerUser signs up an account and returns its session token.
func registerUser(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/users", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	token := resp.Header().Get(middleware.AuthHeader)
	require.NotEmpty(t, token)
	return token
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &decoded))
	return decoded
}
