package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitwise74/review-api/model"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()
	gin.SetMode(gin.TestMode)

	viper.Set("app.env", "dev")
	viper.Set("app.log_level", "error")
	viper.Set("jwt.secret", "test-secret")
	viper.Set("jwt.access_ttl_minutes", 15)
	viper.Set("jwt.refresh_ttl_hours", 24)
	viper.Set("ratelimit.rps", 1000)
	viper.Set("ratelimit.burst", 1000)
	viper.Set("db.driver", "sqlite")
	viper.Set("db.dsn", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))

	a, err := NewRouter()
	require.NoError(t, err)

	return a
}

func doJSON(t *testing.T, a *API, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

// registerAndLogin creates a fresh account and returns the accessToken
// cookie from the login response
func registerAndLogin(t *testing.T, a *API, username string) *http.Cookie {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/register", gin.H{
		"fullName": "Test User",
		"email":    username + "@example.com",
		"username": username,
		"password": "password1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, a, http.MethodPost, "/login", gin.H{
		"username": username,
		"password": "password1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "accessToken" {
			return cookie
		}
	}

	t.Fatal("login response is missing the accessToken cookie")
	return nil
}

func seedMovie(t *testing.T, a *API, title string) model.Movie {
	t.Helper()

	movie := model.Movie{Title: title, Director: "Someone", Year: 2001}
	require.NoError(t, a.DB.Create(&movie).Error)

	return movie
}
