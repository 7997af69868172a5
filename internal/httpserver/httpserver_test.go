package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shopdeck/storefront/internal/middleware/auth"
	"github.com/shopdeck/storefront/internal/models"
	"github.com/shopdeck/storefront/internal/repo"
	"github.com/shopdeck/storefront/internal/service"
)

var testJWTSecret = []byte("test-jwt-secret")

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	Repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.WishlistItem{}, &models.CartItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := &repo.GormRepo{DB: db}
	deps := &Deps{
		Guard:    &auth.Guard{Repo: r, JWTSecret: testJWTSecret},
		Auth:     &AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: testJWTSecret}},
		Products: &ProductHTTP{Svc: &service.CatalogService{Repo: r}},
		Cart:     &CartHTTP{Svc: &service.CartService{Repo: r}},
		Wishlist: &WishlistHTTP{Svc: &service.WishlistService{Repo: r}},
	}

	e := echo.New()
	Register(e, deps)

	return &testEnv{T: t, E: e, Repo: r}
}

func (env *testEnv) request(method, path, token string, body any) *httptest.ResponseRecorder {
	env.T.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) decode(rec *httptest.ResponseRecorder, out any) {
	env.T.Helper()
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), out))
}

// register goes through the real endpoint and returns the issued token and user.
func (env *testEnv) register(name, email, password string) (string, models.User) {
	env.T.Helper()

	rec := env.request(http.MethodPost, "/api/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(env.T, http.StatusCreated, rec.Code, "register failed: %s", rec.Body.String())

	var res struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	env.decode(rec, &res)
	return res.Token, res.User
}

func (env *testEnv) seedProduct(name string, price int64) models.Product {
	env.T.Helper()

	prod := models.Product{Name: name, Description: name + " description", Price: price, Image: "/img/" + name + ".jpg"}
	require.NoError(env.T, env.Repo.DB.Create(&prod).Error)
	return prod
}

func (env *testEnv) errorBody(rec *httptest.ResponseRecorder) string {
	env.T.Helper()

	var body struct {
		Error string `json:"error"`
	}
	env.decode(rec, &body)
	return body.Error
}
