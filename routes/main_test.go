package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-clone-server/models"
	"booking-clone-server/storage"
	"booking-clone-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestApp wires the full API surface against a fresh in-memory
// database, one per test.
func setupTestApp(t *testing.T) *iris.Application {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Place{}, &models.Booking{}); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	storage.DB = db
	storage.Redis = nil

	utils.InitializeSessions("testsecret")
	sessionMiddleware := utils.SessionMiddleware()

	app := iris.New()
	app.Validator = validator.New()

	api := app.Party("/api")
	{
		api.Post("/register", Register)
		api.Post("/login", Login)
		api.Get("/profile", Profile)
		api.Post("/logout", Logout)

		api.Post("/upload-by-link", UploadByLink)
		api.Post("/upload", UploadPhotos)

		api.Get("/places", GetPlaces)
		api.Get("/places/{id:uint}", GetPlace)
		api.Post("/places", sessionMiddleware, CreatePlace)
		api.Put("/places", sessionMiddleware, UpdatePlace)
		api.Get("/user-places", sessionMiddleware, GetUserPlaces)

		api.Post("/bookings", sessionMiddleware, CreateBooking)
		api.Get("/bookings", sessionMiddleware, GetBookings)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("building app: %v", err)
	}
	return app
}

// doJSON performs a request with an optional JSON body and session cookie.
func doJSON(t *testing.T, app *iris.Application, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	}

	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

// createTestUser inserts a user directly and returns it with a valid
// session token.
func createTestUser(t *testing.T, name, email string) (models.User, string) {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "irrelevant"}
	if err := storage.DB.Create(&user).Error; err != nil {
		t.Fatalf("creating test user: %v", err)
	}

	token, err := utils.IssueSessionToken(user.ID, user.Email)
	if err != nil {
		t.Fatalf("issuing test token: %v", err)
	}
	return user, token
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), dest); err != nil {
		t.Fatalf("decoding response %q: %v", resp.Body.String(), err)
	}
}
