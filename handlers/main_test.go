package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MERN-ing-the-midnight-oil/shelf-elf/config"
	"github.com/MERN-ing-the-midnight-oil/shelf-elf/models"
)

var testDBCounter atomic.Int64

// setupTest gives each test its own in-memory database and a router with the
// full route table mounted.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	config.DB = db
	config.App.JWTSecret = "test-secret"
	config.App.TokenTTL = time.Hour

	r := gin.New()
	RegisterRoutes(r)
	return r
}

// doRequest performs a JSON request against the test router
func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	buf := &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

// registerAndLogin creates an account and returns its token and user id
func registerAndLogin(t *testing.T, r *gin.Engine, username string) (string, uint) {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/users", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "correct horse battery",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", username, w.Code, w.Body.String())
	}

	w = doRequest(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"username": username,
		"password": "correct horse battery",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", username, w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in response %s", username, w.Body.String())
	}
	user, _ := body["user"].(map[string]any)
	id, _ := user["id"].(float64)
	return token, uint(id)
}

// createCommunity creates a community and returns its id
func createCommunity(t *testing.T, r *gin.Engine, token, name, passcode string) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/communities/create", token, gin.H{
		"name":     name,
		"passcode": passcode,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create community %s: status %d, body %s", name, w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	community, _ := body["community"].(map[string]any)
	id, _ := community["id"].(float64)
	return uint(id)
}

// joinCommunity joins an existing community
func joinCommunity(t *testing.T, r *gin.Engine, token string, communityID uint, passcode string) {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/communities/join", token, gin.H{
		"community_id": communityID,
		"passcode":     passcode,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("join community %d: status %d, body %s", communityID, w.Code, w.Body.String())
	}
}

// createBookOffer lists a book and returns the offer id
func createBookOffer(t *testing.T, r *gin.Engine, token, title string) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/books", token, gin.H{"title": title})
	if w.Code != http.StatusCreated {
		t.Fatalf("create book %s: status %d, body %s", title, w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	offer, _ := body["offer"].(map[string]any)
	id, _ := offer["id"].(float64)
	return uint(id)
}

// memberCount counts the membership rows of a community directly
func memberCount(t *testing.T, communityID uint) int64 {
	t.Helper()

	var count int64
	err := config.DB.Model(&models.CommunityMember{}).
		Where("community_id = ?", communityID).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count members: %v", err)
	}
	return count
}

// requestStatus reads a borrow request's status directly
func requestStatus(t *testing.T, requestID uint) models.RequestStatus {
	t.Helper()

	var request models.BorrowRequest
	if err := config.DB.First(&request, requestID).Error; err != nil {
		t.Fatalf("load request %d: %v", requestID, err)
	}
	return request.Status
}
