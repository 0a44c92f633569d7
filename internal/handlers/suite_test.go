package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/bingoboard-dev/bingoboard/db"
	"github.com/bingoboard-dev/bingoboard/internal/auth"
	"github.com/bingoboard-dev/bingoboard/internal/models"
	"github.com/bingoboard-dev/bingoboard/internal/router"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// apiSuite spins up the full router over an in-memory SQLite database, so
// every test exercises the real middleware, handlers and constraints.
type apiSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.TokenManager
}

func (s *apiSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)
	s.Require().NoError(db.Migrate(gdb))

	tokens, err := auth.NewTokenManager("test-secret-key")
	s.Require().NoError(err)

	s.db = gdb
	s.tokens = tokens
	s.router = router.NewRouter(store.New(gdb), tokens)
}

func (s *apiSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w
}

func (s *apiSuite) decode(w *httptest.ResponseRecorder, target interface{}) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), target))
}

type authPayload struct {
	Token string `json:"token"`
	User  struct {
		ID      uint   `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		IsAdmin bool   `json:"is_admin"`
	} `json:"user"`
}

// registerUser creates a user through the API and returns its token and id.
func (s *apiSuite) registerUser(name, email, handle string) (string, uint) {
	body := map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "pw123456",
	}

	if handle != "" {
		body["handle"] = handle
	}

	w := s.request(http.MethodPost, "/auth/register", "", body)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var payload authPayload
	s.decode(w, &payload)
	s.Require().NotEmpty(payload.Token)

	return payload.Token, payload.User.ID
}

// makeAdmin flips the admin flag directly; registration can never grant it.
func (s *apiSuite) makeAdmin(userID uint) {
	err := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_admin", true).Error
	s.Require().NoError(err)
}

// befriend runs the full request/accept flow between two users.
func (s *apiSuite) befriend(requesterToken, addresseeToken, addresseeEmail string) {
	w := s.request(http.MethodPost, "/friends/request", requesterToken, map[string]interface{}{
		"identifier": addresseeEmail,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	s.decode(w, &created)

	w = s.request(http.MethodPost, "/friends/accept/"+itoa(created.ID), addresseeToken, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func itoa(id uint) string {
	return strconv.Itoa(int(id))
}
