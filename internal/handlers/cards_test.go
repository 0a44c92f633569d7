package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/bingoboard-dev/bingoboard/internal/models"
	"github.com/stretchr/testify/suite"
)

type CardsSuite struct {
	apiSuite
}

func TestCardsSuite(t *testing.T) {
	suite.Run(t, new(CardsSuite))
}

func gridOfSize(n int) ([][]map[string]string, [][]bool) {
	grid := make([][]map[string]string, n)
	completion := make([][]bool, n)

	for i := 0; i < n; i++ {
		grid[i] = make([]map[string]string, n)
		completion[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			grid[i][j] = map[string]string{"text": "task", "category": "misc"}
		}
	}

	return grid, completion
}

func (s *CardsSuite) saveCard(token string, size int) {
	grid, completion := gridOfSize(size)

	w := s.request(http.MethodPost, "/cards", token, map[string]interface{}{
		"size":       size,
		"grid":       grid,
		"completion": completion,
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *CardsSuite) TestSaveRequiresAllFields() {
	token, _ := s.registerUser("Ann", "ann@x.com", "")

	w := s.request(http.MethodPost, "/cards", token, map[string]interface{}{
		"size": 3,
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CardsSuite) TestUpsertKeepsSingleRowAndBumpsTimestamp() {
	token, annID := s.registerUser("Ann", "ann@x.com", "")

	s.saveCard(token, 3)

	var first models.Card
	s.Require().NoError(s.db.Where("owner_id = ?", annID).First(&first).Error)

	time.Sleep(10 * time.Millisecond)
	s.saveCard(token, 3)

	var count int64
	s.Require().NoError(s.db.Model(&models.Card{}).Where("owner_id = ?", annID).Count(&count).Error)
	s.Equal(int64(1), count)

	var second models.Card
	s.Require().NoError(s.db.Where("owner_id = ?", annID).First(&second).Error)
	s.Equal(first.ID, second.ID)
	s.True(second.UpdatedAt.After(first.UpdatedAt))
}

func (s *CardsSuite) TestGetOwnCardNotFound() {
	token, _ := s.registerUser("Ann", "ann@x.com", "")

	w := s.request(http.MethodGet, "/cards/me", token, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *CardsSuite) TestFriendSeesCardUnchanged() {
	annToken, annID := s.registerUser("Ann", "ann@x.com", "")
	boToken, _ := s.registerUser("Bo", "bo@x.com", "")
	s.befriend(annToken, boToken, "bo@x.com")

	s.saveCard(annToken, 3)

	w := s.request(http.MethodGet, "/cards/"+itoa(annID), boToken, nil)
	s.Equal(http.StatusOK, w.Code, w.Body.String())

	var card struct {
		Size       int                 `json:"size"`
		Grid       [][]map[string]any  `json:"grid"`
		Completion [][]bool            `json:"completion"`
	}
	s.decode(w, &card)
	s.Equal(3, card.Size)
	s.Len(card.Grid, 3)
	s.Len(card.Grid[0], 3)
	s.Equal("task", card.Grid[0][0]["text"])
	s.Len(card.Completion, 3)
}

func (s *CardsSuite) TestNonFriendGetsForbiddenNotNotFound() {
	annToken, annID := s.registerUser("Ann", "ann@x.com", "")
	carolToken, _ := s.registerUser("Carol", "carol@x.com", "")

	s.saveCard(annToken, 3)

	w := s.request(http.MethodGet, "/cards/"+itoa(annID), carolToken, nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *CardsSuite) TestFriendWithoutCardNotFound() {
	annToken, annID := s.registerUser("Ann", "ann@x.com", "")
	boToken, _ := s.registerUser("Bo", "bo@x.com", "")
	s.befriend(annToken, boToken, "bo@x.com")

	w := s.request(http.MethodGet, "/cards/"+itoa(annID), boToken, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *CardsSuite) TestDeleteIsIdempotent() {
	token, _ := s.registerUser("Ann", "ann@x.com", "")

	w := s.request(http.MethodDelete, "/cards", token, nil)
	s.Equal(http.StatusNoContent, w.Code)

	s.saveCard(token, 3)

	w = s.request(http.MethodDelete, "/cards", token, nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.request(http.MethodGet, "/cards/me", token, nil)
	s.Equal(http.StatusNotFound, w.Code)

	// Deleting again after the card is gone is still fine.
	w = s.request(http.MethodDelete, "/cards", token, nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *CardsSuite) TestDeleteThenRecreate() {
	token, _ := s.registerUser("Ann", "ann@x.com", "")

	s.saveCard(token, 3)
	s.request(http.MethodDelete, "/cards", token, nil)
	s.saveCard(token, 4)

	w := s.request(http.MethodGet, "/cards/me", token, nil)
	s.Equal(http.StatusOK, w.Code)

	var card struct {
		Size int `json:"size"`
	}
	s.decode(w, &card)
	s.Equal(4, card.Size)
}
