package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ReactionsSuite struct {
	apiSuite
}

func TestReactionsSuite(t *testing.T) {
	suite.Run(t, new(ReactionsSuite))
}

func (s *ReactionsSuite) seedComment() (string, uint) {
	token, annID := s.registerUser("Ann", "ann@x.com", "")

	w := s.request(http.MethodPost, "/comments", token, map[string]interface{}{
		"card_owner_id": annID,
		"row":           0,
		"col":           0,
		"text":          "seed",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	s.decode(w, &created)
	return token, created.ID
}

func (s *ReactionsSuite) react(token string, commentID uint, emoji string) *reactResult {
	w := s.request(http.MethodPost, "/reactions", token, map[string]interface{}{
		"comment_id": commentID,
		"emoji":      emoji,
	})
	return &reactResult{code: w.Code, body: w.Body.String()}
}

type reactResult struct {
	code int
	body string
}

func (s *ReactionsSuite) TestDuplicateEmojiRejected() {
	token, commentID := s.seedComment()

	s.Equal(http.StatusCreated, s.react(token, commentID, "🎉").code)

	res := s.react(token, commentID, "🎉")
	s.Equal(http.StatusConflict, res.code, res.body)
}

func (s *ReactionsSuite) TestDistinctEmojiAllowed() {
	token, commentID := s.seedComment()

	s.Equal(http.StatusCreated, s.react(token, commentID, "🎉").code)
	s.Equal(http.StatusCreated, s.react(token, commentID, "👍").code)
}

func (s *ReactionsSuite) TestUnknownCommentReportsNotFound() {
	token, _ := s.registerUser("Ann", "ann@x.com", "")

	res := s.react(token, 9999, "🎉")
	s.Equal(http.StatusNotFound, res.code)
}

func (s *ReactionsSuite) TestRemoveThenReAdd() {
	token, commentID := s.seedComment()

	s.Equal(http.StatusCreated, s.react(token, commentID, "🎉").code)

	w := s.request(http.MethodDelete, "/reactions", token, map[string]interface{}{
		"comment_id": commentID,
		"emoji":      "🎉",
	})
	s.Equal(http.StatusNoContent, w.Code)

	// Removing it again has nothing to match.
	w = s.request(http.MethodDelete, "/reactions", token, map[string]interface{}{
		"comment_id": commentID,
		"emoji":      "🎉",
	})
	s.Equal(http.StatusNotFound, w.Code)

	// The unique triple is gone, so the same emoji can come back.
	s.Equal(http.StatusCreated, s.react(token, commentID, "🎉").code)
}

func (s *ReactionsSuite) TestListReactions() {
	annToken, commentID := s.seedComment()
	boToken, _ := s.registerUser("Bo", "bo@x.com", "")

	s.Equal(http.StatusCreated, s.react(annToken, commentID, "🎉").code)
	s.Equal(http.StatusCreated, s.react(boToken, commentID, "🎉").code)
	s.Equal(http.StatusCreated, s.react(boToken, commentID, "🔥").code)

	w := s.request(http.MethodGet, "/reactions/"+itoa(commentID), annToken, nil)
	s.Equal(http.StatusOK, w.Code)

	var list struct {
		Reactions []struct {
			Emoji string `json:"emoji"`
			User  struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"reactions"`
	}
	s.decode(w, &list)
	s.Len(list.Reactions, 3)
}
