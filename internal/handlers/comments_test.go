package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CommentsSuite struct {
	apiSuite
}

func TestCommentsSuite(t *testing.T) {
	suite.Run(t, new(CommentsSuite))
}

type commentList struct {
	Comments []struct {
		ID     uint   `json:"id"`
		Text   string `json:"text"`
		Author struct {
			Name string `json:"name"`
		} `json:"author"`
		Private bool `json:"private"`
	} `json:"comments"`
}

func (s *CommentsSuite) postComment(token string, cardOwnerID uint, row, col int, text string, private bool) uint {
	w := s.request(http.MethodPost, "/comments", token, map[string]interface{}{
		"card_owner_id": cardOwnerID,
		"row":           row,
		"col":           col,
		"text":          text,
		"private":       private,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	s.decode(w, &created)
	return created.ID
}

func (s *CommentsSuite) TestNonFriendCannotComment() {
	_, annID := s.registerUser("Ann", "ann@x.com", "")
	carolToken, _ := s.registerUser("Carol", "carol@x.com", "")

	w := s.request(http.MethodPost, "/comments", carolToken, map[string]interface{}{
		"card_owner_id": annID,
		"row":           0,
		"col":           0,
		"text":          "hi",
	})
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *CommentsSuite) TestOwnCardNeedsNoFriendship() {
	token, annID := s.registerUser("Ann", "ann@x.com", "")

	s.postComment(token, annID, 0, 0, "note to self", false)

	w := s.request(http.MethodGet, "/comments/"+itoa(annID), token, nil)
	s.Equal(http.StatusOK, w.Code)

	var list commentList
	s.decode(w, &list)
	s.Len(list.Comments, 1)
}

func (s *CommentsSuite) TestZeroCoordinatesAccepted() {
	token, annID := s.registerUser("Ann", "ann@x.com", "")

	// Row and col zero are valid cell coordinates, not missing fields.
	w := s.request(http.MethodPost, "/comments", token, map[string]interface{}{
		"card_owner_id": annID,
		"row":           0,
		"col":           0,
		"text":          "corner",
	})
	s.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *CommentsSuite) TestPrivateCommentNonLeakage() {
	annToken, _ := s.registerUser("Ann", "ann@x.com", "")
	boToken, boID := s.registerUser("Bo", "bo@x.com", "")
	carolToken, _ := s.registerUser("Carol", "carol@x.com", "")

	// Ann and Carol are both accepted friends of Bo.
	s.befriend(annToken, boToken, "bo@x.com")
	s.befriend(carolToken, boToken, "bo@x.com")

	// Ann leaves a private comment on Bo's card.
	s.postComment(annToken, boID, 1, 1, "just between us", true)

	var list commentList

	// The author sees it.
	w := s.request(http.MethodGet, "/comments/"+itoa(boID), annToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.decode(w, &list)
	s.Len(list.Comments, 1)

	// The card owner sees it.
	w = s.request(http.MethodGet, "/comments/"+itoa(boID), boToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.decode(w, &list)
	s.Len(list.Comments, 1)

	// Carol is an accepted friend of Bo and still must not see it.
	w = s.request(http.MethodGet, "/comments/"+itoa(boID), carolToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.decode(w, &list)
	s.Empty(list.Comments)
}

func (s *CommentsSuite) TestPublicCommentsVisibleToFriends() {
	annToken, _ := s.registerUser("Ann", "ann@x.com", "")
	boToken, boID := s.registerUser("Bo", "bo@x.com", "")
	carolToken, _ := s.registerUser("Carol", "carol@x.com", "")

	s.befriend(annToken, boToken, "bo@x.com")
	s.befriend(carolToken, boToken, "bo@x.com")

	s.postComment(annToken, boID, 0, 2, "nice card", false)

	var list commentList

	w := s.request(http.MethodGet, "/comments/"+itoa(boID), carolToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.decode(w, &list)
	s.Require().Len(list.Comments, 1)
	s.Equal("Ann", list.Comments[0].Author.Name)
}

func (s *CommentsSuite) TestNonFriendCannotListComments() {
	_, annID := s.registerUser("Ann", "ann@x.com", "")
	carolToken, _ := s.registerUser("Carol", "carol@x.com", "")

	w := s.request(http.MethodGet, "/comments/"+itoa(annID), carolToken, nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *CommentsSuite) TestCellFilter() {
	token, annID := s.registerUser("Ann", "ann@x.com", "")

	s.postComment(token, annID, 0, 0, "first cell", false)
	s.postComment(token, annID, 2, 2, "last cell", false)

	var list commentList

	w := s.request(http.MethodGet, "/comments/"+itoa(annID)+"/2/2", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.decode(w, &list)
	s.Require().Len(list.Comments, 1)
	s.Equal("last cell", list.Comments[0].Text)
}

func (s *CommentsSuite) TestDeleteForeignCommentReportsNotFound() {
	annToken, _ := s.registerUser("Ann", "ann@x.com", "")
	boToken, boID := s.registerUser("Bo", "bo@x.com", "")
	s.befriend(annToken, boToken, "bo@x.com")

	commentID := s.postComment(annToken, boID, 0, 0, "mine", false)

	// Bo cannot delete Ann's comment even on his own card; the compound
	// match reports it as missing rather than leaking anything.
	w := s.request(http.MethodDelete, "/comments/"+itoa(commentID), boToken, nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodDelete, "/comments/"+itoa(commentID), annToken, nil)
	s.Equal(http.StatusNoContent, w.Code)
}
