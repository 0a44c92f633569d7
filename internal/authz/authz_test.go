package authz

import (
	"testing"

	"github.com/bingoboard-dev/bingoboard/db"
	"github.com/bingoboard-dev/bingoboard/internal/models"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRules(t *testing.T) (*Rules, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	return New(store.New(gdb)), gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, email string) uint {
	t.Helper()

	user := models.User{Name: email, Email: email, PasswordHash: "x"}
	require.NoError(t, gdb.Create(&user).Error)
	return user.ID
}

func TestIsAcceptedFriendSymmetric(t *testing.T) {
	rules, gdb := newTestRules(t)
	a := seedUser(t, gdb, "a@x.com")
	b := seedUser(t, gdb, "b@x.com")

	require.NoError(t, gdb.Create(&models.Friendship{
		RequesterID: a,
		AddresseeID: b,
		Status:      models.FriendshipStatusAccepted,
	}).Error)

	for _, pair := range [][2]uint{{a, b}, {b, a}} {
		ok, err := rules.IsAcceptedFriend(pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestPendingFriendshipGrantsNothing(t *testing.T) {
	rules, gdb := newTestRules(t)
	a := seedUser(t, gdb, "a@x.com")
	b := seedUser(t, gdb, "b@x.com")

	require.NoError(t, gdb.Create(&models.Friendship{
		RequesterID: a,
		AddresseeID: b,
		Status:      models.FriendshipStatusPending,
	}).Error)

	ok, err := rules.IsAcceptedFriend(a, b)
	require.NoError(t, err)
	assert.False(t, ok)

	// But the pending row still blocks a second request either way.
	any, err := rules.HasAnyFriendship(b, a)
	require.NoError(t, err)
	assert.True(t, any)
}

func TestCanViewCardAllowsOwner(t *testing.T) {
	rules, gdb := newTestRules(t)
	a := seedUser(t, gdb, "a@x.com")
	b := seedUser(t, gdb, "b@x.com")

	ok, err := rules.CanViewCard(a, a)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rules.CanViewCard(a, b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFilterComments(t *testing.T) {
	const (
		author    = uint(1)
		cardOwner = uint(2)
		bystander = uint(3)
	)

	comments := []models.Comment{
		{AuthorID: author, CardOwnerID: cardOwner, Text: "public"},
		{AuthorID: author, CardOwnerID: cardOwner, Text: "secret", Private: true},
	}

	texts := func(in []models.Comment) []string {
		out := make([]string, 0, len(in))
		for _, c := range in {
			out = append(out, c.Text)
		}
		return out
	}

	assert.Equal(t, []string{"public", "secret"}, texts(FilterComments(comments, author, cardOwner)))
	assert.Equal(t, []string{"public", "secret"}, texts(FilterComments(comments, cardOwner, cardOwner)))
	assert.Equal(t, []string{"public"}, texts(FilterComments(comments, bystander, cardOwner)))
}

func TestFilterGroupComments(t *testing.T) {
	const (
		author  = uint(1)
		creator = uint(2)
		member  = uint(3)
	)

	comments := []models.GroupComment{
		{AuthorID: author, Text: "public"},
		{AuthorID: author, Text: "secret", Private: true},
	}

	assert.Len(t, FilterGroupComments(comments, author, creator), 2)
	assert.Len(t, FilterGroupComments(comments, creator, creator), 2)
	assert.Len(t, FilterGroupComments(comments, member, creator), 1)
}
