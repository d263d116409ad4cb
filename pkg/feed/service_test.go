package feed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"krishi/entities"
	"krishi/pkg/api"
	"krishi/pkg/localstore"
	"krishi/pkg/session"
)

func twoPosts() []entities.Post {
	return []entities.Post{
		{ID: "p1", Content: "Wheat looking good", LikeCount: 4, Farmer: entities.UserRef{ID: "f1", Name: "Ravi"}},
		{ID: "p2", Content: "Pest trouble in paddy", LikeCount: 0, Farmer: entities.UserRef{ID: "f2", Name: "Sita"}},
	}
}

func newService(role string, posts []entities.Post) (*Service, *api.Mock) {
	mock := api.NewMock()
	mock.FeedPosts = posts
	sessions := session.NewStore(localstore.NewMemory())
	sessions.Set(entities.User{ID: "u1", Name: "Tester", Role: role, Token: "tok"})
	return New(mock, sessions), mock
}

func TestLikeIsOptimistic(t *testing.T) {
	svc, mock := newService(entities.RoleFarmer, twoPosts())
	require.NoError(t, svc.Refresh())

	require.NoError(t, svc.Like("p1"))
	require.Equal(t, 5, svc.Posts()[0].LikeCount)
	require.Equal(t, 1, mock.CallCount("LikePost"))
}

func TestLikeKeepsLocalCountOnServerFailure(t *testing.T) {
	svc, mock := newService(entities.RoleFarmer, twoPosts())
	require.NoError(t, svc.Refresh())
	mock.LikeErr = &api.ServerError{Status: 500, Message: "down"}

	require.NoError(t, svc.Like("p2"), "server failure must not surface: like is optimistic")
	require.Equal(t, 1, svc.Posts()[1].LikeCount)
}

func TestCommentGatedToExperts(t *testing.T) {
	svc, _ := newService(entities.RoleFarmer, twoPosts())
	require.NoError(t, svc.Refresh())
	_, err := svc.Comment("p1", "try neem oil")
	require.ErrorIs(t, err, ErrExpertOnly)
}

func TestExpertCommentAppendsLocally(t *testing.T) {
	svc, mock := newService(entities.RoleExpert, twoPosts())
	require.NoError(t, svc.Refresh())

	c, err := svc.Comment("p2", "  try neem oil  ")
	require.NoError(t, err)
	require.Equal(t, "try neem oil", c.Text)
	require.NotEmpty(t, c.ID)
	require.Equal(t, entities.RoleExpert, c.User.Role)

	posts := svc.Posts()
	require.Len(t, posts[1].Comments, 1)
	require.Equal(t, c.ID, posts[1].Comments[0].ID)

	// local-only: nothing went to the server
	require.Zero(t, mock.CallCount("CreatePost"))

	// and a refresh drops it, since the server never saw it
	require.NoError(t, svc.Refresh())
	require.Empty(t, svc.Posts()[1].Comments)
}

func TestLocalMutationsNeverReachClientData(t *testing.T) {
	svc, mock := newService(entities.RoleExpert, twoPosts())
	require.NoError(t, svc.Refresh())

	require.NoError(t, svc.Like("p1"))
	_, err := svc.Comment("p2", "try neem oil")
	require.NoError(t, err)

	// the slice the client returned stays pristine
	require.Equal(t, twoPosts(), mock.FeedPosts)
}

func TestCommentEmptyText(t *testing.T) {
	svc, _ := newService(entities.RoleExpert, twoPosts())
	require.NoError(t, svc.Refresh())
	_, err := svc.Comment("p1", "   ")
	require.ErrorIs(t, err, ErrEmptyText)
}

func TestCommentUnknownPost(t *testing.T) {
	svc, _ := newService(entities.RoleExpert, twoPosts())
	require.NoError(t, svc.Refresh())
	_, err := svc.Comment("nope", "hello")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePost(t *testing.T) {
	svc, mock := newService(entities.RoleFarmer, nil)
	require.Error(t, svc.Create("   ", ""))
	require.Zero(t, mock.CallCount("CreatePost"))

	require.NoError(t, svc.Create("First harvest of the season", ""))
	require.Equal(t, 1, mock.CallCount("CreatePost"))
	require.Equal(t, "tok", mock.LastToken)
}
