// Package feed is the community feed. Likes are applied optimistically
// and commenting is limited to agricultural experts.
package feed

import (
	"errors"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"krishi/entities"
	"krishi/pkg/api"
	"krishi/pkg/session"
)

var (
	// ErrExpertOnly is the farmer-facing "Only experts can comment on
	// posts" gate.
	ErrExpertOnly = errors.New("only experts can comment on posts")
	ErrNotFound   = errors.New("post not found")
	ErrEmptyText  = errors.New("comment text is required")
)

type Service struct {
	api      api.Client
	sessions *session.Store

	mu    sync.Mutex
	posts []entities.Post
}

func New(client api.Client, sessions *session.Store) *Service {
	return &Service{api: client, sessions: sessions}
}

// Refresh fetches the full post list.
func (s *Service) Refresh() error {
	out, err := s.api.Posts()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.posts = clonePosts(out)
	s.mu.Unlock()
	return nil
}

// clonePosts detaches the held list from the slice the client returned,
// so likes and session comments never write into client-owned data.
func clonePosts(in []entities.Post) []entities.Post {
	out := slices.Clone(in)
	for i := range out {
		out[i].Comments = slices.Clone(out[i].Comments)
	}
	return out
}

func (s *Service) Posts() []entities.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Like bumps the local counter first, then tells the server. A server
// failure is logged and the local count stays: optimistic, no rollback,
// no reconciliation against the authoritative count until the next
// Refresh.
func (s *Service) Like(postID string) error {
	s.mu.Lock()
	found := false
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].LikeCount++
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return ErrNotFound
	}
	if err := s.api.LikePost(s.sessions.Token(), postID); err != nil {
		log.Printf("[feed] like %s: %v", postID, err)
	}
	return nil
}

// Comment appends to the in-memory post only. The platform flow never
// persisted comments server-side; the local append keeps the rendered
// thread consistent for this session and is dropped on Refresh.
func (s *Service) Comment(postID, text string) (entities.Comment, error) {
	u, ok := s.sessions.Current()
	if !ok || u.Role != entities.RoleExpert {
		return entities.Comment{}, ErrExpertOnly
	}
	if strings.TrimSpace(text) == "" {
		return entities.Comment{}, ErrEmptyText
	}

	c := entities.Comment{
		ID:   uuid.NewString(),
		Text: strings.TrimSpace(text),
		User: entities.UserRef{
			ID:   u.ID,
			Name: u.Name,
			Role: u.Role,
		},
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Comments = append(s.posts[i].Comments, c)
			return c, nil
		}
	}
	return entities.Comment{}, ErrNotFound
}

// Create publishes a new farmer post.
func (s *Service) Create(content, image string) error {
	if strings.TrimSpace(content) == "" {
		return errors.New("post content is required")
	}
	return s.api.CreatePost(s.sessions.Token(), strings.TrimSpace(content), image)
}
