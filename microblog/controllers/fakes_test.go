package controllers

import (
	"context"
	"microblog/microblog/sources/psql/models"
	"sort"
	"strings"
	"time"
)

// memStore is an in-memory stand-in for the gorm DAOs. It implements
// UserStore, FollowStore and PostStore with the same contracts: absent rows
// come back as (nil, nil), user creation bootstraps the self-follow edge,
// duplicate edges surface as ErrAlreadyFollowing.
type memStore struct {
	nextUserID int
	nextPostID int
	users      map[int]*models.User
	edges      map[[2]int]bool
	posts      []models.Post
}

func newMemStore() *memStore {
	return &memStore{
		users: map[int]*models.User{},
		edges: map[[2]int]bool{},
	}
}

func (s *memStore) GetByID(_ context.Context, id int) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (s *memStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memStore) GetByNickname(_ context.Context, nickname string) (*models.User, error) {
	for _, u := range s.users {
		if u.Nickname == nickname {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memStore) Create(_ context.Context, user *models.User) error {
	s.nextUserID++
	user.ID = s.nextUserID
	s.users[user.ID] = user
	s.edges[[2]int{user.ID, user.ID}] = true
	return nil
}

func (s *memStore) Update(_ context.Context, user *models.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *memStore) TouchLastSeen(_ context.Context, id int) error {
	if u, ok := s.users[id]; ok {
		u.LastSeen = time.Now().UTC()
	}
	return nil
}

func (s *memStore) CreateEdge(_ context.Context, followerID, followedID int) error {
	k := [2]int{followerID, followedID}
	if s.edges[k] {
		return models.ErrAlreadyFollowing
	}
	s.edges[k] = true
	return nil
}

func (s *memStore) Delete(_ context.Context, followerID, followedID int) (bool, error) {
	k := [2]int{followerID, followedID}
	existed := s.edges[k]
	delete(s.edges, k)
	return existed, nil
}

func (s *memStore) Exists(_ context.Context, followerID, followedID int) (bool, error) {
	return s.edges[[2]int{followerID, followedID}], nil
}

func (s *memStore) CountFollowers(_ context.Context, userID int) (int64, error) {
	var n int64
	for k := range s.edges {
		if k[1] == userID && k[0] != k[1] {
			n++
		}
	}
	return n, nil
}

func (s *memStore) CountFollowing(_ context.Context, userID int) (int64, error) {
	var n int64
	for k := range s.edges {
		if k[0] == userID && k[0] != k[1] {
			n++
		}
	}
	return n, nil
}

func (s *memStore) CreatePost(_ context.Context, post *models.Post) error {
	s.nextPostID++
	post.ID = s.nextPostID
	s.posts = append(s.posts, *post)
	return nil
}

func (s *memStore) ByAuthor(_ context.Context, authorID, limit, offset int) ([]models.Post, error) {
	var out []models.Post
	for _, p := range s.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return paginateNewestFirst(out, limit, offset), nil
}

func (s *memStore) Followed(_ context.Context, userID, limit, offset int) ([]models.Post, error) {
	var out []models.Post
	for _, p := range s.posts {
		if s.edges[[2]int{userID, p.AuthorID}] {
			out = append(out, p)
		}
	}
	return paginateNewestFirst(out, limit, offset), nil
}

func (s *memStore) ByIDs(_ context.Context, ids []int) ([]models.Post, error) {
	want := map[int]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Post
	for _, p := range s.posts {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func paginateNewestFirst(posts []models.Post, limit, offset int) []models.Post {
	sort.Slice(posts, func(a, b int) bool {
		if !posts[a].Timestamp.Equal(posts[b].Timestamp) {
			return posts[a].Timestamp.After(posts[b].Timestamp)
		}
		return posts[a].ID > posts[b].ID
	})
	if offset >= len(posts) {
		return []models.Post{}
	}
	posts = posts[offset:]
	if limit < len(posts) {
		posts = posts[:limit]
	}
	return posts
}

// followStoreAdapter renames CreateEdge to the FollowStore method set, since
// memStore.Create is already taken by UserStore.
type followStoreAdapter struct{ *memStore }

func (a followStoreAdapter) Create(ctx context.Context, followerID, followedID int) error {
	return a.CreateEdge(ctx, followerID, followedID)
}

// postStoreAdapter does the same for PostStore.
type postStoreAdapter struct{ *memStore }

func (a postStoreAdapter) Create(ctx context.Context, post *models.Post) error {
	return a.CreatePost(ctx, post)
}

// fakeIndex is a substring-matching stand-in for the bleve index.
type fakeIndex struct {
	docs map[int]string
	ids  []int
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{docs: map[int]string{}}
}

func (f *fakeIndex) IndexPost(post *models.Post, _ string) error {
	if _, seen := f.docs[post.ID]; !seen {
		f.ids = append(f.ids, post.ID)
	}
	f.docs[post.ID] = post.Body
	return nil
}

func (f *fakeIndex) Search(q string, limit, offset int) ([]int, error) {
	var hits []int
	for _, id := range f.ids {
		if strings.Contains(strings.ToLower(f.docs[id]), strings.ToLower(q)) {
			hits = append(hits, id)
		}
	}
	if offset >= len(hits) {
		return nil, nil
	}
	hits = hits[offset:]
	if limit < len(hits) {
		hits = hits[:limit]
	}
	return hits, nil
}

func newTestGraph() (*memStore, *SocialController) {
	s := newMemStore()
	return s, NewSocialController(s, followStoreAdapter{s}, postStoreAdapter{s})
}

func addUser(s *memStore, nickname, email string) *models.User {
	u := &models.User{Nickname: nickname, Email: email}
	_ = s.Create(context.Background(), u)
	return u
}
