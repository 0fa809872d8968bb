package controllers

import (
	"context"
	"microblog/microblog/sources/psql/models"
	"microblog/microblog/utils/logging"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

type PostController struct {
	posts PostStore
	users UserStore
	index PostIndex
}

func NewPostController(posts PostStore, users UserStore, index PostIndex) *PostController {
	return &PostController{posts: posts, users: users, index: index}
}

// CreatePost stores the post, then feeds it to the full-text index. The row
// is the record of truth: an indexing failure is logged, not propagated.
func (c *PostController) CreatePost(ctx context.Context, authorID int, body string) (*models.Post, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, models.ErrBodyRequired
	}
	if utf8.RuneCountInString(body) > models.PostBodyMaxLen {
		return nil, models.ErrBodyTooLong
	}
	author, err := c.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.ErrUserNotFound
	}

	post := &models.Post{
		Body:      body,
		Timestamp: time.Now().UTC(),
		AuthorID:  authorID,
	}
	if err := c.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	if err := c.index.IndexPost(post, author.Nickname); err != nil {
		logging.ErrorLogger.Error("post indexing failed",
			zap.Int("post_id", post.ID),
			zap.Error(err),
		)
	}
	return post, nil
}

// UserPosts is one author's timeline, newest first.
func (c *PostController) UserPosts(ctx context.Context, authorID, page, perPage int) ([]models.Post, error) {
	author, err := c.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.ErrUserNotFound
	}
	if page < 1 {
		page = 1
	}
	return c.posts.ByAuthor(ctx, authorID, perPage, (page-1)*perPage)
}

// Search asks the index for matching ids, then loads the rows and restores
// rank order.
func (c *PostController) Search(ctx context.Context, q string, page, perPage int) ([]models.Post, error) {
	defer logging.LogDuration(ctx, "PostController.Search")()
	if page < 1 {
		page = 1
	}
	ids, err := c.index.Search(q, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	posts, err := c.posts.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	rank := make(map[int]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	sort.Slice(posts, func(a, b int) bool {
		return rank[posts[a].ID] < rank[posts[b].ID]
	})
	return posts, nil
}
