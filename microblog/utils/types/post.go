package types

import "microblog/microblog/sources/psql/models"

type CreatePostRequest struct {
	Body string `json:"body"`
}

type PostPage struct {
	Posts   []models.Post `json:"posts"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

type FollowStatus struct {
	Following bool `json:"following"`
}
