// Command-line seeding tool for local development databases.
package main

import (
	"context"
	"fmt"
	"microblog/microblog/config"
	"microblog/microblog/controllers"
	"microblog/microblog/services/search"
	"microblog/microblog/sources/psql"
	"microblog/microblog/sources/psql/dao"
	"microblog/microblog/utils/color"
	"microblog/microblog/utils/logging"
	"os"
	"time"

	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	args := os.Args[1:]
	if len(args) < 1 || args[0] != "seed" {
		fmt.Println("microblogctl usage:")
		fmt.Println("  microblogctl seed   # Create demo users, follows and posts")
		os.Exit(1)
	}

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		fmt.Println(color.ColorError("database connection error: " + err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	index, err := search.Open(cfg.SearchIndexPath)
	if err != nil {
		fmt.Println(color.ColorError("search index open error: " + err.Error()))
		os.Exit(1)
	}
	defer index.Close()

	userDAO := dao.NewUserDAO(db.DB)
	followDAO := dao.NewFollowDAO(db.DB)
	postDAO := dao.NewPostDAO(db.DB)
	social := controllers.NewSocialController(userDAO, followDAO, postDAO)
	auth := controllers.NewAuthController(userDAO, social, cfg)
	posts := controllers.NewPostController(postDAO, userDAO, index)

	seed := []struct {
		email    string
		nickname string
		body     string
	}{
		{"john@example.com", "john", "Beautiful day in Portland!"},
		{"susan@example.com", "susan", "The Avengers movie was so cool!"},
		{"david@example.com", "david", "Hello, microblog world."},
	}

	provider := "Google"
	if len(cfg.Providers) > 0 {
		provider = cfg.Providers[0].Name
	}

	ids := make([]int, 0, len(seed))
	for _, s := range seed {
		_, user, err := auth.CompleteLogin(ctx, provider, s.email, s.nickname)
		if err != nil {
			fmt.Println(color.ColorError("seed user " + s.nickname + ": " + err.Error()))
			os.Exit(1)
		}
		if _, err := posts.CreatePost(ctx, user.ID, s.body); err != nil {
			fmt.Println(color.ColorError("seed post for " + s.nickname + ": " + err.Error()))
			os.Exit(1)
		}
		ids = append(ids, user.ID)
		fmt.Println(color.ColorInfo(fmt.Sprintf("seeded %s (id=%d)", user.Nickname, user.ID)))
	}

	// Everyone follows everyone, so every demo feed has content.
	for _, a := range ids {
		for _, b := range ids {
			if a == b {
				continue
			}
			if err := social.Follow(ctx, a, b); err != nil {
				fmt.Println(color.ColorWarning(fmt.Sprintf("follow %d -> %d: %v", a, b, err)))
			}
		}
	}

	logging.AppLogger.Info("seed complete", zap.Int("users", len(ids)))
	fmt.Println(color.ColorFinalSuccess("seed complete"))
}
