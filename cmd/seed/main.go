package main

import (
	"context"
	"log"

	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/db"
	"inkwell/internal/model"
	"inkwell/internal/repository"
)

// seedUser pairs a demo account with its articles.
type seedUser struct {
	email    string
	username string
	password string
	articles []seedArticle
}

type seedArticle struct {
	title string
	body  string
}

var fixtures = []seedUser{
	{
		email:    "alice@example.com",
		username: "alice",
		password: "password123",
		articles: []seedArticle{
			{title: "Hello, world", body: "First post on the new blog."},
			{title: "On writing", body: "Short posts beat no posts."},
		},
	},
	{
		email:    "bob@example.com",
		username: "bob",
		password: "password123",
		articles: []seedArticle{
			{title: "Field notes", body: "Collected observations from the week."},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Article{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	articles := repository.NewArticleRepository(gormDB)

	created, skipped := 0, 0
	for _, fixture := range fixtures {
		if _, err := users.FindByEmail(ctx, fixture.email); err == nil {
			log.Printf("Skipping %s: already exists", fixture.email)
			skipped++
			continue
		}

		hash, err := auth.HashPassword(fixture.password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", fixture.email, err)
		}

		user := &model.User{
			Email:          fixture.email,
			Username:       fixture.username,
			PasswordHash:   hash,
			ProfilePicture: model.DefaultProfilePicture,
			SessionToken:   auth.NewSessionToken(),
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", fixture.email, err)
		}

		for _, a := range fixture.articles {
			article := &model.Article{
				AuthorID: user.ID,
				Title:    a.title,
				Body:     a.body,
			}
			if err := articles.Create(ctx, article); err != nil {
				log.Fatalf("Failed to create article %q: %v", a.title, err)
			}
		}
		created++
	}

	log.Printf("Seed complete: %d users created, %d skipped", created, skipped)
}
