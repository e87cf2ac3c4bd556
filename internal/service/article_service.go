package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inkwell/internal/auth"
	"inkwell/internal/cache"
	apperrors "inkwell/internal/errors"
	"inkwell/internal/model"
	"inkwell/internal/repository"
)

const articleCacheTTL = 5 * time.Minute

func articleCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("article:%s", id)
}

// ArticleService exposes article operations. Mutations require the caller's
// identity and are authorized against the article's author.
type ArticleService interface {
	ListArticles(ctx context.Context) ([]model.Article, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Article, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*model.Article, error)
	CreateArticle(ctx context.Context, authorID uuid.UUID, title, body string) (*model.Article, error)
	UpdateArticle(ctx context.Context, identity, id uuid.UUID, title, body string) (*model.Article, error)
	DeleteArticle(ctx context.Context, identity, id uuid.UUID) error
}

type articleService struct {
	articles repository.ArticleRepository
	cache    *cache.Client
}

// NewArticleService builds an ArticleService with repository and cache.
func NewArticleService(articles repository.ArticleRepository, cache *cache.Client) ArticleService {
	return &articleService{articles: articles, cache: cache}
}

func (s *articleService) ListArticles(ctx context.Context) ([]model.Article, error) {
	return s.articles.ListAll(ctx)
}

func (s *articleService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Article, error) {
	return s.articles.ListByAuthor(ctx, authorID)
}

// GetArticle retrieves an article by ID with caching.
func (s *articleService) GetArticle(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	if data, _ := s.cache.Get(ctx, articleCacheKey(id)); data != nil {
		var cached model.Article
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(article); err == nil {
		_ = s.cache.Set(ctx, articleCacheKey(id), payload, articleCacheTTL)
	}
	return article, nil
}

func (s *articleService) CreateArticle(ctx context.Context, authorID uuid.UUID, title, body string) (*model.Article, error) {
	if title == "" || body == "" {
		return nil, apperrors.ErrValidation
	}

	article := &model.Article{
		AuthorID: authorID,
		Title:    title,
		Body:     body,
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	return article, nil
}

// UpdateArticle replaces the title and body of an article owned by identity.
func (s *articleService) UpdateArticle(ctx context.Context, identity, id uuid.UUID, title, body string) (*model.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if err := auth.RequireOwner(identity, article.AuthorID); err != nil {
		return nil, err
	}

	if title != "" {
		article.Title = title
	}
	if body != "" {
		article.Body = body
	}

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	_ = s.cache.Delete(ctx, articleCacheKey(id))
	return article, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, identity, id uuid.UUID) error {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	if err := auth.RequireOwner(identity, article.AuthorID); err != nil {
		return err
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	_ = s.cache.Delete(ctx, articleCacheKey(id))
	return nil
}
