package services

import (
	"errors"

	"propulse-backend/models"
	"propulse-backend/repositories"

	"github.com/google/uuid"
)

var ErrNotArticleAuthor = errors.New("only the author can update this article")

type ArticleService interface {
	CreateArticle(authorID uuid.UUID, req models.CreateArticleRequest) (*models.Article, error)
	GetArticle(id uuid.UUID) (*models.Article, error)
	GetArticles(params models.ArticleListParams) ([]models.Article, int64, error)
	UpdateArticle(id, userID uuid.UUID, req models.UpdateArticleRequest) (*models.Article, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) CreateArticle(authorID uuid.UUID, req models.CreateArticleRequest) (*models.Article, error) {
	article := &models.Article{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uuid.UUID) (*models.Article, error) {
	return s.articleRepo.GetByID(id)
}

func (s *articleService) GetArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}
	return s.articleRepo.GetList(params)
}

func (s *articleService) UpdateArticle(id, userID uuid.UUID, req models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != userID {
		return nil, ErrNotArticleAuthor
	}

	article.Title = req.Title
	article.Content = req.Content

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return article, nil
}
