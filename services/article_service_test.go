package services_test

import (
	"fmt"
	"testing"
	"time"

	"propulse-backend/config"
	"propulse-backend/models"
	"propulse-backend/repositories"
	"propulse-backend/services"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatal("Failed to open test database:", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatal("Failed to migrate test database:", err)
	}
	return db
}

type ArticleServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service services.ArticleService
	author  *models.User
	other   *models.User
}

func (suite *ArticleServiceTestSuite) SetupSuite() {
	suite.db = newTestDB(suite.T(), "article_service_test")
	suite.service = services.NewArticleService(repositories.NewArticleRepository(suite.db))
}

func (suite *ArticleServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM articles")
	suite.db.Exec("DELETE FROM users")

	suite.author = &models.User{Username: "author@example.com", Email: "author@example.com", PasswordHash: "x"}
	suite.other = &models.User{Username: "other@example.com", Email: "other@example.com", PasswordHash: "x"}
	suite.NoError(suite.db.Create(suite.author).Error)
	suite.NoError(suite.db.Create(suite.other).Error)
}

func (suite *ArticleServiceTestSuite) TestCreateAndGetArticle() {
	created, err := suite.service.CreateArticle(suite.author.ID, models.CreateArticleRequest{
		Title:   "First Post",
		Content: "<p>Hello</p>",
	})
	suite.NoError(err)

	fetched, err := suite.service.GetArticle(created.ID)
	suite.NoError(err)

	suite.Equal(created.Title, fetched.Title)
	suite.Equal(created.Content, fetched.Content)
	suite.WithinDuration(created.CreatedAt, fetched.CreatedAt, time.Second)
	suite.Equal(suite.author.ID, fetched.AuthorID)
	suite.Equal(suite.author.Email, fetched.Author.Email)
}

func (suite *ArticleServiceTestSuite) TestUpdateArticle() {
	created, err := suite.service.CreateArticle(suite.author.ID, models.CreateArticleRequest{
		Title:   "Draft",
		Content: "v1",
	})
	suite.NoError(err)

	updated, err := suite.service.UpdateArticle(created.ID, suite.author.ID, models.UpdateArticleRequest{
		Title:   "Final",
		Content: "v2",
	})
	suite.NoError(err)
	suite.Equal("Final", updated.Title)
	suite.Equal("v2", updated.Content)
	suite.WithinDuration(created.CreatedAt, updated.CreatedAt, time.Second)
	suite.False(updated.UpdatedAt.Before(created.UpdatedAt))
}

func (suite *ArticleServiceTestSuite) TestUpdateArticleRejectsNonAuthor() {
	created, err := suite.service.CreateArticle(suite.author.ID, models.CreateArticleRequest{
		Title:   "Mine",
		Content: "body",
	})
	suite.NoError(err)

	_, err = suite.service.UpdateArticle(created.ID, suite.other.ID, models.UpdateArticleRequest{
		Title:   "Stolen",
		Content: "body",
	})
	suite.ErrorIs(err, services.ErrNotArticleAuthor)

	fetched, err := suite.service.GetArticle(created.ID)
	suite.NoError(err)
	suite.Equal("Mine", fetched.Title)
}

func (suite *ArticleServiceTestSuite) TestGetArticlesPagination() {
	for i := 0; i < 15; i++ {
		_, err := suite.service.CreateArticle(suite.author.ID, models.CreateArticleRequest{
			Title:   fmt.Sprintf("Article %02d", i),
			Content: "body",
		})
		suite.NoError(err)
	}

	articles, total, err := suite.service.GetArticles(models.ArticleListParams{Page: 2, Limit: 10})
	suite.NoError(err)
	suite.Equal(int64(15), total)
	suite.Len(articles, 5)
}

func (suite *ArticleServiceTestSuite) TestGetArticlesFilterByAuthor() {
	_, err := suite.service.CreateArticle(suite.author.ID, models.CreateArticleRequest{Title: "A", Content: "x"})
	suite.NoError(err)
	_, err = suite.service.CreateArticle(suite.other.ID, models.CreateArticleRequest{Title: "B", Content: "x"})
	suite.NoError(err)

	articles, total, err := suite.service.GetArticles(models.ArticleListParams{
		AuthorID: suite.author.ID.String(),
		Page:     1,
		Limit:    10,
	})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(articles, 1)
	suite.Equal("A", articles[0].Title)
}

func TestArticleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceTestSuite))
}
