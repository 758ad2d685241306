package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/libris-project/libris/internal/database"
)

// RouterConfig carries the dependencies of the HTTP layer. Using a config
// struct keeps the router constructor testable and the parameter count
// manageable.
type RouterConfig struct {
	Database      *database.Database
	Lifecycle     LifecycleStore
	Queries       QueryStore
	TemplatesPath string
	StaticPath    string
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Load HTML templates
	tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	// Create controllers
	health := NewHealthController(cfg.Database, cfg.Version)
	authorsController := NewAuthorsController(cfg.Lifecycle, cfg.Queries)
	booksController := NewBooksController(cfg.Lifecycle, cfg.Queries)
	uiController := NewUIController(cfg.Lifecycle, cfg.Queries)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Authors API endpoints
	router.GET("/api/authors", authorsController.GetAllAuthors)
	router.POST("/api/authors", authorsController.CreateAuthor)

	// Books API endpoints
	router.GET("/api/books", booksController.GetAllBooks)
	router.POST("/api/books", booksController.CreateBook)
	router.DELETE("/api/books/:id", booksController.DeleteBook)

	// UI routes
	router.GET("/", uiController.HomePage)
	router.GET("/add_author", authorsController.AddAuthorPage)
	router.POST("/add_author", authorsController.AddAuthorForm)
	router.GET("/add_book", uiController.AddBookPage)
	router.POST("/add_book", uiController.AddBookForm)
	router.POST("/book/:id/delete", uiController.DeleteBookForm)

	return router
}
