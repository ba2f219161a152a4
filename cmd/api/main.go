package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"lide-archiv/internal/config"
	"lide-archiv/internal/handler"
	"lide-archiv/internal/middleware"
	"lide-archiv/internal/repository"
	"lide-archiv/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (detail views will not be cached)", err)
		redis = nil
	}
	if redis != nil {
		defer redis.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (media upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(db, repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	persons := v1.Group("/persons")
	persons.Post("/", h.Person.Create)
	persons.Get("/", h.Person.List)
	persons.Get("/:personId", h.Person.Get)
	persons.Get("/:personId/detail", h.Person.GetDetail)
	persons.Put("/:personId", h.Person.Update)
	persons.Delete("/:personId", h.Person.Delete)
	persons.Post("/:personId/tags/:tagId", h.PersonTag.Add)
	persons.Delete("/:personId/tags/:tagId", h.PersonTag.Remove)
	persons.Get("/:personId/tags", h.PersonTag.ListByPerson)
	persons.Post("/:personId/entries/:entryId", h.PersonEntry.Add)
	persons.Delete("/:personId/entries/:entryId", h.PersonEntry.Remove)
	persons.Get("/:personId/entries", h.PersonEntry.ListByPerson)
	persons.Get("/:personId/relations/from", h.Relation.ListFrom)
	persons.Get("/:personId/relations/to", h.Relation.ListTo)

	entries := v1.Group("/entries")
	entries.Post("/", h.Entry.Create)
	entries.Get("/", h.Entry.List)
	entries.Get("/:entryId", h.Entry.Get)
	entries.Get("/:entryId/detail", h.Entry.GetDetail)
	entries.Put("/:entryId", h.Entry.Update)
	entries.Delete("/:entryId", h.Entry.Delete)
	entries.Post("/:entryId/tags/:tagId", h.EntryTag.Add)
	entries.Delete("/:entryId/tags/:tagId", h.EntryTag.Remove)
	entries.Get("/:entryId/tags", h.EntryTag.ListByEntry)
	entries.Get("/:entryId/persons", h.PersonEntry.ListByEntry)
	entries.Post("/:entryId/media/:mediaId", h.MediaEntry.Add)
	entries.Put("/:entryId/media/:mediaId", h.MediaEntry.Update)
	entries.Delete("/:entryId/media/:mediaId", h.MediaEntry.Remove)
	entries.Get("/:entryId/media", h.MediaEntry.ListByEntry)

	media := v1.Group("/media")
	media.Post("/", h.Media.Create)
	media.Post("/upload", h.Media.Upload)
	media.Get("/", h.Media.List)
	media.Get("/:mediaId", h.Media.Get)
	media.Put("/:mediaId", h.Media.Update)
	media.Delete("/:mediaId", h.Media.Delete)
	media.Get("/:mediaId/entries", h.MediaEntry.ListByMedia)

	tags := v1.Group("/tags")
	tags.Post("/", h.Tag.Create)
	tags.Get("/", h.Tag.List)
	tags.Get("/:tagId", h.Tag.Get)
	tags.Put("/:tagId", h.Tag.Update)
	tags.Delete("/:tagId", h.Tag.Delete)
	tags.Get("/:tagId/entries", h.EntryTag.ListByTag)
	tags.Get("/:tagId/persons", h.PersonTag.ListByTag)

	relations := v1.Group("/relations")
	relations.Post("/", h.Relation.Add)
	relations.Put("/", h.Relation.Update)
	relations.Delete("/", h.Relation.Remove)

	audit := v1.Group("/audit")
	audit.Get("/recent", h.Audit.GetRecentActivities)

	admin := v1.Group("/admin")
	admin.Post("/seed", h.Admin.Seed)
}
