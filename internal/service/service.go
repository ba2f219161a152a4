package service

import (
	"github.com/jmoiron/sqlx"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"lide-archiv/internal/config"
	"lide-archiv/internal/repository"
	"lide-archiv/internal/service/audit"
	"lide-archiv/internal/service/detail"
	"lide-archiv/internal/service/entry"
	"lide-archiv/internal/service/media"
	"lide-archiv/internal/service/person"
	"lide-archiv/internal/service/relation"
	"lide-archiv/internal/service/seed"
	"lide-archiv/internal/service/tag"
)

type Services struct {
	Person   person.Service
	Entry    entry.Service
	Media    media.Service
	Tag      tag.Service
	Relation relation.Service
	Detail   detail.Service
	Audit    audit.Service
	Seed     seed.Service
}

func NewServices(db *sqlx.DB, repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	return &Services{
		Person:   person.NewService(repos, redis),
		Entry:    entry.NewService(repos, redis),
		Media:    media.NewService(repos, minioClient, redis, cfg),
		Tag:      tag.NewService(repos, redis),
		Relation: relation.NewService(repos, redis),
		Detail:   detail.NewService(repos, redis, cfg.DetailCacheTTL),
		Audit:    audit.NewService(repos.AuditLog),
		Seed:     seed.NewService(db, repos),
	}
}
