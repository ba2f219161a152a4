package media

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"lide-archiv/internal/config"
	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
	"lide-archiv/internal/service/detail"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateMediaInput) (*domain.Media, error)
	// Upload stores the file in object storage and creates the media
	// record with uri pointing at the stored object.
	Upload(ctx context.Context, mediaType, fileName, mimeType string, fileSize int64, reader io.Reader) (*domain.Media, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateMediaInput) (*domain.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, mediaType *string, params domain.PaginationParams) (domain.PaginatedResponse[domain.Media], error)
}

type service struct {
	mediaRepo      repository.MediaRepository
	mediaEntryRepo repository.MediaEntryRepository
	auditRepo      repository.AuditLogRepository
	minioClient    *minio.Client
	redis          *redis.Client
	cfg            *config.Config
}

func NewService(repos *repository.Repositories, minioClient *minio.Client, redis *redis.Client, cfg *config.Config) Service {
	return &service{
		mediaRepo:      repos.Media,
		mediaEntryRepo: repos.MediaEntry,
		auditRepo:      repos.AuditLog,
		minioClient:    minioClient,
		redis:          redis,
		cfg:            cfg,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateMediaInput) (*domain.Media, error) {
	if strings.TrimSpace(input.MediaType) == "" {
		return nil, domain.Invalid("media_type is required")
	}
	if strings.TrimSpace(input.URI) == "" {
		return nil, domain.Invalid("uri is required")
	}

	media := &domain.Media{
		ID:        uuid.New(),
		MediaType: strings.TrimSpace(input.MediaType),
		MimeType:  input.MimeType,
		URI:       strings.TrimSpace(input.URI),
		Title:     input.Title,
		Note:      input.Note,
		TakenAt:   input.TakenAt,
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "CREATE",
		EntityType: "MEDIA",
		EntityID:   media.ID,
		NewValue:   media,
	})

	return media, nil
}

func (s *service) Upload(ctx context.Context, mediaType, fileName, mimeType string, fileSize int64, reader io.Reader) (*domain.Media, error) {
	if s.minioClient == nil {
		return nil, domain.Invalid("media upload is not configured")
	}
	if strings.TrimSpace(mediaType) == "" {
		return nil, domain.Invalid("media_type is required")
	}

	mediaID := uuid.New()
	storagePath := fmt.Sprintf("media/%s/%s", time.Now().Format("2006/01"), mediaID.String())

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	var mime *string
	if mimeType != "" {
		mime = &mimeType
	}
	var title *string
	if fileName != "" {
		title = &fileName
	}

	media := &domain.Media{
		ID:        mediaID,
		MediaType: strings.TrimSpace(mediaType),
		MimeType:  mime,
		URI:       s.publicURL(storagePath),
		Title:     title,
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "UPLOAD",
		EntityType: "MEDIA",
		EntityID:   media.ID,
		NewValue:   media,
	})

	return media, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, domain.ErrMediaNotFound
	}
	return media, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateMediaInput) (*domain.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, domain.ErrMediaNotFound
	}

	oldMedia := *media

	if input.MediaType != nil {
		if strings.TrimSpace(*input.MediaType) == "" {
			return nil, domain.Invalid("media_type must not be blank")
		}
		media.MediaType = strings.TrimSpace(*input.MediaType)
	}
	if input.URI != nil {
		if strings.TrimSpace(*input.URI) == "" {
			return nil, domain.Invalid("uri must not be blank")
		}
		media.URI = strings.TrimSpace(*input.URI)
	}
	if input.MimeType.Set {
		media.MimeType = input.MimeType.Value
	}
	if input.Title.Set {
		media.Title = input.Title.Value
	}
	if input.Note.Set {
		media.Note = input.Note.Value
	}
	if input.TakenAt.Set {
		media.TakenAt = input.TakenAt.Value
	}

	if err := s.mediaRepo.Update(ctx, media); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "UPDATE",
		EntityType: "MEDIA",
		EntityID:   media.ID,
		OldValue:   oldMedia,
		NewValue:   *media,
	})

	s.invalidateViews(ctx, media.ID)

	return media, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	media, err := s.mediaRepo.GetAnyByID(ctx, id)
	if err != nil {
		return err
	}
	if media == nil {
		return domain.ErrMediaNotFound
	}
	if media.DeletedAt != nil {
		return domain.ErrAlreadyDeleted
	}

	if err := s.mediaRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "DELETE",
		EntityType: "MEDIA",
		EntityID:   id,
		OldValue:   media,
	})

	s.invalidateViews(ctx, id)

	return nil
}

func (s *service) List(ctx context.Context, mediaType *string, params domain.PaginationParams) (domain.PaginatedResponse[domain.Media], error) {
	items, total, err := s.mediaRepo.List(ctx, mediaType, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Media]{}, err
	}

	return domain.NewPaginatedResponse(items, params.Page, params.PageSize, total), nil
}

func (s *service) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, storagePath)
}

// invalidateViews drops the cached entry details this media appears in.
func (s *service) invalidateViews(ctx context.Context, mediaID uuid.UUID) {
	if s.redis == nil {
		return
	}

	if links, err := s.mediaEntryRepo.FindActiveByMedia(ctx, mediaID); err == nil {
		for _, link := range links {
			detail.InvalidateEntry(ctx, s.redis, link.EntryID)
		}
	}
}
