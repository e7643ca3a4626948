package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"portal/infras/otel"
	"portal/infras/postgres"
	"portal/internal/domains/attachment/model"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/logger"
	gRepo "portal/shared/repository"
)

type Attachment interface {
	Insert(ctx context.Context, model model.Attachment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Attachment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Attachment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	InsertIgnoreExternal(ctx context.Context, model model.Attachment) (created bool, err error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Attachment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Attachment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Attachment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertIgnoreExternal inserts a provider-sourced attachment only when no
// row exists for (booking_id, external_attachment_uuid). Existing rows
// are left untouched: attachment sync is create-only.
func (repo *repositoryImpl) InsertIgnoreExternal(ctx context.Context, attachment model.Attachment) (created bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".attachment.InsertIgnoreExternal")
	defer scope.End()
	defer scope.TraceIfError(err)

	placeholders := make([]string, 0, len(repo.InsertColumns))
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s, %s) DO NOTHING",
		model.TableName, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "),
		model.FieldBookingID, model.FieldExternalAttachmentUUID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, attachment)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}
