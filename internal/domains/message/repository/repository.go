package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"portal/infras/otel"
	"portal/infras/postgres"
	"portal/internal/domains/message/model"
	gDto "portal/shared/dto"
	gRepo "portal/shared/repository"
)

type Message interface {
	Insert(ctx context.Context, model model.Message) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Message, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Message, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Message]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Message {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Message](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
