package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"portal/infras/otel"
	"portal/infras/postgres"
	"portal/internal/domains/booking/model"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/logger"
	gRepo "portal/shared/repository"
)

// UpsertResult reports the row identity of an external upsert and
// whether the statement inserted a new row.
type UpsertResult struct {
	ID      string `db:"id"`
	Created bool   `db:"created"`
}

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	UpsertExternal(ctx context.Context, model model.Booking) (UpsertResult, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpsertExternal writes a provider-sourced booking in a single atomic
// statement keyed on (customer_id, external_job_uuid). The uniqueness
// constraint makes re-running the same sync idempotent even against
// concurrent writers.
func (repo *repositoryImpl) UpsertExternal(ctx context.Context, booking model.Booking) (res UpsertResult, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpsertExternal")
	defer scope.End()
	defer scope.TraceIfError(err)

	placeholders := make([]string, 0, len(repo.InsertColumns))
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)
		ON CONFLICT (%s, %s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s
		RETURNING %s, (xmax = 0) AS created`,
		model.TableName, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "),
		model.FieldCustomerID, model.FieldExternalJobUUID,
		model.FieldTitle, model.FieldTitle,
		model.FieldDescription, model.FieldDescription,
		model.FieldStatus, model.FieldStatus,
		model.FieldScheduledDate, model.FieldScheduledDate,
		model.FieldCompletedDate, model.FieldCompletedDate,
		model.FieldAddress, model.FieldAddress,
		model.FieldTotal, model.FieldTotal,
		constant.FieldModifiedAt, constant.FieldModifiedAt,
		constant.FieldModifiedBy, constant.FieldModifiedBy,
		model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &res, booking); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return res, nil
}
