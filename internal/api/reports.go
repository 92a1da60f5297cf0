package api

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"timesheet-report/internal/domain"
	"timesheet-report/internal/validation"
)

// ReferencePrefix starts every generated request reference.
const ReferencePrefix = "TSR-"

func newReference() string {
	return ReferencePrefix + strings.ToUpper(uuid.NewString())
}

func (a *reportAPIImpl) CreateReportRequest(ctx context.Context, input validation.ReportRequestInput) (*domain.ReportRequest, error) {
	if err := a.validator.ValidateReportRequest(input); err != nil {
		return nil, invalidInput("report request", err)
	}

	request := domain.ReportRequest{
		Reference: a.newRef(),
		UserID:    input.UserID,
		FromDate:  input.FromDate,
		ToDate:    input.ToDate,
	}
	dbRequest := a.mapper.ReportRequestToDatabase(request)
	if err := a.repo.CreateReportRequest(ctx, &dbRequest); err != nil {
		return nil, err
	}

	a.logger.DebugContext(ctx, "report request created",
		slog.Int64("request_id", dbRequest.ID),
		slog.String("reference", dbRequest.Reference),
	)

	created := a.mapper.ReportRequestFromDatabase(dbRequest)
	return &created, nil
}
