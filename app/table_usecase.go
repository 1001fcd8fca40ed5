package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aalniak/vins-dashboard-generator/domain"
	"github.com/aalniak/vins-dashboard-generator/internal/version"
)

// TableUseCase orchestrates the score table workflow
type TableUseCase struct {
	service   domain.TableService
	formatter domain.TableFormatter
	writer    domain.ReportWriter
}

// NewTableUseCase creates a new table use case
func NewTableUseCase(
	service domain.TableService,
	formatter domain.TableFormatter,
	writer domain.ReportWriter,
) *TableUseCase {
	return &TableUseCase{
		service:   service,
		formatter: formatter,
		writer:    writer,
	}
}

// Execute builds the comparison table and writes it in the requested format
func (uc *TableUseCase) Execute(ctx context.Context, req domain.TableRequest) (*domain.TableResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	response, err := uc.service.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	response.GeneratedAt = time.Now().Format("2006-01-02 15:04:05")
	response.Version = version.Version

	err = uc.writer.Write(req.OutputWriter, req.OutputPath, req.OutputFormat, req.NoOpen, func(w io.Writer) error {
		return uc.formatter.Write(response, req.OutputFormat, w)
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// TableUseCaseBuilder provides a builder pattern for creating TableUseCase
type TableUseCaseBuilder struct {
	service   domain.TableService
	formatter domain.TableFormatter
	writer    domain.ReportWriter
}

// NewTableUseCaseBuilder creates a new builder
func NewTableUseCaseBuilder() *TableUseCaseBuilder {
	return &TableUseCaseBuilder{}
}

// WithService sets the table service
func (b *TableUseCaseBuilder) WithService(service domain.TableService) *TableUseCaseBuilder {
	b.service = service
	return b
}

// WithFormatter sets the table formatter
func (b *TableUseCaseBuilder) WithFormatter(formatter domain.TableFormatter) *TableUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithWriter sets the report writer
func (b *TableUseCaseBuilder) WithWriter(writer domain.ReportWriter) *TableUseCaseBuilder {
	b.writer = writer
	return b
}

// Build creates the use case, validating that required dependencies are set
func (b *TableUseCaseBuilder) Build() (*TableUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("table service is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("table formatter is required")
	}
	if b.writer == nil {
		return nil, fmt.Errorf("report writer is required")
	}

	return &TableUseCase{
		service:   b.service,
		formatter: b.formatter,
		writer:    b.writer,
	}, nil
}
