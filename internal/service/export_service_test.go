package service

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/docketwatch/docket-api/internal/dto"
	"github.com/docketwatch/docket-api/pkg/export"
	"github.com/docketwatch/docket-api/pkg/storage"
)

func newExportServiceForTest(t *testing.T) (*ExportService, *storage.LocalStorage) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("secret", time.Hour)
	cfg := ExportConfig{APIPrefix: "/api/v1", ResultTTL: time.Hour}
	svc := NewExportService(store, signer, cfg, zap.NewNop(), export.NewCSVExporter(), export.NewPDFExporter())
	return svc, store
}

func sampleReport() *dto.ConferenceReport {
	return &dto.ConferenceReport{
		Date: "2022-11-04",
		Term: 22,
		Rows: []dto.ConferenceReportRow{
			{Docket: "22-123", CaseName: "Acme Corp. v. Doe", CaseType: "certiorari",
				CurrentStatus: "denied", Action: "DENIED", DistributionCount: 1},
			{Docket: "22-200", CaseName: "Roe v. Wade", CaseType: "certiorari",
				CurrentStatus: "pending", Action: "RELISTED", DistributionCount: 2, RescheduleCount: 1},
		},
	}
}

func TestExportServiceGenerateCSV(t *testing.T) {
	svc, store := newExportServiceForTest(t)

	result, err := svc.Generate(sampleReport(), ExportFormatCSV)
	require.NoError(t, err)
	require.NotEmpty(t, result.RelativePath)
	require.Contains(t, result.URL, "/exports/")

	info, err := os.Stat(store.Path(result.RelativePath))
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestExportServiceGeneratePDF(t *testing.T) {
	svc, store := newExportServiceForTest(t)

	result, err := svc.Generate(sampleReport(), ExportFormatPDF)
	require.NoError(t, err)
	require.Equal(t, ExportFormatPDF, result.Format)

	info, err := os.Stat(store.Path(result.RelativePath))
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc, _ := newExportServiceForTest(t)

	_, err := svc.Generate(sampleReport(), "xlsx")
	require.Error(t, err)
}

func TestExportServiceTokenRoundTrip(t *testing.T) {
	svc, _ := newExportServiceForTest(t)

	result, err := svc.Generate(sampleReport(), ExportFormatCSV)
	require.NoError(t, err)

	reportID, relPath, _, err := svc.ParseToken(result.Token, false)
	require.NoError(t, err)
	require.Equal(t, "2022-11-04", reportID)
	require.Equal(t, result.RelativePath, relPath)

	file, err := svc.Open(relPath)
	require.NoError(t, err)
	require.NoError(t, file.Close())
}
