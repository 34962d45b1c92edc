package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/optifit/web/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	objects map[string][]byte
}

func (m *memStorage) Save(_ context.Context, key, _ string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *memStorage) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://exports.example.com/" + key + "?sig=1", nil
}

func progressFixture() *fakeAPI {
	return &fakeAPI{
		summary: func() (*model.ProgressSummary, error) {
			return &model.ProgressSummary{LogsByDate: []model.DateLogs{
				{Date: "2025-03-02", Logs: []model.ExerciseLog{{ExerciseName: "Squat", Sets: 3, Reps: 5, Weight: 120, OneRepMax: 140, Date: "2025-03-02T10:00:00Z"}}},
			}}, nil
		},
		metrics: func() ([]model.Metric, error) {
			return []model.Metric{{Weight: 81.2, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Notes: "morning"}}, nil
		},
	}
}

func TestExportService_WriteCSV(t *testing.T) {
	svc := NewExportService(progressFixture(), nil, time.Hour)
	var buf bytes.Buffer

	require.NoError(t, svc.WriteCSV(context.Background(), testSession, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{"body_weight", "2025-03-01", "", "", "", "81.2", "", "morning"}, records[1])
	assert.Equal(t, []string{"exercise", "2025-03-02", "Squat", "3", "5", "120", "140", ""}, records[2])
}

func TestExportService_Upload(t *testing.T) {
	store := &memStorage{objects: map[string][]byte{}}
	svc := NewExportService(progressFixture(), store, time.Hour)
	assert.True(t, svc.Uploads())

	url, err := svc.Upload(context.Background(), testSession)

	require.NoError(t, err)
	require.Len(t, store.objects, 1)
	for key, data := range store.objects {
		assert.True(t, strings.HasPrefix(key, "exports/u1/"))
		assert.Contains(t, url, key)
		assert.Contains(t, string(data), "Squat")
	}
}

func TestExportService_UploadWithoutStorage(t *testing.T) {
	svc := NewExportService(progressFixture(), nil, time.Hour)

	_, err := svc.Upload(context.Background(), testSession)
	assert.ErrorIs(t, err, ErrExportUnavailable)
}
