package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/optifit/web/internal/model"
	"github.com/optifit/web/internal/storage"
)

var ErrExportUnavailable = errors.New("export storage is not configured")

var exportHeader = []string{"type", "date", "exercise", "sets", "reps", "weight", "one_rep_max", "notes"}

type ExportService struct {
	progress ProgressAPI
	storage  storage.Storage
	expiry   time.Duration
}

// NewExportService returns an export service. store may be nil, in which
// case exports can only be streamed.
func NewExportService(progress ProgressAPI, store storage.Storage, expiry time.Duration) *ExportService {
	return &ExportService{
		progress: progress,
		storage:  store,
		expiry:   expiry,
	}
}

func (s *ExportService) Uploads() bool {
	return s.storage != nil
}

// WriteCSV writes the user's exercise logs and body-weight metrics as CSV,
// ordered by date.
func (s *ExportService) WriteCSV(ctx context.Context, sess *model.Session, w io.Writer) error {
	summary, err := s.progress.ProgressSummary(ctx, sess)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}
	metrics, err := s.progress.Metrics(ctx, sess)
	if err != nil {
		return fmt.Errorf("failed to load metrics: %w", err)
	}

	var rows [][]string
	for _, day := range summary.LogsByDate {
		for _, l := range day.Logs {
			date := l.Day()
			if date == "" {
				date = day.Date
			}
			rows = append(rows, []string{
				"exercise",
				date,
				l.ExerciseName,
				itoa(l.Sets),
				itoa(l.Reps),
				ftoa(l.Weight),
				ftoa(l.OneRepMax),
				l.Notes,
			})
		}
	}
	for _, m := range metrics {
		rows = append(rows, []string{
			"body_weight",
			m.Date.Format(model.DateLayout),
			"",
			"",
			"",
			ftoa(m.Weight),
			"",
			m.Notes,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i][1] < rows[j][1] })

	cw := csv.NewWriter(w)
	err = cw.Write(exportHeader)
	if err != nil {
		return err
	}
	err = cw.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// Upload stores the CSV export and returns a temporary download link.
func (s *ExportService) Upload(ctx context.Context, sess *model.Session) (string, error) {
	if s.storage == nil {
		return "", ErrExportUnavailable
	}

	var buf bytes.Buffer
	err := s.WriteCSV(ctx, sess, &buf)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("exports/%s/%s.csv", sess.UserID, uuid.New().String())
	err = s.storage.Save(ctx, key, "text/csv", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to store export: %w", err)
	}

	url, err := s.storage.PresignedURL(ctx, key, s.expiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign export link: %w", err)
	}
	return url, nil
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func ftoa(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
