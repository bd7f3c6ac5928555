package jobs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"rides/internal/core/application/usecases/queries"
	"rides/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSummaryHandler struct{ mock.Mock }

func (m *MockSummaryHandler) Handle(
	ctx context.Context,
	query queries.GetRideSummaryQuery,
) (queries.GetRideSummaryQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetRideSummaryQueryResponse), args.Error(1)
}

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func TestRideSummaryJob_RunLogsCounts(t *testing.T) {
	var buf bytes.Buffer
	handler := new(MockSummaryHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(queries.GetRideSummaryQueryResponse{
		Requested:  2,
		InProgress: 1,
		Total:      3,
	}, nil).Once()

	jobs.NewRideSummaryJob(handler, "", jsonLogger(&buf)).Run(t.Context())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Ride summary", entry["msg"])
	assert.Equal(t, "ride_summary_job", entry["component"])
	assert.InDelta(t, 2, entry["requested"], 0)
	assert.InDelta(t, 1, entry["in_progress"], 0)
	assert.InDelta(t, 0, entry["finished"], 0)
	assert.InDelta(t, 3, entry["total"], 0)
	handler.AssertExpectations(t)
}

func TestRideSummaryJob_RunLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	handler := new(MockSummaryHandler)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetRideSummaryQueryResponse{}, errors.New("db down")).Once()

	jobs.NewRideSummaryJob(handler, "", jsonLogger(&buf)).Run(t.Context())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "db down", entry["error"])
}

func TestRideSummaryJob_StartRejectsInvalidSchedule(t *testing.T) {
	var buf bytes.Buffer
	job := jobs.NewRideSummaryJob(new(MockSummaryHandler), "not a schedule", jsonLogger(&buf))

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	var buf bytes.Buffer
	manager := jobs.NewJobManager(new(MockSummaryHandler), "@every 1h", jsonLogger(&buf))

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Ride summary job started")
	assert.Contains(t, buf.String(), "Ride summary job stopped")
}

func TestJobManager_StartAllWrapsError(t *testing.T) {
	var buf bytes.Buffer
	manager := jobs.NewJobManager(new(MockSummaryHandler), "* * *", jsonLogger(&buf))

	err := manager.StartAll()

	require.ErrorContains(t, err, "failed to start ride summary job")
}
