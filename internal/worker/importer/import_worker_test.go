package importer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/activity-import-service/internal/domain"
	"github.com/activity-import-service/internal/worker"
)

func testWorker() *ImportWorker {
	return &ImportWorker{
		BaseWorker: worker.NewBaseWorker("venue-import", "test-group", zap.NewNop()),
	}
}

func TestImportWorker_ParseMessage(t *testing.T) {
	w := testWorker()

	t.Run("valid job", func(t *testing.T) {
		jobID := uuid.New()
		msg := domain.StreamMessage{
			ID: "1700000000000-0",
			Data: `{"job_id":"` + jobID.String() + `",` +
				`"cities":["New York","Chicago"],` +
				`"categories":["preschools"],` +
				`"max_per_category":25}`,
		}

		job, err := w.parseMessage(msg)
		require.NoError(t, err)
		assert.Equal(t, jobID, job.JobID)
		assert.Equal(t, []string{"New York", "Chicago"}, job.Cities)
		assert.Equal(t, []string{"preschools"}, job.Categories)
		assert.Equal(t, 25, job.MaxPerCategory)
	})

	t.Run("empty data field", func(t *testing.T) {
		_, err := w.parseMessage(domain.StreamMessage{ID: "1-0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := w.parseMessage(domain.StreamMessage{ID: "1-0", Data: "{not json"})
		assert.Error(t, err)
	})
}
