package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paper-insights/internal/domain/model"
	"paper-insights/internal/testutil"
)

func TestExportWritesEveryPayload(t *testing.T) {
	logger := testutil.NewTestLogger(t)
	citations := newTestCitationNetwork(t, sampleCitationStore())
	collaborations := newTestCollaborationNetwork(t, &fakeAffiliationStore{
		err: &model.DatasetError{Dataset: model.DatasetAffiliations, Path: "affils.csv"},
	})
	exporter := NewExporter(NewMetrics(3, logger), citations, collaborations, logger)

	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, exporter.Export(context.Background(), dir))

	for _, name := range []string{
		PaperCountsFile,
		PatentCitationsFile,
		CitationNetworkFile,
		EnhancedCitationNetworkFile,
		CollaborationNetworkFile,
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	var counts []model.PaperCount
	readJSON(t, filepath.Join(dir, PaperCountsFile), &counts)
	assert.Len(t, counts, 10)

	var network model.CitationNetwork
	readJSON(t, filepath.Join(dir, EnhancedCitationNetworkFile), &network)
	assert.Len(t, network.Nodes, 3)
	assert.Equal(t, "Computer Science", network.Nodes[0].Topic)

	var collab model.CollaborationNetwork
	readJSON(t, filepath.Join(dir, CollaborationNetworkFile), &collab)
	assert.Contains(t, collab.Error, "affils.csv")
	assert.Empty(t, collab.Nodes)
}

func TestExportKeepsCitationErrors(t *testing.T) {
	logger := testutil.NewTestLogger(t)
	citations := newTestCitationNetwork(t, &fakeCitationStore{err: errors.New("disk I/O error")})
	collaborations := newTestCollaborationNetwork(t, &fakeAffiliationStore{})
	exporter := NewExporter(NewMetrics(3, logger), citations, collaborations, logger)

	dir := t.TempDir()
	require.NoError(t, exporter.Export(context.Background(), dir))

	for _, name := range []string{CitationNetworkFile, EnhancedCitationNetworkFile} {
		var network model.CitationNetwork
		readJSON(t, filepath.Join(dir, name), &network)
		assert.Equal(t, "Data processing failed: disk I/O error", network.Error, name)
		assert.Empty(t, network.Nodes, name)
	}
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
}
