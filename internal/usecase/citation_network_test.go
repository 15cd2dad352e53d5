package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paper-insights/internal/domain/model"
	"paper-insights/internal/testutil"
)

const testInstitution = "Yeshiva University, Computer Science Department"

func newTestCitationNetwork(t *testing.T, store *fakeCitationStore) *CitationNetwork {
	return NewCitationNetwork(store, testutil.NewTestLogger(t), CitationNetworkConfig{
		Years:       model.YearRange{Min: 2020, Max: 2025},
		Institution: testInstitution,
	})
}

func sampleCitationStore() *fakeCitationStore {
	return &fakeCitationStore{
		records: []model.CitationRecord{
			{CitingPaperID: "p1", CitedPaperID: "p2", Year: 2021, RefYear: 2019},
			{CitingPaperID: "p1", CitedPaperID: "p3", Year: 2021, RefYear: 2018},
			{CitingPaperID: "p3", CitedPaperID: "p2", Year: 2022, RefYear: 2019},
			{CitingPaperID: "p1", CitedPaperID: "p2", Year: 2021, RefYear: 2019},
			{CitingPaperID: "p9", CitedPaperID: "p2", Year: 2019, RefYear: 2010},
		},
		pairs: []model.CitationPair{
			{CitedPaperID: "p2", CitingPaperID: "p1", Times: 2},
			{CitedPaperID: "p2", CitingPaperID: "p3", Times: 1},
			{CitedPaperID: "p3", CitingPaperID: "p1", Times: 1},
		},
	}
}

func TestCitationNetworkBuild(t *testing.T) {
	network, err := newTestCitationNetwork(t, sampleCitationStore()).Build(context.Background())
	require.NoError(t, err)

	want := model.CitationNetwork{
		Nodes: []model.PaperNode{
			{ID: "p1", Name: "Paper_p1", PublishYear: 2021, CitationCount: 0, Institution: testInstitution},
			{ID: "p3", Name: "Paper_p3", PublishYear: 2022, CitationCount: 1, Institution: testInstitution},
			{ID: "p2", Name: "Paper_p2", PublishYear: 2019, CitationCount: 3, Institution: testInstitution},
		},
		Links: []model.CitationLink{
			{Source: "p2", Target: "p1", Value: 2, CitingYear: 2021, CitedYear: 2019, YearDiff: 2},
			{Source: "p2", Target: "p3", Value: 1, CitingYear: 2022, CitedYear: 2019, YearDiff: 3},
			{Source: "p3", Target: "p1", Value: 1, CitingYear: 2021, CitedYear: 2018, YearDiff: 3},
		},
	}
	if diff := cmp.Diff(want, network); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestCitationNetworkBuildEnhanced(t *testing.T) {
	network, err := newTestCitationNetwork(t, sampleCitationStore()).BuildEnhanced(context.Background())
	require.NoError(t, err)
	require.Len(t, network.Nodes, 3)

	wantScores := map[string]float64{"p1": 2.0, "p3": 2.8, "p2": 4.4}
	for _, node := range network.Nodes {
		assert.Equal(t, "Computer Science", node.Topic)
		require.NotNil(t, node.ImpactScore, "node %s", node.ID)
		assert.InDelta(t, wantScores[node.ID], *node.ImpactScore, 1e-9, "node %s", node.ID)
	}
	assert.Len(t, network.Links, 3)
}

func TestCitationNetworkEmptyDataset(t *testing.T) {
	network, err := newTestCitationNetwork(t, &fakeCitationStore{}).Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, network.Error)
	assert.NotNil(t, network.Nodes)
	assert.NotNil(t, network.Links)
	assert.Empty(t, network.Nodes)
}

func TestCitationNetworkMissingDataset(t *testing.T) {
	store := &fakeCitationStore{err: &model.DatasetError{Dataset: model.DatasetCitations, Path: "/data/refs.csv"}}

	network, err := newTestCitationNetwork(t, store).Build(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrDatasetNotFound))
	assert.Equal(t, "The CSV file for the citation network could not be found. Please check the path: /data/refs.csv", network.Error)
	assert.Equal(t, []model.PaperNode{}, network.Nodes)
	assert.Equal(t, []model.CitationLink{}, network.Links)
}

func TestCitationNetworkStoreFailure(t *testing.T) {
	store := &fakeCitationStore{err: errors.New("disk on fire")}

	network, err := newTestCitationNetwork(t, store).BuildEnhanced(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Data processing failed: disk on fire", network.Error)
	assert.Empty(t, network.Nodes)
}
