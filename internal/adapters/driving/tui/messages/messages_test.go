package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewBrowse, "browse"},
		{ViewFacets, "facets"},
		{ViewDocument, "document"},
		{ViewStats, "stats"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewBrowseIsZeroValue(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewBrowse, v)
}

func TestRefreshCompleted_Fallback(t *testing.T) {
	msg := RefreshCompleted{Err: errors.Join(domain.ErrNoDocuments, errors.New("listing failed"))}

	require.Error(t, msg.Err)
	assert.ErrorIs(t, msg.Err, domain.ErrNoDocuments)
}

func TestDocumentLoaded(t *testing.T) {
	t.Run("with document", func(t *testing.T) {
		doc := &domain.ProjectedDocument{ID: "mar", Title: "Klimaat"}
		msg := DocumentLoaded{ID: "mar", Document: doc}

		assert.Equal(t, "mar", msg.ID)
		assert.Same(t, doc, msg.Document)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		msg := DocumentLoaded{ID: "gone", Err: domain.ErrNotFound}

		assert.Nil(t, msg.Document)
		assert.ErrorIs(t, msg.Err, domain.ErrNotFound)
	})
}

func TestSnapshotUpdated(t *testing.T) {
	snap := driving.Snapshot{Generation: 3, SelectedID: "feb"}
	msg := SnapshotUpdated{Snapshot: snap}

	assert.Equal(t, uint64(3), msg.Snapshot.Generation)
	assert.Equal(t, "feb", msg.Snapshot.SelectedID)
}

func TestToggleMessages(t *testing.T) {
	assert.Equal(t, TopicToggled{Name: "Wonen", Selected: false}, TopicToggled{Name: "Wonen"})
	assert.NotEqual(t, PartyToggled{Name: "VVD", Selected: true}, PartyToggled{Name: "VVD"})
}
