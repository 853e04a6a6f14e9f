package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IhabMohamed/deep-motion-planning/pkg/config"
	"github.com/IhabMohamed/deep-motion-planning/pkg/log"
)

type publisherRecorder struct {
	updates chan config.Tuning
}

func newPublisherRecorder() *publisherRecorder {
	return &publisherRecorder{updates: make(chan config.Tuning, 4)}
}

func (p *publisherRecorder) PublishTuningUpdate(t config.Tuning) error {
	p.updates <- t
	return nil
}

func TestMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")

	s, err := NewTuningService(path, log.NewNopLogger())
	require.NoError(t, err)

	pos, orient := s.Tolerances()
	assert.Equal(t, 0.1, pos)
	assert.Equal(t, 0.1, orient)
}

func TestLoadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("position_tolerance: 0.25\norientation_tolerance: 0.5\n"), 0644))

	s, err := NewTuningService(path, log.NewNopLogger())
	require.NoError(t, err)

	pos, orient := s.Tolerances()
	assert.Equal(t, 0.25, pos)
	assert.Equal(t, 0.5, orient)
}

func TestInvalidFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("position_tolerance: -1\norientation_tolerance: 0.1\n"), 0644))

	_, err := NewTuningService(path, log.NewNopLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position_tolerance")
}

func TestUpdatePersistsAndPublishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	s, err := NewTuningService(path, log.NewNopLogger())
	require.NoError(t, err)

	publisher := newPublisherRecorder()
	s.SetPublisher(publisher)

	require.NoError(t, s.Update([]byte("position_tolerance: 0.2\norientation_tolerance: 0.3\n")))

	pos, orient := s.Tolerances()
	assert.Equal(t, 0.2, pos)
	assert.Equal(t, 0.3, orient)

	select {
	case published := <-publisher.updates:
		assert.Equal(t, s.Current(), published)
	case <-time.After(time.Second):
		t.Fatal("no tuning update published")
	}

	// A fresh service picks the persisted values back up.
	reloaded, err := NewTuningService(path, log.NewNopLogger())
	require.NoError(t, err)
	pos, orient = reloaded.Tolerances()
	assert.Equal(t, 0.2, pos)
	assert.Equal(t, 0.3, orient)
}

func TestUpdateRejectsInvalidTolerances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	s, err := NewTuningService(path, log.NewNopLogger())
	require.NoError(t, err)

	require.Error(t, s.Update([]byte("position_tolerance: 0\norientation_tolerance: 0.1\n")))
	require.Error(t, s.Update([]byte("{not yaml")))

	// Current values are untouched and nothing was written.
	pos, orient := s.Tolerances()
	assert.Equal(t, 0.1, pos)
	assert.Equal(t, 0.1, orient)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
