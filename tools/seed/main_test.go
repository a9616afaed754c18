package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	memoryRepo "soulsync/database/repository/memory"
	"soulsync/models"
	"soulsync/services/therapist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedTherapists(t *testing.T) {
	repo := memoryRepo.NewTherapistStore()
	svc := therapist.NewDirectoryService(repo, nil, 0, false, zap.NewNop())
	var out bytes.Buffer

	require.NoError(t, seedTherapists(context.Background(), svc, &out))

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, len(therapist.SampleTherapists()))
	assert.Contains(t, out.String(), "seeded")
}

func TestResetTherapistsReplacesExisting(t *testing.T) {
	repo := memoryRepo.NewTherapistStore(models.Therapist{ID: "old", Name: "Dr. Old"})
	svc := therapist.NewDirectoryService(repo, nil, 0, false, zap.NewNop())
	var out bytes.Buffer

	require.NoError(t, resetTherapists(context.Background(), repo, svc, &out))

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, len(therapist.SampleTherapists()))
	for _, th := range all {
		assert.NotEqual(t, "old", th.ID)
	}
	assert.Contains(t, out.String(), "removed 1 therapists")
}

func TestResetTherapistsStopsOnDeleteError(t *testing.T) {
	repo := memoryRepo.NewTherapistStore()
	repo.Err = errors.New("mongo down")
	svc := therapist.NewDirectoryService(repo, nil, 0, false, zap.NewNop())

	err := resetTherapists(context.Background(), repo, svc, &bytes.Buffer{})
	assert.ErrorContains(t, err, "clear therapists")
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := []string{}
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "therapists")
	assert.Contains(t, names, "reset")
}
