package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSettingsStore struct {
	mock.Mock
}

func (m *mockSettingsStore) GetPlayerSettings(ctx context.Context, playerID pgtype.UUID) ([]byte, error) {
	args := m.Called(ctx, playerID)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func (m *mockSettingsStore) UpsertPlayerSettings(ctx context.Context, playerID pgtype.UUID, blob []byte) error {
	return m.Called(ctx, playerID, blob).Error(0)
}

func TestSettingsRepository_Get(t *testing.T) {
	store := new(mockSettingsStore)
	repo := NewSettingsRepository(store)

	store.On("GetPlayerSettings", mock.Anything, pgUUIDFromByte(1)).
		Return([]byte(`{"max_rounds":6,"high_difficulty":true}`), nil)

	got, err := repo.Get(context.Background(), uuidFromByte(1))

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"max_rounds": 6.0, "high_difficulty": true}, got)
	store.AssertExpectations(t)
}

func TestSettingsRepository_GetMissing(t *testing.T) {
	store := new(mockSettingsStore)
	repo := NewSettingsRepository(store)

	store.On("GetPlayerSettings", mock.Anything, pgUUIDFromByte(2)).Return(nil, nil)

	got, err := repo.Get(context.Background(), uuidFromByte(2))

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSettingsRepository_GetCorruptBlob(t *testing.T) {
	store := new(mockSettingsStore)
	repo := NewSettingsRepository(store)

	store.On("GetPlayerSettings", mock.Anything, pgUUIDFromByte(3)).Return([]byte(`not json`), nil)

	_, err := repo.Get(context.Background(), uuidFromByte(3))

	assert.ErrorContains(t, err, "decode settings blob")
}

func TestSettingsRepository_Save(t *testing.T) {
	store := new(mockSettingsStore)
	repo := NewSettingsRepository(store)

	store.On("UpsertPlayerSettings", mock.Anything, pgUUIDFromByte(4), []byte(`{"max_rounds":3,"option_count":5}`)).Return(nil)

	err := repo.Save(context.Background(), uuidFromByte(4), map[string]any{"max_rounds": 3, "option_count": 5})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestSettingsRepository_SavePropagatesErrors(t *testing.T) {
	store := new(mockSettingsStore)
	repo := NewSettingsRepository(store)

	store.On("UpsertPlayerSettings", mock.Anything, pgUUIDFromByte(5), mock.Anything).Return(errors.New("conn reset"))

	err := repo.Save(context.Background(), uuidFromByte(5), map[string]any{})

	assert.EqualError(t, err, "conn reset")
}
