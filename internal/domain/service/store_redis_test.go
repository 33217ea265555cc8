package service

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/diegoclair/shift-cycle-bot/internal/database"
	"github.com/diegoclair/shift-cycle-bot/internal/domain"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_Redis(t *testing.T) {
	dm, client, prefix := database.SetupTestRedis(t)
	store := NewConfigStore(dm, time.UTC, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := store.Subscribe(ctx)
	require.NoError(t, err)

	initial := receive(t, updates)
	assert.Nil(t, initial.StartDate)
	assert.Equal(t, entity.DefaultShifts(), initial.Shifts)

	start := civil.Date{Year: 2024, Month: time.January, Day: 10}
	shifts := []entity.ShiftType{{ID: "a", Label: "Early"}, {ID: "b", Label: "Late"}}
	require.NoError(t, store.Replace(ctx, &start, shifts))

	next := receive(t, updates)
	require.NotNil(t, next.StartDate)
	assert.Equal(t, start, *next.StartDate)
	assert.Equal(t, shifts, next.Shifts)

	raw, err := client.Get(ctx, prefix+domain.KeyStartDate).Result()
	require.NoError(t, err)
	assert.Equal(t, "19732", raw)

	// a value written behind the store's back that no longer decodes
	require.NoError(t, client.Set(ctx, prefix+domain.KeyShiftsConfig, `[{"id":`, 0).Err())

	got, err := store.ShiftList(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultShifts(), got)

	require.NoError(t, store.Replace(ctx, nil, entity.DefaultShifts()))

	next = receive(t, updates)
	assert.Nil(t, next.StartDate)
	assert.Equal(t, entity.DefaultShifts(), next.Shifts)

	exists, err := client.Exists(ctx, prefix+domain.KeyStartDate).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)

	cancel()
	waitClosed(t, updates)
}
