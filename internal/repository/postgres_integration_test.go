//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"fittrack-be/internal/database"
	"fittrack-be/internal/entities"
)

func TestPostgresRepositories(t *testing.T) {
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("fitness"),
		postgrescontainer.WithUsername("platform"),
		postgrescontainer.WithPassword("platform"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewConnection(connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	users := NewUserRepository(db)
	created, err := users.Create(ctx, &entities.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = users.Create(ctx, &entities.User{FirstName: "Ada", LastName: "Again", Email: "ada@example.com", PasswordHash: "hash"})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	found, err := users.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)
	require.Equal(t, "hash", found.PasswordHash)

	_, err = users.FindByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, ErrNotFound)

	entries := NewFitnessRepository(db)
	for _, e := range []entities.FitnessEntry{
		{Email: "ada@example.com", Type: entities.TypeDailySteps, Value: 1000, Date: "2026-10-15"},
		{Email: "ada@example.com", Type: entities.TypeDailySteps, Value: 2000, Date: "2026-10-16"},
		{Email: "ada@example.com", Type: entities.TypeDailySteps, Value: 3000, Date: "2026-10-16"},
	} {
		e := e
		_, err := entries.Insert(ctx, &e)
		require.NoError(t, err)
	}

	list, err := entries.ListByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, float64(3000), list[0].Value)
	require.Equal(t, "2026-10-16", list[0].Date)
	require.Equal(t, float64(1000), list[2].Value)

	latest, err := entries.FindLatest(ctx, "ada@example.com", entities.TypeDailySteps)
	require.NoError(t, err)
	require.Equal(t, float64(3000), latest.Value)

	_, err = entries.FindLatest(ctx, "ada@example.com", entities.TypeWaterIntake)
	require.ErrorIs(t, err, ErrNotFound)

	// Same-day ids crossing 9 -> 10 and beyond must keep numeric order.
	var last *entities.FitnessEntry
	for i := 1; i <= 12; i++ {
		last, err = entries.Insert(ctx, &entities.FitnessEntry{
			Email: "grace@example.com",
			Type:  entities.TypeCaloriesIntake,
			Value: float64(i * 100),
			Date:  "2026-10-16",
		})
		require.NoError(t, err)
	}

	latest, err = entries.FindLatest(ctx, "grace@example.com", entities.TypeCaloriesIntake)
	require.NoError(t, err)
	require.Equal(t, last.ID, latest.ID)
	require.Equal(t, float64(1200), latest.Value)

	list, err = entries.ListByEmail(ctx, "grace@example.com")
	require.NoError(t, err)
	require.Len(t, list, 12)
	for i, entry := range list {
		require.Equal(t, float64((12-i)*100), entry.Value)
	}
}
