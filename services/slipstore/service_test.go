package slipstore

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/leonmuri/progol-backend/lib/quiniela"
	"github.com/leonmuri/progol-backend/lib/testutil"
	"github.com/leonmuri/progol-backend/services/slipstore/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func testSlip(n int) quiniela.Slip {
	g := quiniela.NewGeneratorWithRand(rand.New(rand.NewPCG(7, 7)))
	matches := make([]quiniela.Match, 0, n)
	teams := []string{
		"América", "Chivas", "Cruz Azul", "Pumas", "Tigres", "Monterrey",
		"Santos", "León", "Atlas", "Necaxa", "Pachuca", "Toluca",
		"Puebla", "Tijuana", "Mazatlán", "Querétaro", "Juárez", "San Luis",
		"Barcelona", "Liverpool", "Chelsea", "Arsenal", "Juventus", "PSG",
		"Bayern Munich", "Real Madrid", "Inter Milan", "AC Milan",
	}
	for i := 0; i < n; i++ {
		matches = append(matches, quiniela.Match{
			Home:      teams[(2*i)%len(teams)],
			Away:      teams[(2*i+1)%len(teams)],
			DateLabel: "Jornada 1",
		})
	}
	return g.GenerateUniform(matches, 1)[0]
}

func TestService(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/slipstore",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	{
		slips, err := service.List(ctx, 0)
		require.NoError(t, err)
		require.Empty(t, slips)

		stats, err := service.Stats(ctx)
		require.NoError(t, err)
		require.Zero(t, stats.TotalSlips)
		require.True(t, stats.FirstAt.IsZero())
	}

	slip := testSlip(14)
	id, err := service.Save(ctx, slip)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	{
		stored, err := service.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, id, stored.ID)
		require.Equal(t, 14, stored.MatchCount)
		require.Equal(t, slip, stored.Entries)
		require.False(t, stored.GeneratedAt.IsZero())
	}

	{
		id2, err := service.Save(ctx, testSlip(9))
		require.NoError(t, err)

		slips, err := service.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, slips, 2)
		// most recent first
		require.Equal(t, id2, slips[0].ID)
		require.Equal(t, id, slips[1].ID)

		limited, err := service.List(ctx, 1)
		require.NoError(t, err)
		require.Len(t, limited, 1)

		stats, err := service.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(2), stats.TotalSlips)
		require.False(t, stats.FirstAt.After(stats.LastAt))
	}

	{
		deleted, err := service.Delete(ctx, id)
		require.NoError(t, err)
		require.True(t, deleted)

		_, err = service.Get(ctx, id)
		require.ErrorIs(t, err, ErrNotFound)

		slips, err := service.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, slips, 1)

		// deleting again reports not-found instead of failing
		deleted, err = service.Delete(ctx, id)
		require.NoError(t, err)
		require.False(t, deleted)
	}
}

func TestGetUnknownId(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/slipstore",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	_, err := service.Get(context.Background(), 424242)
	require.ErrorIs(t, err, ErrNotFound)
}
