package movementrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goinventory/internal/domain"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/repository/kvstore"
	"goinventory/internal/repository/movementrepo"
)

func TestLoad_MissingKeyIsEmptyAndNotWritten(t *testing.T) {
	backend := kvstore.NewMemoryBackend()
	repo := movementrepo.NewMovementRepository(backend, logger.NewNop())
	ctx := context.Background()

	movements, err := repo.Load(ctx)

	require.NoError(t, err)
	assert.NotNil(t, movements)
	assert.Empty(t, movements)
	_, found, _ := backend.Get(ctx, kvstore.KeyMovements)
	assert.False(t, found)
}

func TestSaveAndLoad_PreservesOrder(t *testing.T) {
	backend := kvstore.NewMemoryBackend()
	repo := movementrepo.NewMovementRepository(backend, logger.NewNop())
	ctx := context.Background()
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	want := []domain.StockMovement{
		{ID: "m1", ProductID: "1", Type: domain.MovementIn, Quantity: 5, Reason: "compra", CreatedAt: at, CreatedBy: "ana"},
		{ID: "m2", ProductID: "2", Type: domain.MovementOut, Quantity: 1, Reason: "venda", CreatedAt: at.Add(time.Hour), CreatedBy: domain.SystemActor},
		{ID: "m3", ProductID: "1", Type: domain.MovementAdjustment, Quantity: 0, Reason: "inventário", CreatedAt: at.Add(2 * time.Hour), CreatedBy: domain.SystemActor},
	}

	require.NoError(t, repo.Save(ctx, want))
	got, err := repo.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"m1", "m3"}, ids(movementrepo.ByProduct(got, "1")))
	assert.Empty(t, movementrepo.ByProduct(got, "99"))
}

func ids(movements []domain.StockMovement) []string {
	out := make([]string, 0, len(movements))
	for _, m := range movements {
		out = append(out, m.ID)
	}
	return out
}
