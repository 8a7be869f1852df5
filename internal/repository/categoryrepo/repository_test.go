package categoryrepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goinventory/internal/domain"
	apperror "goinventory/internal/errors"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/pkg/validation"
	"goinventory/internal/repository/categoryrepo"
	"goinventory/internal/repository/kvstore"
)

func TestLoad_FirstRunSeedsDefaultCategories(t *testing.T) {
	backend := kvstore.NewMemoryBackend()
	repo := categoryrepo.NewCategoryRepository(backend, logger.NewNop())

	categories, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, "Electrónicos", categories[0].Name)
	assert.Equal(t, "#8B5CF6", categories[3].Color)
	for _, c := range categories {
		assert.NoError(t, validation.Struct(c), c.ID)
	}

	// Segunda carga lê o que foi gravado, sem novo seed.
	require.NoError(t, repo.Save(context.Background(), categories[:1]))
	again, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, categories[:1], again)
}

func TestSave_StorageUnavailable(t *testing.T) {
	backend := kvstore.NewMemoryBackend()
	backend.SetUnavailable(true)
	repo := categoryrepo.NewCategoryRepository(backend, logger.NewNop())

	err := repo.Save(context.Background(), []domain.Category{})

	assert.IsType(t, &apperror.StorageUnavailableError{}, err)
}
