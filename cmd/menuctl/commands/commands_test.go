package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"menuboard/internal/domain/entity"
	"menuboard/internal/infra/persistence/memory"
	"menuboard/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedMenu_InsertsDefaultMenuOnce(t *testing.T) {
	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	categories := impl.NewCategoryService(impl.CategoryServiceParams{
		TxManager:    store,
		CategoryRepo: store,
		Logger:       logger,
	})
	products := impl.NewProductService(impl.ProductServiceParams{
		TxManager:   store,
		ProductRepo: store,
		Logger:      logger,
	})
	ctx := context.Background()

	report, err := seedMenu(ctx, categories, products, defaultMenu, logger)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Categories)
	assert.Equal(t, 5, report.Products)
	assert.Empty(t, report.Skipped)

	listed, err := products.ListProducts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed, 5)
	for _, p := range listed {
		if p.Type == entity.ProductTypeSingle {
			assert.Empty(t, p.Variants, p.Name)
		} else {
			assert.NotEmpty(t, p.Variants, p.Name)
		}
	}

	again, err := seedMenu(ctx, categories, products, defaultMenu, logger)
	require.NoError(t, err)
	assert.Zero(t, again.Categories)
	assert.Zero(t, again.Products)
	assert.Equal(t, []string{"PROMOS", "NORI TACOS X2", "HAND ROLLS X2", "NT BOWLS"}, again.Skipped)

	var out bytes.Buffer
	printSeedReport(&out, again)
	assert.Contains(t, out.String(), "Skipped existing categories: PROMOS")
}

func TestParseRoles(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    entity.Roles
		wantErr bool
	}{
		{name: "admin", raw: []string{"admin"}, want: entity.Roles{entity.RoleAdmin}},
		{name: "admin and staff", raw: []string{"admin", "staff"}, want: entity.Roles{entity.RoleAdmin, entity.RoleStaff}},
		{name: "unknown", raw: []string{"owner"}, wantErr: true},
		{name: "empty", raw: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRoles(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
