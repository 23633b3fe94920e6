package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-registro/internal/domain"
	"github.com/jhoicas/inventario-registro/internal/domain/entity"
	"github.com/jhoicas/inventario-registro/internal/infrastructure/postgres"
)

// fakeQuerier registra cada Exec y responde con tag o err.
type fakeQuerier struct {
	tag  string
	err  error
	sqls []string
	args [][]any
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sqls = append(f.sqls, sql)
	f.args = append(f.args, args)
	if err := ctx.Err(); err != nil {
		return pgconn.CommandTag{}, err
	}
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	return pgconn.NewCommandTag(f.tag), nil
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no usado")
}

func (f *fakeQuerier) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func (f *fakeQuerier) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("no usado")
}

func TestFieldWriter_AsignaTrasUpdate(t *testing.T) {
	q := &fakeQuerier{tag: "UPDATE 1"}
	w := postgres.NewFieldWriter(context.Background(), q, time.Second)
	p := &entity.Product{ID: "P1", Price: decimal.NewFromInt(3)}

	require.NoError(t, w.WritePrice(p, decimal.RequireFromString("4.50")))

	assert.Equal(t, "4.5", p.Price.String())
	require.Len(t, q.sqls, 1)
	assert.Contains(t, q.sqls[0], "SET price = $2")
	assert.Equal(t, "P1", q.args[0][0])
}

func TestFieldWriter_SinFilasNoAsigna(t *testing.T) {
	q := &fakeQuerier{tag: "UPDATE 0"}
	w := postgres.NewFieldWriter(context.Background(), q, time.Second)
	p := &entity.Product{ID: "GHOST", Name: "Widget", ReorderLevel: 5}

	err := w.WriteName(p, "Gizmo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"GHOST" no existe en la base`)
	assert.Equal(t, "Widget", p.Name)

	assert.Error(t, w.WriteReorderLevel(p, 9))
	assert.Equal(t, 5, p.ReorderLevel)

	// A través del Record el fallo se reporta como error de accesor.
	r := entity.NewRecord(p, entity.WithFieldWriter(w))
	err = r.SetCategory(entity.CategoryToys)
	assert.ErrorIs(t, err, domain.ErrAccessor)
	assert.Equal(t, entity.CategoryElectronics, r.Category())
}

func TestFieldWriter_ErrorDeExec(t *testing.T) {
	boom := errors.New("conexión perdida")
	w := postgres.NewFieldWriter(context.Background(), &fakeQuerier{err: boom}, time.Second)
	p := &entity.Product{ID: "P1", Name: "Widget"}

	err := w.WriteName(p, "Gizmo")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Widget", p.Name)
}

func TestFieldWriter_ContextoCanceladoCortaElUpdate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := &fakeQuerier{tag: "UPDATE 1"}
	w := postgres.NewFieldWriter(ctx, q, time.Minute)
	p := &entity.Product{ID: "P1", Name: "Widget"}

	require.NoError(t, w.WriteName(p, "Gizmo"))
	cancel()

	err := w.WriteName(p, "Otro")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Gizmo", p.Name)
}
