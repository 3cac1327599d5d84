package cmd_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"proofparcel/cmd"
	"proofparcel/internal/adapters/out/checkpoint"
	"proofparcel/internal/adapters/out/kafka"
	"proofparcel/internal/core/application/usecases/commands"
	"proofparcel/internal/core/application/usecases/queries"
	"proofparcel/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(t *testing.T, path string) *cmd.CompositionRoot {
	t.Helper()
	root, err := cmd.NewCompositionRoot(
		cmd.Config{ReconcileSchedule: "0 * * * * *"},
		checkpoint.NewFileStore(path),
		kafka.NopPublisher{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)
	return root
}

func TestCompositionRoot_SuspendAndResume(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "checkpoint.json")
	seller := kernel.MustNewIdentity("alice")
	buyer := kernel.MustNewIdentity("bob")

	// Given a running process with one delivery
	first := newRoot(t, path)
	restore := first.CreateRestoreCheckpointCommandHandler()
	found, err := restore.Handle(ctx, commands.NewRestoreCheckpointCommand())
	require.NoError(t, err)
	assert.False(t, found)

	create := first.CreateCreateDeliveryCommandHandler()
	cmdCreate, err := commands.NewCreateDeliveryCommand(seller, buyer, 42, "lamp")
	require.NoError(t, err)
	id, err := create.Handle(ctx, cmdCreate)
	require.NoError(t, err)

	// When it suspends and a new process resumes
	save := first.CreateSaveCheckpointCommandHandler()
	require.NoError(t, save.Handle(ctx, commands.NewSaveCheckpointCommand()))

	second := newRoot(t, path)
	restore = second.CreateRestoreCheckpointCommandHandler()
	found, err = restore.Handle(ctx, commands.NewRestoreCheckpointCommand())

	// Then the delivery and the ledger are back
	require.NoError(t, err)
	assert.True(t, found)

	query, err := queries.NewGetDeliveryQuery(id)
	require.NoError(t, err)
	d, err := second.CreateGetDeliveryQueryHandler().Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "Pending", d.Status)

	balance, err := second.CreateGetEscrowBalanceQueryHandler().Handle(ctx, queries.NewGetEscrowBalanceQuery())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), balance.Balance)
}

func TestCompositionRoot_HTTPServer(t *testing.T) {
	root := newRoot(t, filepath.Join(t.TempDir(), "checkpoint.json"))

	server, err := root.CreateHTTPServer(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, server)
	assert.NotNil(t, root.CreateJobManager())
}
