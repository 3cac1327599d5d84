package cmd

import (
	"context"
	"log/slog"

	httpin "proofparcel/internal/adapters/in/http"
	"proofparcel/internal/adapters/out/checkpoint"
	"proofparcel/internal/adapters/out/memory"
	"proofparcel/internal/adapters/out/system"
	"proofparcel/internal/core/application/usecases/commands"
	"proofparcel/internal/core/application/usecases/queries"
	"proofparcel/internal/core/domain/services"
	"proofparcel/internal/core/ports"
	"proofparcel/internal/jobs"
	"proofparcel/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// CompositionRoot owns the single in-memory store of the process and builds
// every handler on top of it.
type CompositionRoot struct {
	config      Config
	logger      *slog.Logger
	uowFactory  *memory.UnitOfWorkFactory
	otps        services.OtpService
	minter      services.NftMinter
	clock       ports.Clock
	notifier    commands.Notifier
	codec       ports.CheckpointCodec
	checkpoints ports.CheckpointStore
	registry    *prometheus.Registry
	metrics     *metrics.Metrics
}

func NewCompositionRoot(
	config Config,
	checkpoints ports.CheckpointStore,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(registry)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:      config,
		logger:      logger,
		uowFactory:  memory.NewUnitOfWorkFactory(memory.NewStore()),
		otps:        services.NewOtpService(system.CryptoRandom{}),
		minter:      services.NewNftMinter(),
		clock:       system.UTCClock{},
		notifier:    commands.NewNotifier(publisher, logger),
		codec:       checkpoint.NewJSONCodec(),
		checkpoints: checkpoints,
		registry:    registry,
		metrics:     m,
	}, nil
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) mintUoWFactory() commands.MintUoWFactory {
	return FuncMintUoWFactory(func() commands.MintUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkpointUoWFactory() commands.CheckpointUoWFactory {
	return FuncCheckpointUoWFactory(func() commands.CheckpointUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) readUoWFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.lifecycleUoWFactory(), c.otps, c.clock)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.lifecycleUoWFactory(), c.clock, c.notifier)
}

func (c *CompositionRoot) CreateGenerateOtpCommandHandler() commands.GenerateOtpCommandHandler {
	return commands.NewGenerateOtpCommandHandler(c.lifecycleUoWFactory(), c.otps, c.clock, c.notifier)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(
		c.lifecycleUoWFactory(), c.mintUoWFactory(), c.otps, c.minter, c.clock, c.notifier,
	)
}

func (c *CompositionRoot) CreateReleaseEscrowCommandHandler() commands.ReleaseEscrowCommandHandler {
	return commands.NewReleaseEscrowCommandHandler(c.lifecycleUoWFactory(), c.clock, c.notifier)
}

func (c *CompositionRoot) CreateSaveCheckpointCommandHandler() commands.SaveCheckpointCommandHandler {
	return commands.NewSaveCheckpointCommandHandler(c.checkpointUoWFactory(), c.codec, c.checkpoints)
}

func (c *CompositionRoot) CreateRestoreCheckpointCommandHandler() commands.RestoreCheckpointCommandHandler {
	return commands.NewRestoreCheckpointCommandHandler(c.checkpointUoWFactory(), c.codec, c.checkpoints)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateGetNftQueryHandler() queries.GetNftQueryHandler {
	return queries.NewGetNftQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateGetNftsByOwnerQueryHandler() queries.GetNftsByOwnerQueryHandler {
	return queries.NewGetNftsByOwnerQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateGetEscrowBalanceQueryHandler() queries.GetEscrowBalanceQueryHandler {
	return queries.NewGetEscrowBalanceQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateReconcileEscrowQueryHandler() queries.ReconcileEscrowQueryHandler {
	return queries.NewReconcileEscrowQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*httpin.Server, error) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(httpin.Handlers{
		CreateDelivery:   c.CreateCreateDeliveryCommandHandler(),
		StartDelivery:    c.CreateStartDeliveryCommandHandler(),
		GenerateOtp:      c.CreateGenerateOtpCommandHandler(),
		ConfirmDelivery:  c.CreateConfirmDeliveryCommandHandler(),
		ReleaseEscrow:    c.CreateReleaseEscrowCommandHandler(),
		GetDelivery:      c.CreateGetDeliveryQueryHandler(),
		ListDeliveries:   c.CreateListDeliveriesQueryHandler(),
		GetNft:           c.CreateGetNftQueryHandler(),
		GetNftsByOwner:   c.CreateGetNftsByOwnerQueryHandler(),
		GetEscrowBalance: c.CreateGetEscrowBalanceQueryHandler(),
		GetNotifications: c.CreateGetNotificationsQueryHandler(),
	}, doc, c.metrics, c.registry, c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileEscrowQueryHandler(), c.metrics, c.config.ReconcileSchedule, c.logger)
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncMintUoWFactory func() commands.MintUoW

func (f FuncMintUoWFactory) Create() commands.MintUoW {
	return f()
}

type FuncCheckpointUoWFactory func() commands.CheckpointUoW

func (f FuncCheckpointUoWFactory) Create() commands.CheckpointUoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
