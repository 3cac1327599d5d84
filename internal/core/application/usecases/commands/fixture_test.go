package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"proofparcel/internal/adapters/out/memory"
	"proofparcel/internal/core/application/usecases/commands"
	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/nft"
	"proofparcel/internal/core/domain/model/notification"
	"proofparcel/internal/core/domain/services"
	"proofparcel/internal/core/ports"

	"github.com/stretchr/testify/require"
)

var (
	seller = kernel.MustNewIdentity("seller-s")
	buyer  = kernel.MustNewIdentity("buyer-b")
	epoch  = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

// scriptedRandom returns codeBytes for code draws and a fresh counter-filled
// block for identifier draws. hook, when set, runs after every draw and may
// call other handlers.
type scriptedRandom struct {
	mu        sync.Mutex
	codeBytes []byte
	counter   byte
	err       error
	idErr     error
	hook      func(n int)
}

func (r *scriptedRandom) Read(_ context.Context, n int) ([]byte, error) {
	r.mu.Lock()
	if r.err != nil {
		r.mu.Unlock()
		return nil, r.err
	}
	if n == 32 && r.idErr != nil {
		r.mu.Unlock()
		return nil, r.idErr
	}
	var out []byte
	if n == 4 && r.codeBytes != nil {
		out = append(out, r.codeBytes...)
	} else {
		r.counter++
		out = make([]byte, n)
		for i := range out {
			out[i] = r.counter
		}
	}
	hook := r.hook
	r.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	return out, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingPublisher struct {
	mu        sync.Mutex
	published []*notification.Notification
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, notifications ...*notification.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, notifications...)
	return nil
}

func (p *recordingPublisher) messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.published))
	for _, n := range p.published {
		out = append(out, n.Message())
	}
	return out
}

type lifecycleFactory struct{ factory *memory.UnitOfWorkFactory }

func (f lifecycleFactory) Create() commands.LifecycleUoW { return f.factory.Create() }

type mintFactory struct{ factory *memory.UnitOfWorkFactory }

func (f mintFactory) Create() commands.MintUoW { return f.factory.Create() }

type checkpointFactory struct{ factory *memory.UnitOfWorkFactory }

func (f checkpointFactory) Create() commands.CheckpointUoW { return f.factory.Create() }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixture wires every command handler to one memory store.
type fixture struct {
	store     *memory.Store
	factory   *memory.UnitOfWorkFactory
	random    *scriptedRandom
	clock     *fakeClock
	publisher *recordingPublisher

	create      commands.CreateDeliveryCommandHandler
	start       commands.StartDeliveryCommandHandler
	generateOtp commands.GenerateOtpCommandHandler
	confirm     commands.ConfirmDeliveryCommandHandler
	release     commands.ReleaseEscrowCommandHandler
}

func newFixture() *fixture {
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)
	random := &scriptedRandom{codeBytes: []byte{0x00, 0x00, 0x30, 0x39}}
	clock := &fakeClock{now: epoch}
	publisher := &recordingPublisher{}

	otps := services.NewOtpService(random)
	notifier := commands.NewNotifier(publisher, discardLogger())

	return &fixture{
		store:     store,
		factory:   factory,
		random:    random,
		clock:     clock,
		publisher: publisher,

		create:      commands.NewCreateDeliveryCommandHandler(lifecycleFactory{factory}, otps, clock),
		start:       commands.NewStartDeliveryCommandHandler(lifecycleFactory{factory}, clock, notifier),
		generateOtp: commands.NewGenerateOtpCommandHandler(lifecycleFactory{factory}, otps, clock, notifier),
		confirm: commands.NewConfirmDeliveryCommandHandler(
			lifecycleFactory{factory}, mintFactory{factory}, otps, services.NewNftMinter(), clock, notifier,
		),
		release: commands.NewReleaseEscrowCommandHandler(lifecycleFactory{factory}, clock, notifier),
	}
}

func (f *fixture) createDelivery(t *testing.T, amount uint64) kernel.ID {
	t.Helper()
	cmd, err := commands.NewCreateDeliveryCommand(seller, buyer, amount, "widget")
	require.NoError(t, err)
	id, err := f.create.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return id
}

func (f *fixture) startDelivery(t *testing.T, caller kernel.Identity, id kernel.ID) error {
	t.Helper()
	cmd, err := commands.NewStartDeliveryCommand(caller, id)
	require.NoError(t, err)
	return f.start.Handle(t.Context(), cmd)
}

func (f *fixture) issueOtp(t *testing.T, caller kernel.Identity, id kernel.ID) (string, error) {
	t.Helper()
	cmd, err := commands.NewGenerateOtpCommand(caller, id)
	require.NoError(t, err)
	return f.generateOtp.Handle(t.Context(), cmd)
}

func (f *fixture) confirmDelivery(t *testing.T, caller kernel.Identity, id kernel.ID, code string) (kernel.ID, error) {
	t.Helper()
	cmd, err := commands.NewConfirmDeliveryCommand(caller, id, code)
	require.NoError(t, err)
	return f.confirm.Handle(t.Context(), cmd)
}

func (f *fixture) releaseEscrow(t *testing.T, caller kernel.Identity, id kernel.ID) error {
	t.Helper()
	cmd, err := commands.NewReleaseEscrowCommand(caller, id)
	require.NoError(t, err)
	return f.release.Handle(t.Context(), cmd)
}

// read runs fn inside its own unit of work and rolls it back.
func (f *fixture) read(t *testing.T, fn func(uow ports.UnitOfWork)) {
	t.Helper()
	ctx := context.Background()
	uow := f.factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	fn(uow)
}

func (f *fixture) delivery(t *testing.T, id kernel.ID) *delivery.Delivery {
	t.Helper()
	var d *delivery.Delivery
	f.read(t, func(uow ports.UnitOfWork) {
		var err error
		d, err = uow.DeliveryRepository().Get(context.Background(), id)
		require.NoError(t, err)
	})
	return d
}

func (f *fixture) balance(t *testing.T) uint64 {
	t.Helper()
	var balance uint64
	f.read(t, func(uow ports.UnitOfWork) {
		ledger, err := uow.EscrowRepository().Get(context.Background())
		require.NoError(t, err)
		balance = ledger.Balance()
	})
	return balance
}

func (f *fixture) nftsOf(t *testing.T, owner kernel.Identity) []*nft.DeliveryNFT {
	t.Helper()
	var nfts []*nft.DeliveryNFT
	f.read(t, func(uow ports.UnitOfWork) {
		var err error
		nfts, err = uow.NftRepository().GetByOwner(context.Background(), owner)
		require.NoError(t, err)
	})
	return nfts
}

func (f *fixture) inbox(t *testing.T, recipient kernel.Identity) []string {
	t.Helper()
	var out []string
	f.read(t, func(uow ports.UnitOfWork) {
		ns, err := uow.NotificationRepository().GetByRecipient(context.Background(), recipient)
		require.NoError(t, err)
		for _, n := range ns {
			out = append(out, n.Message())
		}
	})
	return out
}
