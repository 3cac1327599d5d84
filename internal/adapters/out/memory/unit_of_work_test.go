package memory_test

import (
	"context"
	"testing"
	"time"

	"proofparcel/internal/adapters/out/memory"
	"proofparcel/internal/core/domain/model/delivery"
	"proofparcel/internal/core/domain/model/escrow"
	"proofparcel/internal/core/domain/model/kernel"
	"proofparcel/internal/core/domain/model/nft"
	"proofparcel/internal/core/domain/model/notification"
	"proofparcel/internal/core/ports"
	"proofparcel/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var (
	seller = kernel.MustNewIdentity("S")
	buyer  = kernel.MustNewIdentity("B")
	t0     = time.Unix(1_700_000_000, 0).UTC()
)

// UnitOfWorkTestSuite exercises the journaled unit of work against a fresh store per test.
type UnitOfWorkTestSuite struct {
	suite.Suite
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.factory = memory.NewUnitOfWorkFactory(memory.NewStore())
}

func (suite *UnitOfWorkTestSuite) begin() ports.UnitOfWork {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(context.Background()))
	return uow
}

func (suite *UnitOfWorkTestSuite) newDelivery(id string, createdAt time.Time) *delivery.Delivery {
	d, err := delivery.NewDelivery(kernel.MustNewID(id), seller, buyer, 100, "parcel "+id, createdAt)
	suite.Require().NoError(err)
	return d
}

func (suite *UnitOfWorkTestSuite) TestCommit_MakesWritesVisible() {
	ctx := context.Background()

	// Given
	uow := suite.begin()
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, suite.newDelivery("D1", t0)))
	suite.Require().NoError(uow.EscrowRepository().Save(ctx, escrow.NewLedger(100)))

	// When
	suite.Require().NoError(uow.Commit(ctx))

	// Then
	reader := suite.begin()
	defer func() { _ = reader.Rollback(ctx) }()

	got, err := reader.DeliveryRepository().Get(ctx, kernel.MustNewID("D1"))
	suite.Require().NoError(err)
	suite.Equal(delivery.Pending, got.Status())

	ledger, err := reader.EscrowRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Equal(uint64(100), ledger.Balance())
}

func (suite *UnitOfWorkTestSuite) TestRollback_RevertsEveryWrite() {
	ctx := context.Background()

	// Given a committed delivery in Pending
	setup := suite.begin()
	suite.Require().NoError(setup.DeliveryRepository().Add(ctx, suite.newDelivery("D1", t0)))
	suite.Require().NoError(setup.EscrowRepository().Save(ctx, escrow.NewLedger(100)))
	suite.Require().NoError(setup.Commit(ctx))

	// When a later unit of work writes and rolls back
	uow := suite.begin()
	d, err := uow.DeliveryRepository().Get(ctx, kernel.MustNewID("D1"))
	suite.Require().NoError(err)
	suite.Require().NoError(d.Start(seller, t0))
	suite.Require().NoError(uow.DeliveryRepository().Update(ctx, d))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, suite.newDelivery("D2", t0)))
	suite.Require().NoError(uow.EscrowRepository().Save(ctx, escrow.NewLedger(200)))
	n, err := notification.NewNotification(buyer, "hello", notification.Info, t0)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.NotificationRepository().Append(ctx, n))
	suite.Require().NoError(uow.Rollback(ctx))

	// Then the store is unchanged
	reader := suite.begin()
	defer func() { _ = reader.Rollback(ctx) }()

	got, err := reader.DeliveryRepository().Get(ctx, kernel.MustNewID("D1"))
	suite.Require().NoError(err)
	suite.Equal(delivery.Pending, got.Status())

	_, err = reader.DeliveryRepository().Get(ctx, kernel.MustNewID("D2"))
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	ledger, _ := reader.EscrowRepository().Get(ctx)
	suite.Equal(uint64(100), ledger.Balance())

	notifications, err := reader.NotificationRepository().GetByRecipient(ctx, buyer)
	suite.Require().NoError(err)
	suite.Empty(notifications)
}

func (suite *UnitOfWorkTestSuite) TestRollback_AfterCommitReportsNoTransaction() {
	ctx := context.Background()
	uow := suite.begin()
	suite.Require().NoError(uow.Commit(ctx))

	suite.ErrorIs(uow.Rollback(ctx), memory.ErrNoTransaction)
	suite.ErrorIs(uow.Commit(ctx), memory.ErrNoTransaction)
}

func (suite *UnitOfWorkTestSuite) TestRepositories_RequireActiveTransaction() {
	uow := suite.factory.Create()

	_, err := uow.DeliveryRepository().GetAll(context.Background())

	suite.ErrorIs(err, memory.ErrNoTransaction)
}

func (suite *UnitOfWorkTestSuite) TestBegin_IsExclusive() {
	ctx := context.Background()
	holder := suite.begin()

	// A second unit of work cannot begin while the first is active.
	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	suite.ErrorIs(suite.factory.Create().Begin(waitCtx), context.DeadlineExceeded)

	// Once released, another unit of work proceeds.
	acquired := make(chan error, 1)
	go func() {
		other := suite.factory.Create()
		err := other.Begin(ctx)
		if err == nil {
			err = other.Commit(ctx)
		}
		acquired <- err
	}()

	suite.Require().NoError(holder.Commit(ctx))
	select {
	case err := <-acquired:
		suite.NoError(err)
	case <-time.After(time.Second):
		suite.Fail("second unit of work never acquired the store")
	}
}

func (suite *UnitOfWorkTestSuite) TestDeliveryRepository_ReturnsCopies() {
	ctx := context.Background()
	uow := suite.begin()
	defer func() { _ = uow.Rollback(ctx) }()

	d := suite.newDelivery("D1", t0)
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))

	// Mutating the caller's aggregate does not leak into the store.
	suite.Require().NoError(d.Start(seller, t0))

	got, err := uow.DeliveryRepository().Get(ctx, kernel.MustNewID("D1"))
	suite.Require().NoError(err)
	suite.Equal(delivery.Pending, got.Status())
}

func (suite *UnitOfWorkTestSuite) TestDeliveryRepository_AddAndUpdateGuards() {
	ctx := context.Background()
	uow := suite.begin()
	defer func() { _ = uow.Rollback(ctx) }()

	suite.ErrorIs(uow.DeliveryRepository().Update(ctx, suite.newDelivery("D1", t0)), errs.ErrObjectNotFound)
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, suite.newDelivery("D1", t0)))
	suite.ErrorIs(uow.DeliveryRepository().Add(ctx, suite.newDelivery("D1", t0)), errs.ErrValueIsInvalid)
}

func (suite *UnitOfWorkTestSuite) TestDeliveryRepository_ListsOrderedByCreationThenID() {
	ctx := context.Background()
	uow := suite.begin()
	defer func() { _ = uow.Rollback(ctx) }()
	repo := uow.DeliveryRepository()

	other := kernel.MustNewIdentity("O")
	late, err := delivery.NewDelivery(kernel.MustNewID("A"), other, seller, 5, "late", t0.Add(time.Minute))
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(ctx, late))
	suite.Require().NoError(repo.Add(ctx, suite.newDelivery("C", t0)))
	suite.Require().NoError(repo.Add(ctx, suite.newDelivery("B", t0)))

	all, err := repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"B", "C", "A"}, ids(all))

	bySeller, err := repo.GetBySeller(ctx, seller)
	suite.Require().NoError(err)
	suite.Equal([]string{"B", "C"}, ids(bySeller))

	byBuyer, err := repo.GetByBuyer(ctx, seller)
	suite.Require().NoError(err)
	suite.Equal([]string{"A"}, ids(byBuyer))

	none, err := repo.GetByBuyer(ctx, kernel.MustNewIdentity("nobody"))
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func (suite *UnitOfWorkTestSuite) TestNftRepository() {
	ctx := context.Background()
	uow := suite.begin()
	defer func() { _ = uow.Rollback(ctx) }()
	repo := uow.NftRepository()

	first, err := nft.NewDeliveryNFT(kernel.MustNewID("N2"), kernel.MustNewID("D1"), buyer, "{}", t0)
	suite.Require().NoError(err)
	second, err := nft.NewDeliveryNFT(kernel.MustNewID("N1"), kernel.MustNewID("D2"), buyer, "{}", t0.Add(time.Second))
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(ctx, second))
	suite.Require().NoError(repo.Add(ctx, first))
	suite.ErrorIs(repo.Add(ctx, first), errs.ErrValueIsInvalid)

	got, err := repo.Get(ctx, kernel.MustNewID("N2"))
	suite.Require().NoError(err)
	suite.Equal("D1", got.DeliveryID().String())

	_, err = repo.Get(ctx, kernel.MustNewID("missing"))
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	owned, err := repo.GetByOwner(ctx, buyer)
	suite.Require().NoError(err)
	suite.Require().Len(owned, 2)
	suite.Equal("N2", owned[0].ID().String())
	suite.Equal("N1", owned[1].ID().String())
}

func (suite *UnitOfWorkTestSuite) TestNotificationRepository_KeepsAppendOrder() {
	ctx := context.Background()
	uow := suite.begin()
	defer func() { _ = uow.Rollback(ctx) }()
	repo := uow.NotificationRepository()

	for _, message := range []string{"one", "two", "three"} {
		n, err := notification.NewNotification(seller, message, notification.Success, t0)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Append(ctx, n))
	}

	got, err := repo.GetByRecipient(ctx, seller)
	suite.Require().NoError(err)
	suite.Require().Len(got, 3)
	suite.Equal("one", got[0].Message())
	suite.Equal("three", got[2].Message())
	suite.False(got[0].Read())
}

func (suite *UnitOfWorkTestSuite) TestSnapshot_ExportAndReplace() {
	ctx := context.Background()

	// Given a store with one delivery and a notification
	setup := suite.begin()
	suite.Require().NoError(setup.DeliveryRepository().Add(ctx, suite.newDelivery("OLD", t0)))
	suite.Require().NoError(setup.EscrowRepository().Save(ctx, escrow.NewLedger(100)))
	n, err := notification.NewNotification(buyer, "kept", notification.Info, t0)
	suite.Require().NoError(err)
	suite.Require().NoError(setup.NotificationRepository().Append(ctx, n))
	suite.Require().NoError(setup.Commit(ctx))

	// When the durable state is replaced
	uow := suite.begin()
	suite.Require().NoError(uow.SnapshotRepository().Replace(ctx, ports.Snapshot{
		Deliveries: []*delivery.Delivery{suite.newDelivery("NEW", t0)},
		Escrow:     escrow.NewLedger(100),
	}))
	suite.Require().NoError(uow.Commit(ctx))

	// Then only the new records are visible and notifications survive
	reader := suite.begin()
	defer func() { _ = reader.Rollback(ctx) }()

	snapshot, err := reader.SnapshotRepository().Export(ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"NEW"}, ids(snapshot.Deliveries))
	suite.Empty(snapshot.NFTs)
	suite.Equal(uint64(100), snapshot.Escrow.Balance())

	notifications, err := reader.NotificationRepository().GetByRecipient(ctx, buyer)
	suite.Require().NoError(err)
	suite.Len(notifications, 1)
}

func (suite *UnitOfWorkTestSuite) TestSnapshot_ReplaceRollsBack() {
	ctx := context.Background()

	setup := suite.begin()
	suite.Require().NoError(setup.DeliveryRepository().Add(ctx, suite.newDelivery("OLD", t0)))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.begin()
	suite.Require().NoError(uow.SnapshotRepository().Replace(ctx, ports.Snapshot{}))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, suite.newDelivery("NEW", t0)))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.begin()
	defer func() { _ = reader.Rollback(ctx) }()
	all, err := reader.DeliveryRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"OLD"}, ids(all))
}

func (suite *UnitOfWorkTestSuite) TestSnapshot_ReplaceRejectsDuplicates() {
	ctx := context.Background()
	uow := suite.begin()
	defer func() { _ = uow.Rollback(ctx) }()

	err := uow.SnapshotRepository().Replace(ctx, ports.Snapshot{
		Deliveries: []*delivery.Delivery{suite.newDelivery("D1", t0), suite.newDelivery("D1", t0)},
	})

	suite.Error(err)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func ids(deliveries []*delivery.Delivery) []string {
	out := make([]string, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, d.ID().String())
	}
	return out
}
