package usecase

import (
	"context"
	"sync"
	"testing"

	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
	"emerald-console/internal/core/port/mocks"
	"emerald-console/internal/debounce"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// activityLog is a port.ActivityRepository keeping entries in memory.
type activityLog struct {
	mu      sync.Mutex
	entries []domain.Activity
}

func (l *activityLog) Record(_ context.Context, a domain.Activity) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, a)
	return nil
}

func (l *activityLog) Recent(_ context.Context, limit int) ([]domain.Activity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Activity(nil), l.entries...), nil
}

func (l *activityLog) kinds() []domain.ActivityKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.ActivityKind
	for _, e := range l.entries {
		out = append(out, e.Kind)
	}
	return out
}

var (
	acme = seller(1, "Acme", "100")
	lamp = domain.Product{ID: 10, Name: "Lamp"}
)

func newShell(t *testing.T, api *mocks.MockMarketplace) (*Shell, *activityLog) {
	t.Helper()
	log := &activityLog{}
	s := NewShell(context.Background(), api, ShellOptions{
		Logger:   discardLogger(),
		Activity: log,
		Clock:    debounce.NewManualClock(),
	})
	return s, log
}

// shellOnCampaigns drives a shell to the campaigns of lamp.
func shellOnCampaigns(t *testing.T, api *mocks.MockMarketplace, campaigns ...domain.Campaign) (*Shell, *activityLog) {
	t.Helper()
	ctx := context.Background()
	api.EXPECT().ListSellers(mock.Anything).Return([]domain.Seller{acme}, nil).Once()
	api.EXPECT().ListProducts(mock.Anything, int64(1)).Return([]domain.Product{lamp}, nil).Once()
	api.EXPECT().ListCampaigns(mock.Anything, int64(10)).Return(campaigns, nil).Once()
	api.EXPECT().ListTowns(mock.Anything).Return(testTowns, nil).Once()

	s, log := newShell(t, api)
	s.EnsureLoaded(ctx)
	require.NoError(t, s.Sellers().Select(ctx, 1))
	s.EnsureLoaded(ctx)
	require.NoError(t, s.Products().Select(ctx, 10))
	s.EnsureLoaded(ctx)
	require.Equal(t, domain.NavProduct{Seller: acme, Product: lamp}, s.Navigation())
	return s, log
}

func TestShellStartsBrowsing(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	s, _ := newShell(t, api)

	v := s.Snapshot()
	require.Equal(t, domain.NavBrowsing{}, v.Nav)
	require.NotNil(t, v.Sellers)
	require.Nil(t, v.Products)
	require.Nil(t, v.Campaigns)
}

func TestShellDrillDownAndBack(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	s, _ := shellOnCampaigns(t, api)

	v := s.Snapshot()
	require.Nil(t, v.Sellers)
	require.Nil(t, v.Products)
	require.NotNil(t, v.Campaigns)
	require.Equal(t, int64(10), v.Campaigns.ProductID)

	api.EXPECT().ListProducts(mock.Anything, int64(1)).Return([]domain.Product{lamp}, nil).Once()
	s.BackToProducts()
	require.Equal(t, domain.NavSeller{Seller: acme}, s.Navigation())
	require.Nil(t, s.Campaigns())
	s.EnsureLoaded(context.Background())
	require.Equal(t, Loaded, s.Snapshot().Products.State)

	api.EXPECT().ListSellers(mock.Anything).Return([]domain.Seller{acme}, nil).Once()
	s.BackToSellers()
	require.Equal(t, domain.NavBrowsing{}, s.Navigation())
	require.Nil(t, s.Products())
	s.EnsureLoaded(context.Background())
	require.Equal(t, Loaded, s.Snapshot().Sellers.State)
}

func TestShellIgnoresProductOfOtherSeller(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	s, _ := newShell(t, api)

	s.Emit(context.Background(), domain.ProductSelected{SellerID: 1, Product: lamp})
	require.Equal(t, domain.NavBrowsing{}, s.Navigation())

	s.Emit(context.Background(), domain.SellerSelected{Seller: acme})
	s.Emit(context.Background(), domain.ProductSelected{SellerID: 2, Product: lamp})
	require.Equal(t, domain.NavSeller{Seller: acme}, s.Navigation())
}

func TestShellRefreshesSellerAfterCampaignChange(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	s, log := shellOnCampaigns(t, api, existingCampaign())

	charged := seller(1, "Acme", "90")
	api.EXPECT().DeleteCampaign(mock.Anything, int64(5)).Return(nil).Once()
	api.EXPECT().GetSeller(mock.Anything, int64(1)).Return(charged, nil).Once()

	m := s.Campaigns()
	require.NoError(t, m.RequestDelete(5))
	require.NoError(t, m.ConfirmDelete(context.Background()))

	require.Equal(t, domain.NavProduct{Seller: charged, Product: lamp}, s.Navigation())
	require.Equal(t, []domain.ActivityKind{domain.ActivityCampaignDeleted}, log.kinds())
	require.Equal(t, int64(1), log.entries[0].SellerID)
}

func TestShellRefreshFailureKeepsSeller(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	s, _ := shellOnCampaigns(t, api)

	api.EXPECT().GetSeller(mock.Anything, int64(1)).
		Return(domain.Seller{}, &port.RequestFailedError{Message: "Failed to fetch seller details"}).Once()

	s.RefreshSeller(context.Background())

	seller, ok := domain.SelectedSeller(s.Navigation())
	require.True(t, ok)
	require.Equal(t, "100.00", seller.EmeraldBalance.Display())
	require.Empty(t, s.Snapshot().TopUpError)
}

func TestShellRefreshWithoutSellerIsNoop(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	s, _ := newShell(t, api)

	s.RefreshSeller(context.Background())
	api.AssertNotCalled(t, "GetSeller", mock.Anything, mock.Anything)
}

func TestShellTopUp(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	s, log := newShell(t, api)
	s.Emit(context.Background(), domain.SellerSelected{Seller: acme})

	richer := seller(1, "Acme", "150")
	api.EXPECT().TopUpSeller(mock.Anything, int64(1), domain.TopUp{Amount: domain.MustAmount("50")}).
		Return(richer, nil).Once()

	got, err := s.TopUp(context.Background(), "50")
	require.NoError(t, err)
	require.Equal(t, richer, got)
	require.Equal(t, domain.NavSeller{Seller: richer}, s.Navigation())
	require.Equal(t, []domain.ActivityKind{domain.ActivitySellerTopUp}, log.kinds())
}

func TestShellTopUpValidation(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	s, _ := newShell(t, api)

	_, err := s.TopUp(context.Background(), "10")
	require.ErrorIs(t, err, domain.ErrNoSellerSelected)

	s.Emit(context.Background(), domain.SellerSelected{Seller: acme})
	for _, amount := range []string{"0", "-5", "abc"} {
		_, err := s.TopUp(context.Background(), amount)
		require.ErrorIs(t, err, domain.ErrInvalidInput, amount)
		require.NotEmpty(t, s.Snapshot().TopUpError)
		require.Equal(t, amount, s.Snapshot().TopUpDraft)
	}
	api.AssertNotCalled(t, "TopUpSeller", mock.Anything, mock.Anything, mock.Anything)
}

func TestShellTopUpFailure(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	s, log := newShell(t, api)
	s.Emit(context.Background(), domain.SellerSelected{Seller: acme})

	api.EXPECT().TopUpSeller(mock.Anything, int64(1), mock.Anything).
		Return(domain.Seller{}, &port.RequestFailedError{Message: "Failed to top up seller"}).Once()

	_, err := s.TopUp(context.Background(), "5")
	require.ErrorIs(t, err, port.ErrRequestFailed)
	require.Equal(t, "Failed to top up seller", s.Snapshot().TopUpError)
	require.Equal(t, domain.NavSeller{Seller: acme}, s.Navigation())
	require.Empty(t, log.kinds())
}

func TestShellRecordsCreations(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	api.EXPECT().ListSellers(mock.Anything).Return([]domain.Seller{}, nil).Once()
	api.EXPECT().CreateSeller(mock.Anything, mock.Anything).Return(acme, nil).Once()
	api.EXPECT().CreateProduct(mock.Anything, int64(1), domain.NewProduct{Name: "Lamp"}).Return(lamp, nil).Once()

	s, log := newShell(t, api)
	ctx := context.Background()
	s.EnsureLoaded(ctx)
	_, err := s.Sellers().Create(ctx, SellerDraft{Name: "Acme", InitialBalance: "100"})
	require.NoError(t, err)
	require.NoError(t, s.Sellers().Select(ctx, 1))
	_, err = s.Products().Create(ctx, "Lamp")
	require.NoError(t, err)

	require.Equal(t, []domain.ActivityKind{domain.ActivitySellerCreated, domain.ActivityProductCreated}, log.kinds())
}
