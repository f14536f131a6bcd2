package usecase

import (
	"context"
	"errors"
	"testing"

	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
	"emerald-console/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSellerPickerLoad(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	api.EXPECT().ListSellers(mock.Anything).
		Return([]domain.Seller{seller(1, "Acme", "10"), seller(2, "Globex", "0")}, nil).Once()

	p := NewSellerPicker(api, &eventRecorder{}, discardLogger())
	require.Equal(t, Loading, p.Snapshot().State)

	p.EnsureLoaded(context.Background())
	p.EnsureLoaded(context.Background())

	v := p.Snapshot()
	require.Equal(t, Loaded, v.State)
	require.Len(t, v.Sellers, 2)
	require.Equal(t, "Acme", v.Sellers[0].Name)
}

func TestSellerPickerLoadFailure(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	api.EXPECT().ListSellers(mock.Anything).
		Return(nil, &port.RequestFailedError{Message: "Failed to fetch sellers", Err: errors.New("boom")})

	p := NewSellerPicker(api, &eventRecorder{}, discardLogger())
	p.Load(context.Background())

	v := p.Snapshot()
	require.Equal(t, LoadFailed, v.State)
	require.Equal(t, "Failed to fetch sellers", v.Error)
	require.Empty(t, v.Sellers)
}

func TestSellerPickerCreateAppendsWithoutRefetch(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	api.EXPECT().ListSellers(mock.Anything).Return([]domain.Seller{seller(1, "Acme", "10")}, nil).Once()
	api.EXPECT().CreateSeller(mock.Anything, domain.NewSeller{Name: "Initech", InitialEmeraldBalance: domain.MustAmount("25.5")}).
		Return(seller(2, "Initech", "25.5"), nil)

	sink := &eventRecorder{}
	p := NewSellerPicker(api, sink, discardLogger())
	p.Load(context.Background())
	p.ToggleForm()

	created, err := p.Create(context.Background(), SellerDraft{Name: "  Initech ", InitialBalance: "25.5"})
	require.NoError(t, err)
	require.Equal(t, int64(2), created.ID)

	v := p.Snapshot()
	require.False(t, v.FormOpen)
	require.Equal(t, []int64{1, 2}, []int64{v.Sellers[0].ID, v.Sellers[1].ID})
	require.Equal(t, []domain.Event{domain.SellerCreated{Seller: created}}, sink.got())
}

func TestSellerPickerCreateValidatesBeforeCalling(t *testing.T) {
	tests := []struct {
		name  string
		draft SellerDraft
		msg   string
	}{
		{"blank name", SellerDraft{Name: "  ", InitialBalance: "1"}, "seller name is required"},
		{"missing balance", SellerDraft{Name: "Acme", InitialBalance: ""}, "initial balance is required"},
		{"not a number", SellerDraft{Name: "Acme", InitialBalance: "lots"}, "initial balance must be a number"},
		{"negative", SellerDraft{Name: "Acme", InitialBalance: "-1"}, "initial balance must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mocks.NewMockMarketplace(t)
			sink := &eventRecorder{}
			p := NewSellerPicker(api, sink, discardLogger())

			_, err := p.Create(context.Background(), tt.draft)
			require.ErrorIs(t, err, domain.ErrInvalidInput)

			v := p.Snapshot()
			require.True(t, v.FormOpen)
			require.Equal(t, tt.msg, v.FormError)
			require.Equal(t, tt.draft, v.Draft)
			require.Empty(t, sink.got())
			api.AssertNotCalled(t, "CreateSeller", mock.Anything, mock.Anything)
		})
	}
}

func TestSellerPickerCreateFailureKeepsForm(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	api.EXPECT().CreateSeller(mock.Anything, mock.Anything).
		Return(domain.Seller{}, &port.RequestFailedError{Message: "Failed to create seller"})

	sink := &eventRecorder{}
	p := NewSellerPicker(api, sink, discardLogger())
	draft := SellerDraft{Name: "Acme", InitialBalance: "3"}

	_, err := p.Create(context.Background(), draft)
	require.ErrorIs(t, err, port.ErrRequestFailed)

	v := p.Snapshot()
	require.True(t, v.FormOpen)
	require.Equal(t, "Failed to create seller", v.FormError)
	require.Equal(t, draft, v.Draft)
	require.Empty(t, v.Sellers)
	require.Empty(t, sink.got())
}

func TestSellerPickerSelect(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	api.EXPECT().ListSellers(mock.Anything).Return([]domain.Seller{seller(7, "Acme", "1")}, nil)

	sink := &eventRecorder{}
	p := NewSellerPicker(api, sink, discardLogger())
	p.Load(context.Background())

	require.ErrorIs(t, p.Select(context.Background(), 8), ErrNotFound)
	require.NoError(t, p.Select(context.Background(), 7))
	require.Equal(t, []domain.Event{domain.SellerSelected{Seller: seller(7, "Acme", "1")}}, sink.got())
}

func TestSellerPickerToggleFormResetsDraft(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	p := NewSellerPicker(api, &eventRecorder{}, discardLogger())

	_, _ = p.Create(context.Background(), SellerDraft{Name: "", InitialBalance: "1"})
	p.ToggleForm()

	v := p.Snapshot()
	require.False(t, v.FormOpen)
	require.Empty(t, v.FormError)
	require.Equal(t, SellerDraft{InitialBalance: "0"}, v.Draft)
}
