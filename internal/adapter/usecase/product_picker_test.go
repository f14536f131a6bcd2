package usecase

import (
	"context"
	"testing"

	"emerald-console/internal/core/domain"
	"emerald-console/internal/core/port"
	"emerald-console/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductPickerLoadsSellerProducts(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	api.EXPECT().ListProducts(mock.Anything, int64(3)).
		Return([]domain.Product{{ID: 10, Name: "Lamp"}}, nil).Once()

	p := NewProductPicker(api, &eventRecorder{}, discardLogger(), 3)
	p.EnsureLoaded(context.Background())

	v := p.Snapshot()
	require.Equal(t, int64(3), v.SellerID)
	require.Equal(t, Loaded, v.State)
	require.Equal(t, []domain.Product{{ID: 10, Name: "Lamp"}}, v.Products)
}

func TestProductPickerLoadFailure(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	api.EXPECT().ListProducts(mock.Anything, int64(3)).
		Return(nil, &port.RequestFailedError{Message: "Failed to fetch products"})

	p := NewProductPicker(api, &eventRecorder{}, discardLogger(), 3)
	p.Load(context.Background())

	v := p.Snapshot()
	require.Equal(t, LoadFailed, v.State)
	require.Equal(t, "Failed to fetch products", v.Error)
}

func TestProductPickerCreate(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	api.EXPECT().ListProducts(mock.Anything, int64(3)).Return([]domain.Product{}, nil)
	api.EXPECT().CreateProduct(mock.Anything, int64(3), domain.NewProduct{Name: "Chair"}).
		Return(domain.Product{ID: 11, Name: "Chair"}, nil)

	sink := &eventRecorder{}
	p := NewProductPicker(api, sink, discardLogger(), 3)
	p.Load(context.Background())

	_, err := p.Create(context.Background(), " Chair ")
	require.NoError(t, err)

	v := p.Snapshot()
	require.False(t, v.FormOpen)
	require.Equal(t, []domain.Product{{ID: 11, Name: "Chair"}}, v.Products)
	require.Equal(t, []domain.Event{
		domain.ProductCreated{SellerID: 3, Product: domain.Product{ID: 11, Name: "Chair"}},
	}, sink.got())
}

func TestProductPickerCreateRejectsBlankName(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	p := NewProductPicker(api, &eventRecorder{}, discardLogger(), 3)

	_, err := p.Create(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	v := p.Snapshot()
	require.True(t, v.FormOpen)
	require.Equal(t, "product name is required", v.FormError)
	api.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductPickerCreateFailure(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	api.EXPECT().CreateProduct(mock.Anything, int64(3), mock.Anything).
		Return(domain.Product{}, &port.RequestFailedError{Message: "Failed to create product"})

	p := NewProductPicker(api, &eventRecorder{}, discardLogger(), 3)
	_, err := p.Create(context.Background(), "Chair")
	require.Error(t, err)

	v := p.Snapshot()
	require.True(t, v.FormOpen)
	require.Equal(t, "Chair", v.DraftName)
	require.Equal(t, "Failed to create product", v.FormError)
}

func TestProductPickerSelectCarriesSeller(t *testing.T) {
	api := mocks.NewMockMarketplace(t)
	api.EXPECT().ListProducts(mock.Anything, int64(3)).Return([]domain.Product{{ID: 10, Name: "Lamp"}}, nil)

	sink := &eventRecorder{}
	p := NewProductPicker(api, sink, discardLogger(), 3)
	p.Load(context.Background())

	require.ErrorIs(t, p.Select(context.Background(), 99), ErrNotFound)
	require.NoError(t, p.Select(context.Background(), 10))
	require.Equal(t, []domain.Event{
		domain.ProductSelected{SellerID: 3, Product: domain.Product{ID: 10, Name: "Lamp"}},
	}, sink.got())
}
