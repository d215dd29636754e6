package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/guardline/price-sentry/pkg/models/domain"
	"github.com/guardline/price-sentry/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) AddProducts(ctx context.Context, products []store.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *mockStore) AddPackage(ctx context.Context, pkg store.Package, components []store.PackageComponent) error {
	args := m.Called(ctx, pkg, components)
	return args.Error(0)
}

func (m *mockStore) ListPackages(ctx context.Context) ([]store.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Package), args.Error(1)
}

func (m *mockStore) ListComponents(ctx context.Context) ([]store.PackageComponent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.PackageComponent), args.Error(1)
}

func (m *mockStore) GetUnitPrices(ctx context.Context, refs []string) (map[string]int64, error) {
	args := m.Called(ctx, refs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func TestExplorer_ListPackages_GroupsComponents(t *testing.T) {
	ctx := context.Background()
	s := new(mockStore)
	s.On("ListPackages", mock.Anything).Return([]store.Package{
		{ID: "pkg-1", Name: "Home Basic", ListedPrice: 100000},
		{ID: "pkg-2", Name: "Office Pro", ListedPrice: 250000},
	}, nil)
	s.On("ListComponents", mock.Anything).Return([]store.PackageComponent{
		{PackageID: "pkg-1", Category: "cameras", Quantity: 2, UnitRef: "CAM1"},
		{PackageID: "pkg-1", Category: "maintenance", Quantity: 1},
		{PackageID: "pkg-2", Category: "nvr", Quantity: 1, UnitRef: "NVR1"},
	}, nil)

	defs, err := NewExplorer(s).ListPackages(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, domain.PackageDefinition{
		ID:          "pkg-1",
		Name:        "Home Basic",
		ListedPrice: 100000,
		Components: map[domain.Category]domain.BOMEntry{
			domain.CategoryCameras:     {Quantity: 2, UnitRef: "CAM1"},
			domain.CategoryMaintenance: {Quantity: 1},
		},
	}, defs[0])
	assert.Equal(t, "pkg-2", defs[1].ID)
	assert.Len(t, defs[1].Components, 1)
	s.AssertExpectations(t)
}

func TestExplorer_ListPackages_StoreError(t *testing.T) {
	s := new(mockStore)
	s.On("ListPackages", mock.Anything).Return(nil, fmt.Errorf("db gone"))

	_, err := NewExplorer(s).ListPackages(context.Background())
	assert.Error(t, err)
	s.AssertExpectations(t)
}

func TestExplorer_GetPackage(t *testing.T) {
	s := new(mockStore)
	s.On("ListPackages", mock.Anything).Return([]store.Package{
		{ID: "pkg-1", Name: "Home Basic", ListedPrice: 100000},
	}, nil)
	s.On("ListComponents", mock.Anything).Return([]store.PackageComponent{}, nil)

	explorer := NewExplorer(s)

	def, found, err := explorer.GetPackage(context.Background(), "pkg-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Home Basic", def.Name)

	_, found, err = explorer.GetPackage(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestExplorer_Lookup_PrefetchesUniqueRefsOnce(t *testing.T) {
	defs := []domain.PackageDefinition{
		{
			ID: "pkg-1",
			Components: map[domain.Category]domain.BOMEntry{
				domain.CategoryCameras:     {Quantity: 2, UnitRef: "CAM1"},
				domain.CategoryNVR:         {Quantity: 1, UnitRef: "NVR1"},
				domain.CategoryMaintenance: {Quantity: 1}, // no ref, must not be fetched
			},
		},
		{
			ID: "pkg-2",
			Components: map[domain.Category]domain.BOMEntry{
				domain.CategoryCameras: {Quantity: 4, UnitRef: "CAM1"}, // duplicate ref
				domain.CategoryStorage: {Quantity: 1, UnitRef: "HDD1"},
			},
		},
	}

	s := new(mockStore)
	s.On("GetUnitPrices", mock.Anything, []string{"CAM1", "NVR1", "HDD1"}).
		Return(map[string]int64{"CAM1": 20000, "NVR1": 30000}, nil).
		Once()

	lookup, err := NewExplorer(s).Lookup(context.Background(), defs)
	require.NoError(t, err)

	price, ok := lookup("CAM1")
	assert.True(t, ok)
	assert.Equal(t, int64(20000), price.Amount)

	_, ok = lookup("HDD1")
	assert.False(t, ok, "a ref the store has no price for stays unresolved")

	s.AssertExpectations(t)
}

func TestExplorer_Lookup_NoRefs(t *testing.T) {
	s := new(mockStore)
	s.On("GetUnitPrices", mock.Anything, []string{}).
		Return(map[string]int64{}, nil)

	lookup, err := NewExplorer(s).Lookup(context.Background(), []domain.PackageDefinition{{ID: "empty"}})
	require.NoError(t, err)

	_, ok := lookup("ANY")
	assert.False(t, ok)
	s.AssertExpectations(t)
}
