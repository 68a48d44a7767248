package cart

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"vaxportal/models"
	"vaxportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(blob, dest); err != nil {
		delete(s.data, key)
		return false, nil
	}
	return true, nil
}

func (s *memStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = blob
	return nil
}

func (s *memStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func TestGetMissingCartIsEmpty(t *testing.T) {
	svc := &DefaultCartService{Store: newMemStore()}

	cart, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, int64(0), cart.Total())
}

func TestAddItemPersists(t *testing.T) {
	svc := &DefaultCartService{Store: newMemStore()}
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", models.CartItem{ID: "v1", Name: "Hexaxim", Doses: 3, Price: 1015000})
	require.NoError(t, err)

	cart, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 1, cart.Count())
	assert.Equal(t, "Hexaxim", cart.Items[0].Name)
}

func TestAddItemRejectsDuplicate(t *testing.T) {
	svc := &DefaultCartService{Store: newMemStore()}
	ctx := context.Background()

	item := models.CartItem{ID: "v1", Name: "Hexaxim", Doses: 3, Price: 1015000}
	_, err := svc.AddItem(ctx, "u1", item)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u1", item)
	assert.Error(t, err)

	cart, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Count())
}

func TestRemoveAbsentItemIsNoop(t *testing.T) {
	svc := &DefaultCartService{Store: newMemStore()}

	cart, err := svc.RemoveItem(context.Background(), "u1", "ghost")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Count())
}

func TestCartsAreScopedPerUser(t *testing.T) {
	svc := &DefaultCartService{Store: newMemStore()}
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", models.CartItem{ID: "v1", Name: "Hexaxim", Doses: 3, Price: 1015000})
	require.NoError(t, err)

	other, err := svc.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Count())
}

func TestCorruptCartBlobTreatedAsEmpty(t *testing.T) {
	store := newMemStore()
	store.data[utils.CartKey("u1")] = []byte("{not json")
	svc := &DefaultCartService{Store: store}

	cart, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Count())
}
