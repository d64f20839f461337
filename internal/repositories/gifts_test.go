package repositories_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wedding-app/server/internal/models"
	"github.com/wedding-app/server/internal/repositories"
	"github.com/wedding-app/server/internal/testutil"
)

func createGuest(t *testing.T, db *gorm.DB, name, email string) models.Guest {
	t.Helper()
	guest := models.Guest{Name: name, Email: email}
	require.NoError(t, db.Create(&guest).Error)
	return guest
}

func createGift(t *testing.T, db *gorm.DB, title string) models.Gift {
	t.Helper()
	gift := models.Gift{Title: title}
	require.NoError(t, db.Create(&gift).Error)
	return gift
}

func TestReserveGift(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ana := createGuest(t, db, "Ana", "ana@x.com")
	gift := createGift(t, db, "Toaster")

	reserved, err := repositories.ReserveGift(ctx, db, gift.ID, ana.ID)
	require.NoError(t, err)
	assert.True(t, reserved.Reserved)
	require.NotNil(t, reserved.ReservedBy)
	assert.Equal(t, "ana@x.com", reserved.ReservedBy.Email)

	reloaded, err := repositories.FindGift(ctx, db, gift.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Reserved)
	require.NotNil(t, reloaded.ReservedByID)
	assert.Equal(t, ana.ID, *reloaded.ReservedByID)
}

func TestReserveGiftAlreadyReserved(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ana := createGuest(t, db, "Ana", "ana@x.com")
	bob := createGuest(t, db, "Bob", "bob@x.com")
	gift := createGift(t, db, "Kettle")

	_, err := repositories.ReserveGift(ctx, db, gift.ID, ana.ID)
	require.NoError(t, err)

	_, err = repositories.ReserveGift(ctx, db, gift.ID, bob.ID)
	assert.ErrorIs(t, err, repositories.ErrGiftAlreadyReserved)

	reloaded, err := repositories.FindGift(ctx, db, gift.ID)
	require.NoError(t, err)
	assert.Equal(t, ana.ID, *reloaded.ReservedByID)
}

func TestReserveGiftUnknownGuest(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	gift := createGift(t, db, "Blender")

	_, err := repositories.ReserveGift(ctx, db, gift.ID, uuid.New())
	assert.ErrorIs(t, err, repositories.ErrGuestNotFound)

	reloaded, err := repositories.FindGift(ctx, db, gift.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Reserved)
	assert.Nil(t, reloaded.ReservedByID)
}

func TestReserveGiftUnknownGift(t *testing.T) {
	db := testutil.NewDB(t)
	ana := createGuest(t, db, "Ana", "ana@x.com")

	_, err := repositories.ReserveGift(context.Background(), db, uuid.New(), ana.ID)
	assert.ErrorIs(t, err, repositories.ErrGiftNotFound)
}

func TestReserveGiftConcurrentCallersSingleWinner(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	gift := createGift(t, db, "Espresso machine")

	const callers = 6
	guests := make([]models.Guest, callers)
	for i := range guests {
		guests[i] = createGuest(t, db, "Guest", uuid.NewString()+"@x.com")
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(guestID uuid.UUID) {
			defer wg.Done()
			_, err := repositories.ReserveGift(ctx, db, gift.ID, guestID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, repositories.ErrGiftAlreadyReserved):
				conflicts++
			}
		}(guests[i].ID)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, callers-1, conflicts)
}
