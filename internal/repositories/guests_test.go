package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wedding-app/server/internal/models"
	"github.com/wedding-app/server/internal/repositories"
	"github.com/wedding-app/server/internal/testutil"
)

func TestGuestEmailIsUnique(t *testing.T) {
	db := testutil.NewDB(t)
	createGuest(t, db, "Ana", "ana@x.com")

	err := db.Create(&models.Guest{Name: "Other Ana", Email: "ana@x.com"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&models.Guest{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteGuestCascadesWishesAndClearsReferences(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ana := createGuest(t, db, "Ana", "ana@x.com")
	bob := createGuest(t, db, "Bob", "bob@x.com")

	require.NoError(t, db.Create(&models.Wish{GuestID: ana.ID, Message: "Congrats!"}).Error)
	require.NoError(t, db.Create(&models.Wish{GuestID: bob.ID, Message: "Cheers"}).Error)
	gift := createGift(t, db, "Vase")
	_, err := repositories.ReserveGift(ctx, db, gift.ID, ana.ID)
	require.NoError(t, err)
	photo := models.GalleryItem{GuestID: &ana.ID}
	require.NoError(t, db.Create(&photo).Error)

	require.NoError(t, repositories.DeleteGuest(ctx, db, ana.ID))

	var wishes []models.Wish
	require.NoError(t, db.Find(&wishes).Error)
	require.Len(t, wishes, 1)
	assert.Equal(t, bob.ID, wishes[0].GuestID)

	reloadedGift, err := repositories.FindGift(ctx, db, gift.ID)
	require.NoError(t, err)
	assert.Nil(t, reloadedGift.ReservedByID)
	assert.True(t, reloadedGift.Reserved)

	var reloadedPhoto models.GalleryItem
	require.NoError(t, db.First(&reloadedPhoto, "id = ?", photo.ID).Error)
	assert.Nil(t, reloadedPhoto.GuestID)

	_, err = repositories.FindGuest(ctx, db, ana.ID)
	assert.ErrorIs(t, err, repositories.ErrGuestNotFound)
}

func TestDeleteGuestUnknown(t *testing.T) {
	db := testutil.NewDB(t)

	err := repositories.DeleteGuest(context.Background(), db, uuid.New())
	assert.ErrorIs(t, err, repositories.ErrGuestNotFound)
}
