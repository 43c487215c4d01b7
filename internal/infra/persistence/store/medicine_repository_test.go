package store

import (
	"context"
	"testing"
	"time"

	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMedicine(userID, name string, expiry *time.Time) *entity.Medicine {
	return &entity.Medicine{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          name,
		Dosage:        "10mg",
		Frequency:     "daily",
		StockQuantity: 30,
		ExpiryDate:    expiry,
		Category:      entity.DefaultMedicineCategory,
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func TestMedicineRepository_OwnerScoping(t *testing.T) {
	repo := NewMedicineRepository(newTestDB(t))
	ctx := context.Background()

	med := newTestMedicine("owner", "Aspirin", nil)
	med.Reminders = []entity.Reminder{{"time": "08:00", "enabled": true}}
	require.NoError(t, repo.Create(ctx, med))

	got, err := repo.FindByIDForUser(ctx, med.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, "Aspirin", got.Name)
	require.Len(t, got.Reminders, 1)
	assert.Equal(t, "08:00", got.Reminders[0]["time"])

	_, err = repo.FindByIDForUser(ctx, med.ID, "intruder")
	assert.ErrorIs(t, err, repository.ErrMedicineNotFound)

	err = repo.DeleteForUser(ctx, med.ID, "intruder")
	assert.ErrorIs(t, err, repository.ErrMedicineNotFound)

	list, err := repo.ListByUser(ctx, "intruder", 1000)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMedicineRepository_ListByUserHonorsLimit(t *testing.T) {
	repo := NewMedicineRepository(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, newTestMedicine("owner", name, nil)))
	}
	require.NoError(t, repo.Create(ctx, newTestMedicine("other", "X", nil)))

	all, err := repo.ListByUser(ctx, "owner", 1000)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := repo.ListByUser(ctx, "owner", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMedicineRepository_UpdateAndDelete(t *testing.T) {
	repo := NewMedicineRepository(newTestDB(t))
	ctx := context.Background()

	med := newTestMedicine("owner", "Ibuprofen", nil)
	require.NoError(t, repo.Create(ctx, med))

	med.StockQuantity = 5
	med.Dosage = "200mg"
	require.NoError(t, repo.Update(ctx, med))

	got, err := repo.FindByIDForUser(ctx, med.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, 5, got.StockQuantity)
	assert.Equal(t, "200mg", got.Dosage)

	stranger := *med
	stranger.UserID = "intruder"
	assert.ErrorIs(t, repo.Update(ctx, &stranger), repository.ErrMedicineNotFound)

	require.NoError(t, repo.DeleteForUser(ctx, med.ID, "owner"))
	assert.ErrorIs(t, repo.DeleteForUser(ctx, med.ID, "owner"), repository.ErrMedicineNotFound)
}

func TestMedicineRepository_ListExpiringBetween(t *testing.T) {
	repo := NewMedicineRepository(newTestDB(t))
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := now.Add(30 * 24 * time.Hour)

	in20 := newTestMedicine("owner", "in20", ptrTime(now.Add(20*24*time.Hour)))
	in5 := newTestMedicine("owner", "in5", ptrTime(now.Add(5*24*time.Hour)))
	atEdge := newTestMedicine("owner", "edge", ptrTime(to))
	past := newTestMedicine("owner", "past", ptrTime(now.Add(-24*time.Hour)))
	later := newTestMedicine("owner", "later", ptrTime(now.Add(60*24*time.Hour)))
	noExpiry := newTestMedicine("owner", "none", nil)
	otherUser := newTestMedicine("other", "other", ptrTime(now.Add(24*time.Hour)))

	for _, m := range []*entity.Medicine{in20, in5, atEdge, past, later, noExpiry, otherUser} {
		require.NoError(t, repo.Create(ctx, m))
	}

	got, err := repo.ListExpiringBetween(ctx, "owner", now, to, 100)
	require.NoError(t, err)

	names := make([]string, 0, len(got))
	for _, m := range got {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"in5", "in20", "edge"}, names)
}
