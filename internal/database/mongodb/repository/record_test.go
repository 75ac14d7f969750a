package repository

import (
	"context"
	"testing"
	"time"

	"stundenmanager/internal/core"
	"stundenmanager/internal/database/mongodb/model"
	"stundenmanager/utils/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var duplicateKey = mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}

func TestShiftRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	start := time.UnixMilli(1_700_000_000_000)
	end := start.Add(7 * 24 * time.Hour)

	mt.Run("Exists", func(mt *mtest.T) {
		repository := newShiftRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "core.shifts", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}}))

		found, err := repository.Exists(ctx, start, end)
		require.NoError(mt, err)
		assert.True(mt, found)
	})

	mt.Run("Create", func(mt *mtest.T) {
		repository := newShiftRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		shift, err := repository.Create(ctx, &model.Shift{
			StartDate:    start,
			EndDate:      end,
			MorningShift: []string{"u1"},
			LateShift:    []string{"u2"},
			NightShift:   []string{"u3"},
		})
		require.NoError(mt, err)
		assert.False(mt, shift.ID.IsZero())
	})

	mt.Run("Create duplicate range", func(mt *mtest.T) {
		repository := newShiftRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(duplicateKey))

		_, err := repository.Create(ctx, &model.Shift{StartDate: start, EndDate: end})
		assert.ErrorIs(mt, err, ErrDuplicateKey)
	})
}

func TestAbsenceRepositories(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	start := time.UnixMilli(1_700_000_000_000)
	end := start.Add(72 * time.Hour)

	mt.Run("Vacation exists none", func(mt *mtest.T) {
		repository := newVacationRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "core.vacations", mtest.FirstBatch))

		found, err := repository.Exists(ctx, "u1", start, end)
		require.NoError(mt, err)
		assert.False(mt, found)
	})

	mt.Run("Illness create keeps approval", func(mt *mtest.T) {
		repository := newIllnessRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		illness, err := repository.Create(ctx, &model.Absence{
			UID:       "u1",
			StartDate: start,
			EndDate:   end,
			Approval:  core.DefaultIllnessApproval,
		})
		require.NoError(mt, err)
		assert.Equal(mt, core.ApprovalApproved, illness.Approval)
		assert.False(mt, illness.ID.IsZero())
	})

	mt.Run("Vacation duplicate", func(mt *mtest.T) {
		repository := newVacationRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(duplicateKey))

		_, err := repository.Create(ctx, &model.Absence{UID: "u1", StartDate: start, EndDate: end})
		assert.ErrorIs(mt, err, ErrDuplicateKey)
	})
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("Create requires id", func(mt *mtest.T) {
		repository := newUserRepository(mt.Coll)
		_, err := repository.Create(ctx, &model.User{Name: "Max"})
		assert.Error(mt, err)
	})

	mt.Run("Create", func(mt *mtest.T) {
		repository := newUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user, err := repository.Create(ctx, &model.User{ID: "u1", Name: "Max", Role: core.DefaultRole})
		require.NoError(mt, err)
		assert.Equal(mt, "u1", user.ID)
		assert.False(mt, user.CreatedAt.IsZero())
	})
}

func TestIdentityRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	params := password.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

	mt.Run("CreateIdentity", func(mt *mtest.T) {
		repository := newIdentityRepository(mt.Coll, params)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		uid, err := repository.CreateIdentity(ctx, "user@example.com", "abc123")
		require.NoError(mt, err)
		assert.Len(mt, uid, 36)
	})

	mt.Run("CreateIdentity duplicate email", func(mt *mtest.T) {
		repository := newIdentityRepository(mt.Coll, params)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(duplicateKey))

		_, err := repository.CreateIdentity(ctx, "user@example.com", "abc123")
		assert.ErrorIs(mt, err, ErrDuplicateKey)
	})

	mt.Run("DeleteIdentity", func(mt *mtest.T) {
		repository := newIdentityRepository(mt.Coll, params)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repository.DeleteIdentity(ctx, "u1"))
	})

	mt.Run("ListOrphans", func(mt *mtest.T) {
		repository := newIdentityRepository(mt.Coll, params)
		createdAt := time.Now().Add(-2 * time.Hour).UTC().Truncate(time.Millisecond)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "core.identities", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "u1"}, {Key: "email", Value: "a@b.de"}, {Key: "createdAt", Value: createdAt}},
			bson.D{{Key: "_id", Value: "u2"}, {Key: "email", Value: "c@d.de"}, {Key: "createdAt", Value: createdAt}},
		))

		orphans, err := repository.ListOrphans(ctx, time.Now().Add(-time.Hour), 100)
		require.NoError(mt, err)
		require.Len(mt, orphans, 2)
		assert.Equal(mt, "u1", orphans[0].ID)
		assert.Equal(mt, "c@d.de", orphans[1].Email)
	})
}
