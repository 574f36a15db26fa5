package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clienthub/internal/model"
	repoMocks "clienthub/internal/repository/mocks"
	"clienthub/internal/storage"
	storeMocks "clienthub/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func isAvatarKey(key string) bool {
	return strings.HasPrefix(key, "avatars/") && strings.HasSuffix(key, ".jpg")
}

func TestMemberService_Update(t *testing.T) {
	ctx := context.Background()

	avatarFile := func() *model.FileInput {
		return &model.FileInput{
			Reader:      strings.NewReader("img"),
			Filename:    "me.jpg",
			Size:        3,
			ContentType: "image/jpeg",
		}
	}

	t.Run("avatar swap uses the avatar preview size", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mMembers := new(repoMocks.MockMemberRepository)

		mStore.On("Put", ctx, mock.MatchedBy(isAvatarKey), mock.Anything, storage.PutObjectOptions{
			Size:        3,
			ContentType: "image/jpeg",
		}).Return(storage.ObjectInfo{}, nil)
		mStore.On("PreviewURL", mock.MatchedBy(isAvatarKey), 400).Return("new-url")
		mMembers.On("Update", ctx, mock.MatchedBy(func(m *model.Member) bool {
			return m.ID == "m1" && isAvatarKey(m.AvatarID) && m.AvatarURL == "new-url"
		})).Return(&model.Member{ID: "m1"}, nil)
		mStore.On("Delete", ctx, "avatars/old.jpg").Return(nil)

		svc := NewMemberService(mMembers, new(repoMocks.MockProfileRepository), mStore, testPreviews(), zap.NewNop())
		m, err := svc.Update(ctx, model.UpdateMember{
			MemberID:  "m1",
			AvatarID:  "avatars/old.jpg",
			AvatarURL: "old-url",
			File:      avatarFile(),
		})

		assert.NoError(t, err)
		assert.Equal(t, "m1", m.ID)
		mStore.AssertExpectations(t)
		mMembers.AssertExpectations(t)
	})

	t.Run("record failure deletes the new upload and keeps the old avatar", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mMembers := new(repoMocks.MockMemberRepository)

		mStore.On("Put", ctx, mock.MatchedBy(isAvatarKey), mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, nil)
		mStore.On("PreviewURL", mock.MatchedBy(isAvatarKey), 400).Return("new-url")
		mMembers.On("Update", ctx, mock.Anything).Return(nil, errors.New("db down"))
		mStore.On("Delete", ctx, mock.MatchedBy(isAvatarKey)).Return(nil)

		svc := NewMemberService(mMembers, new(repoMocks.MockProfileRepository), mStore, testPreviews(), zap.NewNop())
		m, err := svc.Update(ctx, model.UpdateMember{
			MemberID: "m1",
			AvatarID: "avatars/old.jpg",
			File:     avatarFile(),
		})

		assert.NoError(t, err)
		assert.Nil(t, m)
		mStore.AssertNotCalled(t, "Delete", ctx, "avatars/old.jpg")
	})

	t.Run("missing id is raised before any remote call", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mMembers := new(repoMocks.MockMemberRepository)

		svc := NewMemberService(mMembers, new(repoMocks.MockProfileRepository), mStore, testPreviews(), zap.NewNop())
		m, err := svc.Update(ctx, model.UpdateMember{File: avatarFile()})

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, m)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMemberService_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the lifecycle status only", func(t *testing.T) {
		mMembers := new(repoMocks.MockMemberRepository)
		mMembers.On("FindByID", ctx, "m1").
			Return(&model.Member{ID: "m1", Status: "active"}, nil)

		svc := NewMemberService(mMembers, new(repoMocks.MockProfileRepository), new(storeMocks.MockStore), testPreviews(), zap.NewNop())
		status, err := svc.Status(ctx, "m1")

		assert.NoError(t, err)
		assert.Equal(t, "active", status)
	})

	t.Run("missing id is raised before any remote call", func(t *testing.T) {
		mMembers := new(repoMocks.MockMemberRepository)

		svc := NewMemberService(mMembers, new(repoMocks.MockProfileRepository), new(storeMocks.MockStore), testPreviews(), zap.NewNop())
		status, err := svc.Status(ctx, "")

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Empty(t, status)
		mMembers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("remote failure is absorbed", func(t *testing.T) {
		mMembers := new(repoMocks.MockMemberRepository)
		mMembers.On("FindByID", ctx, "m1").Return(nil, errors.New("db down"))

		svc := NewMemberService(mMembers, new(repoMocks.MockProfileRepository), new(storeMocks.MockStore), testPreviews(), zap.NewNop())
		status, err := svc.Status(ctx, "m1")

		assert.NoError(t, err)
		assert.Empty(t, status)
	})
}
