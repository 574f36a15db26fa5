package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clienthub/internal/config"
	"clienthub/internal/model"
	repoMocks "clienthub/internal/repository/mocks"
	"clienthub/internal/storage"
	storeMocks "clienthub/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testPreviews() config.PreviewConfig {
	return config.PreviewConfig{AvatarSize: 400, LogoSize: 2000}
}

func isLogoKey(key string) bool {
	return strings.HasPrefix(key, "logos/") && strings.HasSuffix(key, ".png")
}

func TestClientService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         func() model.NewClient
		setupMocks func(mStore *storeMocks.MockStore, mRepo *repoMocks.MockClientRepository)
		assertOut  func(t *testing.T, c *model.Client, err error)
	}{
		{
			name: "logo uploaded before record write",
			in: func() model.NewClient {
				return model.NewClient{
					Name: "Acme",
					File: &model.FileInput{
						Reader:      strings.NewReader("img"),
						Filename:    "logo.png",
						Size:        3,
						ContentType: "image/png",
					},
				}
			},
			setupMocks: func(mStore *storeMocks.MockStore, mRepo *repoMocks.MockClientRepository) {
				mStore.On("Put", ctx, mock.MatchedBy(isLogoKey), mock.Anything, storage.PutObjectOptions{
					Size:        3,
					ContentType: "image/png",
				}).Return(storage.ObjectInfo{}, nil)
				mStore.On("PreviewURL", mock.MatchedBy(isLogoKey), 2000).
					Return("https://cdn.example.com/logo?width=2000&height=2000")
				mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Client) bool {
					return c.Name == "Acme" && isLogoKey(c.LogoID) && c.LogoURL != ""
				})).Return(&model.Client{ID: "client-1", Name: "Acme"}, nil)
			},
			assertOut: func(t *testing.T, c *model.Client, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "client-1", c.ID)
			},
		},
		{
			name: "no file falls back to initials avatar",
			in: func() model.NewClient {
				return model.NewClient{Name: "Acme"}
			},
			setupMocks: func(mStore *storeMocks.MockStore, mRepo *repoMocks.MockClientRepository) {
				mStore.On("InitialsURL", "Acme").
					Return("https://avatars.example.com/initials?name=Acme")
				mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Client) bool {
					return c.LogoID == "" && strings.Contains(c.LogoURL, "initials")
				})).Return(&model.Client{ID: "client-2"}, nil)
			},
			assertOut: func(t *testing.T, c *model.Client, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "client-2", c.ID)
			},
		},
		{
			name: "record failure deletes the orphaned upload",
			in: func() model.NewClient {
				return model.NewClient{
					Name: "Acme",
					File: &model.FileInput{
						Reader:      strings.NewReader("img"),
						Filename:    "logo.png",
						Size:        3,
						ContentType: "image/png",
					},
				}
			},
			setupMocks: func(mStore *storeMocks.MockStore, mRepo *repoMocks.MockClientRepository) {
				mStore.On("Put", ctx, mock.MatchedBy(isLogoKey), mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, nil)
				mStore.On("PreviewURL", mock.MatchedBy(isLogoKey), 2000).Return("url")
				mRepo.On("Create", ctx, mock.Anything).
					Return(nil, errors.New("db down"))
				mStore.On("Delete", ctx, mock.MatchedBy(isLogoKey)).Return(nil)
			},
			assertOut: func(t *testing.T, c *model.Client, err error) {
				assert.NoError(t, err)
				assert.Nil(t, c)
			},
		},
		{
			name: "upload failure yields absent result without a record write",
			in: func() model.NewClient {
				return model.NewClient{
					Name: "Acme",
					File: &model.FileInput{
						Reader:      strings.NewReader("img"),
						Filename:    "logo.png",
						Size:        3,
						ContentType: "image/png",
					},
				}
			},
			setupMocks: func(mStore *storeMocks.MockStore, mRepo *repoMocks.MockClientRepository) {
				mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			assertOut: func(t *testing.T, c *model.Client, err error) {
				assert.NoError(t, err)
				assert.Nil(t, c)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStore)
			mRepo := new(repoMocks.MockClientRepository)
			tt.setupMocks(mStore, mRepo)

			svc := NewClientService(mRepo, mStore, testPreviews(), zap.NewNop())
			c, err := svc.Create(ctx, tt.in())

			tt.assertOut(t, c, err)
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestClientService_Update(t *testing.T) {
	ctx := context.Background()

	newFile := func() *model.FileInput {
		return &model.FileInput{
			Reader:      strings.NewReader("img"),
			Filename:    "new.png",
			Size:        3,
			ContentType: "image/png",
		}
	}

	t.Run("old logo deleted only after the record write succeeds", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mRepo := new(repoMocks.MockClientRepository)

		mStore.On("Put", ctx, mock.MatchedBy(isLogoKey), mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, nil)
		mStore.On("PreviewURL", mock.MatchedBy(isLogoKey), 2000).Return("new-url")
		mRepo.On("Update", ctx, mock.MatchedBy(func(c *model.Client) bool {
			return c.ID == "client-1" && isLogoKey(c.LogoID) && c.LogoID != "logos/old.png"
		})).Return(&model.Client{ID: "client-1"}, nil)
		mStore.On("Delete", ctx, "logos/old.png").Return(nil)

		svc := NewClientService(mRepo, mStore, testPreviews(), zap.NewNop())
		c, err := svc.Update(ctx, model.UpdateClient{
			ID:      "client-1",
			Name:    "Acme",
			LogoID:  "logos/old.png",
			LogoURL: "old-url",
			File:    newFile(),
		})

		assert.NoError(t, err)
		assert.Equal(t, "client-1", c.ID)
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("record failure deletes the new upload and keeps the old logo", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mRepo := new(repoMocks.MockClientRepository)

		mStore.On("Put", ctx, mock.MatchedBy(isLogoKey), mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, nil)
		mStore.On("PreviewURL", mock.MatchedBy(isLogoKey), 2000).Return("new-url")
		mRepo.On("Update", ctx, mock.Anything).Return(nil, errors.New("db down"))
		mStore.On("Delete", ctx, mock.MatchedBy(isLogoKey)).Return(nil)

		svc := NewClientService(mRepo, mStore, testPreviews(), zap.NewNop())
		c, err := svc.Update(ctx, model.UpdateClient{
			ID:     "client-1",
			LogoID: "logos/old.png",
			File:   newFile(),
		})

		assert.NoError(t, err)
		assert.Nil(t, c)
		mStore.AssertNotCalled(t, "Delete", ctx, "logos/old.png")
		mStore.AssertExpectations(t)
	})

	t.Run("no file keeps the current asset pair", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mRepo := new(repoMocks.MockClientRepository)

		mRepo.On("Update", ctx, mock.MatchedBy(func(c *model.Client) bool {
			return c.LogoID == "logos/old.png" && c.LogoURL == "old-url"
		})).Return(&model.Client{ID: "client-1"}, nil)

		svc := NewClientService(mRepo, mStore, testPreviews(), zap.NewNop())
		_, err := svc.Update(ctx, model.UpdateClient{
			ID:      "client-1",
			LogoID:  "logos/old.png",
			LogoURL: "old-url",
		})

		assert.NoError(t, err)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing id is raised before any remote call", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mRepo := new(repoMocks.MockClientRepository)

		svc := NewClientService(mRepo, mStore, testPreviews(), zap.NewNop())
		c, err := svc.Update(ctx, model.UpdateClient{File: newFile()})

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, c)
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestClientService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id is raised before any remote call", func(t *testing.T) {
		mRepo := new(repoMocks.MockClientRepository)

		svc := NewClientService(mRepo, new(storeMocks.MockStore), testPreviews(), zap.NewNop())
		c, err := svc.Get(ctx, "")

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, c)
		mRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("remote failure is absorbed", func(t *testing.T) {
		mRepo := new(repoMocks.MockClientRepository)
		mRepo.On("FindByID", ctx, "client-1").Return(nil, errors.New("db down"))

		svc := NewClientService(mRepo, new(storeMocks.MockStore), testPreviews(), zap.NewNop())
		c, err := svc.Get(ctx, "client-1")

		assert.NoError(t, err)
		assert.Nil(t, c)
	})
}

func TestClientService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("logo deleted after the record", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mRepo := new(repoMocks.MockClientRepository)

		mRepo.On("FindByID", ctx, "client-1").
			Return(&model.Client{ID: "client-1", LogoID: "logos/a.png"}, nil)
		mRepo.On("Delete", ctx, "client-1").Return(nil)
		mStore.On("Delete", ctx, "logos/a.png").Return(nil)

		svc := NewClientService(mRepo, mStore, testPreviews(), zap.NewNop())
		err := svc.Delete(ctx, "client-1")

		assert.NoError(t, err)
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("record delete failure leaves the logo untouched", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mRepo := new(repoMocks.MockClientRepository)

		mRepo.On("FindByID", ctx, "client-1").
			Return(&model.Client{ID: "client-1", LogoID: "logos/a.png"}, nil)
		mRepo.On("Delete", ctx, "client-1").Return(errors.New("db down"))

		svc := NewClientService(mRepo, mStore, testPreviews(), zap.NewNop())
		err := svc.Delete(ctx, "client-1")

		assert.NoError(t, err)
		mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		mRepo := new(repoMocks.MockClientRepository)

		svc := NewClientService(mRepo, new(storeMocks.MockStore), testPreviews(), zap.NewNop())
		err := svc.Delete(ctx, "")

		assert.NoError(t, err)
		mRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}
