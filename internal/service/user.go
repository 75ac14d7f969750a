package service

import (
	"context"
	"errors"
	"fmt"

	"stundenmanager/internal/core"
	"stundenmanager/internal/database/mongodb/model"
	mongoRepo "stundenmanager/internal/database/mongodb/repository"
	"stundenmanager/internal/dto"
	cErr "stundenmanager/internal/pkg/error"

	"go.uber.org/zap"
)

type UserService struct {
	logger     *zap.Logger
	pipeline   *Pipeline
	identities IdentityProvider
	users      UserStore
}

func NewUserService(logger *zap.Logger, pipeline *Pipeline, identities IdentityProvider, users UserStore) *UserService {
	return &UserService{logger: logger, pipeline: pipeline, identities: identities, users: users}
}

// CreateUser 先建立 identity，再以同一個 uid 寫入 User 文件；User 寫入失敗時刪除剛建立的 identity
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	if req == nil {
		return nil, cErr.NullRequest()
	}

	user, err := runRecord(ctx, s.pipeline, recordStep[*model.User]{
		record:  core.RecordUser,
		request: req,
		write: func(ctx context.Context) (*model.User, error) {
			uid, err := s.identities.CreateIdentity(ctx, req.Email, req.Password)
			if errors.Is(err, mongoRepo.ErrDuplicateKey) {
				return nil, cErr.EmailExists()
			}
			if err != nil {
				return nil, fmt.Errorf("create identity: %w", err)
			}

			created, err := s.users.Create(ctx, &model.User{
				ID:       uid,
				Name:     req.Name,
				Surname:  req.Surname,
				Birthday: req.Birthday,
				Street:   req.Street,
				ZipCode:  req.ZipCode,
				City:     req.City,
				Role:     core.DefaultRole,
			})
			if err != nil {
				if delErr := s.identities.DeleteIdentity(context.WithoutCancel(ctx), uid); delErr != nil {
					// 留給 reconcile job 清除
					s.logger.Error("compensating identity delete failed",
						zap.String("uid", uid),
						zap.Error(delErr),
					)
				}
				return nil, fmt.Errorf("create user document: %w", err)
			}
			return created, nil
		},
		documentID:  func(u *model.User) string { return u.ID },
		failureDesc: "User could not be created",
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateUserResponse{
		IsSuccess: true,
		UID:       user.ID,
		Name:      user.Name,
		Surname:   user.Surname,
		Birthday:  user.Birthday,
		Street:    user.Street,
		ZipCode:   user.ZipCode,
		City:      user.City,
		Role:      user.Role,
	}, nil
}
