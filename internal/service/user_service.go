package service

import (
	"context"
	"fmt"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/entity"
	"studynotes-be/internal/pkg/apperror"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/internal/repository/specification"
	"studynotes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Create(ctx context.Context, userId string, req *dto.CreateUserRequest) error
	GetProfile(ctx context.Context, userId string) (*dto.UserProfileResponse, error)
	UpdateProfilePic(ctx context.Context, viewerId, userId string, req *dto.UpdateProfilePicRequest) (*string, error)
	UpdateName(ctx context.Context, viewerId, userId string, req *dto.UpdateNameRequest) (string, error)
	AddProfileLink(ctx context.Context, viewerId, userId string, req *dto.CreateProfileLinkRequest) (*dto.ProfileLinkResponse, error)
	DeleteProfileLink(ctx context.Context, viewerId string, linkId uuid.UUID) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Create registers the profile for an identity the token already vouches for.
func (s *userService) Create(ctx context.Context, userId string, req *dto.CreateUserRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUserKey{Id: userId})
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return apperror.ErrUserExists
	}
	existing, err = uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return apperror.ErrUserExists
	}

	user := entity.User{
		Id:         userId,
		Name:       req.Name,
		Email:      req.Email,
		ProfilePic: req.ProfilePic,
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashStr := string(hash)
		user.PasswordHash = &hashStr
	}

	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("USER", "User registered", map[string]interface{}{
		"user_id": userId,
	})
	return nil
}

func (s *userService) GetProfile(ctx context.Context, userId string) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUserKey{Id: userId})
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	likes, views, err := uow.NoteRepository().SumCountersByAuthor(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("sum note counters: %w", err)
	}
	saves, err := uow.SavedNoteRepository().Count(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, fmt.Errorf("count saves: %w", err)
	}
	links, err := uow.ProfileLinkRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, fmt.Errorf("list profile links: %w", err)
	}

	res := &dto.UserProfileResponse{
		Id:           user.Id,
		Name:         user.Name,
		ProfilePic:   user.ProfilePic,
		Likes:        likes,
		Saves:        saves,
		Views:        views,
		ProfileLinks: make([]dto.ProfileLinkResponse, len(links)),
	}
	for i, link := range links {
		res.ProfileLinks[i] = toProfileLinkResponse(link)
	}
	return res, nil
}

func (s *userService) UpdateProfilePic(ctx context.Context, viewerId, userId string, req *dto.UpdateProfilePicRequest) (*string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.ensureOwnProfile(ctx, uow, viewerId, userId); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().UpdateProfilePic(ctx, userId, req.ProfileUrl); err != nil {
		return nil, fmt.Errorf("update profile picture: %w", err)
	}
	url := req.ProfileUrl
	return &url, nil
}

func (s *userService) UpdateName(ctx context.Context, viewerId, userId string, req *dto.UpdateNameRequest) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.ensureOwnProfile(ctx, uow, viewerId, userId); err != nil {
		return "", err
	}
	if err := uow.UserRepository().UpdateName(ctx, userId, req.Name); err != nil {
		return "", fmt.Errorf("update name: %w", err)
	}
	return req.Name, nil
}

func (s *userService) AddProfileLink(ctx context.Context, viewerId, userId string, req *dto.CreateProfileLinkRequest) (*dto.ProfileLinkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.ensureOwnProfile(ctx, uow, viewerId, userId); err != nil {
		return nil, err
	}

	link := entity.ProfileLink{
		UserId:   userId,
		LinkName: req.LinkName,
		LinkUrl:  req.LinkUrl,
	}
	if err := uow.ProfileLinkRepository().Create(ctx, &link); err != nil {
		return nil, fmt.Errorf("create profile link: %w", err)
	}

	res := toProfileLinkResponse(&link)
	return &res, nil
}

func (s *userService) DeleteProfileLink(ctx context.Context, viewerId string, linkId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	link, err := uow.ProfileLinkRepository().FindOne(ctx, specification.ByID{ID: linkId})
	if err != nil {
		return fmt.Errorf("find profile link: %w", err)
	}
	if link == nil {
		return apperror.ErrLinkNotFound
	}
	if link.UserId != viewerId {
		return apperror.ErrForbidden
	}

	return uow.ProfileLinkRepository().Delete(ctx, linkId)
}

func (s *userService) ensureOwnProfile(ctx context.Context, uow unitofwork.UnitOfWork, viewerId, userId string) error {
	if viewerId != userId {
		return apperror.ErrForbidden
	}
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUserKey{Id: userId})
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return apperror.ErrUserNotFound
	}
	return nil
}

func toProfileLinkResponse(link *entity.ProfileLink) dto.ProfileLinkResponse {
	return dto.ProfileLinkResponse{
		Id:        link.Id,
		LinkName:  link.LinkName,
		LinkUrl:   link.LinkUrl,
		CreatedAt: link.CreatedAt,
	}
}
