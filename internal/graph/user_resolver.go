package graph

import (
	"context"
	"strings"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/pkg/serverutils"

	graphql "github.com/graph-gophers/graphql-go"
)

type createUserArgs struct {
	ProfilePic *string
	Name       *string
	Email      *string
	Password   *string
}

// CreateUser registers the authenticated identity as a local user.
func (r *Resolver) CreateUser(ctx context.Context, args createUserArgs) (bool, error) {
	userId, err := requireViewer(ctx)
	if err != nil {
		return false, err
	}

	req := dto.CreateUserRequest{
		Name:       strings.TrimSpace(stringArg(args.Name)),
		Email:      strings.TrimSpace(stringArg(args.Email)),
		Password:   args.Password,
		ProfilePic: args.ProfilePic,
	}
	if req.ProfilePic != nil && strings.TrimSpace(*req.ProfilePic) == "" {
		req.ProfilePic = nil
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return false, r.fail("createUser", err)
	}

	if err := r.users.Create(ctx, userId, &req); err != nil {
		return false, r.fail("createUser", err)
	}
	return true, nil
}

type fetchUserArgs struct {
	UserId graphql.ID
}

func (r *Resolver) FetchUser(ctx context.Context, args fetchUserArgs) (*userProfileResolver, error) {
	profile, err := r.users.GetProfile(ctx, string(args.UserId))
	if err != nil {
		return nil, r.fail("fetchUser", err)
	}
	return &userProfileResolver{profile: profile}, nil
}

type createUserProfilePicArgs struct {
	UserId     graphql.ID
	ProfileUrl *string
}

func (r *Resolver) CreateUserProfilePic(ctx context.Context, args createUserProfilePicArgs) (*profilePicResolver, error) {
	viewerId, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}

	req := dto.UpdateProfilePicRequest{ProfileUrl: strings.TrimSpace(stringArg(args.ProfileUrl))}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, r.fail("createUserProfilePic", err)
	}

	pic, err := r.users.UpdateProfilePic(ctx, viewerId, string(args.UserId), &req)
	if err != nil {
		return nil, r.fail("createUserProfilePic", err)
	}
	return &profilePicResolver{profilePic: pic}, nil
}

type createUserNameArgs struct {
	UserId graphql.ID
	Name   *string
}

func (r *Resolver) CreateUserName(ctx context.Context, args createUserNameArgs) (*userNameResolver, error) {
	viewerId, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}

	req := dto.UpdateNameRequest{Name: strings.TrimSpace(stringArg(args.Name))}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, r.fail("createUserName", err)
	}

	name, err := r.users.UpdateName(ctx, viewerId, string(args.UserId), &req)
	if err != nil {
		return nil, r.fail("createUserName", err)
	}
	return &userNameResolver{name: name}, nil
}

type createUserProfileLinksArgs struct {
	UserId   graphql.ID
	LinkName string
	LinkUrl  string
}

func (r *Resolver) CreateUserProfileLinks(ctx context.Context, args createUserProfileLinksArgs) (*profileLinkResolver, error) {
	viewerId, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}

	req := dto.CreateProfileLinkRequest{
		LinkName: strings.TrimSpace(args.LinkName),
		LinkUrl:  strings.TrimSpace(args.LinkUrl),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, r.fail("createUserProfileLinks", err)
	}

	link, err := r.users.AddProfileLink(ctx, viewerId, string(args.UserId), &req)
	if err != nil {
		return nil, r.fail("createUserProfileLinks", err)
	}
	return &profileLinkResolver{link: link}, nil
}

type deleteUserProfileLinksArgs struct {
	Id string
}

func (r *Resolver) DeleteUserProfileLinks(ctx context.Context, args deleteUserProfileLinksArgs) (bool, error) {
	viewerId, err := requireViewer(ctx)
	if err != nil {
		return false, err
	}
	linkId, err := parseID(args.Id)
	if err != nil {
		return false, err
	}

	if err := r.users.DeleteProfileLink(ctx, viewerId, linkId); err != nil {
		return false, r.fail("deleteUserProfileLinks", err)
	}
	return true, nil
}

type userProfileResolver struct {
	profile *dto.UserProfileResponse
}

func (r *userProfileResolver) Name() string {
	return r.profile.Name
}

func (r *userProfileResolver) ProfilePic() *string {
	return r.profile.ProfilePic
}

func (r *userProfileResolver) Likes() int32 {
	return int32(r.profile.Likes)
}

func (r *userProfileResolver) Saves() int32 {
	return int32(r.profile.Saves)
}

func (r *userProfileResolver) Views() int32 {
	return int32(r.profile.Views)
}

func (r *userProfileResolver) ProfileLinks() []*profileLinkResolver {
	out := make([]*profileLinkResolver, len(r.profile.ProfileLinks))
	for i := range r.profile.ProfileLinks {
		out[i] = &profileLinkResolver{link: &r.profile.ProfileLinks[i]}
	}
	return out
}

type profileLinkResolver struct {
	link *dto.ProfileLinkResponse
}

func (r *profileLinkResolver) ID() graphql.ID {
	return graphql.ID(r.link.Id.String())
}

func (r *profileLinkResolver) LinkName() string {
	return r.link.LinkName
}

func (r *profileLinkResolver) LinkUrl() string {
	return r.link.LinkUrl
}

type profilePicResolver struct {
	profilePic *string
}

func (r *profilePicResolver) ProfilePic() *string {
	return r.profilePic
}

type userNameResolver struct {
	name string
}

func (r *userNameResolver) Name() string {
	return r.name
}
