package graph

import (
	"context"
	"strings"

	"studynotes-be/internal/dto"
	"studynotes-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
)

type fetchAllCommentsArgs struct {
	NoteId graphql.ID
}

func (r *Resolver) FetchAllComments(ctx context.Context, args fetchAllCommentsArgs) ([]*commentResolver, error) {
	noteId, err := parseID(string(args.NoteId))
	if err != nil {
		return nil, err
	}

	comments, err := r.comments.FetchAll(ctx, noteId)
	if err != nil {
		return nil, r.fail("fetchAllComments", err)
	}
	return toCommentResolvers(comments), nil
}

type fetchNestedRepliesArgs struct {
	ParentId graphql.ID
}

func (r *Resolver) FetchNestedReplies(ctx context.Context, args fetchNestedRepliesArgs) ([]*commentResolver, error) {
	parentId, err := parseID(string(args.ParentId))
	if err != nil {
		return nil, err
	}

	replies, err := r.comments.FetchReplies(ctx, parentId)
	if err != nil {
		return nil, r.fail("fetchNestedReplies", err)
	}
	return toCommentResolvers(replies), nil
}

type createCommentArgs struct {
	Content  string
	NoteId   graphql.ID
	ParentId *string
}

func (r *Resolver) CreateComment(ctx context.Context, args createCommentArgs) (*commentResolver, error) {
	authorId, err := requireViewer(ctx)
	if err != nil {
		return nil, err
	}
	noteId, err := parseID(string(args.NoteId))
	if err != nil {
		return nil, err
	}

	req := dto.CreateCommentRequest{
		Content: strings.TrimSpace(args.Content),
		NoteId:  noteId,
	}
	if args.ParentId != nil && strings.TrimSpace(*args.ParentId) != "" {
		parentId, err := parseID(strings.TrimSpace(*args.ParentId))
		if err != nil {
			return nil, err
		}
		req.ParentId = &parentId
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, r.fail("createComment", err)
	}

	comment, err := r.comments.Create(ctx, authorId, &req)
	if err != nil {
		return nil, r.fail("createComment", err)
	}
	return &commentResolver{comment: comment}, nil
}

func toCommentResolvers(comments []*dto.CommentResponse) []*commentResolver {
	out := make([]*commentResolver, len(comments))
	for i, c := range comments {
		out[i] = &commentResolver{comment: c}
	}
	return out
}

type commentResolver struct {
	comment *dto.CommentResponse
}

func (r *commentResolver) ID() graphql.ID {
	return graphql.ID(r.comment.Id.String())
}

func (r *commentResolver) Content() string {
	return r.comment.Content
}

func (r *commentResolver) AuthorId() string {
	return r.comment.AuthorId
}

func (r *commentResolver) NoteId() graphql.ID {
	return graphql.ID(r.comment.NoteId.String())
}

func (r *commentResolver) ParentId() *graphql.ID {
	if r.comment.ParentId == nil || *r.comment.ParentId == uuid.Nil {
		return nil
	}
	id := graphql.ID(r.comment.ParentId.String())
	return &id
}

func (r *commentResolver) Author() *authorResolver {
	if r.comment.Author == nil {
		return nil
	}
	return &authorResolver{author: r.comment.Author}
}

func (r *commentResolver) ReplyCount() int32 {
	return int32(r.comment.ReplyCount)
}

func (r *commentResolver) HasMoreReplies() bool {
	return r.comment.HasMoreReplies
}

func (r *commentResolver) CreatedAt() string {
	return isoTime(r.comment.CreatedAt)
}

func (r *commentResolver) UpdatedAt() string {
	return isoTime(r.comment.UpdatedAt)
}

type authorResolver struct {
	author *dto.AuthorResponse
}

func (r *authorResolver) Name() string {
	return r.author.Name
}

func (r *authorResolver) ProfilePic() *string {
	return r.author.ProfilePic
}
