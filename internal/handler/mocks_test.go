package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/clearskyva/backoffice/internal/entity"
	"github.com/clearskyva/backoffice/internal/identity"
	"github.com/clearskyva/backoffice/internal/mailer"
	"github.com/clearskyva/backoffice/internal/repository"
)

var errNotStubbed = errors.New("not stubbed")

type fakeInquiriesRepo struct {
	insert       func(ctx context.Context, inquiry *entity.Inquiry) (*entity.Inquiry, error)
	list         func(ctx context.Context, status string) ([]entity.Inquiry, error)
	findByID     func(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)
	updateStatus func(ctx context.Context, id uuid.UUID, status string) (*entity.Inquiry, error)
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeInquiriesRepo) Insert(ctx context.Context, inquiry *entity.Inquiry) (*entity.Inquiry, error) {
	if f.insert == nil {
		return nil, errNotStubbed
	}
	return f.insert(ctx, inquiry)
}

func (f *fakeInquiriesRepo) List(ctx context.Context, status string) ([]entity.Inquiry, error) {
	if f.list == nil {
		return nil, errNotStubbed
	}
	return f.list(ctx, status)
}

func (f *fakeInquiriesRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	if f.findByID == nil {
		return nil, errNotStubbed
	}
	return f.findByID(ctx, id)
}

func (f *fakeInquiriesRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Inquiry, error) {
	if f.updateStatus == nil {
		return nil, errNotStubbed
	}
	return f.updateStatus(ctx, id, status)
}

func (f *fakeInquiriesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return errNotStubbed
	}
	return f.deleteFn(ctx, id)
}

type fakeTestimonialsRepo struct {
	insert      func(ctx context.Context, testimonial *entity.Testimonial) (*entity.Testimonial, error)
	list        func(ctx context.Context, approvedOnly bool) ([]entity.Testimonial, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	updateFlags func(ctx context.Context, id uuid.UUID, isApproved, isFeatured *bool) (*entity.Testimonial, error)
	deleteFn    func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeTestimonialsRepo) Insert(ctx context.Context, testimonial *entity.Testimonial) (*entity.Testimonial, error) {
	if f.insert == nil {
		return nil, errNotStubbed
	}
	return f.insert(ctx, testimonial)
}

func (f *fakeTestimonialsRepo) List(ctx context.Context, approvedOnly bool) ([]entity.Testimonial, error) {
	if f.list == nil {
		return nil, errNotStubbed
	}
	return f.list(ctx, approvedOnly)
}

func (f *fakeTestimonialsRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	if f.findByID == nil {
		return nil, errNotStubbed
	}
	return f.findByID(ctx, id)
}

func (f *fakeTestimonialsRepo) UpdateFlags(ctx context.Context, id uuid.UUID, isApproved, isFeatured *bool) (*entity.Testimonial, error) {
	if f.updateFlags == nil {
		return nil, errNotStubbed
	}
	return f.updateFlags(ctx, id, isApproved, isFeatured)
}

func (f *fakeTestimonialsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return errNotStubbed
	}
	return f.deleteFn(ctx, id)
}

type fakeBlogPostsRepo struct {
	insert         func(ctx context.Context, post *entity.BlogPost) (*entity.BlogPost, error)
	list           func(ctx context.Context, publishedOnly bool) ([]entity.BlogPost, error)
	findByID       func(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	findBySlug     func(ctx context.Context, slug string) (*entity.BlogPost, error)
	incrementViews func(ctx context.Context, id uuid.UUID) error
	update         func(ctx context.Context, id uuid.UUID, update repository.BlogPostUpdate) (*entity.BlogPost, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeBlogPostsRepo) Insert(ctx context.Context, post *entity.BlogPost) (*entity.BlogPost, error) {
	if f.insert == nil {
		return nil, errNotStubbed
	}
	return f.insert(ctx, post)
}

func (f *fakeBlogPostsRepo) List(ctx context.Context, publishedOnly bool) ([]entity.BlogPost, error) {
	if f.list == nil {
		return nil, errNotStubbed
	}
	return f.list(ctx, publishedOnly)
}

func (f *fakeBlogPostsRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	if f.findByID == nil {
		return nil, errNotStubbed
	}
	return f.findByID(ctx, id)
}

func (f *fakeBlogPostsRepo) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	if f.findBySlug == nil {
		return nil, errNotStubbed
	}
	return f.findBySlug(ctx, slug)
}

func (f *fakeBlogPostsRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if f.incrementViews == nil {
		return errNotStubbed
	}
	return f.incrementViews(ctx, id)
}

func (f *fakeBlogPostsRepo) Update(ctx context.Context, id uuid.UUID, update repository.BlogPostUpdate) (*entity.BlogPost, error) {
	if f.update == nil {
		return nil, errNotStubbed
	}
	return f.update(ctx, id, update)
}

func (f *fakeBlogPostsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return errNotStubbed
	}
	return f.deleteFn(ctx, id)
}

type fakeAdminUsersRepo struct {
	findByEmail func(ctx context.Context, email string) (*entity.AdminUser, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	insert      func(ctx context.Context, user *entity.AdminUser) (*entity.AdminUser, error)
	list        func(ctx context.Context) ([]entity.AdminUser, error)
	deleteFn    func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeAdminUsersRepo) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	if f.findByEmail == nil {
		return nil, repository.ErrAdminUserNotFound
	}
	return f.findByEmail(ctx, email)
}

func (f *fakeAdminUsersRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	if f.findByID == nil {
		return nil, errNotStubbed
	}
	return f.findByID(ctx, id)
}

func (f *fakeAdminUsersRepo) Insert(ctx context.Context, user *entity.AdminUser) (*entity.AdminUser, error) {
	if f.insert == nil {
		return nil, errNotStubbed
	}
	return f.insert(ctx, user)
}

func (f *fakeAdminUsersRepo) List(ctx context.Context) ([]entity.AdminUser, error) {
	if f.list == nil {
		return nil, errNotStubbed
	}
	return f.list(ctx)
}

func (f *fakeAdminUsersRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return errNotStubbed
	}
	return f.deleteFn(ctx, id)
}

type fakeTeamMembersRepo struct {
	list func(ctx context.Context, activeOnly bool) ([]entity.TeamMember, error)
}

func (f *fakeTeamMembersRepo) List(ctx context.Context, activeOnly bool) ([]entity.TeamMember, error) {
	if f.list == nil {
		return nil, errNotStubbed
	}
	return f.list(ctx, activeOnly)
}

type fakeIdentityStore struct {
	createUser func(ctx context.Context, email, password string, autoConfirm bool) (*identity.Identity, error)
	getUser    func(ctx context.Context, token string) (*identity.Identity, error)
	deleteUser func(ctx context.Context, id string) error
}

func (f *fakeIdentityStore) CreateUser(ctx context.Context, email, password string, autoConfirm bool) (*identity.Identity, error) {
	if f.createUser == nil {
		return nil, errNotStubbed
	}
	return f.createUser(ctx, email, password, autoConfirm)
}

func (f *fakeIdentityStore) GetUser(ctx context.Context, token string) (*identity.Identity, error) {
	if f.getUser == nil {
		return nil, errNotStubbed
	}
	return f.getUser(ctx, token)
}

func (f *fakeIdentityStore) DeleteUser(ctx context.Context, id string) error {
	if f.deleteUser == nil {
		return errNotStubbed
	}
	return f.deleteUser(ctx, id)
}

type fakeMailer struct {
	send func(ctx context.Context, msg mailer.Message) (string, error)
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) (string, error) {
	if f.send == nil {
		return "mock-id", nil
	}
	return f.send(ctx, msg)
}
