package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/clearskyva/backoffice/internal/entity"
	"github.com/clearskyva/backoffice/internal/identity"
	"github.com/clearskyva/backoffice/internal/mailer"
	"github.com/clearskyva/backoffice/internal/repository"
)

type mockInquiriesRepository struct {
	insert       func(ctx context.Context, inquiry *entity.Inquiry) (*entity.Inquiry, error)
	list         func(ctx context.Context, status string) ([]entity.Inquiry, error)
	findByID     func(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)
	updateStatus func(ctx context.Context, id uuid.UUID, status string) (*entity.Inquiry, error)
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockInquiriesRepository) Insert(ctx context.Context, inquiry *entity.Inquiry) (*entity.Inquiry, error) {
	if m.insert != nil {
		return m.insert(ctx, inquiry)
	}
	return nil, errors.New("not implemented")
}

func (m *mockInquiriesRepository) List(ctx context.Context, status string) ([]entity.Inquiry, error) {
	if m.list != nil {
		return m.list(ctx, status)
	}
	return nil, errors.New("not implemented")
}

func (m *mockInquiriesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockInquiriesRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Inquiry, error) {
	if m.updateStatus != nil {
		return m.updateStatus(ctx, id, status)
	}
	return nil, errors.New("not implemented")
}

func (m *mockInquiriesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

type mockTestimonialsRepository struct {
	insert      func(ctx context.Context, testimonial *entity.Testimonial) (*entity.Testimonial, error)
	list        func(ctx context.Context, approvedOnly bool) ([]entity.Testimonial, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	updateFlags func(ctx context.Context, id uuid.UUID, isApproved, isFeatured *bool) (*entity.Testimonial, error)
	deleteFn    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTestimonialsRepository) Insert(ctx context.Context, testimonial *entity.Testimonial) (*entity.Testimonial, error) {
	if m.insert != nil {
		return m.insert(ctx, testimonial)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTestimonialsRepository) List(ctx context.Context, approvedOnly bool) ([]entity.Testimonial, error) {
	if m.list != nil {
		return m.list(ctx, approvedOnly)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTestimonialsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTestimonialsRepository) UpdateFlags(ctx context.Context, id uuid.UUID, isApproved, isFeatured *bool) (*entity.Testimonial, error) {
	if m.updateFlags != nil {
		return m.updateFlags(ctx, id, isApproved, isFeatured)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTestimonialsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

type mockBlogPostsRepository struct {
	insert         func(ctx context.Context, post *entity.BlogPost) (*entity.BlogPost, error)
	list           func(ctx context.Context, publishedOnly bool) ([]entity.BlogPost, error)
	findByID       func(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	findBySlug     func(ctx context.Context, slug string) (*entity.BlogPost, error)
	incrementViews func(ctx context.Context, id uuid.UUID) error
	update         func(ctx context.Context, id uuid.UUID, update repository.BlogPostUpdate) (*entity.BlogPost, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBlogPostsRepository) Insert(ctx context.Context, post *entity.BlogPost) (*entity.BlogPost, error) {
	if m.insert != nil {
		return m.insert(ctx, post)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBlogPostsRepository) List(ctx context.Context, publishedOnly bool) ([]entity.BlogPost, error) {
	if m.list != nil {
		return m.list(ctx, publishedOnly)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBlogPostsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBlogPostsRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	if m.findBySlug != nil {
		return m.findBySlug(ctx, slug)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBlogPostsRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if m.incrementViews != nil {
		return m.incrementViews(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockBlogPostsRepository) Update(ctx context.Context, id uuid.UUID, update repository.BlogPostUpdate) (*entity.BlogPost, error) {
	if m.update != nil {
		return m.update(ctx, id, update)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBlogPostsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

type mockAdminUsersRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.AdminUser, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	insert      func(ctx context.Context, user *entity.AdminUser) (*entity.AdminUser, error)
	list        func(ctx context.Context) ([]entity.AdminUser, error)
	deleteFn    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockAdminUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAdminUsersRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAdminUsersRepository) Insert(ctx context.Context, user *entity.AdminUser) (*entity.AdminUser, error) {
	if m.insert != nil {
		return m.insert(ctx, user)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAdminUsersRepository) List(ctx context.Context) ([]entity.AdminUser, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAdminUsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

type mockIdentityStore struct {
	createUser func(ctx context.Context, email, password string, autoConfirm bool) (*identity.Identity, error)
	getUser    func(ctx context.Context, token string) (*identity.Identity, error)
	deleteUser func(ctx context.Context, id string) error
}

func (m *mockIdentityStore) CreateUser(ctx context.Context, email, password string, autoConfirm bool) (*identity.Identity, error) {
	if m.createUser != nil {
		return m.createUser(ctx, email, password, autoConfirm)
	}
	return nil, errors.New("not implemented")
}

func (m *mockIdentityStore) GetUser(ctx context.Context, token string) (*identity.Identity, error) {
	if m.getUser != nil {
		return m.getUser(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockIdentityStore) DeleteUser(ctx context.Context, id string) error {
	if m.deleteUser != nil {
		return m.deleteUser(ctx, id)
	}
	return errors.New("not implemented")
}

type mockMailer struct {
	send func(ctx context.Context, msg mailer.Message) (string, error)
}

func (m *mockMailer) Send(ctx context.Context, msg mailer.Message) (string, error) {
	if m.send != nil {
		return m.send(ctx, msg)
	}
	return "", errors.New("not implemented")
}

func boolPtr(value bool) *bool       { return &value }
func stringPtr(value string) *string { return &value }
