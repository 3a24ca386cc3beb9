package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	userRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/user"
)

type fakeRepo struct {
	byID   map[int64]*domain.User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[int64]*domain.User{}}
}

func (f *fakeRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	f.nextID++
	created := *user
	created.ID = f.nextID
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	existing, ok := f.byID[user.ID]
	if !ok || existing.IsDeleted {
		return nil, userRepo.ErrUserNotFound
	}
	updated := *user
	f.byID[user.ID] = &updated
	return &updated, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok || user.IsDeleted {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeRepo) GetByPhone(_ context.Context, phoneNumber string) (*domain.User, error) {
	for _, user := range f.byID {
		if user.PhoneNumber == phoneNumber && !user.IsDeleted {
			return user, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeRepo) GetAll(_ context.Context) ([]*domain.User, error) {
	var result []*domain.User
	for _, user := range f.byID {
		if !user.IsDeleted {
			result = append(result, user)
		}
	}
	return result, nil
}

func (f *fakeRepo) SoftDelete(_ context.Context, id int64) error {
	user, ok := f.byID[id]
	if !ok || user.IsDeleted {
		return userRepo.ErrUserNotFound
	}
	user.IsDeleted = true
	return nil
}

func (f *fakeRepo) SoftDeleteAll(_ context.Context) error {
	for _, user := range f.byID {
		user.IsDeleted = true
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Save_Create(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	created, err := svc.Save(context.Background(), &domain.User{PhoneNumber: "+420123456789", Name: "Jan Novak"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestService_Save_DuplicatePhone(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.Save(context.Background(), &domain.User{PhoneNumber: "+420123456789", Name: "Jan Novak"})
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), &domain.User{PhoneNumber: "+420123456789", Name: "Petr Svoboda"})
	assert.ErrorIs(t, err, ErrDuplicatePhoneNumber)
}

func TestService_Save_UpdateKeepingOwnPhone(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	created, err := svc.Save(context.Background(), &domain.User{PhoneNumber: "+420123456789", Name: "Jan Novak"})
	require.NoError(t, err)

	created.Name = "Jan Horak"
	updated, err := svc.Save(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, "Jan Horak", updated.Name)
}

func TestService_Save_Validation(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.Save(context.Background(), &domain.User{PhoneNumber: "12345", Name: "Jan Novak"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Save(context.Background(), &domain.User{PhoneNumber: "+420123456789", Name: "Jo"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ResolveOrCreate_CreatesMissing(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	user, err := svc.ResolveOrCreate(context.Background(), "+420123456789", "Jan Novak")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Jan Novak", user.Name)
}

func TestService_ResolveOrCreate_KeepsStoredName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	first, err := svc.ResolveOrCreate(context.Background(), "+420123456789", "Jan Novak")
	require.NoError(t, err)

	// Повторное разрешение с другим именем не переименовывает пользователя
	second, err := svc.ResolveOrCreate(context.Background(), "+420123456789", "Someone Else")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Jan Novak", second.Name)
}

func TestService_ResolveOrCreate_InvalidData(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.ResolveOrCreate(context.Background(), "bad-phone", "Jan Novak")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ResolveOrCreate(context.Background(), "+420123456789", "Jo")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByPhoneNumber_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.GetByPhoneNumber(context.Background(), "+420123456789")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Delete_FreesPhoneNumber(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	created, err := svc.Save(context.Background(), &domain.User{PhoneNumber: "+420123456789", Name: "Jan Novak"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Save(context.Background(), &domain.User{PhoneNumber: "+420123456789", Name: "Petr Svoboda"})
	assert.NoError(t, err)
}
