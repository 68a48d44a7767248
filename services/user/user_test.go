package user

import (
	"fmt"
	"testing"

	"vaxportal/models"
	"vaxportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[string]*models.User{}, byEmail: map[string]*models.User{}}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("user %s not found", email)
	}
	return u, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.byID[u.ID] = u
	return nil
}

type fakeChildRepo struct {
	children map[string]*models.ChildProfile
}

func newFakeChildRepo() *fakeChildRepo {
	return &fakeChildRepo{children: map[string]*models.ChildProfile{}}
}

func (r *fakeChildRepo) GetByID(id string) (*models.ChildProfile, error) {
	c, ok := r.children[id]
	if !ok {
		return nil, fmt.Errorf("child %s not found", id)
	}
	return c, nil
}

func (r *fakeChildRepo) GetByUser(userID string) ([]models.ChildProfile, error) {
	var out []models.ChildProfile
	for _, c := range r.children {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChildRepo) Create(child *models.ChildProfile) error {
	r.children[child.ID] = child
	return nil
}

func (r *fakeChildRepo) Delete(id string) error {
	delete(r.children, id)
	return nil
}

func testAccount(t *testing.T) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           "user-1",
		Name:         "Nguyen Van A",
		Email:        "parent@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleParent,
	}
}

func TestAuthenticate(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(testAccount(t)), Children: newFakeChildRepo()}

	account, token, err := svc.Authenticate("parent@example.com", "s3cret-pass", false)
	require.NoError(t, err)
	assert.Equal(t, "user-1", account.ID)

	sub, role, err := utils.ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
	assert.Equal(t, models.RoleParent, role)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(testAccount(t)), Children: newFakeChildRepo()}

	_, _, err := svc.Authenticate("parent@example.com", "wrong", false)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Authenticate("nobody@example.com", "s3cret-pass", false)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo, Children: newFakeChildRepo()}

	account, err := svc.Register(RegisterInput{
		Name:     "Nguyen Van B",
		Email:    "b@example.com",
		Password: "another-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleParent, account.Role)
	assert.NotEqual(t, "another-pass", account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("another-pass")))
}

func TestAddChildValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(), Children: newFakeChildRepo()}

	_, err := svc.AddChild("user-1", models.ChildProfile{DateOfBirth: "2022-01-01", Gender: models.GenderMale})
	assert.Error(t, err)

	_, err = svc.AddChild("user-1", models.ChildProfile{Name: "An", DateOfBirth: "01-01-2022", Gender: models.GenderMale})
	assert.Error(t, err)

	_, err = svc.AddChild("user-1", models.ChildProfile{Name: "An", DateOfBirth: "2099-01-01", Gender: models.GenderMale})
	assert.Error(t, err)

	_, err = svc.AddChild("user-1", models.ChildProfile{Name: "An", DateOfBirth: "2022-01-01", Gender: "other"})
	assert.Error(t, err)
}

func TestAddChildAndList(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo(), Children: newFakeChildRepo()}

	child, err := svc.AddChild("user-1", models.ChildProfile{
		Name:        "An",
		DateOfBirth: "2022-03-10",
		Gender:      models.GenderFemale,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, child.ID)
	assert.Equal(t, "user-1", child.UserID)

	children, err := svc.ListChildren("user-1")
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "An", children[0].Name)
}
