package company

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"agendly/models"
)

type fakeCompanyRepo struct {
	byID        map[string]*models.Company
	tokenHashes map[string]string
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		byID:        map[string]*models.Company{},
		tokenHashes: map[string]string{},
	}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *models.Company) error {
	f.byID[c.ID] = c
	return nil
}
func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (*models.Company, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCompanyRepo) GetByEmail(_ context.Context, email string) (*models.Company, error) {
	for _, c := range f.byID {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCompanyRepo) GetBySlug(_ context.Context, slug string) (*models.Company, error) {
	for _, c := range f.byID {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCompanyRepo) GetByTokenHash(_ context.Context, hash string) (*models.Company, error) {
	for id, h := range f.tokenHashes {
		if h == hash && h != "" {
			return f.byID[id], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCompanyRepo) UpdateTokenHash(_ context.Context, id, hash string) error {
	f.tokenHashes[id] = hash
	return nil
}
func (f *fakeCompanyRepo) Update(_ context.Context, id string, updates map[string]interface{}) (*models.Company, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if name, ok := updates["name"].(string); ok {
		c.Name = name
	}
	if phone, ok := updates["phone"].(string); ok {
		c.Phone = phone
	}
	return c, nil
}
func (f *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func registerRequest() models.RegisterCompanyRequest {
	return models.RegisterCompanyRequest{
		Name:     "Glow Studio",
		Slug:     "glow-studio",
		Email:    "owner@glow.example",
		Password: "correct horse battery",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := &DefaultCompanyService{Repo: repo}

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "glow-studio", resp.Company.Slug)
	assert.NotEqual(t, "correct horse battery", resp.Company.PasswordHash)
	assert.NotEmpty(t, repo.tokenHashes[resp.Company.ID])
}

func TestRegister_NormalizesSlugAndEmail(t *testing.T) {
	svc := &DefaultCompanyService{Repo: newFakeCompanyRepo()}

	req := registerRequest()
	req.Slug = "  Glow-Studio "
	req.Email = "Owner@Glow.Example"
	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "glow-studio", resp.Company.Slug)
	assert.Equal(t, "owner@glow.example", resp.Company.Email)
}

func TestRegister_RejectsBadSlug(t *testing.T) {
	svc := &DefaultCompanyService{Repo: newFakeCompanyRepo()}

	for _, slug := range []string{"glow studio", "glow/studio", "-glow", "glow-", ""} {
		req := registerRequest()
		req.Slug = slug
		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSlug, "slug %q", slug)
	}
}

func TestRegister_DuplicateEmailAndSlug(t *testing.T) {
	svc := &DefaultCompanyService{Repo: newFakeCompanyRepo()}

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)

	req := registerRequest()
	req.Email = "other@glow.example"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestAuthenticate(t *testing.T) {
	svc := &DefaultCompanyService{Repo: newFakeCompanyRepo()}
	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.Authenticate(context.Background(), models.AuthenticateCompanyRequest{
		Email: "owner@glow.example", Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Authenticate(context.Background(), models.AuthenticateCompanyRequest{
		Email: "owner@glow.example", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), models.AuthenticateCompanyRequest{
		Email: "nobody@glow.example", Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRevokeToken_ClearsHash(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := &DefaultCompanyService{Repo: repo}
	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(context.Background(), resp.Company.ID))
	assert.Empty(t, repo.tokenHashes[resp.Company.ID])
}
