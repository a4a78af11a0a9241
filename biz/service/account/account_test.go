package account

import (
	"context"
	"errors"
	"testing"

	"user_center/biz/model/domain"
	"user_center/biz/model/errs"
	"user_center/biz/model/storage"
	"user_center/biz/util/encode"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// fakeAccountRepo is an in-memory record store with optional error
// injection, keyed like the real table.
type fakeAccountRepo struct {
	nextID  uint
	records map[uint]*storage.AccountRecord

	findErr   error
	createErr error
	saveErr   error
	deleteErr error
	listErr   error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{records: map[uint]*storage.AccountRecord{}}
}

func (r *fakeAccountRepo) Create(_ context.Context, m *storage.AccountRecord) (*storage.AccountRecord, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.records[m.ID] = &cp
	return m, nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uint) (*storage.AccountRecord, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	m, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*storage.AccountRecord, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, m := range r.records {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Save(_ context.Context, m *storage.AccountRecord) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *m
	r.records[m.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, m *storage.AccountRecord) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.records, m.ID)
	return nil
}

func (r *fakeAccountRepo) ListAll(_ context.Context) ([]*storage.AccountRecord, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*storage.AccountRecord
	for id := uint(1); id <= r.nextID; id++ {
		if m, ok := r.records[id]; ok {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// MinCost keeps the hashing fast; the service never depends on the cost.
func newTestService(repo *fakeAccountRepo) *Service {
	return New(repo, &encode.BcryptHasher{Cost: bcrypt.MinCost})
}

func TestService_Create(t *testing.T) {
	t.Run("find error", func(t *testing.T) {
		repo := newFakeAccountRepo()
		repo.findErr = errors.New("db error")
		_, bizErr := newTestService(repo).Create(context.Background(), "n", "a@b.com", "secret1")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("email duplicated", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := newTestService(repo)
		_, bizErr := svc.Create(context.Background(), "n", "a@b.com", "secret1")
		assert.Nil(t, bizErr)

		_, bizErr = svc.Create(context.Background(), "other", "a@b.com", "secret2")
		assert.True(t, errs.ErrorEqual(errs.EmailDuplicated, bizErr))
	})

	t.Run("create error", func(t *testing.T) {
		repo := newFakeAccountRepo()
		repo.createErr = errors.New("insert error")
		_, bizErr := newTestService(repo).Create(context.Background(), "n", "a@b.com", "secret1")
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})

	t.Run("success stores hash and returns redacted view", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := newTestService(repo)

		a, bizErr := svc.Create(context.Background(), "Test User", "test@example.com", "password123")
		assert.Nil(t, bizErr)
		assert.NotZero(t, a.ID)
		assert.Equal(t, "Test User", a.Name)
		assert.Equal(t, "test@example.com", a.Email)

		stored := repo.records[a.ID]
		assert.NotEqual(t, "password123", stored.SecretHash)
		assert.True(t, (&encode.BcryptHasher{}).Verify("password123", stored.SecretHash))
	})
}

func TestService_Validate(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestService(repo)
	created, bizErr := svc.Create(context.Background(), "n", "a@b.com", "correct1")
	assert.Nil(t, bizErr)

	t.Run("find error", func(t *testing.T) {
		bad := newFakeAccountRepo()
		bad.findErr = errors.New("db error")
		_, vErr := newTestService(bad).Validate(context.Background(), "a@b.com", "correct1")
		assert.True(t, errs.ErrorEqual(errs.ServerError, vErr))
	})

	t.Run("success", func(t *testing.T) {
		a, vErr := svc.Validate(context.Background(), "a@b.com", "correct1")
		assert.Nil(t, vErr)
		assert.NotNil(t, a)
		assert.Equal(t, created.ID, a.ID)
	})

	t.Run("wrong secret and unknown email share one sentinel", func(t *testing.T) {
		a, vErr := svc.Validate(context.Background(), "a@b.com", "wrong12")
		assert.Nil(t, vErr)
		assert.Nil(t, a)

		b, vErr := svc.Validate(context.Background(), "nobody@b.com", "correct1")
		assert.Nil(t, vErr)
		assert.Nil(t, b)
	})
}

func TestService_FindOne(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestService(repo)
	created, bizErr := svc.Create(context.Background(), "n", "a@b.com", "secret1")
	assert.Nil(t, bizErr)

	t.Run("round trip", func(t *testing.T) {
		a, fErr := svc.FindOne(context.Background(), created.ID)
		assert.Nil(t, fErr)
		assert.Equal(t, created.Name, a.Name)
		assert.Equal(t, created.Email, a.Email)
	})

	t.Run("read is idempotent", func(t *testing.T) {
		a1, fErr := svc.FindOne(context.Background(), created.ID)
		assert.Nil(t, fErr)
		a2, fErr := svc.FindOne(context.Background(), created.ID)
		assert.Nil(t, fErr)
		assert.Equal(t, a1, a2)
	})

	t.Run("not found", func(t *testing.T) {
		_, fErr := svc.FindOne(context.Background(), 9999)
		assert.True(t, errs.ErrorEqual(errs.AccountNotFound, fErr))
	})
}

func TestService_FindAll(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestService(repo)

	for _, email := range []string{"a@b.com", "b@b.com", "c@b.com"} {
		_, bizErr := svc.Create(context.Background(), "n", email, "secret1")
		assert.Nil(t, bizErr)
	}

	as, bizErr := svc.FindAll(context.Background())
	assert.Nil(t, bizErr)
	assert.Len(t, as, 3)
	assert.Equal(t, "a@b.com", as[0].Email)
	assert.Equal(t, "b@b.com", as[1].Email)
	assert.Equal(t, "c@b.com", as[2].Email)
}

func TestService_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(newFakeAccountRepo())
		_, bizErr := svc.Update(context.Background(), 42, domain.AccountPatch{Name: strPtr("x")})
		assert.True(t, errs.ErrorEqual(errs.AccountNotFound, bizErr))
	})

	t.Run("name only keeps email and secret", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := newTestService(repo)
		created, bizErr := svc.Create(context.Background(), "n", "a@b.com", "secret1")
		assert.Nil(t, bizErr)

		a, bizErr := svc.Update(context.Background(), created.ID, domain.AccountPatch{Name: strPtr("X")})
		assert.Nil(t, bizErr)
		assert.Equal(t, "X", a.Name)
		assert.Equal(t, "a@b.com", a.Email)

		// original secret still validates
		v, vErr := svc.Validate(context.Background(), "a@b.com", "secret1")
		assert.Nil(t, vErr)
		assert.NotNil(t, v)
	})

	t.Run("secret change re-hashes", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := newTestService(repo)
		created, bizErr := svc.Create(context.Background(), "n", "a@b.com", "oldpass1")
		assert.Nil(t, bizErr)

		_, bizErr = svc.Update(context.Background(), created.ID, domain.AccountPatch{Secret: strPtr("newpass123")})
		assert.Nil(t, bizErr)

		v, vErr := svc.Validate(context.Background(), "a@b.com", "newpass123")
		assert.Nil(t, vErr)
		assert.NotNil(t, v)

		old, vErr := svc.Validate(context.Background(), "a@b.com", "oldpass1")
		assert.Nil(t, vErr)
		assert.Nil(t, old)
	})

	t.Run("save error", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := newTestService(repo)
		created, bizErr := svc.Create(context.Background(), "n", "a@b.com", "secret1")
		assert.Nil(t, bizErr)

		repo.saveErr = errors.New("db error")
		_, bizErr = svc.Update(context.Background(), created.ID, domain.AccountPatch{Name: strPtr("x")})
		assert.True(t, errs.ErrorEqual(errs.ServerError, bizErr))
	})
}

func TestService_Remove(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := newTestService(newFakeAccountRepo())
		bizErr := svc.Remove(context.Background(), 42)
		assert.True(t, errs.ErrorEqual(errs.AccountNotFound, bizErr))
	})

	t.Run("removed account is gone", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := newTestService(repo)
		created, bizErr := svc.Create(context.Background(), "n", "a@b.com", "secret1")
		assert.Nil(t, bizErr)

		assert.Nil(t, svc.Remove(context.Background(), created.ID))

		_, fErr := svc.FindOne(context.Background(), created.ID)
		assert.True(t, errs.ErrorEqual(errs.AccountNotFound, fErr))
	})

	t.Run("delete error", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := newTestService(repo)
		created, bizErr := svc.Create(context.Background(), "n", "a@b.com", "secret1")
		assert.Nil(t, bizErr)

		repo.deleteErr = errors.New("db error")
		assert.True(t, errs.ErrorEqual(errs.ServerError, svc.Remove(context.Background(), created.ID)))
	})
}
