package account

import (
	"context"

	"user_center/biz/dal/repo"
	"user_center/biz/db/mysql"
	"user_center/biz/model/convert"
	"user_center/biz/model/domain"
	"user_center/biz/model/errs"
	"user_center/biz/model/storage"
	"user_center/biz/util/encode"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Service is the single authority over account invariants. Every operation
// returns the redacted domain view; the stored hash never leaves this
// package.
type Service struct {
	accounts repo.AccountRepository
	hasher   encode.SecretHasher
}

func New(accounts repo.AccountRepository, hasher encode.SecretHasher) *Service {
	return &Service{accounts: accounts, hasher: hasher}
}

func NewDefault() *Service {
	return New(repo.NewAccountRepositoryGorm(mysql.GetDbConn()), encode.NewBcryptHasher())
}

// Create hashes the secret and inserts a new account. The pre-check gives a
// friendly duplicate error; the unique index on email closes the remaining
// race window and is mapped to the same error.
func (s *Service) Create(ctx context.Context, name, email, secret string) (*domain.Account, errs.Error) {
	existing, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByEmail err: %v", err)
		return nil, errs.ServerError
	}
	if existing != nil {
		return nil, errs.EmailDuplicated
	}

	hash, err := s.hasher.Hash(secret)
	if err != nil {
		hlog.CtxErrorf(ctx, "hash secret err: %v", err)
		return nil, errs.ServerError
	}

	m, err := s.accounts.Create(ctx, &storage.AccountRecord{
		Name:       name,
		Email:      email,
		SecretHash: hash,
	})
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, errs.EmailDuplicated
		}
		hlog.CtxErrorf(ctx, "create account err: %v", err)
		return nil, errs.ServerError
	}

	hlog.CtxInfof(ctx, "account created: id=%d email=%s", m.ID, m.Email)
	return convert.AccountRecordToDomain(m), nil
}

// Validate checks credentials and returns (nil, nil) as the no-match
// sentinel. Callers cannot tell an unknown email from a wrong secret; only
// the notice logs below keep the distinction.
func (s *Service) Validate(ctx context.Context, email, secret string) (*domain.Account, errs.Error) {
	m, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByEmail err: %v", err)
		return nil, errs.ServerError
	}
	if m == nil {
		hlog.CtxNoticef(ctx, "validate no match: email %s unknown", email)
		return nil, nil
	}

	if !s.hasher.Verify(secret, m.SecretHash) {
		hlog.CtxNoticef(ctx, "validate no match: secret mismatch for account %d", m.ID)
		return nil, nil
	}

	return convert.AccountRecordToDomain(m), nil
}

// FindAll returns every account in insertion order.
func (s *Service) FindAll(ctx context.Context) ([]*domain.Account, errs.Error) {
	ms, err := s.accounts.ListAll(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "ListAll err: %v", err)
		return nil, errs.ServerError
	}
	return convert.AccountRecordsToDomain(ms), nil
}

func (s *Service) FindOne(ctx context.Context, id uint) (*domain.Account, errs.Error) {
	m, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByID err: %v", err)
		return nil, errs.ServerError
	}
	if m == nil {
		return nil, errs.AccountNotFound
	}
	return convert.AccountRecordToDomain(m), nil
}

// Update merges the patch into the stored record. A present secret is
// re-hashed; nil fields keep their stored value. Email uniqueness on change
// is enforced by the index alone, surfaced as EmailDuplicated.
func (s *Service) Update(ctx context.Context, id uint, patch domain.AccountPatch) (*domain.Account, errs.Error) {
	m, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByID err: %v", err)
		return nil, errs.ServerError
	}
	if m == nil {
		return nil, errs.AccountNotFound
	}

	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Email != nil {
		m.Email = *patch.Email
	}
	if patch.Secret != nil {
		hash, hashErr := s.hasher.Hash(*patch.Secret)
		if hashErr != nil {
			hlog.CtxErrorf(ctx, "hash secret err: %v", hashErr)
			return nil, errs.ServerError
		}
		m.SecretHash = hash
	}

	if err := s.accounts.Save(ctx, m); err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, errs.EmailDuplicated
		}
		hlog.CtxErrorf(ctx, "save account err: %v", err)
		return nil, errs.ServerError
	}

	return convert.AccountRecordToDomain(m), nil
}

// Remove deletes the row permanently.
func (s *Service) Remove(ctx context.Context, id uint) errs.Error {
	m, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByID err: %v", err)
		return errs.ServerError
	}
	if m == nil {
		return errs.AccountNotFound
	}

	if err := s.accounts.Delete(ctx, m); err != nil {
		hlog.CtxErrorf(ctx, "delete account err: %v", err)
		return errs.ServerError
	}

	hlog.CtxInfof(ctx, "account removed: id=%d", id)
	return nil
}
