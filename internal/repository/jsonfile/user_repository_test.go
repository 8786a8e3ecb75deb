package jsonfile

import (
	"context"
	"path/filepath"
	"testing"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/person"
	"hrsuite/internal/domain/user"
	"hrsuite/internal/store"
)

type noopLogger struct{}

func (noopLogger) Info(msg string)  {}
func (noopLogger) Error(msg string) {}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.Open(filepath.Join(t.TempDir(), "snapshot.json"), noopLogger{})
	if err := st.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return st
}

func testAccount(name, taxID, login string, role user.Role) user.User {
	return user.User{
		Person:       person.Person{Name: name, TaxID: taxID, Email: login + "@example.com"},
		Login:        login,
		PasswordHash: "hash",
		Role:         role,
	}
}

func TestUserRepositoryAdd_AssignsIDs(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	first, err := repo.Add(ctx, testAccount("Alice", "52998224725", "alice", user.RoleAdmin))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := repo.Add(ctx, testAccount("Rita", "12345678909", "rita", user.RoleRecruiter))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestUserRepositoryAdd_DuplicateTaxID(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	if _, err := repo.Add(ctx, testAccount("Alice", "52998224725", "alice", user.RoleAdmin)); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err := repo.Add(ctx, testAccount("Clone", "52998224725", "clone", user.RoleEmployee))
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected store unchanged after failed insert, got %d users", len(all))
	}
}

func TestUserRepositoryAdd_DuplicateLoginAcrossRoles(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	if _, err := repo.Add(ctx, testAccount("Alice", "52998224725", "alice", user.RoleAdmin)); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err := repo.Add(ctx, testAccount("Other", "12345678909", "ALICE", user.RoleEmployee))
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict for reused login, got %v", err)
	}
}

func TestUserRepositoryRemove_AbsentIsNoop(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	if _, err := repo.Add(ctx, testAccount("Alice", "52998224725", "alice", user.RoleAdmin)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Remove(ctx, "12345678909"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 user, got %d", len(all))
	}
}

func TestUserRepositoryFindByLogin_UsesIndex(t *testing.T) {
	st := newTestStore(t)
	repo := NewUserRepository(st)
	ctx := context.Background()

	if _, err := repo.Add(ctx, testAccount("Rita", "12345678909", "Rita", user.RoleRecruiter)); err != nil {
		t.Fatalf("add: %v", err)
	}
	found, err := repo.FindByLogin(ctx, "rita")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.TaxID != "12345678909" {
		t.Fatalf("expected tax id 12345678909, got %s", found.TaxID)
	}

	if err := repo.Remove(ctx, "12345678909"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := repo.FindByLogin(ctx, "rita"); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not_found after removal, got %v", err)
	}
}

func TestUserRepositoryUpsert_MovesBetweenRoleBuckets(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	created, err := repo.Add(ctx, testAccount("Rita", "12345678909", "rita", user.RoleRecruiter))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	promoted := *created
	promoted.Role = user.RoleManager
	updated, err := repo.Upsert(ctx, promoted)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected id %d preserved, got %d", created.ID, updated.ID)
	}
	recruiters, err := repo.ListByRole(ctx, user.RoleRecruiter)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recruiters) != 0 {
		t.Fatalf("expected old bucket emptied, got %d", len(recruiters))
	}
	managers, err := repo.ListByRole(ctx, user.RoleManager)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(managers) != 1 {
		t.Fatalf("expected 1 manager, got %d", len(managers))
	}
}

func TestUserRepositoryUpsert_InsertsWhenAbsent(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	created, err := repo.Upsert(ctx, testAccount("Eva", "98765432100", "eva", user.RoleEmployee))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
	if _, err := repo.GetByTaxID(ctx, "98765432100"); err != nil {
		t.Fatalf("get: %v", err)
	}
}
