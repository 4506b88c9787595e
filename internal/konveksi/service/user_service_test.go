package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
)

func newUserService(d *testDeps) *UserService {
	return NewUserService(d.repos.User, d.repos.Audit, d.db)
}

func TestBuatUser(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	svc := newUserService(d)

	user, err := svc.BuatUser(ctx, BuatUserRequest{Username: "gudang1", Password: "rahasia123"}, "superadmin")
	if err != nil {
		t.Fatalf("BuatUser: %v", err)
	}
	if user.Role != entity.RoleAdmin {
		t.Errorf("Expected default role admin, got %s", user.Role)
	}
	if !user.Active {
		t.Error("Expected user active by default")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("rahasia123")); err != nil {
		t.Error("Expected password to verify against stored hash")
	}

	_, err = svc.BuatUser(ctx, BuatUserRequest{Username: "gudang1", Password: "lainlagi"}, "superadmin")
	assertKind(t, err, KindDuplicateKey)

	_, err = svc.BuatUser(ctx, BuatUserRequest{Username: "ab", Password: "rahasia123"}, "superadmin")
	assertKind(t, err, KindValidation)

	_, err = svc.BuatUser(ctx, BuatUserRequest{Username: "gudang2", Password: "12345"}, "superadmin")
	assertKind(t, err, KindValidation)

	_, err = svc.BuatUser(ctx, BuatUserRequest{Username: "gudang2", Password: "rahasia123", Role: "manager"}, "superadmin")
	assertKind(t, err, KindValidation)
}

func TestUbahUser(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	svc := newUserService(d)

	user, err := svc.BuatUser(ctx, BuatUserRequest{Username: "gudang1", Password: "rahasia123"}, "superadmin")
	if err != nil {
		t.Fatalf("BuatUser: %v", err)
	}

	inactive := false
	updated, err := svc.UbahUser(ctx, user.ID, UbahUserRequest{
		Role:   entity.RoleSuperadmin,
		Active: &inactive,
	}, "superadmin")
	if err != nil {
		t.Fatalf("UbahUser: %v", err)
	}
	if updated.Role != entity.RoleSuperadmin {
		t.Errorf("Expected role superadmin, got %s", updated.Role)
	}
	if updated.Active {
		t.Error("Expected user deactivated")
	}
}

func TestHapusUserTidakBolehDiriSendiri(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	svc := newUserService(d)

	user, err := svc.BuatUser(ctx, BuatUserRequest{Username: "gudang1", Password: "rahasia123"}, "superadmin")
	if err != nil {
		t.Fatalf("BuatUser: %v", err)
	}

	err = svc.HapusUser(ctx, user.ID, user.ID, user.Username)
	assertKind(t, err, KindInvalidState)

	if err := svc.HapusUser(ctx, user.ID, "other-actor", "superadmin"); err != nil {
		t.Fatalf("HapusUser: %v", err)
	}
}

func TestSeedSuperadmin(t *testing.T) {
	d := newTestDeps(t)
	ctx := testCtx()
	svc := newUserService(d)

	if err := svc.SeedSuperadmin(ctx, "superadmin", "superadmin"); err != nil {
		t.Fatalf("SeedSuperadmin: %v", err)
	}
	users, _ := svc.List(ctx)
	if len(users) != 1 || users[0].Role != entity.RoleSuperadmin {
		t.Fatalf("Expected single superadmin, got %+v", users)
	}

	// Re-seeding with users present is a no-op
	if err := svc.SeedSuperadmin(ctx, "another", "password"); err != nil {
		t.Fatalf("SeedSuperadmin repeat: %v", err)
	}
	users, _ = svc.List(ctx)
	if len(users) != 1 {
		t.Errorf("Expected still 1 user, got %d", len(users))
	}
}
