package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/entity"
	"github.com/nudiejuice2-create/nudie-juice/internal/konveksi/repository"
)

// UserService manajemen akun. Semua mutasi di sini khusus superadmin;
// pembatasannya ditegakkan di lapisan handler.
type UserService struct {
	users *repository.UserRepository
	audit *repository.AuditRepository
	db    *gorm.DB
}

func NewUserService(users *repository.UserRepository, audit *repository.AuditRepository, db *gorm.DB) *UserService {
	return &UserService{users: users, audit: audit, db: db}
}

type BuatUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type UbahUserRequest struct {
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   *bool  `json:"active"`
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.users.List(ctx)
}

func validRole(role string) bool {
	return role == entity.RoleSuperadmin || role == entity.RoleAdmin
}

// BuatUser membuat akun baru dengan password ter-hash bcrypt.
func (s *UserService) BuatUser(ctx context.Context, req BuatUserRequest, actor string) (*entity.User, error) {
	if len(req.Username) < 3 {
		return nil, validationf("username minimal 3 karakter")
	}
	if len(req.Password) < 6 {
		return nil, validationf("password minimal 6 karakter")
	}
	role := req.Role
	if role == "" {
		role = entity.RoleAdmin
	}
	if !validRole(role) {
		return nil, validationf("role %s tidak dikenal", req.Role)
	}

	var user *entity.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		n, err := users.CountByUsername(ctx, req.Username, "")
		if err != nil {
			return err
		}
		if n > 0 {
			return duplicatef("username %s sudah dipakai", req.Username)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user = &entity.User{
			ID:           uuid.New().String()[:32],
			Username:     req.Username,
			PasswordHash: string(hash),
			Role:         role,
			Active:       true,
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		detail := fmt.Sprintf("User %s (%s) dibuat", user.Username, user.Role)
		return s.audit.WithTx(tx).Append(ctx, "Buat User", detail, actor)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UbahUser mengganti password, role, atau status aktif sebuah akun.
func (s *UserService) UbahUser(ctx context.Context, id string, req UbahUserRequest, actor string) (*entity.User, error) {
	var user *entity.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		var err error
		user, err = users.FindByID(ctx, id)
		if err != nil {
			return asNotFound(err, "user", id)
		}
		if req.Password != "" {
			if len(req.Password) < 6 {
				return validationf("password minimal 6 karakter")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.PasswordHash = string(hash)
		}
		if req.Role != "" {
			if !validRole(req.Role) {
				return validationf("role %s tidak dikenal", req.Role)
			}
			user.Role = req.Role
		}
		if req.Active != nil {
			user.Active = *req.Active
		}
		if err := users.Update(ctx, user); err != nil {
			return err
		}
		detail := fmt.Sprintf("User %s diperbarui", user.Username)
		return s.audit.WithTx(tx).Append(ctx, "Ubah User", detail, actor)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// HapusUser menghapus akun. Akun sendiri tidak bisa dihapus.
func (s *UserService) HapusUser(ctx context.Context, id, actorID, actor string) error {
	if id == actorID {
		return invalidStatef("tidak bisa menghapus akun sendiri")
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		user, err := users.FindByID(ctx, id)
		if err != nil {
			return asNotFound(err, "user", id)
		}
		if err := users.Delete(ctx, id); err != nil {
			return err
		}
		detail := fmt.Sprintf("User %s dihapus", user.Username)
		return s.audit.WithTx(tx).Append(ctx, "Hapus User", detail, actor)
	})
}

// SeedSuperadmin membuat akun superadmin pertama bila belum ada user
// sama sekali.
func (s *UserService) SeedSuperadmin(ctx context.Context, username, password string) error {
	existing, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(ctx, &entity.User{
		ID:           uuid.New().String()[:32],
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperadmin,
		Active:       true,
	})
}
