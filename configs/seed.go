package configs

import (
	"context"
	"errors"
	"strings"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(ctx context.Context, store repository.Store, cfg *Config, log *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		log.Info("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	_, err := store.Users().FindByEmail(ctx, email)
	if err == nil {
		log.Info("admin already exists", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         entity.RoleAdmin,
	}
	if err := store.Users().Create(ctx, &admin); err != nil {
		return err
	}
	log.Info("admin seeded", zap.String("email", email))
	return nil
}
