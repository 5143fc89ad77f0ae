package services

import (
	"context"
	"errors"
	"fmt"
	"stylistapi/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type WardrobeStore interface {
	ListItems(ctx context.Context, ownerID uint) ([]models.Clothing, error)
	GetItem(ctx context.Context, ownerID, id uint) (*models.Clothing, error)
	GetItemByID(ctx context.Context, id uint) (*models.Clothing, error)
	CreateItem(ctx context.Context, item *models.Clothing) error
	SaveItem(ctx context.Context, item *models.Clothing) error
	DeleteItem(ctx context.Context, ownerID, id uint) error
}

type ProfileStore interface {
	GetUser(ctx context.Context, id uint) (*models.UserAccount, error)
	UpdateProfile(ctx context.Context, user *models.UserAccount) error
	ListNotifiableUsers(ctx context.Context) ([]models.UserAccount, error)
	SavePushToken(ctx context.Context, token *models.UserPushToken) error
	ActivePushTokens(ctx context.Context, userID uint) ([]models.UserPushToken, error)
}

type OutfitStore interface {
	SaveOutfit(ctx context.Context, outfit *models.SavedOutfit) error
	ListOutfits(ctx context.Context, ownerID uint, reaction string) ([]models.SavedOutfit, error)
	DeleteOutfit(ctx context.Context, ownerID, id uint) error
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// GormStore implements every store on top of a single gorm connection.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ListItems(ctx context.Context, ownerID uint) ([]models.Clothing, error) {
	var clothes []models.Clothing
	if err := s.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&clothes).Error; err != nil {
		return nil, fmt.Errorf("list clothes of user %d: %w", ownerID, err)
	}
	return clothes, nil
}

func (s *GormStore) GetItem(ctx context.Context, ownerID, id uint) (*models.Clothing, error) {
	var item models.Clothing
	if err := s.DB.WithContext(ctx).Where("owner_id = ? AND id = ?", ownerID, id).Take(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (s *GormStore) GetItemByID(ctx context.Context, id uint) (*models.Clothing, error) {
	var item models.Clothing
	if err := s.DB.WithContext(ctx).Take(&item, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (s *GormStore) CreateItem(ctx context.Context, item *models.Clothing) error {
	return s.DB.WithContext(ctx).Create(item).Error
}

func (s *GormStore) SaveItem(ctx context.Context, item *models.Clothing) error {
	return s.DB.WithContext(ctx).Save(item).Error
}

func (s *GormStore) DeleteItem(ctx context.Context, ownerID, id uint) error {
	result := s.DB.WithContext(ctx).Where("owner_id = ? AND id = ?", ownerID, id).Delete(&models.Clothing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.UserAccount, error) {
	var user models.UserAccount
	if err := s.DB.WithContext(ctx).Take(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *GormStore) UpdateProfile(ctx context.Context, user *models.UserAccount) error {
	return s.DB.WithContext(ctx).Save(user).Error
}

func (s *GormStore) ListNotifiableUsers(ctx context.Context) ([]models.UserAccount, error) {
	var users []models.UserAccount
	err := s.DB.WithContext(ctx).Where("receive_notifications = ? AND banned = ?", true, false).Find(&users).Error
	return users, err
}

// SavePushToken activates the token, reusing the row when the device registered before.
func (s *GormStore) SavePushToken(ctx context.Context, token *models.UserPushToken) error {
	token.Active = true
	var existing models.UserPushToken
	err := s.DB.WithContext(ctx).Where("token = ?", token.Token).Take(&existing).Error
	if err == nil {
		token.ID = existing.ID
		token.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.DB.WithContext(ctx).Save(token).Error
}

func (s *GormStore) ActivePushTokens(ctx context.Context, userID uint) ([]models.UserPushToken, error) {
	var tokens []models.UserPushToken
	err := s.DB.WithContext(ctx).Where("user_account_id = ? AND active = true", userID).Find(&tokens).Error
	return tokens, err
}

func (s *GormStore) SaveOutfit(ctx context.Context, outfit *models.SavedOutfit) error {
	return s.DB.WithContext(ctx).Create(outfit).Error
}

func (s *GormStore) ListOutfits(ctx context.Context, ownerID uint, reaction string) ([]models.SavedOutfit, error) {
	var outfits []models.SavedOutfit
	query := s.DB.WithContext(ctx).Where("owner_id = ?", ownerID)
	if reaction != "" {
		query = query.Where("reaction = ?", reaction)
	}
	if err := query.Order("created_at desc").Find(&outfits).Error; err != nil {
		return nil, err
	}
	return outfits, nil
}

func (s *GormStore) DeleteOutfit(ctx context.Context, ownerID, id uint) error {
	result := s.DB.WithContext(ctx).Where("owner_id = ? AND id = ?", ownerID, id).Delete(&models.SavedOutfit{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
