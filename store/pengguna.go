package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/fluwatch/fluwatch-api/schema"
)

// CreatePengguna registers a new account. It returns ErrPenggunaTaken if
// the email, the username or the google id is already used.
func (s *FluWatchStore) CreatePengguna(p *schema.Pengguna) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.Role == "" {
		p.Role = schema.RolePengguna
	}

	if err := s.ormDB.Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrPenggunaTaken
		}
		return err
	}

	return nil
}

// GetPengguna returns an account by its id
func (s *FluWatchStore) GetPengguna(id uuid.UUID) (*schema.Pengguna, error) {
	var p schema.Pengguna
	if err := s.ormDB.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *FluWatchStore) GetPenggunaByEmail(email string) (*schema.Pengguna, error) {
	var p schema.Pengguna
	if err := s.ormDB.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *FluWatchStore) GetPenggunaByGoogleID(googleID string) (*schema.Pengguna, error) {
	var p schema.Pengguna
	if err := s.ormDB.Where("google_id = ?", googleID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *FluWatchStore) GetPenggunaByResetToken(token string) (*schema.Pengguna, error) {
	var p schema.Pengguna
	if err := s.ormDB.Where("reset_token = ?", token).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *FluWatchStore) UsernameTaken(username string) (bool, error) {
	var count int
	if err := s.ormDB.Model(&schema.Pengguna{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListPengguna returns a page of accounts, newest first, and the number of
// accounts matching the search keyword
func (s *FluWatchStore) ListPengguna(cari string, offset, limit int) ([]schema.Pengguna, int, error) {
	query := s.ormDB.Model(&schema.Pengguna{})
	if cari != "" {
		like := "%" + cari + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	pengguna := make([]schema.Pengguna, 0)
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&pengguna).Error; err != nil {
		return nil, 0, err
	}

	return pengguna, total, nil
}

// UpdatePengguna updates the given columns and returns the updated account
func (s *FluWatchStore) UpdatePengguna(id uuid.UUID, fields map[string]interface{}) (*schema.Pengguna, error) {
	result := s.ormDB.Model(&schema.Pengguna{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrPenggunaNotExist
	}

	return s.GetPengguna(id)
}

func (s *FluWatchStore) LinkGoogleID(id uuid.UUID, googleID string) error {
	err := s.ormDB.Model(&schema.Pengguna{}).Where("id = ?", id).
		Update("google_id", googleID).Error
	if isUniqueViolation(err) {
		return ErrPenggunaTaken
	}
	return err
}

func (s *FluWatchStore) SetResetToken(id uuid.UUID, token string, expires time.Time) error {
	return s.ormDB.Model(&schema.Pengguna{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"reset_token":         token,
			"reset_token_expires": expires,
		}).Error
}

// ResetPassword replaces the password hash and invalidates the reset token
func (s *FluWatchStore) ResetPassword(id uuid.UUID, passwordHash string) error {
	result := s.ormDB.Model(&schema.Pengguna{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash":       passwordHash,
			"reset_token":         gorm.Expr("NULL"),
			"reset_token_expires": gorm.Expr("NULL"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrPenggunaNotExist
	}

	return nil
}

// ExpireResetTokens clears reset tokens which expired before now
func (s *FluWatchStore) ExpireResetTokens(now time.Time) (int64, error) {
	result := s.ormDB.Model(&schema.Pengguna{}).
		Where("reset_token IS NOT NULL AND reset_token_expires < ?", now).
		Updates(map[string]interface{}{
			"reset_token":         gorm.Expr("NULL"),
			"reset_token_expires": gorm.Expr("NULL"),
		})
	return result.RowsAffected, result.Error
}

// DeletePengguna removes an account. Its reports are kept and detached by
// the foreign key.
func (s *FluWatchStore) DeletePengguna(id uuid.UUID) error {
	result := s.ormDB.Where("id = ?", id).Delete(&schema.Pengguna{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrPenggunaNotExist
	}

	return nil
}
