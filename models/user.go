package models

import (
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string
type UserStatus string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleStudent  UserRole = "ALUNO"
	RoleMentor   UserRole = "MENTOR"
	RoleInvestor UserRole = "INVESTIDOR"

	UserStatusActive   UserStatus = "ATIVO"
	UserStatusInactive UserStatus = "INATIVO"
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizeCPF strips everything but digits from a CPF.
func NormalizeCPF(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

// ValidCPF checks the format only (11 digits). Check-digit validation is the
// frontend's job, matching the behavior of the legacy system.
func ValidCPF(cpf string) bool {
	return len(NormalizeCPF(cpf)) == 11
}

// User logs in with CPF instead of a username. CPF and email are unique among
// non-deleted users.
type User struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	CPF       string         `gorm:"column:cpf;size:11;unique;not null" json:"cpf"`
	Email     string         `gorm:"size:120;unique;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	Role      UserRole       `gorm:"type:enum('ADMIN','ALUNO','MENTOR','INVESTIDOR');not null;default:'ALUNO';index" json:"role"`
	Status    UserStatus     `gorm:"type:enum('ATIVO','INATIVO');not null;default:'ATIVO'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "ypetec_usuario"
}

// BeforeSave hashes the password on create or whenever it changes, and keeps
// the stored CPF digits-only.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.CPF != "" {
		u.CPF = NormalizeCPF(u.CPF)
	}
	if u.ID == 0 || tx.Statement.Changed("Password") {
		return u.SetPassword(u.Password)
	}
	return
}

// SetPassword hashes and assigns the password eagerly. Flows that rewrite the
// password of an existing user must use it: Changed("Password") is false when
// saving the same struct that was loaded, so the hook does not re-hash there.
func (u *User) SetPassword(raw string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
