package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ============================================================
// Lookup tables
// ============================================================

// Role represents roles table
type Role struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Permissions datatypes.JSON `gorm:"type:json" json:"permissions"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

// Well-known role IDs (seeded)
const (
	RoleAdminID      uint = 1
	RoleTechnicianID uint = 2
)

// AssetStatus represents asset_statuses table
type AssetStatus struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (AssetStatus) TableName() string {
	return "asset_statuses"
}

// Well-known asset status IDs (seeded). StatusOnLoan is virtual: computed
// from active loans, never stored.
const (
	StatusAvailable   uint = 1
	StatusInUse       uint = 2
	StatusMaintenance uint = 3
	StatusRetired     uint = 4
	StatusOnLoan      uint = 99
)

// StatusOnLoanName is the display name for the virtual on-loan status
const StatusOnLoanName = "en préstamo"

// AssetType represents asset_types table
type AssetType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (AssetType) TableName() string {
	return "asset_types"
}

// ============================================================
// Profiles
// ============================================================

// Profile represents profiles table. AccountID links the profile to its
// identity-provider account (auth_accounts).
type Profile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	AccountID string         `gorm:"size:36;uniqueIndex;not null" json:"account_id"`
	FullName  string         `gorm:"size:150;not null" json:"full_name"`
	Email     string         `gorm:"size:100;uniqueIndex;not null" json:"email"`
	RoleID    uint           `gorm:"not null;index" json:"role_id"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

// ProfileResponse DTO
type ProfileResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	RoleID    uint      `json:"role_id"`
	RoleName  string    `json:"role_name,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Profile) ToResponse() *ProfileResponse {
	resp := &ProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Email:     p.Email,
		RoleID:    p.RoleID,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
	if p.Role != nil {
		resp.RoleName = p.Role.Name
	}
	return resp
}

// ============================================================
// Assets
// ============================================================

// Asset represents assets table
type Asset struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:150;not null" json:"name"`
	SerialNumber string         `gorm:"size:100;uniqueIndex;not null" json:"serial_number"`
	StatusID     uint           `gorm:"not null;index" json:"status_id"`
	TypeID       uint           `gorm:"not null;index" json:"type_id"`
	QRCode       string         `gorm:"size:100" json:"qr_code"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Status *AssetStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Type   *AssetType   `gorm:"foreignKey:TypeID" json:"type,omitempty"`
}

func (Asset) TableName() string {
	return "assets"
}

// AssetResponse DTO. StatusID reports the virtual on-loan status (99) when
// the asset has an active loan.
type AssetResponse struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	SerialNumber string        `json:"serial_number"`
	StatusID     uint          `json:"status_id"`
	StatusName   string        `json:"status_name,omitempty"`
	TypeID       uint          `json:"type_id"`
	TypeName     string        `json:"type_name,omitempty"`
	QRCode       string        `json:"qr_code"`
	CurrentLoan  *LoanResponse `json:"current_loan,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (a *Asset) ToResponse() *AssetResponse {
	resp := &AssetResponse{
		ID:           a.ID,
		Name:         a.Name,
		SerialNumber: a.SerialNumber,
		StatusID:     a.StatusID,
		TypeID:       a.TypeID,
		QRCode:       a.QRCode,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.Status != nil {
		resp.StatusName = a.Status.Name
	}
	if a.Type != nil {
		resp.TypeName = a.Type.Name
	}
	return resp
}

// ============================================================
// Loans (préstamos)
// ============================================================

// Loan represents loans table. The stored status column is advisory; the
// displayed status is always derived at read time from the check-in dates.
type Loan struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	AssetID             uint           `gorm:"not null;index" json:"asset_id"`
	UserID              uint           `gorm:"not null;index" json:"user_id"`
	CheckoutDate        time.Time      `gorm:"not null" json:"checkout_date"`
	ExpectedCheckinDate time.Time      `gorm:"not null" json:"expected_checkin_date"`
	ActualCheckinDate   *time.Time     `json:"actual_checkin_date"`
	Status              string         `gorm:"size:20;default:'pending'" json:"status"`
	Notes               string         `gorm:"type:text" json:"notes"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`

	Asset *Asset   `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	User  *Profile `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Loan) TableName() string {
	return "loans"
}

// LoanResponse DTO
type LoanResponse struct {
	ID                  uint       `json:"id"`
	AssetID             uint       `json:"asset_id"`
	AssetName           string     `json:"asset_name,omitempty"`
	AssetSerialNumber   string     `json:"asset_serial_number,omitempty"`
	UserID              uint       `json:"user_id"`
	UserName            string     `json:"user_name,omitempty"`
	CheckoutDate        time.Time  `json:"checkout_date"`
	ExpectedCheckinDate time.Time  `json:"expected_checkin_date"`
	ActualCheckinDate   *time.Time `json:"actual_checkin_date"`
	Status              string     `json:"status"`
	DerivedStatus       string     `json:"derived_status"`
	Notes               string     `json:"notes"`
	CreatedAt           time.Time  `json:"created_at"`
}

func (l *Loan) ToResponse() *LoanResponse {
	resp := &LoanResponse{
		ID:                  l.ID,
		AssetID:             l.AssetID,
		UserID:              l.UserID,
		CheckoutDate:        l.CheckoutDate,
		ExpectedCheckinDate: l.ExpectedCheckinDate,
		ActualCheckinDate:   l.ActualCheckinDate,
		Status:              l.Status,
		Notes:               l.Notes,
		CreatedAt:           l.CreatedAt,
	}
	if l.Asset != nil {
		resp.AssetName = l.Asset.Name
		resp.AssetSerialNumber = l.Asset.SerialNumber
	}
	if l.User != nil {
		resp.UserName = l.User.FullName
	}
	return resp
}

// ============================================================
// Tickets
// ============================================================

// Ticket statuses
const (
	TicketStatusOpen       = "abierto"
	TicketStatusInProgress = "en_progreso"
	TicketStatusResolved   = "resuelto"
	TicketStatusClosed     = "cerrado"
)

// Ticket represents tickets table
type Ticket struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Status      string         `gorm:"size:30;default:'abierto'" json:"status"`
	Priority    string         `gorm:"size:20;not null" json:"priority"`
	AssetID     *uint          `gorm:"index" json:"asset_id"`
	ReportedBy  uint           `gorm:"not null;index" json:"reported_by"`
	AssignedTo  *uint          `gorm:"index" json:"assigned_to"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Asset    *Asset   `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	Reporter *Profile `gorm:"foreignKey:ReportedBy" json:"reporter,omitempty"`
	Assignee *Profile `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// TicketResponse DTO
type TicketResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	AssetID        *uint     `json:"asset_id"`
	AssetName      string    `json:"asset_name,omitempty"`
	ReportedBy     uint      `json:"reported_by"`
	ReportedByName string    `json:"reported_by_name,omitempty"`
	AssignedTo     *uint     `json:"assigned_to"`
	AssignedToName string    `json:"assigned_to_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (t *Ticket) ToResponse() *TicketResponse {
	resp := &TicketResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		AssetID:     t.AssetID,
		ReportedBy:  t.ReportedBy,
		AssignedTo:  t.AssignedTo,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Asset != nil {
		resp.AssetName = t.Asset.Name
	}
	if t.Reporter != nil {
		resp.ReportedByName = t.Reporter.FullName
	}
	if t.Assignee != nil {
		resp.AssignedToName = t.Assignee.FullName
	}
	return resp
}

// ============================================================
// FAQs
// ============================================================

// FAQ represents faqs table
type FAQ struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Question  string         `gorm:"size:300;not null" json:"question"`
	Answer    string         `gorm:"type:text;not null" json:"answer"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FAQ) TableName() string {
	return "faqs"
}

// ============================================================
// Identity provider accounts
// ============================================================

// Account represents auth_accounts table, the identity provider's own store.
type Account struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Email     string         `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Account) TableName() string {
	return "auth_accounts"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Role{},
		&AssetStatus{},
		&AssetType{},
		&Account{},
		&Profile{},
		&Asset{},
		&Loan{},
		&Ticket{},
		&FAQ{},
	)
}
