package models

import (
	"time"

	"lpo-tracker/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Identity
// ============================================================

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:50;not null;default:'user'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Requisitions []Requisition `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the elevated role.
// Authorization treats exactly "admin" as elevated; every other
// role string is an ordinary user.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// UserResponse DTO
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Catalog
// ============================================================

// Product represents products table
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `gorm:"size:200" json:"description"`
}

func (Product) TableName() string {
	return "products"
}

// Supplier represents suppliers table
type Supplier struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	ContactName  string `gorm:"size:100" json:"contact_name"`
	ContactEmail string `gorm:"size:100" json:"contact_email"`
	ContactPhone string `gorm:"size:15" json:"contact_phone"`
	Address      string `gorm:"size:200" json:"address"`

	LPOs []LPO `gorm:"foreignKey:SupplierID" json:"-"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// ============================================================
// Requisition workflow
// ============================================================

// Requisition represents requisitions table
type Requisition struct {
	ID        uint                     `gorm:"primaryKey" json:"id"`
	UserID    uint                     `gorm:"not null;index" json:"user_id"`
	Status    domain.RequisitionStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt time.Time                `gorm:"autoCreateTime" json:"created_at"`
	Notes     string                   `gorm:"type:text" json:"notes"`

	User  *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []RequisitionItem `gorm:"foreignKey:RequisitionID" json:"items,omitempty"`
}

func (Requisition) TableName() string {
	return "requisitions"
}

// RequisitionItem is one aggregated line of a requisition.
// The (requisition, product) pair is unique; duplicate product ids
// submitted at creation collapse into a single quantity-summed row.
type RequisitionItem struct {
	RequisitionID uint `gorm:"primaryKey" json:"requisition_id"`
	ProductID     uint `gorm:"primaryKey" json:"product_id"`
	Quantity      int  `gorm:"not null" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (RequisitionItem) TableName() string {
	return "requisition_product"
}

// RequisitionLine DTO: a line item expanded with the product's
// current catalog name and price (live values, not snapshots).
type RequisitionLine struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// RequisitionResponse DTO
type RequisitionResponse struct {
	ID        uint              `json:"id"`
	UserID    uint              `json:"user_id"`
	UserName  string            `json:"user_name"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Notes     string            `json:"notes"`
	Products  []RequisitionLine `json:"products"`
}

// ToResponse expands a requisition using its preloaded User and
// Items.Product relations.
func (r *Requisition) ToResponse() *RequisitionResponse {
	resp := &RequisitionResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Status:    r.Status.String(),
		CreatedAt: r.CreatedAt,
		Notes:     r.Notes,
		Products:  make([]RequisitionLine, 0, len(r.Items)),
	}

	if r.User != nil {
		resp.UserName = r.User.Name
	}
	for _, item := range r.Items {
		line := RequisitionLine{ID: item.ProductID, Quantity: item.Quantity}
		if item.Product != nil {
			line.Name = item.Product.Name
			line.Price = item.Product.Price
		}
		resp.Products = append(resp.Products, line)
	}

	return resp
}

// ============================================================
// LPO workflow
// ============================================================

// LPO represents lpos table
type LPO struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	RequisitionID uint             `gorm:"not null;index" json:"requisition_id"`
	SupplierID    uint             `gorm:"not null;index" json:"supplier_id"`
	Status        domain.LPOStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
	TotalValue    float64          `gorm:"not null;default:0" json:"total_value"`

	Requisition *Requisition `gorm:"foreignKey:RequisitionID" json:"requisition,omitempty"`
	Supplier    *Supplier    `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Items       []LPOItem    `gorm:"foreignKey:LPOID" json:"items,omitempty"`
}

func (LPO) TableName() string {
	return "lpos"
}

// LPOItem carries the price snapshot taken at order time, independent
// of the product's current catalog price. No mutation endpoint exists
// for these rows; they are populated by seed data only.
type LPOItem struct {
	LPOID     uint    `gorm:"primaryKey;column:lpo_id" json:"lpo_id"`
	ProductID uint    `gorm:"primaryKey" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

func (LPOItem) TableName() string {
	return "lpo_product"
}

// LPOResponse DTO
type LPOResponse struct {
	ID            uint      `json:"id"`
	RequisitionID uint      `json:"requisition_id"`
	SupplierID    uint      `json:"supplier_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	TotalValue    float64   `json:"total_value"`
}

func (l *LPO) ToResponse() *LPOResponse {
	return &LPOResponse{
		ID:            l.ID,
		RequisitionID: l.RequisitionID,
		SupplierID:    l.SupplierID,
		Status:        l.Status.String(),
		CreatedAt:     l.CreatedAt,
		TotalValue:    l.TotalValue,
	}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Product{},
		&Supplier{},
		&Requisition{},
		&RequisitionItem{},
		&LPO{},
		&LPOItem{},
	)
}
