package models

const (
	RoleDistributor = "distributor"
	RoleRetailer    = "retailer"
)

// User is the identity row; distributor and retailer profiles reference it one-to-one.
type User struct {
	ID        string `json:"id"         gorm:"primary_key;type:uuid"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"       validate:"oneof=distributor retailer"`
}

type Distributor struct {
	ID           string `json:"id"            gorm:"primary_key;type:uuid"`
	UserID       string `json:"user_id"       validate:"required" gorm:"type:uuid;unique_index"`
	BusinessName string `json:"business_name" validate:"required"`
}

type Retailer struct {
	ID           string `json:"id"            gorm:"primary_key;type:uuid"`
	UserID       string `json:"user_id"       validate:"required" gorm:"type:uuid;unique_index"`
	BusinessName string `json:"business_name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	ContactPhone string `json:"contact_phone"`
	StoreAddress string `json:"store_address"`
}

const (
	PartnershipPending  = "pending"
	PartnershipAccepted = "accepted"
	PartnershipDeclined = "declined"
)

type Partnership struct {
	ID            uint   `json:"id"             gorm:"primary_key"`
	DistributorID string `json:"distributor_id" validate:"required" gorm:"type:uuid;index"`
	RetailerID    string `json:"retailer_id"    validate:"required" gorm:"type:uuid;index"`
	Status        string `json:"status"         validate:"oneof=pending accepted declined"`
}
