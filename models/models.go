package models

import (
	"time"
)

// Product status values.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Order status values. WithdrawOrder is terminal: orders are never
// physically deleted, only moved into this state.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusDelivered  = "delivered"
	OrderStatusWithdraw   = "withdraw_order"
)

// Sort keys accepted by the product search endpoints. An empty sort key
// means priority-wise ranking.
const (
	SortLowHigh = "low-high"
	SortHighLow = "high-low"
	SortAtoZ    = "a-z"
	SortZtoA    = "z-a"
	SortLatest  = "latest"
)

// Product is the catalog entry persisted in Postgres.
type Product struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Slug             string    `gorm:"type:varchar(255);uniqueIndex" json:"slug"`
	CategoryID       uint      `gorm:"index" json:"category_id"`
	SubCategoryID    uint      `gorm:"index" json:"sub_category_id"`
	SubSubCategoryID uint      `gorm:"index" json:"sub_sub_category_id"`
	BrandID          uint      `gorm:"index" json:"brand_id"`
	UnitPrice        float64   `gorm:"not null;default:0" json:"unit_price"`
	PurchasePrice    float64   `gorm:"not null;default:0" json:"purchase_price"`
	PV               float64   `gorm:"column:pv;not null;default:0" json:"pv"`
	Status           string    `gorm:"type:varchar(16);not null;default:'active';index" json:"status"`
	Nation           string    `gorm:"type:varchar(64)" json:"nation,omitempty"`
	Tags             []Tag     `gorm:"many2many:product_tags" json:"tags,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Tag is a free-form label attached to products; search matches tags as
// well as product names.
type Tag struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Tag string `gorm:"type:varchar(64);uniqueIndex;not null" json:"tag"`
}

// Translation stores localized product names, keyed the polymorphic way
// the upstream admin panel writes them. The search fallback pass runs
// against these rows when the primary pass matches nothing.
type Translation struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	TranslatableID  uint   `gorm:"index:idx_translatable" json:"translatable_id"`
	TranslatableKey string `gorm:"type:varchar(32);index:idx_translatable" json:"key"`
	Locale          string `gorm:"type:varchar(8)" json:"locale"`
	Value           string `gorm:"type:varchar(255)" json:"value"`
}

// Review is a customer review of a product, tied to the order it was
// bought under.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	MemberID  uint      `gorm:"not null;index" json:"member_id"`
	OrderID   uint      `gorm:"index" json:"order_id"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Rating    int       `gorm:"not null" json:"rating"`
	Member    *Member   `json:"member,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Wishlist marks a product saved by a member.
type Wishlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	MemberID  uint      `gorm:"not null;index" json:"member_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Member is a registered user account. Authentication/session handling
// lives elsewhere; this service only manages the account records.
type Member struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FName        string    `gorm:"type:varchar(64);not null" json:"f_name"`
	LName        string    `gorm:"type:varchar(64);not null" json:"l_name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"type:varchar(32);uniqueIndex" json:"phone"`
	Password     string    `gorm:"type:varchar(255);not null" json:"-"`
	BranchID     uint      `gorm:"index" json:"branch_id"`
	Rank         string    `gorm:"type:varchar(32)" json:"rank"`
	ReferralCode string    `gorm:"type:varchar(64);index" json:"referral_code"`
	ReferredBy   uint      `json:"referred_by,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Branch is a sales center members belong to.
type Branch struct {
	ID                       uint      `gorm:"primaryKey" json:"id"`
	BranchName               string    `gorm:"type:varchar(128);not null" json:"branch_name"`
	NumberOfMembers          int       `json:"number_of_members"`
	BranchManager            string    `gorm:"type:varchar(128)" json:"branch_manager"`
	CellPhone                string    `gorm:"type:varchar(32)" json:"cell_phone"`
	PhoneNumber              string    `gorm:"type:varchar(32)" json:"phone_number"`
	FaxNumber                string    `gorm:"type:varchar(32)" json:"fax_number"`
	AccountNumber            string    `gorm:"type:varchar(64)" json:"account_number"`
	DepositWithdrawalHistory string    `gorm:"type:text" json:"deposit_withdrawal_history"`
	AffiliatedMembers        string    `gorm:"type:text" json:"affiliated_members"`
	StopAllowance            bool      `gorm:"default:false" json:"stop_allowance"`
	CreatedAt                time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Order is a placed order. OrderNumber is assigned once and never
// changes.
type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderNumber   string        `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_number"`
	OrderStatus   string        `gorm:"type:varchar(50);not null;default:'pending';index" json:"order_status"`
	OrderAmount   float64       `gorm:"not null;default:0" json:"order_amount"`
	OrderDate     time.Time     `gorm:"index" json:"order_date"`
	DeliveryDate  *time.Time    `json:"delivery_date"`
	BuyerID       uint          `gorm:"index" json:"buyer_id"`
	CenterID      uint          `gorm:"index" json:"center_id"`
	CustomerID    uint          `gorm:"index" json:"customer_id"`
	PaymentStatus string        `gorm:"type:varchar(15);default:'unpaid'" json:"payment_status"`
	PaymentMethod string        `gorm:"type:varchar(32)" json:"payment_method"`
	Buyer         *Member       `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	Customer      *Member       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Center        *Branch       `gorm:"foreignKey:CenterID" json:"center,omitempty"`
	Details       []OrderDetail `gorm:"foreignKey:OrderID" json:"details,omitempty"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// OrderDetail is one line of an order. ProductName, Price, PV and
// Quantity are snapshots taken at purchase time; they must never be
// re-read from the current Product row.
type OrderDetail struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"`
	ProductID   uint      `gorm:"index" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	PV          float64   `gorm:"column:pv;not null;default:0" json:"pv"`
	Quantity    int       `gorm:"not null;default:0" json:"quantity"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// SearchQuery carries the raw filter/sort parameters of one product
// search call. It is never persisted.
type SearchQuery struct {
	Term        string
	CategoryIDs []uint
	BrandIDs    []uint
	PriceMin    *float64
	PriceMax    *float64
	SortBy      string
	Limit       int
	Offset      int
}

// FormattedProduct is the externally visible product entry: the raw row
// plus review/wishlist aggregates.
type FormattedProduct struct {
	Product
	AverageReview float64 `json:"average_review"`
	ReviewsCount  int     `json:"reviews_count"`
	WishlistCount int     `json:"wishlist_count"`
}

// ProductPage is one page of search results. MinPrice/MaxPrice are
// aggregated over the whole filtered set, not just this page, and are
// null when nothing matched.
type ProductPage struct {
	TotalSize int                `json:"total_size"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
	MinPrice  *float64           `json:"min_price"`
	MaxPrice  *float64           `json:"max_price"`
	Products  []FormattedProduct `json:"products"`
}

// ProductSuggestion is the slim projection used by the search
// suggestion endpoint.
type ProductSuggestion struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Order search fields accepted by ListOrders.
const (
	OrderSearchBuyer       = "buyer"
	OrderSearchProductName = "product_name"
)

// OrderListQuery carries the order listing filters. PeriodType names
// the date column the range applies to (order_date or delivery_date).
type OrderListQuery struct {
	PeriodType  string
	StartDate   string // YYYY-MM-DD, inclusive
	EndDate     string // YYYY-MM-DD, inclusive through end of day
	SearchField string
	SearchQuery string
	OrderStatus string
}

// OrderSummary is the flattened one-row-per-order projection returned
// by the listing endpoint. ProductName/Amount/PV/Quantity come from the
// order's first line item only.
type OrderSummary struct {
	ID            uint       `json:"id"`
	OrderNumber   string     `json:"order_number"`
	ProductName   string     `json:"product_name"`
	Amount        float64    `json:"amount"`
	PV            float64    `json:"pv"`
	Quantity      int        `json:"quantity"`
	OrderAmount   float64    `json:"order_amount"`
	Buyer         string     `json:"buyer"`
	Center        string     `json:"center"`
	OrderStatus   string     `json:"order_status"`
	OrderDate     time.Time  `json:"order_date"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeliveryDate  *time.Time `json:"delivery_date"`
	PaymentStatus string     `json:"payment_status"`
	PaymentMethod string     `json:"payment_method"`
}

// OrderWithdrawnEvent is published when an order is moved to the
// withdraw_order state.
type OrderWithdrawnEvent struct {
	EventType   string    `json:"event_type"`
	OrderID     uint      `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Timestamp   time.Time `json:"timestamp"`
}

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Name             string   `json:"name" binding:"required"`
	Slug             string   `json:"slug"`
	CategoryID       uint     `json:"category_id"`
	SubCategoryID    uint     `json:"sub_category_id"`
	SubSubCategoryID uint     `json:"sub_sub_category_id"`
	BrandID          uint     `json:"brand_id"`
	UnitPrice        float64  `json:"unit_price"`
	PurchasePrice    float64  `json:"purchase_price"`
	PV               float64  `json:"pv"`
	Nation           string   `json:"nation"`
	Tags             []string `json:"tags"`
}

// UpdateProductRequest is the payload for updating a product.
type UpdateProductRequest struct {
	Name             string   `json:"name" binding:"required"`
	CategoryID       uint     `json:"category_id" binding:"required"`
	SubCategoryID    uint     `json:"sub_category_id"`
	SubSubCategoryID uint     `json:"sub_sub_category_id"`
	BrandID          uint     `json:"brand_id"`
	UnitPrice        float64  `json:"unit_price"`
	PurchasePrice    float64  `json:"purchase_price"`
	PV               float64  `json:"pv"`
	Nation           string   `json:"nation"`
	Status           string   `json:"status"`
	Tags             []string `json:"tags"`
}

// RegisterMemberRequest is the payload for registering a member.
type RegisterMemberRequest struct {
	FName        string `json:"f_name" binding:"required"`
	LName        string `json:"l_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
	BranchID     uint   `json:"branch_id" binding:"required"`
	Rank         string `json:"rank" binding:"required"`
	ReferralCode string `json:"referral_code"`
}

// SubmitReviewRequest is the payload for submitting a product review.
type SubmitReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	OrderID   uint   `json:"order_id" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
}
