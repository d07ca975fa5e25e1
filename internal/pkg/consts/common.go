package consts

// Model lifecycle states.
const (
	ModelStatusPendingApproval = "PENDING_APPROVAL"
	ModelStatusActive          = "ACTIVE"
	ModelStatusInactive        = "INACTIVE"
	ModelStatusDeprecated      = "DEPRECATED"
)

// Pricing types.
const (
	PricingFree         = "FREE"
	PricingFreemium     = "FREEMIUM"
	PricingPaid         = "PAID"
	PricingSubscription = "SUBSCRIPTION"
)

// User roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Notification types.
const (
	NotificationTypeLike    = "MODEL_LIKED"
	NotificationTypeComment = "MODEL_COMMENTED"
	NotificationTypeRating  = "MODEL_RATED"
	NotificationTypeSystem  = "SYSTEM"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
