package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderStripeSig     = "Stripe-Signature"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableSubscriptions  = "subscriptions"
	TableBillingRecords = "billing_records"
	TableNotifications  = "notifications"

	// Notification content limits
	MaxNotificationTitleLen   = 100
	MaxNotificationMessageLen = 500

	// UnlimitedSentinel marks a plan limit with no ceiling.
	UnlimitedSentinel = -1

	// TrialDurationDays is the length of the free trial granted at signup.
	TrialDurationDays = 30

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
)
