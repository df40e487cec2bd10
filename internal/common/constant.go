package common

// AuthorizationHeaderName is the HTTP header carrying the bearer credential.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the only accepted authorization scheme.
const BearerScheme = "Bearer"

// User types.
const (
	UserTypeCustomer = "customer"
	UserTypeVendor   = "vendor"
)
