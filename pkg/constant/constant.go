package constant

const (
	// TokenCookieName is the cookie the session carrier reads and writes.
	TokenCookieName = "jwt"

	// BearerScheme is the Authorization header prefix for API clients.
	BearerScheme = "Bearer "

	// CurrentUserKey is the fiber.Ctx locals key holding the
	// authenticated *domain.User for the rest of the request.
	CurrentUserKey = "currentUser"

	DefaultBcryptCost = 10
)
