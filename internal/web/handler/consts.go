package handler

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// LocalPrincipal is the fiber.Locals key holding the resolved admin principal.
	LocalPrincipal = "principal"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
