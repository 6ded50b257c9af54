package i

import (
	"github.com/beka-birhanu/vinom-lattice/identity"
)

// Authenticator registers users and signs them in.
type Authenticator interface {
	Register(username, password string) (*identity.User, error)
	SignIn(username, password string) (*identity.User, string, error)
}
