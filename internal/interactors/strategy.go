package interactors

import (
	"github.com/MrEthical07/goNativeAuth/internal/api"
	"github.com/MrEthical07/goNativeAuth/internal/requests"
)

// Strategy aggregates all interactors for one authentication
// configuration. The engine talks only to this façade, which keeps the
// per-endpoint seams substitutable in tests.
type Strategy struct {
	*SignInInteractor
	*SignUpInteractor
	*ResetPasswordInteractor
}

// NewStrategy builds a strategy bound to one client config and transport.
func NewStrategy(cfg requests.Config, transport api.Transport) *Strategy {
	return &Strategy{
		SignInInteractor:        NewSignInInteractor(cfg, transport),
		SignUpInteractor:        NewSignUpInteractor(cfg, transport),
		ResetPasswordInteractor: NewResetPasswordInteractor(cfg, transport),
	}
}
