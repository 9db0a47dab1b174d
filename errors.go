package goNativeAuth

import (
	"errors"

	"github.com/MrEthical07/goNativeAuth/internal/requests"
)

var (
	// ErrMissingArgument is an exported constant or variable used by the authentication engine.
	ErrMissingArgument = requests.ErrMissingArgument
	// ErrPasswordRequired is an exported constant or variable used by the authentication engine.
	ErrPasswordRequired = errors.New("password required to continue this sign-in flow")
	// ErrNoCachedAccount is an exported constant or variable used by the authentication engine.
	ErrNoCachedAccount = errors.New("no cached account, sign in first")
	// ErrNoAccessToken is an exported constant or variable used by the authentication engine.
	ErrNoAccessToken = errors.New("no cached access token, user must sign in again")
	// ErrNoRefreshToken is an exported constant or variable used by the authentication engine.
	ErrNoRefreshToken = errors.New("no cached refresh token, user must sign in again")
	// ErrRefreshRejected is an exported constant or variable used by the authentication engine.
	ErrRefreshRejected = errors.New("refresh token rejected by the authority")
	// ErrEngineNotReady is an exported constant or variable used by the authentication engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
