package cookie

import (
	"net/http"
	"time"

	"github.com/cccteam/rolegate/internal/types"
	"github.com/cccteam/rolegate/snapshot"
	"github.com/gofrs/uuid"
)

var _ CookieManager = &CookieClient{}

// CookieManager Interface included for testability
type CookieManager interface {
	NewClientCookie(w http.ResponseWriter, sameSiteStrict bool, clientID uuid.UUID) (map[types.SCKey]string, error)
	ReadClientCookie(r *http.Request) (map[types.SCKey]string, bool)
	WriteClientCookie(w http.ResponseWriter, sameSiteStrict bool, cval map[types.SCKey]string) error
	SetXSRFTokenCookie(w http.ResponseWriter, r *http.Request, clientID uuid.UUID, cookieExpiration time.Duration) (set bool)
	HasValidXSRFToken(r *http.Request) bool
	SnapshotKV(w http.ResponseWriter, r *http.Request) snapshot.KV
	ReadOTPCookie(r *http.Request) (map[types.OTPKey]string, bool)
	WriteOTPCookie(w http.ResponseWriter, cval map[types.OTPKey]string) error
	DeleteOTPCookie(w http.ResponseWriter)
}
