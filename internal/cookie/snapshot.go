package cookie

import (
	"context"
	"net/http"
	"sync"

	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate/internal/types"
	"github.com/cccteam/rolegate/snapshot"
	"github.com/go-playground/errors/v5"
)

// SnapshotKV returns the browser-local snapshot carried in the request's
// snapshot cookie. Writes set the cookie on w and are visible to later reads
// through the same KV. A cookie that cannot be decoded reads as empty.
func (c *CookieClient) SnapshotKV(w http.ResponseWriter, r *http.Request) snapshot.KV {
	return &cookieKV{client: c, w: w, r: r}
}

type cookieKV struct {
	client *CookieClient
	w      http.ResponseWriter
	r      *http.Request

	mu     sync.Mutex
	loaded bool
	values snapshot.Values
}

func (kv *cookieKV) Get(_ context.Context, keys ...snapshot.Key) (snapshot.Values, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.load()

	out := make(snapshot.Values, len(keys))
	for _, k := range keys {
		if v, ok := kv.values[k]; ok {
			out[k] = v
		}
	}

	return out, nil
}

func (kv *cookieKV) Put(_ context.Context, values snapshot.Values) error {
	if len(values) == 0 {
		return nil
	}

	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.load()

	next := make(snapshot.Values, len(kv.values)+len(values))
	for k, v := range kv.values {
		next[k] = v
	}
	for k, v := range values {
		next[k] = v
	}

	if err := kv.write(next); err != nil {
		return err
	}
	kv.values = next

	return nil
}

func (kv *cookieKV) Remove(_ context.Context, keys ...snapshot.Key) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.load()

	next := make(snapshot.Values, len(kv.values))
	for k, v := range kv.values {
		next[k] = v
	}
	for _, k := range keys {
		delete(next, k)
	}

	if len(next) == 0 {
		if kv.hasCookie() || len(kv.values) > 0 {
			kv.client.deleteCookie(kv.w, types.SnapshotCookieName, "/")
		}
		kv.values = next

		return nil
	}

	if err := kv.write(next); err != nil {
		return err
	}
	kv.values = next

	return nil
}

func (kv *cookieKV) load() {
	if kv.loaded {
		return
	}
	kv.loaded = true
	kv.values = snapshot.Values{}

	cookie, err := kv.r.Cookie(types.SnapshotCookieName)
	if err != nil {
		return
	}

	cval := make(map[snapshot.Key]string)
	if err := kv.client.secureCookie.Decode(types.SnapshotCookieName, cookie.Value, &cval); err != nil {
		logger.Req(kv.r).Error(errors.Wrap(err, "securecookie.Decode()"))

		return
	}
	kv.values = cval
}

func (kv *cookieKV) hasCookie() bool {
	_, err := kv.r.Cookie(types.SnapshotCookieName)

	return err == nil
}

func (kv *cookieKV) write(values snapshot.Values) error {
	encoded, err := kv.client.secureCookie.Encode(types.SnapshotCookieName, map[snapshot.Key]string(values))
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	http.SetCookie(kv.w, &http.Cookie{
		Name:     types.SnapshotCookieName,
		Value:    encoded,
		Path:     "/",
		Domain:   kv.client.domain,
		Secure:   secureCookie(),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return nil
}
