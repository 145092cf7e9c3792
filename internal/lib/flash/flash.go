// Package flash carries a small value across one redirect in a cookie. The
// value is read once and the cookie is expired on the same response.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const path = "/"

// Set stores v under name for the next request.
func Set(w http.ResponseWriter, name string, v any) error {
	const op = "lib.flash.Set"

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     path,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Pop decodes the value stored under name into v and expires the cookie. It
// reports false when the request carries no such cookie. A malformed cookie is
// expired too and returned as an error.
func Pop(w http.ResponseWriter, r *http.Request, name string, v any) (bool, error) {
	const op = "lib.flash.Pop"

	c, err := r.Cookie(name)
	if errors.Is(err, http.ErrNoCookie) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err = json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}
