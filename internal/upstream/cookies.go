// Package upstream keeps a diner's restaurant API cookies between requests.
package upstream

import (
	"net/http"
	"sort"
	"time"

	"aroma-storefront/internal/domain"
)

// Attach sends the diner's cookies with req.
func Attach(req *http.Request, cookies domain.UpstreamCookies) {
	names := make([]string, 0, len(cookies))
	for name := range cookies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		req.AddCookie(&http.Cookie{Name: name, Value: cookies[name]})
	}
}

// Capture applies the Set-Cookie headers of resp to cookies. Expired cookies
// are removed. A nil cookies map is left untouched.
func Capture(resp *http.Response, cookies domain.UpstreamCookies) {
	if cookies == nil {
		return
	}
	now := time.Now()
	for _, c := range resp.Cookies() {
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(now)) {
			delete(cookies, c.Name)
			continue
		}
		cookies[c.Name] = c.Value
	}
}
