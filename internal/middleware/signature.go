package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"sort"

	"github.com/go-chi/render"
)

const (
	// ProviderSignatureHeader carries the provider's webhook signature.
	ProviderSignatureHeader = "X-Twilio-Signature"

	ErrorCodeInvalidSignature    = "INVALID_SIGNATURE"
	ErrorMessageInvalidSignature = "Webhook signature verification failed"
)

// WebhookSignature verifies the provider's webhook signature: base64 of
// HMAC-SHA1 over the public callback URL followed by the POST parameters
// sorted by key, keyed with the account auth token. An empty authToken
// disables verification, which is only acceptable in local development.
func WebhookSignature(authToken, publicBaseURL string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authToken == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				rejectSignature(w, r)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			form, err := url.ParseQuery(string(body))
			if err != nil {
				rejectSignature(w, r)
				return
			}

			expected := computeSignature(authToken, publicBaseURL+r.URL.RequestURI(), form)
			provided := r.Header.Get(ProviderSignatureHeader)
			if !hmac.Equal([]byte(expected), []byte(provided)) {
				rejectSignature(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func computeSignature(authToken, callbackURL string, form url.Values) string {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(callbackURL))
	for _, k := range keys {
		mac.Write([]byte(k))
		mac.Write([]byte(form.Get(k)))
	}
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func rejectSignature(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusForbidden)
	render.JSON(w, r, map[string]interface{}{
		"error":   ErrorCodeInvalidSignature,
		"message": ErrorMessageInvalidSignature,
	})
}
