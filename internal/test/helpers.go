package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Request executes an HTTP request against the handler and returns the
// recorder with the response.
//
// The body can be a string, which is passed as is, or any other type,
// which is marshaled to JSON before the request.
func Request(t *testing.T, handler http.Handler, method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		marshaled, err := json.Marshal(b)
		if err != nil {
			assert.FailNow(t, "request body could not be marshaled", err)
		}
		reader = bytes.NewReader(marshaled)
	}

	request, err := http.NewRequest(method, url, reader)
	if err != nil {
		assert.FailNow(t, "request could not be created", err)
	}
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder
}

// DecodeResponse decodes the recorded response body into the target struct.
func DecodeResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(recorder.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "response could not be decoded", "%v, body: %s", err, recorder.Body.String())
	}
}
