// Package jsend writes the two JSend response shapes every API outcome
// maps onto. There is deliberately no third "error" shape at this layer;
// storage faults are left to the transport.
package jsend

import (
	"encoding/json"
	"net/http"
)

type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// Success writes {"status":"success","data":{key:value}} with the given
// HTTP status. An empty key writes "data":null (used by delete).
func Success(w http.ResponseWriter, code int, key string, value any) {
	var data any
	if key != "" {
		data = map[string]any{key: value}
	}
	write(w, code, envelope{Status: "success", Data: data})
}

// Fail writes {"status":"fail","data":{key:message}}. Use 400 for
// validation failures and 404 for missing resources.
func Fail(w http.ResponseWriter, code int, key, message string) {
	write(w, code, envelope{Status: "fail", Data: map[string]any{key: message}})
}

func write(w http.ResponseWriter, code int, e envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(e)
}
