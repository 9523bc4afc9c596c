package session

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

func jsonDecode(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()
	return jsoniter.NewDecoder(resp.Body).Decode(v)
}
