// Package json wraps bytedance/sonic behind the standard library's API
// surface so call sites stay drop-in compatible with encoding/json.
package json

import (
	stdjson "encoding/json"

	"github.com/bytedance/sonic"
)

// Number and RawMessage are re-exported so callers don't need a second
// json import for the deferred-decode types.
type (
	Number     = stdjson.Number
	RawMessage = stdjson.RawMessage
)

// api is the std-compatible sonic configuration (sorted map keys,
// html escaping, error parity with encoding/json).
var api = sonic.ConfigStd

func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
