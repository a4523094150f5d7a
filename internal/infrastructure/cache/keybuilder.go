package cache

import (
	"encoding/json"
	"fmt"
)

// GenerateKey derives a deterministic cache key from a namespace tag and a
// parameter set. encoding/json serializes map keys in sorted order, which
// fixes the canonical form: equal parameter sets always produce the same
// key regardless of how the map was built.
func GenerateKey(namespace string, params map[string]string) string {
	canonical, err := json.Marshal(params)
	if err != nil {
		// Marshaling a map[string]string cannot fail; keep the signature pure.
		canonical = []byte("{}")
	}
	return fmt.Sprintf("%s_%s", namespace, canonical)
}
