package httpgin

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// writeJSONWithCache writes v as JSON with an ETag and Cache-Control.
// A matching If-None-Match gets 304 and no body.
func writeJSONWithCache(
	c *gin.Context,
	status int,
	v any,
	cacheControl string,
	weak bool,
) {
	b, err := json.Marshal(v)
	if err != nil {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}

	tag := etagOf(b, weak)
	c.Header("ETag", tag)
	if cacheControl != "" {
		c.Header("Cache-Control", cacheControl)
	}

	if etagMatches(c.GetHeader("If-None-Match"), tag) {
		c.Status(http.StatusNotModified)
		return
	}

	c.Data(status, jsonContentType, b)
}

func etagOf(b []byte, weak bool) string {
	sum := sha256.Sum256(b)
	tag := `"` + hex.EncodeToString(sum[:16]) + `"`
	if weak {
		tag = "W/" + tag
	}
	return tag
}

// etagMatches compares weakly, as If-None-Match requires.
func etagMatches(header, tag string) bool {
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}

	opaque := func(s string) string {
		return strings.TrimPrefix(s, "W/")
	}

	want := opaque(tag)
	for _, part := range strings.Split(header, ",") {
		if opaque(strings.TrimSpace(part)) == want {
			return true
		}
	}
	return false
}
