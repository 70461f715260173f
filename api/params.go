package api

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// jsonBody decodes a JSON object body. Anything else yields nil.
func jsonBody(c *gin.Context) map[string]interface{} {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(err)
		return nil
	}
	return body
}

// toFloat accepts numbers and numeric strings
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// toInt accepts numbers, truncating fractions, and integer strings
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return toInt(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

// truthy follows the usual JSON truthiness: false, 0, "", null, [] and {} are false
func truthy(v interface{}) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return b != ""
	case []interface{}:
		return len(b) > 0
	case map[string]interface{}:
		return len(b) > 0
	}
	return true
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// queryInt reads an integer query parameter. It returns def when the
// parameter is missing.
func queryInt(c *gin.Context, key string, def int) (int, error) {
	value, ok := c.GetQuery(key)
	if !ok {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(value))
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
