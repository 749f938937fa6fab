package controld

import (
	"net/url"
	"strconv"

	"github.com/ctrld-tools/controld-go/pkg/model"
)

// Form field helpers. The API takes URL-encoded write bodies where
// booleans are 0/1, enums are numeric codes, and arrays repeat a
// bracketed key. Unset optional fields are omitted so partial updates
// stay partial.

func setString(v url.Values, key, s string) {
	if s != "" {
		v.Set(key, s)
	}
}

func setBool(v url.Values, key string, b *bool) {
	if b == nil {
		return
	}
	if *b {
		v.Set(key, "1")
	} else {
		v.Set(key, "0")
	}
}

func setInt(v url.Values, key string, n *int) {
	if n != nil {
		v.Set(key, strconv.Itoa(*n))
	}
}

func setInt64(v url.Values, key string, n *int64) {
	if n != nil {
		v.Set(key, strconv.FormatInt(*n, 10))
	}
}

func setStrings(v url.Values, key string, items []string) {
	for _, item := range items {
		v.Add(key+"[]", item)
	}
}

func setStatus(v url.Values, key string, s *model.Status) {
	if s != nil {
		v.Set(key, strconv.Itoa(int(*s)))
	}
}

func setDo(v url.Values, key string, d *model.Do) {
	if d != nil {
		v.Set(key, strconv.Itoa(int(*d)))
	}
}

func setStats(v url.Values, key string, s *model.Stats) {
	if s != nil {
		v.Set(key, strconv.Itoa(int(*s)))
	}
}

func setDeviceStatus(v url.Values, key string, s *model.DeviceStatus) {
	if s != nil {
		v.Set(key, strconv.Itoa(int(*s)))
	}
}

// Bool and Int give literal pointers for optional form fields.
func Bool(b bool) *bool { return &b }

func Int(n int) *int { return &n }

func Int64(n int64) *int64 { return &n }

// Ptr gives a literal pointer for optional enum form fields.
func Ptr[T any](v T) *T { return &v }
