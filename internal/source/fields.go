package source

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/shortreel/douyin-resolver/internal/jsonutil"
)

// flexInt tolerates numbers encoded as JSON numbers, numeric strings, or null.
// The resolution APIs switch between these freely, and an unparseable value
// degrades to 0 instead of failing the whole response.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(v)
	return nil
}

// authorField accepts either a nested author object with a nickname field or
// a flat author string.
type authorField struct {
	Nickname string
}

func (a *authorField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := jsonutil.Unmarshal(data, &s); err != nil {
			return nil
		}
		a.Nickname = s
		return nil
	}
	var obj struct {
		Nickname string `json:"nickname"`
	}
	if err := jsonutil.Unmarshal(data, &obj); err != nil {
		return nil
	}
	a.Nickname = obj.Nickname
	return nil
}
