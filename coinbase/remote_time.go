// Copyright (c) 2026 Coinbase Agent Authors

package coinbase

import (
	"fmt"
	"strings"
	"time"
)

// RemoteTime holds an exchange-assigned timestamp, e.g. an order's
// created_time value.
type RemoteTime struct {
	Time time.Time
}

func (v RemoteTime) IsZero() bool {
	return v.Time.IsZero()
}

func (v *RemoteTime) UnmarshalJSON(raw []byte) error {
	s := strings.Trim(string(raw), `"`)
	if s == "null" || s == "" {
		v.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	v.Time = t
	return nil
}

func (v RemoteTime) MarshalJSON() ([]byte, error) {
	if v.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, v.Time.Format(time.RFC3339Nano))), nil
}
