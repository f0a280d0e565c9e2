// Package asset provides encoding, decoding and naming for uploaded beat assets.
package asset

import (
	"encoding/base64"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Roles for stored objects. The role is baked into the object name so the
// audio file and the cover of one upload can never collide.
const (
	RoleAudio = "audio"
	RoleCover = "cover"
)

// ErrMalformedPayload is returned when an upload payload is not valid base64.
var ErrMalformedPayload = fmt.Errorf("asset: malformed base64 payload")

// Decode converts a transport payload into raw bytes. Browsers submit files
// either as a bare base64 string or as a data URL
// ("data:audio/mpeg;base64,...."); anything up to the first comma is a media
// type prefix and is stripped before decoding.
func Decode(payload string) ([]byte, error) {
	if idx := strings.IndexByte(payload, ','); idx >= 0 {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return data, nil
}

// ObjectName derives the deterministic storage object name for one uploaded
// file. Two uploads with identical original file names still map to distinct
// objects because the asset id is part of the name.
func ObjectName(assetID, role, originalName string) string {
	return assetID + "_" + role + "_" + originalName
}

// NewID generates a new asset identifier of the form
// beat_<unix-millis>_<suffix>. Uniqueness is probabilistic: a collision would
// require two requests in the same millisecond drawing the same 9-character
// suffix. No registry is consulted.
func NewID() string {
	return newIDAt(time.Now(), rand.Int63())
}

// suffixLen matches the 9 characters the web client historically expected.
const suffixLen = 9

func newIDAt(now time.Time, seed int64) string {
	suffix := strconv.FormatInt(seed, 36)
	for len(suffix) < suffixLen {
		suffix = "0" + suffix
	}
	return fmt.Sprintf("beat_%d_%s", now.UnixMilli(), suffix[:suffixLen])
}
