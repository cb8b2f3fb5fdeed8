package apod

import "fmt"

// ErrKeyNotConfigured indicates the host has no value stored for the
// required API secret. Nothing is fetched in this state.
type ErrKeyNotConfigured struct {
	Key string
}

func (e *ErrKeyNotConfigured) Error() string {
	return fmt.Sprintf("API key %s not configured", e.Key)
}

// ErrUpstream indicates the APOD API or the image host failed the request.
// All upstream failures are terminal; nothing is retried.
type ErrUpstream struct {
	Status int
	Detail string
	Cause  error
}

func (e *ErrUpstream) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("apod upstream: %s: %v", e.Detail, e.Cause)
	}
	return fmt.Sprintf("apod upstream: %s: HTTP %d", e.Detail, e.Status)
}

func (e *ErrUpstream) Unwrap() error { return e.Cause }

// ErrNotImage indicates the picture of the day is not a still image
// (the API also serves videos). The image URL is never fetched in this case.
type ErrNotImage struct {
	MediaType string
}

func (e *ErrNotImage) Error() string {
	return fmt.Sprintf("APOD media type %q is not an image", e.MediaType)
}

// ErrDecode indicates the downloaded bytes could not be decoded as a
// raster image.
type ErrDecode struct {
	Cause error
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("decoding APOD image: %v", e.Cause)
}

func (e *ErrDecode) Unwrap() error { return e.Cause }
