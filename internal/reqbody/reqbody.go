// Package reqbody turns raw request payloads into field records according to
// the declared content type.
package reqbody

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"strings"

	"github.com/lim-bo/songscatalog/models"
)

const (
	ContentJSON = "application/json"
	ContentForm = "application/x-www-form-urlencoded"
)

var ErrMalformedBody error = errors.New(`malformed request body`)

// Record maps field names to the values supplied for them. A nil Record
// means no structured body was produced; every lookup on it reports absent.
type Record map[string]models.Scalar

// Get returns the raw value of a field.
func (r Record) Get(key string) (models.Scalar, bool) {
	v, ok := r[key]
	return v, ok
}

// Text returns a field as text. Null and composite values count as absent.
func (r Record) Text(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	return v.Text()
}

// Decode parses payload according to contentType. It returns a nil record
// when the payload is empty or the content type is not recognized.
func Decode(contentType string, payload []byte) (Record, error) {
	if len(payload) == 0 {
		return nil, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, nil
	}
	switch mediaType {
	case ContentJSON:
		return decodeJSON(payload)
	case ContentForm:
		return decodeForm(string(payload))
	default:
		return nil, nil
	}
}

// decodeJSON accepts any valid JSON document; only objects produce fields.
func decodeJSON(payload []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrMalformedBody, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedBody)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, nil
	}
	rec := make(Record, len(obj))
	for k, v := range obj {
		rec[k] = models.ScalarOf(v)
	}
	return rec, nil
}

// decodeForm splits key=value pairs on '&'. Values have '+' turned into
// spaces before percent-decoding; keys are kept verbatim. Later duplicates win.
func decodeForm(payload string) (Record, error) {
	rec := make(Record)
	for _, pair := range strings.Split(payload, "&") {
		key, value, _ := strings.Cut(pair, "=")
		decoded, err := url.PathUnescape(strings.ReplaceAll(value, "+", " "))
		if err != nil {
			return nil, errors.Join(ErrMalformedBody, err)
		}
		rec[key] = models.String(decoded)
	}
	return rec, nil
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying rec.
func NewContext(ctx context.Context, rec Record) context.Context {
	return context.WithValue(ctx, ctxKey{}, rec)
}

// FromContext returns the record stored by NewContext, or nil.
func FromContext(ctx context.Context) Record {
	rec, _ := ctx.Value(ctxKey{}).(Record)
	return rec
}
