// Package transport encodes the dragged item for platform-native drag handling.
//
// The item descriptor travels as JSON under a custom MIME type, next to a text/plain
// fallback carrying only the id. The payload lives for a single drag gesture and is never
// persisted.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

const (
	// MIMEItem is the transport key carrying the JSON item descriptor.
	MIMEItem = "application/x-dropzone+json"
	// MIMEText is the plain-text fallback carrying the item id.
	MIMEText = "text/plain"
)

// ErrEmptyPayload is returned when neither transport key is present.
var ErrEmptyPayload = errors.New("drag payload carries no item")

// Payload maps transport keys (MIME types) to their serialized values.
type Payload map[string]string

// Encode serializes item under MIMEItem and its id under MIMEText.
func Encode(item domain.Item) (Payload, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to encode drag item %s: %w", item.ID, err)
	}
	return Payload{
		MIMEItem: string(data),
		MIMEText: item.ID,
	}, nil
}

// Decode restores the item. The JSON descriptor is preferred; when only the plain-text
// fallback is present the returned item carries just the id.
func Decode(p Payload) (domain.Item, error) {
	if raw, ok := p[MIMEItem]; ok && raw != "" {
		var item domain.Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return domain.Item{}, fmt.Errorf("failed to decode drag item: %w", err)
		}
		if item.ID == "" {
			return domain.Item{}, fmt.Errorf("drag item without id: %w", ErrEmptyPayload)
		}
		return item, nil
	}
	if id, ok := p[MIMEText]; ok && id != "" {
		return domain.Item{ID: id}, nil
	}
	return domain.Item{}, ErrEmptyPayload
}

// DecodeData maps the item's opaque data (decoded from JSON as maps and slices) into out,
// which must be a pointer to a struct or map. Struct fields match keys through
// `mapstructure` tags or case-insensitive field names.
func DecodeData(item domain.Item, out any) error {
	if item.Data == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to build data decoder: %w", err)
	}
	if err := dec.Decode(item.Data); err != nil {
		return fmt.Errorf("failed to decode data of %s: %w", item.ID, err)
	}
	return nil
}
