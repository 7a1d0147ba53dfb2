package client

import (
	"net/url"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"go.wusul.io/sdk/pkg/apierr"
)

// queryParams flattens query into a map keyed by the json names of its fields.
// A nil query yields a nil map.
func queryParams(query any) (map[string]any, error) {
	if query == nil {
		return nil, nil
	}
	switch q := query.(type) {
	case map[string]any:
		return q, nil
	case map[string]string:
		params := make(map[string]any, len(q))
		for k, v := range q {
			params[k] = v
		}
		return params, nil
	}

	rv := reflect.ValueOf(query)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}

	params := map[string]any{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &params,
	})
	if err != nil {
		return nil, apierr.Serialization(err)
	}
	if err := decoder.Decode(query); err != nil {
		return nil, apierr.Serialization(err)
	}
	return params, nil
}

// encodeQuery converts the scalar values of params into query string values.
// Strings, integers and booleans are kept; anything else is left out of the
// query string (it is still covered by the signature).
func (c *Client) encodeQuery(params map[string]any) url.Values {
	values := url.Values{}
	for key, value := range params {
		str, ok := scalarString(value)
		if !ok {
			c.cfg.Logger.Debug().Str("param", key).Msg("dropping non-scalar query parameter")
			continue
		}
		values.Set(key, str)
	}
	return values
}

func scalarString(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	default:
		return "", false
	}
}
