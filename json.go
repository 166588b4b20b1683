package floatkey

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/joeycumines/go-utilpkg/jsonenc"
)

const (
	jsonPosInf = `"PlusInf"`
	jsonNegInf = `"MinusInf"`
	jsonNaN    = `"Nan"`
	jsonValue  = `{"Value":`
)

// MarshalJSON implements [json.Marshaler], encoding x as a tagged union, NOT
// as a JSON number:
//
//	"PlusInf"
//	"MinusInf"
//	"Nan"
//	{"Value":1.5}
//
// Finite values are formatted the same as [encoding/json] formats float64.
func (x Float64) MarshalJSON() ([]byte, error) {
	return x.appendJSON(make([]byte, 0, 32)), nil
}

func (x Float64) appendJSON(b []byte) []byte {
	switch x.kind {
	case KindPosInf:
		return append(b, jsonPosInf...)
	case KindNegInf:
		return append(b, jsonNegInf...)
	case KindNaN:
		return append(b, jsonNaN...)
	default:
		b = append(b, jsonValue...)
		b = jsonenc.AppendFloat64(b, x.value)
		return append(b, '}')
	}
}

// UnmarshalJSON implements [json.Unmarshaler], accepting the encoding
// produced by [Float64.MarshalJSON]. Strings other than the three variant
// tags are decoded using [Parse] (failing with [ErrSyntax]), as that is the
// form [encoding/json] uses for map keys, see [Float64.MarshalText]. The
// object form must be exactly {"Value":<number>}, the field name being case
// sensitive.
func (x *Float64) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errors.New(`floatkey: invalid json: empty`)
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		switch `"` + s + `"` {
		case jsonPosInf:
			*x = Float64{kind: KindPosInf}
		case jsonNegInf:
			*x = Float64{kind: KindNegInf}
		case jsonNaN:
			*x = Float64{kind: KindNaN}
		default:
			v, err := Parse(s)
			if err != nil {
				return err
			}
			*x = v
		}
		return nil
	case '{':
		v, ok := decodeJSONValue(b)
		if !ok {
			return fmt.Errorf(`floatkey: invalid json value: %s`, b)
		}
		*x = New(v)
		return nil
	default:
		return fmt.Errorf(`floatkey: invalid json: %s`, b)
	}
}

// decodeJSONValue reads exactly {"Value":<number>}, token by token, rejecting
// duplicate or differently cased keys, and trailing data.
func decodeJSONValue(b []byte) (float64, bool) {
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	if tok, err := d.Token(); err != nil || tok != json.Delim('{') {
		return 0, false
	}
	if tok, err := d.Token(); err != nil || tok != any(`Value`) {
		return 0, false
	}
	tok, err := d.Token()
	if err != nil {
		return 0, false
	}
	n, ok := tok.(json.Number)
	if !ok {
		return 0, false
	}
	// out of range is an error, unlike Parse, as encoding/json would do
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, false
	}
	if tok, err := d.Token(); err != nil || tok != json.Delim('}') {
		return 0, false
	}
	if _, err := d.Token(); err != io.EOF {
		return 0, false
	}
	return v, true
}
