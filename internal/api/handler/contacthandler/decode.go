package contacthandler

import (
	"launchpad/pkg/domain"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DecodeInquiry reads an inquiry from a JSON body.
//
// A body that is not valid JSON, or is the literal null, is an error. Any other
// non-object value decodes to an empty inquiry. Within an object, strings are
// kept as is, null, false, zero and "" leave the field empty, and every other
// value is kept as its raw JSON text. For repeated keys the last one wins.
func DecodeInquiry(data []byte) (domain.Inquiry, error) {
	var inquiry domain.Inquiry

	if !jx.Valid(data) {
		return inquiry, errors.New("body is not valid json")
	}

	d := jx.DecodeBytes(data)
	switch d.Next() {
	case jx.Null:
		return inquiry, errors.New("body is null")
	case jx.Object:
	default:
		return inquiry, nil
	}

	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var dst *string
		switch string(key) {
		case "name":
			dst = &inquiry.Name
		case "email":
			dst = &inquiry.Email
		case "message":
			dst = &inquiry.Message
		default:
			return d.Skip()
		}

		v, err := decodeField(d)
		if err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}
		*dst = v

		return nil
	}); err != nil {
		return domain.Inquiry{}, errors.Wrap(err, "decode inquiry")
	}

	return inquiry, nil
}

// decodeField returns the text of a field value, or "" when the value is falsy.
func decodeField(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Null:
		return "", d.Null()
	case jx.Bool:
		b, err := d.Bool()
		if err != nil || !b {
			return "", err
		}

		return "true", nil
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return "", err
		}
		if f, err := strconv.ParseFloat(n.String(), 64); err == nil && f == 0 {
			return "", nil
		}

		return n.String(), nil
	default:
		raw, err := d.Raw()
		if err != nil {
			return "", err
		}

		return raw.String(), nil
	}
}
