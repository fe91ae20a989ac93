package scene

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON renders the value as plain document JSON (not a dump of
// the Value struct), preserving object field order.  encoding/json
// cannot keep field order for map-backed data, hence the hand-rolled
// writer.
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := v.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) writeJSON(buf *bytes.Buffer) error {
	switch v.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case NumberType:
		switch {
		case v.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*v.Int64, 10))
		case v.Float64 != nil:
			buf.WriteString(strconv.FormatFloat(*v.Float64, 'g', -1, 64))
		case v.Number != "":
			buf.WriteString(v.Number)
		default:
			buf.WriteString("0")
		}
	case StringType:
		d, err := json.Marshal(v.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, vv := range v.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := vv.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, field := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(field.String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := v.Values[i].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
