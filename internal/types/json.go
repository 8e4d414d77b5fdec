package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func (p Primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

func (c Custom) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (a Array) MarshalJSON() ([]byte, error) {
	var n any
	if a.Len.IsGeneric() {
		n = map[string]string{"generic": a.Len.Name()}
	} else {
		n, _ = a.Len.Value()
	}
	return json.Marshal(map[string][]any{"array": {a.Elem, n}})
}

func (v Vec) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Type{"vec": v.Elem})
}

func (o Option) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Type{"option": o.Elem})
}

// Decode reads a type in the document's JSON encoding. Besides the shapes
// produced by MarshalJSON it accepts {"defined": {"name": X}} and
// {"defined": X} as Custom.
func Decode(data []byte) (Type, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty type")
	}

	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return nil, err
		}
		if IsPrimitive(name) || name == "string" || name == "pubkey" {
			return Primitive(name), nil
		}
		return Custom(name), nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("invalid type %s: %w", data, err)
	}
	if len(obj) != 1 {
		return nil, fmt.Errorf("invalid type %s: expected a single key", data)
	}

	for key, raw := range obj {
		switch key {
		case "array":
			return decodeArray(raw)
		case "vec":
			elem, err := Decode(raw)
			if err != nil {
				return nil, err
			}
			return Vec{Elem: elem}, nil
		case "option":
			elem, err := Decode(raw)
			if err != nil {
				return nil, err
			}
			return Option{Elem: elem}, nil
		case "defined":
			return decodeDefined(raw)
		default:
			return nil, fmt.Errorf("unknown type kind %q", key)
		}
	}
	return nil, fmt.Errorf("invalid type %s", data)
}

func decodeArray(raw json.RawMessage) (Type, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil, fmt.Errorf("invalid array type: %w", err)
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid array type: expected [elem, len]")
	}

	elem, err := Decode(parts[0])
	if err != nil {
		return nil, err
	}

	var n uint64
	if err := json.Unmarshal(parts[1], &n); err == nil {
		return Array{Elem: elem, Len: Known(n)}, nil
	}
	var generic struct {
		Generic string `json:"generic"`
	}
	if err := json.Unmarshal(parts[1], &generic); err != nil || generic.Generic == "" {
		return nil, fmt.Errorf("invalid array length %s", parts[1])
	}
	return Array{Elem: elem, Len: Generic(generic.Generic)}, nil
}

func decodeDefined(raw json.RawMessage) (Type, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return Custom(name), nil
	}
	var named struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &named); err != nil || named.Name == "" {
		return nil, fmt.Errorf("invalid defined type %s", raw)
	}
	return Custom(named.Name), nil
}
