// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package xmlrpc implements the XML-RPC wire protocol as spoken by
// HomeMatic CCU controllers: methodCall/methodResponse envelopes over
// HTTP POST, the scalar and composite value kinds, and fault
// responses.
package xmlrpc

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// iso8601 is the dateTime layout used by XML-RPC.
const iso8601 = "20060102T15:04:05"

// Fault is a protocol-level rejection from the endpoint.
type Fault struct {
	Code   int
	String string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault %d: %s", f.Code, f.String)
}

type methodCall struct {
	XMLName xml.Name `xml:"methodCall"`
	Method  string   `xml:"methodName"`
	Params  []param  `xml:"params>param"`
}

type methodResponse struct {
	XMLName xml.Name `xml:"methodResponse"`
	Params  []param  `xml:"params>param"`
	Fault   *value   `xml:"fault>value"`
}

type param struct {
	Value value `xml:"value"`
}

// value is the polymorphic <value> element. At most one typed child is
// set; untyped content lands in Raw and decodes as a string.
type value struct {
	I4       *string  `xml:"i4"`
	Int      *string  `xml:"int"`
	Boolean  *string  `xml:"boolean"`
	Str      *string  `xml:"string"`
	Double   *string  `xml:"double"`
	DateTime *string  `xml:"dateTime.iso8601"`
	Base64   *string  `xml:"base64"`
	Struct   *xstruct `xml:"struct"`
	Array    *xarray  `xml:"array"`
	Raw      string   `xml:",chardata"`
}

type xstruct struct {
	Members []member `xml:"member"`
}

type member struct {
	Name  string `xml:"name"`
	Value value  `xml:"value"`
}

type xarray struct {
	Values []value `xml:"data>value"`
}

// marshalCall encodes a methodCall document for method with positional
// args.
func marshalCall(method string, args []any) ([]byte, error) {
	call := methodCall{Method: method}
	for i, arg := range args {
		v, err := encodeValue(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		call.Params = append(call.Params, param{Value: v})
	}

	body, err := xml.Marshal(call)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// unmarshalResponse decodes a methodResponse document. A fault
// response is returned as a *Fault error; otherwise the first
// parameter value is decoded, or nil when the response carries none.
func unmarshalResponse(data []byte) (any, error) {
	var resp methodResponse
	if err := xml.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.Fault != nil {
		return nil, decodeFault(resp.Fault)
	}
	if len(resp.Params) == 0 {
		return nil, nil
	}
	return decodeValue(&resp.Params[0].Value)
}

// decodeFault extracts the faultCode/faultString struct. A fault that
// does not follow that shape still surfaces as a Fault, with whatever
// pieces were present.
func decodeFault(v *value) error {
	f := &Fault{}
	decoded, err := decodeValue(v)
	if err != nil {
		return f
	}
	members, ok := decoded.(map[string]any)
	if !ok {
		return f
	}
	if code, ok := members["faultCode"].(int); ok {
		f.Code = code
	}
	if s, ok := members["faultString"].(string); ok {
		f.String = s
	}
	return f
}

func decodeValue(v *value) (any, error) {
	switch {
	case v.I4 != nil:
		return strconv.Atoi(strings.TrimSpace(*v.I4))
	case v.Int != nil:
		return strconv.Atoi(strings.TrimSpace(*v.Int))
	case v.Boolean != nil:
		switch strings.TrimSpace(*v.Boolean) {
		case "1":
			return true, nil
		case "0":
			return false, nil
		default:
			return nil, fmt.Errorf("invalid boolean %q", *v.Boolean)
		}
	case v.Str != nil:
		return *v.Str, nil
	case v.Double != nil:
		return strconv.ParseFloat(strings.TrimSpace(*v.Double), 64)
	case v.DateTime != nil:
		return time.Parse(iso8601, strings.TrimSpace(*v.DateTime))
	case v.Base64 != nil:
		return base64.StdEncoding.DecodeString(strings.TrimSpace(*v.Base64))
	case v.Struct != nil:
		members := make(map[string]any, len(v.Struct.Members))
		for i := range v.Struct.Members {
			m := &v.Struct.Members[i]
			decoded, err := decodeValue(&m.Value)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", m.Name, err)
			}
			members[m.Name] = decoded
		}
		return members, nil
	case v.Array != nil:
		items := make([]any, 0, len(v.Array.Values))
		for i := range v.Array.Values {
			decoded, err := decodeValue(&v.Array.Values[i])
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			items = append(items, decoded)
		}
		return items, nil
	default:
		// Untyped <value> content is a string, an empty <value/> the
		// empty string.
		return v.Raw, nil
	}
}

func encodeValue(arg any) (value, error) {
	str := func(s string) *string { return &s }

	switch x := arg.(type) {
	case nil:
		return value{Str: str("")}, nil
	case bool:
		if x {
			return value{Boolean: str("1")}, nil
		}
		return value{Boolean: str("0")}, nil
	case int:
		return value{I4: str(strconv.Itoa(x))}, nil
	case int64:
		return value{I4: str(strconv.FormatInt(x, 10))}, nil
	case float64:
		return value{Double: str(strconv.FormatFloat(x, 'g', -1, 64))}, nil
	case string:
		return value{Str: str(x)}, nil
	case []byte:
		return value{Base64: str(base64.StdEncoding.EncodeToString(x))}, nil
	case time.Time:
		return value{DateTime: str(x.Format(iso8601))}, nil
	case []any:
		arr := &xarray{}
		for i, item := range x {
			v, err := encodeValue(item)
			if err != nil {
				return value{}, fmt.Errorf("element %d: %w", i, err)
			}
			arr.Values = append(arr.Values, v)
		}
		return value{Array: arr}, nil
	case map[string]any:
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		sort.Strings(names)

		st := &xstruct{}
		for _, name := range names {
			v, err := encodeValue(x[name])
			if err != nil {
				return value{}, fmt.Errorf("member %q: %w", name, err)
			}
			st.Members = append(st.Members, member{Name: name, Value: v})
		}
		return value{Struct: st}, nil
	default:
		return value{}, fmt.Errorf("unsupported value type %T", arg)
	}
}
