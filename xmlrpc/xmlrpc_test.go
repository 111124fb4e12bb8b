// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

package xmlrpc

import (
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestOpenValidatesEndpoint(t *testing.T) {
	if _, err := Open("ftp://ccu:2001", time.Second); err == nil {
		t.Error("expected error for non-http scheme")
	}
	if _, err := Open("http://", time.Second); err == nil {
		t.Error("expected error for missing host")
	}
	if _, err := Open("http://192.168.1.26:2001", 0); err != nil {
		t.Errorf("Open: %v", err)
	}
}

func TestUnmarshalResponseValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want any
	}{
		{
			"typed scalars in a struct",
			`<?xml version="1.0"?><methodResponse><params><param><value><struct>` +
				`<member><name>serial</name><value><string>KEQ0123456</string></value></member>` +
				`<member><name>port</name><value><i4>2001</i4></value></member>` +
				`<member><name>online</name><value><boolean>1</boolean></value></member>` +
				`<member><name>level</name><value><double>0.75</double></value></member>` +
				`</struct></value></param></params></methodResponse>`,
			map[string]any{"serial": "KEQ0123456", "port": 2001, "online": true, "level": 0.75},
		},
		{
			"array of untyped values",
			`<?xml version="1.0"?><methodResponse><params><param><value><array><data>` +
				`<value>CCU.getSerial</value><value>ReGa.runScript</value>` +
				`</data></array></value></param></params></methodResponse>`,
			[]any{"CCU.getSerial", "ReGa.runScript"},
		},
		{
			"empty value is the empty string",
			`<?xml version="1.0"?><methodResponse><params><param><value/></param></params></methodResponse>`,
			"",
		},
	}

	for _, tt := range tests {
		got, err := unmarshalResponse([]byte(tt.body))
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %#v, want %#v", tt.name, got, tt.want)
		}
	}
}

func TestUnmarshalResponseFault(t *testing.T) {
	body := `<?xml version="1.0"?><methodResponse><fault><value><struct>` +
		`<member><name>faultCode</name><value><i4>-1</i4></value></member>` +
		`<member><name>faultString</name><value><string>Method not supported</string></value></member>` +
		`</struct></value></fault></methodResponse>`

	_, err := unmarshalResponse([]byte(body))
	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("got %v, want *Fault", err)
	}
	if fault.Code != -1 || fault.String != "Method not supported" {
		t.Errorf("got fault %d %q", fault.Code, fault.String)
	}
}

// ccuHandler fakes the controller's XML-RPC surface for end-to-end
// tests.
func ccuHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read request: %v", err)
			return
		}
		var call methodCall
		if err := xml.Unmarshal(body, &call); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}

		switch call.Method {
		case "system.listMethods":
			io.WriteString(w, `<?xml version="1.0"?><methodResponse><params><param><value><array><data>`+
				`<value>system.listMethods</value>`+
				`<value>CCU.getSerial</value>`+
				`<value>ReGa.runScript</value>`+
				`</data></array></value></param></params></methodResponse>`)
		case "CCU.getSerial":
			io.WriteString(w, `<?xml version="1.0"?><methodResponse><params><param>`+
				`<value><string>KEQ0123456</string></value></param></params></methodResponse>`)
		case "Interface.setValue":
			if len(call.Params) != 3 {
				t.Errorf("setValue got %d params, want 3", len(call.Params))
			}
			io.WriteString(w, `<?xml version="1.0"?><methodResponse><params><param>`+
				`<value><boolean>1</boolean></value></param></params></methodResponse>`)
		default:
			io.WriteString(w, `<?xml version="1.0"?><methodResponse><fault><value><struct>`+
				`<member><name>faultCode</name><value><i4>-32601</i4></value></member>`+
				`<member><name>faultString</name><value><string>Method not found</string></value></member>`+
				`</struct></value></fault></methodResponse>`)
		}
	})
}

func TestCallRoundTrip(t *testing.T) {
	srv := httptest.NewServer(ccuHandler(t))
	defer srv.Close()

	client, err := Open(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	result, err := client.Call("CCU.getSerial", nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if result != "KEQ0123456" {
		t.Errorf("got %v, want KEQ0123456", result)
	}

	result, err = client.Call("Interface.setValue", []any{"LEQ1234567:1", "STATE", true})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if result != true {
		t.Errorf("got %v, want true", result)
	}
}

func TestCallFault(t *testing.T) {
	srv := httptest.NewServer(ccuHandler(t))
	defer srv.Close()

	client, err := Open(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	_, err = client.Call("CCU.noSuchMethod", nil)
	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("got %v, want *Fault", err)
	}
	if fault.Code != -32601 {
		t.Errorf("got fault code %d, want -32601", fault.Code)
	}
}

func TestListMethods(t *testing.T) {
	srv := httptest.NewServer(ccuHandler(t))
	defer srv.Close()

	client, err := Open(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	names, err := client.ListMethods()
	if err != nil {
		t.Fatalf("ListMethods: %v", err)
	}
	want := []string{"system.listMethods", "CCU.getSerial", "ReGa.runScript"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestCallHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := Open(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := client.Call("CCU.getSerial", nil); err == nil {
		t.Error("expected error for HTTP 500")
	} else if errors.As(err, new(*Fault)) {
		t.Error("an HTTP error must not decode as a fault")
	}
}
