package auth

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"net/http"
	"regexp"
	"testing"

	qt "github.com/frankban/quicktest"
)

type TestPayload struct {
	StrMap map[string]string
	IntMap map[int]string
}

func (t *TestPayload) DeterministicBytes() []byte {
	b, _ := json.Marshal(t)
	return b
}

var hexSignature = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestSign(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	encoded, err := EncodePayload(map[string]any{"key": "value"})
	c.Assert(err, qt.IsNil, qt.Commentf("got an error encoding the payload"))
	c.Assert(encoded, qt.Equals, EncodedPayload("eyJrZXkiOiJ2YWx1ZSJ9"))

	sig := Sign("test_secret", encoded)
	c.Assert(sig, qt.Equals, Signature("75c80dc69134ca9473b66ad578072ae687758c484c19d10a4c9978bc9f54422b"))
	c.Assert(hexSignature.MatchString(string(sig)), qt.IsTrue, qt.Commentf("signature is not lowercase hex: %q", sig))

	// Signing is a pure function of its inputs
	for i := 0; i < 10; i++ {
		c.Assert(Sign("test_secret", encoded), qt.Equals, sig, qt.Commentf("signature changed on iteration %d", i))
	}
}

func TestSignEmptyPayload(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	fromNil, err := EncodePayload(nil)
	c.Assert(err, qt.IsNil)
	fromEmpty, err := EncodePayload(map[string]any{})
	c.Assert(err, qt.IsNil)
	var nilMap map[string]any
	fromNilMap, err := EncodePayload(nilMap)
	c.Assert(err, qt.IsNil)
	var nilPtr *TestPayload
	fromNilPtr, err := EncodePayload(nilPtr)
	c.Assert(err, qt.IsNil)

	c.Assert(fromNil, qt.Equals, EncodedPayload("e30="))
	c.Assert(fromEmpty, qt.Equals, fromNil)
	c.Assert(fromNilMap, qt.Equals, fromNil)
	c.Assert(fromNilPtr, qt.Equals, fromNil)
	c.Assert(Sign("test_secret", fromNil), qt.Equals, Signature("1a639c51a6760704e973d38e459427bf8c0c42d2bf0da27aaf69dd7474f1ab1d"))
}

func TestEncodePayloadSortsMapKeys(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	first := map[string]any{"b": 2, "a": 1}
	second := map[string]any{"a": 1, "b": 2}

	for i := 0; i < 20; i++ {
		a, err := EncodePayload(first)
		c.Assert(err, qt.IsNil)
		b, err := EncodePayload(second)
		c.Assert(err, qt.IsNil)
		c.Assert(a, qt.Equals, b)
		c.Assert(a, qt.Equals, EncodedPayload("eyJhIjoxLCJiIjoyfQ=="))
	}
}

func TestEncodePayloadUsesDeterministicBytes(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	payload := &TestPayload{
		StrMap: map[string]string{"a": "z", "b": "y"},
		IntMap: map[int]string{1: "z", 2: "y"},
	}

	encoded, err := EncodePayload(payload)
	c.Assert(err, qt.IsNil)

	raw, err := base64.StdEncoding.DecodeString(string(encoded))
	c.Assert(err, qt.IsNil)
	c.Assert(raw, qt.DeepEquals, payload.DeterministicBytes())

	bytesEncoded, err := EncodePayload(BytesPayload(raw))
	c.Assert(err, qt.IsNil)
	c.Assert(bytesEncoded, qt.Equals, encoded)
}

func TestEncodePayloadFailure(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	_, err := EncodePayload(map[string]any{"ch": make(chan int)})
	c.Assert(err, qt.ErrorIs, ErrPayloadEncoding)

	_, err = NewHeaders("test_account", "test_secret", map[string]any{"fn": func() {}})
	c.Assert(err, qt.ErrorIs, ErrPayloadEncoding)
}

func TestVerify(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	payloads := []any{
		nil,
		map[string]any{},
		map[string]any{"fullName": "John Doe", "email": "john@example.com"},
		[]int{1, 2, 3},
		"plain string",
	}

	for _, payload := range payloads {
		encoded, err := EncodePayload(payload)
		c.Assert(err, qt.IsNil)
		sig := Sign("my_secret", encoded)

		c.Assert(Verify("my_secret", encoded, sig), qt.IsTrue, qt.Commentf("payload %v", payload))
		c.Assert(Verify("other_secret", encoded, sig), qt.IsFalse, qt.Commentf("payload %v", payload))
		c.Assert(Verify("my_secret", encoded+"x", sig), qt.IsFalse, qt.Commentf("payload %v", payload))
		c.Assert(Verify("my_secret", encoded, "invalid"), qt.IsFalse, qt.Commentf("payload %v", payload))

		flipped := []byte(sig)
		if flipped[0] == '0' {
			flipped[0] = '1'
		} else {
			flipped[0] = '0'
		}
		c.Assert(Verify("my_secret", encoded, Signature(flipped)), qt.IsFalse, qt.Commentf("payload %v", payload))
	}
}

func TestHeaders(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	payload := map[string]any{"key": "value"}
	headers, err := NewHeaders("test_account", "test_secret", payload)
	c.Assert(err, qt.IsNil, qt.Commentf("got an error creating the headers"))
	c.Assert(headers.AccountID, qt.Equals, "test_account")
	c.Assert(headers.Signature, qt.HasLen, SignatureLength)

	again, err := NewHeaders("test_account", "test_secret", payload)
	c.Assert(err, qt.IsNil)
	c.Assert(again.Equal(headers), qt.IsTrue, qt.Commentf("headers are not stable"))

	// The account id never depends on the payload
	noPayload, err := NewHeaders("test_account", "test_secret", nil)
	c.Assert(err, qt.IsNil)
	c.Assert(noPayload.AccountID, qt.Equals, "test_account")
	c.Assert(noPayload.Signature, qt.HasLen, SignatureLength)
	c.Assert(noPayload.Equal(headers), qt.IsFalse)

	// Run the headers through the wire format and make sure they still verify
	received := viaWireFormat(c, headers)
	c.Assert(received.Equal(headers), qt.IsTrue, qt.Commentf("headers changed over the wire"))
	c.Assert(received.Verify("test_secret", payload), qt.IsNil)
	c.Assert(received.Verify("wrong_secret", payload), qt.ErrorIs, ErrInvalidSignature)
	c.Assert(received.Verify("test_secret", map[string]any{"key": "other"}), qt.ErrorIs, ErrInvalidSignature)
}

func TestHeadersFromRequestMissing(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	req, err := http.NewRequest(http.MethodGet, "http://example.com/health", nil)
	c.Assert(err, qt.IsNil)

	_, err = HeadersFromRequest(req)
	c.Assert(err, qt.ErrorIs, ErrNoAccountHeader)

	req.Header.Set(HeaderAccountID, "test_account")
	_, err = HeadersFromRequest(req)
	c.Assert(err, qt.ErrorIs, ErrNoSignatureHeader)

	req.Header.Set(HeaderSignature, "abc")
	_, err = HeadersFromRequest(req)
	c.Assert(err, qt.ErrorIs, ErrInvalidSignature)
}

// viaWireFormat is a hack to ensure that the headers are marshalled in the same way as they would be over the wire.
// and then unmarshalled back, making sure that the wireformat doesn't cause an issue with the signing.
func viaWireFormat(c *qt.C, headers *Headers) *Headers {
	httpHeaders := make(http.Header)
	headers.Apply(httpHeaders)

	// Write an HTTP request to a buffer, which includes the headers
	var buf bytes.Buffer
	buf.Write([]byte(
		"GET / HTTP/1.1\r\n" +
			"Host: api.wusul.io\r\n",
	))
	c.Assert(httpHeaders.Write(&buf), qt.IsNil, qt.Commentf("got an error writing the headers"))
	buf.Write([]byte("\r\n"))

	// The header names must be sent exactly as the API expects them
	c.Assert(bytes.Contains(buf.Bytes(), []byte(HeaderAccountID+": ")), qt.IsTrue)
	c.Assert(bytes.Contains(buf.Bytes(), []byte(HeaderSignature+": ")), qt.IsTrue)

	request, err := http.ReadRequest(bufio.NewReader(&buf))
	c.Assert(err, qt.IsNil, qt.Commentf("got an error reading the request"))

	received, err := HeadersFromRequest(request)
	c.Assert(err, qt.IsNil, qt.Commentf("got an error parsing the headers"))
	return received
}
