package services

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"koi/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockHTTPDoer struct {
	mock.Mock
}

func (m *mockHTTPDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestCreateTripPaymentReturnsApprovalURL(t *testing.T) {
	client := new(mockHTTPDoer)
	client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPost &&
			strings.HasSuffix(req.URL.Path, "/BO0002/payment/api/create-trippayment")
	})).Return(jsonResponse(200, `{"approvalUrl":"https://pay.example.com/approve/abc123"}`), nil)

	svc := NewPaymentService(client, "https://pay.example.com")

	url, err := svc.CreateTripPayment("BO0002", 52_000_000)

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/approve/abc123", url)
	client.AssertNumberOfCalls(t, "Do", 1)
}

func TestCreateTripPaymentNon2xx(t *testing.T) {
	client := new(mockHTTPDoer)
	client.On("Do", mock.Anything).Return(jsonResponse(502, `Bad Gateway`), nil)

	svc := NewPaymentService(client, "https://pay.example.com")

	_, err := svc.CreateTripPayment("BO0002", 52_000_000)

	assert.True(t, errors.HasCode(err, errors.ErrCodeRemoteFailure))
}

func TestCreateTripPaymentMalformedBody(t *testing.T) {
	client := new(mockHTTPDoer)
	client.On("Do", mock.Anything).Return(jsonResponse(200, `{"unexpected":"shape"}`), nil)

	svc := NewPaymentService(client, "https://pay.example.com")

	_, err := svc.CreateTripPayment("BO0002", 52_000_000)

	assert.True(t, errors.HasCode(err, errors.ErrCodeRemoteFailure))
}

func TestCreateTripPaymentNetworkError(t *testing.T) {
	client := new(mockHTTPDoer)
	client.On("Do", mock.Anything).Return(nil, io.ErrUnexpectedEOF)

	svc := NewPaymentService(client, "https://pay.example.com")

	_, err := svc.CreateTripPayment("BO0002", 52_000_000)

	assert.True(t, errors.HasCode(err, errors.ErrCodeRemoteFailure))
}

func TestRefundReturnsRefundID(t *testing.T) {
	client := new(mockHTTPDoer)
	client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return strings.HasSuffix(req.URL.Path, "/FO01/api/refund")
	})).Return(jsonResponse(200, `{"refundId":"RF-881","status":"refunded"}`), nil)

	svc := NewPaymentService(client, "https://pay.example.com")

	refundID, err := svc.Refund("FO01", 12_500_000)

	assert.NoError(t, err)
	assert.Equal(t, "RF-881", refundID)
}

func TestRefundMissingRefundID(t *testing.T) {
	client := new(mockHTTPDoer)
	client.On("Do", mock.Anything).Return(jsonResponse(200, `{"status":"refunded"}`), nil)

	svc := NewPaymentService(client, "https://pay.example.com")

	_, err := svc.Refund("FO01", 12_500_000)

	assert.True(t, errors.HasCode(err, errors.ErrCodeRemoteFailure))
}

func TestParseApprovalURL(t *testing.T) {
	url, err := ParseApprovalURL(strings.NewReader(`{"approvalUrl":"https://pay.example.com/x"}`))
	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/x", url)

	_, err = ParseApprovalURL(strings.NewReader(`not json`))
	assert.Error(t, err)

	_, err = ParseApprovalURL(strings.NewReader(`{}`))
	assert.Error(t, err)
}
