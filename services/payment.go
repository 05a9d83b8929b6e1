package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"koi/errors"
)

// HTTPDoer phần client HTTP được tiêm vào để test bằng double
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// PaymentService nói chuyện với cổng thanh toán bên ngoài.
// Mọi phản hồi ngoài 2xx hoặc body sai định dạng đều trả về REMOTE_FAILURE,
// không thay đổi gì ở trạng thái cục bộ.
type PaymentService struct {
	client  HTTPDoer
	baseURL string
}

func NewPaymentService(client HTTPDoer, baseURL string) *PaymentService {
	if client == nil {
		client = http.DefaultClient
	}
	return &PaymentService{client: client, baseURL: baseURL}
}

// tripPaymentResponse định nghĩa cấu trúc phản hồi tạo thanh toán
type tripPaymentResponse struct {
	ApprovalURL string `json:"approvalUrl"`
}

// refundResponse định nghĩa cấu trúc phản hồi hoàn tiền
type refundResponse struct {
	RefundID string `json:"refundId"`
	Status   string `json:"status"`
}

// ParseApprovalURL lấy approvalUrl từ body phản hồi của cổng thanh toán
func ParseApprovalURL(body io.Reader) (string, error) {
	var resp tripPaymentResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.ApprovalURL == "" {
		return "", fmt.Errorf("approvalUrl is missing in response")
	}
	return resp.ApprovalURL, nil
}

func (s *PaymentService) post(path string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeRemoteFailure, "không thể mã hóa yêu cầu thanh toán", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeRemoteFailure, "không thể tạo yêu cầu thanh toán", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeRemoteFailure, "cổng thanh toán không phản hồi", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, errors.NewAppError(errors.ErrCodeRemoteFailure,
			fmt.Sprintf("cổng thanh toán trả về mã %d", resp.StatusCode), nil)
	}
	return resp, nil
}

// CreateTripPayment tạo thanh toán cho booking, trả về approvalUrl để chuyển hướng khách
func (s *PaymentService) CreateTripPayment(bookingID string, amount int64) (string, error) {
	payload := map[string]interface{}{
		"bookingId": bookingID,
		"amount":    amount,
		"currency":  "VND",
	}

	resp, err := s.post(fmt.Sprintf("/%s/payment/api/create-trippayment", bookingID), payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	approvalURL, err := ParseApprovalURL(resp.Body)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeRemoteFailure, "phản hồi cổng thanh toán sai định dạng", err)
	}
	return approvalURL, nil
}

// Refund yêu cầu hoàn tiền cho một đơn cá đã hủy hoặc bị từ chối
func (s *PaymentService) Refund(orderID string, amount int64) (string, error) {
	payload := map[string]interface{}{
		"orderId": orderID,
		"amount":  amount,
	}

	resp, err := s.post(fmt.Sprintf("/%s/api/refund", orderID), payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var refund refundResponse
	if err := json.NewDecoder(resp.Body).Decode(&refund); err != nil {
		return "", errors.NewAppError(errors.ErrCodeRemoteFailure, "phản hồi hoàn tiền sai định dạng", err)
	}
	if refund.RefundID == "" {
		return "", errors.NewAppError(errors.ErrCodeRemoteFailure, "phản hồi hoàn tiền thiếu refundId", nil)
	}
	return refund.RefundID, nil
}
