package dto

type CreateTripPaymentResponse struct {
	ApprovalURL string `json:"approvalUrl"`
}

type RefundResponse struct {
	OrderID  string `json:"orderId"`
	Refunded bool   `json:"refunded"`
}
