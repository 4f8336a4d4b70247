package acquiring

// Response is the Init response envelope. Decoding is deliberately lenient:
// on business-rule rejections the gateway omits Status, PaymentId and
// PaymentURL and populates only Success, ErrorCode, Message and Details,
// so every business field is optional here.
type Response struct {
	Success     bool   `json:"Success"`
	ErrorCode   string `json:"ErrorCode"`
	Message     string `json:"Message,omitempty"`
	Details     string `json:"Details,omitempty"`
	TerminalKey string `json:"TerminalKey,omitempty"`
	Status      string `json:"Status,omitempty"`
	PaymentID   string `json:"PaymentId,omitempty"`
	OrderID     string `json:"OrderId,omitempty"`
	Amount      uint64 `json:"Amount,omitempty"`
	PaymentURL  string `json:"PaymentURL,omitempty"`
}

// Successful reports whether the gateway accepted the request. A 2xx body
// with Success=false is a business rejection, not a transport failure.
func (r *Response) Successful() bool { return r.Success }

// APIError returns the gateway's error triplet for business rejections.
func (r *Response) APIError() (code, message, details string) {
	return r.ErrorCode, r.Message, r.Details
}
