package dto

// GenerateNoticeRequest payload. Every field is optional; absent values are
// rendered as placeholder tokens.
type GenerateNoticeRequest struct {
	SenderName       string `json:"senderName"`
	SenderFatherName string `json:"senderFatherName"`
	SenderAddress    string `json:"senderAddress"`
	RecipientName    string `json:"recipientName"`
	RecipientAddress string `json:"recipientAddress"`
	Reason           string `json:"reason"`
	Amount           string `json:"amount"`
}
