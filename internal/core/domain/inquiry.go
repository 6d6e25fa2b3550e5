package domain

import "time"

// InquiryStatus tracks the reply lifecycle of a tenant inquiry.
type InquiryStatus string

const (
	InquiryPending InquiryStatus = "pending"
	InquiryReplied InquiryStatus = "replied"
	InquiryClosed  InquiryStatus = "closed"
)

// Inquiry is a tenant's question about a listing, answered by the listing's
// landlord. The landlord id is captured at creation so replies need no join.
type Inquiry struct {
	ID         int64         `json:"id"`
	ListingID  int64         `json:"listingId"`
	TenantID   int64         `json:"tenantId"`
	LandlordID int64         `json:"landlordId"`
	Message    string        `json:"message"`
	Reply      string        `json:"reply,omitempty"`
	Status     InquiryStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	RepliedAt  time.Time     `json:"repliedAt,omitempty"`
}
