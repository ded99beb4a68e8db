package models

// MessageFilter narrows the inbox by read state.
type MessageFilter string

const (
	MessageFilterAll    MessageFilter = "all"
	MessageFilterRead   MessageFilter = "read"
	MessageFilterUnread MessageFilter = "unread"
)

// Message sort keys.
const (
	MessageSortDateDesc   = "date-desc"
	MessageSortDateAsc    = "date-asc"
	MessageSortSenderAsc  = "sender-asc"
	MessageSortSenderDesc = "sender-desc"
)

// Message is an inbox entry. Date is RFC3339.
type Message struct {
	ID      int64  `json:"id"`
	Sender  string `json:"sender"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}

func (m Message) ItemID() int64 { return m.ID }
