package models

// QueryParameters are the transient list controls of a dashboard screen.
type QueryParameters struct {
	Search string `form:"search" json:"search"`
	Sort   string `form:"sort" json:"sort"`
	Filter string `form:"filter" json:"filter"`
	Page   int    `form:"page" json:"page"`
}

// DestructiveResult reports whether a confirmed action was applied.
type DestructiveResult struct {
	Applied  bool   `json:"applied"`
	Affected int    `json:"affected"`
	Message  string `json:"message,omitempty"`
}
