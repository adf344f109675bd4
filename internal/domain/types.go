package domain

// ID is used across domain entities.
type ID int64

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// SessionContext is the tenant/session info extracted from the external auth
// token. It replaces the old habit of reading agency/branch out of ambient
// browser storage: handlers receive it explicitly via the request context.
type SessionContext struct {
	UserID   ID     `json:"userId"`
	AgencyID ID     `json:"agencyId"`
	Branch   string `json:"branch"`
	Role     string `json:"role"`
}

// Anonymous reports whether the request carried no usable session token.
func (s SessionContext) Anonymous() bool {
	return s.UserID == 0 && s.AgencyID == 0
}
