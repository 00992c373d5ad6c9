package domain

// Session is the signed-in administrator's identity as the console sees it.
// It replaces ad-hoc key/value reads with one typed value resolved per request.
type Session struct {
	AdminID AdminID
	Region  Region
	// BackendToken is forwarded to the welfare backend as a bearer token.
	BackendToken string
}

// IsZero reports whether no administrator is attached.
func (s Session) IsZero() bool {
	return s.AdminID.IsNil()
}
