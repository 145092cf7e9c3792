package models

// SignupResult is the outcome of one signup call that reached the API.
type SignupResult struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Detail     string `json:"detail"`
}

func (r SignupResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
