package configs

const (
	ContentType      = "Content-Type"
	ContentValue     = "text/plain; charset=utf-8"
	ContentValueJSON = "application/json"
	RequestIDHeader  = "X-Request-ID"
)
