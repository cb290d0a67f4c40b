package constants

const (
	// Chat bots only display the response body when the status is 200, so
	// error conditions are reported in-band as chat-friendly text.
	StatusQuip    = "%d. That's not a rank, that's a status code. kek"
	InternalError = "Erm something went wrong"
	NotFoundPage  = "There's nothing here. Susge"
)
