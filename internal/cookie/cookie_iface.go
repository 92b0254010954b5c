package cookie

import "net/http"

var _ Handler = &Client{}

// Handler Interface included for testability
type Handler interface {
	WriteFlowCookie(w http.ResponseWriter, values *Values) error
	ReadFlowCookie(r *http.Request) (values *Values, found bool)
	DeleteFlowCookie(w http.ResponseWriter)
}
