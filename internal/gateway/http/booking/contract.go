//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"net/http"
)

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}
