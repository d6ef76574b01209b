package datafeed

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &HTTPStatusError{
		Code: resp.StatusCode(),
		Body: strings.TrimSpace(string(resp.Body())),
	}
}
